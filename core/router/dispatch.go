package router

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/routegate/routegate/core/handler"
	"github.com/routegate/routegate/core/logger"
	"github.com/routegate/routegate/core/response"
)

// Dispatch routes a single request envelope to the first fully matching
// route and returns the wire response. It never panics and never returns an
// error: every failure mode is rendered into a response.
//
// Every registered predicate is evaluated, without short-circuit, so that a
// request matching no route can be answered with the most specific client
// error. Known failures returned by the handler chain (response.Error) are
// rendered verbatim and logged at info level; unknown failures and panics
// are rendered as the generic 500 with full detail kept server-side.
func (r *Router) Dispatch(req *handler.Request) handler.Response {
	results := make([]MatchResult, len(r.routes))
	matched := -1
	for i := range r.routes {
		results[i] = r.routes[i].predicate.Match(req)
		if matched < 0 && results[i].Matches() {
			matched = i
		}
	}

	if matched < 0 {
		return r.fallback(req, results)
	}

	rt := r.routes[matched]
	routed := req.WithRoute(rt.predicate.Pattern)

	entity, err := invoke(rt.fn, routed)
	if err != nil {
		return r.renderError(routed, err)
	}
	if entity == nil {
		r.logger.Error("handler returned nil entity",
			logger.Method(req.Method()),
			logger.Route(rt.predicate.Pattern),
		)
		return response.SerializeInternalError()
	}

	resp, err := response.Serialize(routed, entity, r.codecs)
	if err != nil {
		r.logger.Error("response serialization failed",
			logger.Method(req.Method()),
			logger.Route(rt.predicate.Pattern),
			logger.Error(err),
		)
		return response.SerializeInternalError()
	}
	return resp
}

// renderError maps a handler chain failure to its wire response.
func (r *Router) renderError(req *handler.Request, err error) handler.Response {
	var pe *panicError
	if errors.As(err, &pe) {
		r.logger.Error("handler panicked",
			logger.Method(req.Method()),
			logger.Route(req.Route()),
			logger.Error(err),
			logger.Key("stack", string(pe.stack)),
		)
		return response.SerializeInternalError()
	}

	var apiErr response.Error
	if errors.As(err, &apiErr) {
		r.logger.Info("request failed",
			logger.Method(req.Method()),
			logger.Route(req.Route()),
			logger.StatusCode(apiErr.Status),
			logger.Error(err),
		)
		return response.SerializeError(apiErr)
	}

	var decErr *handler.DecodeError
	if errors.As(err, &decErr) {
		r.logger.Info("request body decoding failed",
			logger.Method(req.Method()),
			logger.Route(req.Route()),
			logger.Error(err),
		)
		return response.SerializeError(response.ErrBadRequest.WithError(decErr.Err))
	}

	r.logger.Error("request failed",
		logger.Method(req.Method()),
		logger.Route(req.Route()),
		logger.Error(err),
	)
	return response.SerializeInternalError()
}

// fallback translates the partial-match evidence into a specific client
// error, in fixed precedence order: an unsupported request body format is
// reported before an unacceptable response format, and both only after path
// and method are known to be correct. A client fixing its Content-Type then
// sees progress toward 406 instead of looping on 415.
func (r *Router) fallback(req *handler.Request, results []MatchResult) handler.Response {
	var badContentType, badAccept, badMethod bool
	for _, m := range results {
		switch {
		case m.Path && m.Method && !m.ContentType:
			badContentType = true
		case m.Path && m.Method && !m.Accept:
			badAccept = true
		case m.Path && !m.Method:
			badMethod = true
		}
	}

	var apiErr response.Error
	switch {
	case badContentType:
		apiErr = response.ErrUnsupportedMediaType
	case badAccept:
		apiErr = response.ErrNotAcceptable
	case badMethod:
		apiErr = response.ErrMethodNotAllowed
	default:
		apiErr = response.ErrNotFound
	}

	r.logger.Info("no route matched",
		logger.Method(req.Method()),
		logger.Path(req.Path()),
		logger.StatusCode(apiErr.Status),
	)
	return response.SerializeError(apiErr)
}

// invoke runs the effective handler, converting panics into errors so one
// misbehaving handler cannot take down the host.
func invoke(fn handler.Func, req *handler.Request) (entity *handler.Entity, err error) {
	defer func() {
		if p := recover(); p != nil {
			entity = nil
			err = &panicError{value: p, stack: debug.Stack()}
		}
	}()
	return fn(req)
}

// panicError wraps a recovered panic value with its stack trace.
type panicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
