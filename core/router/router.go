package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/routegate/routegate/core/codec"
	"github.com/routegate/routegate/core/handler"
)

// Registration errors. Route declaration mistakes are programming errors
// and panic at startup rather than surfacing at dispatch time.
var (
	ErrInvalidPattern  = errors.New("routing pattern must begin with '/'")
	ErrNilHandler      = errors.New("nil handler")
	ErrMiddlewareOrder = errors.New("all middleware must be registered before routes")
	ErrMissingMethod   = errors.New("route method is required")
)

// route binds a predicate to its effective handler. The middleware chain is
// composed into fn at registration time.
type route struct {
	predicate Predicate
	fn        handler.Func
}

// Router is an ordered route table with a shared middleware chain. Routes
// are matched by linear scan in registration order; the first full match
// wins. A Router must be fully configured before the first Dispatch and is
// then safe for concurrent use.
type Router struct {
	routes      []route
	middlewares []handler.Middleware
	codecs      *codec.Registry
	logger      *slog.Logger
}

// Option configures a Router during creation.
type Option func(*Router)

// WithLogger sets the logger used for dispatch outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMiddleware adds middleware applied to every route.
func WithMiddleware(middlewares ...handler.Middleware) Option {
	return func(r *Router) {
		r.middlewares = append(r.middlewares, middlewares...)
	}
}

// WithCodecs sets the codec registry used for response negotiation.
func WithCodecs(codecs *codec.Registry) Option {
	return func(r *Router) {
		if codecs != nil {
			r.codecs = codecs
		}
	}
}

// New creates a router with the given options. The default configuration
// uses the default codec registry and a no-op logger.
func New(opts ...Option) *Router {
	r := &Router{
		codecs: codec.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Use appends middleware to the router. Middleware must be registered
// before any route so every route sees the same chain.
func (r *Router) Use(middlewares ...handler.Middleware) {
	if len(r.routes) > 0 {
		panic(ErrMiddlewareOrder)
	}
	r.middlewares = append(r.middlewares, middlewares...)
}

// Route starts declaring a route for the given method and path template.
func (r *Router) Route(method, pattern string) *RouteBuilder {
	if method == "" {
		panic(ErrMissingMethod)
	}
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: %q", ErrInvalidPattern, pattern))
	}

	return &RouteBuilder{
		router: r,
		predicate: Predicate{
			Method:  method,
			Pattern: pattern,
		},
	}
}

// Get starts declaring a GET route.
func (r *Router) Get(pattern string) *RouteBuilder {
	return r.Route(http.MethodGet, pattern)
}

// Post starts declaring a POST route.
func (r *Router) Post(pattern string) *RouteBuilder {
	return r.Route(http.MethodPost, pattern)
}

// Put starts declaring a PUT route.
func (r *Router) Put(pattern string) *RouteBuilder {
	return r.Route(http.MethodPut, pattern)
}

// Delete starts declaring a DELETE route.
func (r *Router) Delete(pattern string) *RouteBuilder {
	return r.Route(http.MethodDelete, pattern)
}

// Patch starts declaring a PATCH route.
func (r *Router) Patch(pattern string) *RouteBuilder {
	return r.Route(http.MethodPatch, pattern)
}

// Routes returns the predicates of all registered routes in registration
// order, for introspection and debugging.
func (r *Router) Routes() []Predicate {
	out := make([]Predicate, len(r.routes))
	for i, rt := range r.routes {
		out[i] = rt.predicate
	}
	return out
}

// RouteBuilder declares the media-type constraints of a route and binds its
// handler.
type RouteBuilder struct {
	router    *Router
	predicate Predicate
}

// Consuming declares the media types the route accepts as request bodies.
// A route without consumable types only matches requests that carry no
// Content-Type.
func (b *RouteBuilder) Consuming(types ...string) *RouteBuilder {
	b.predicate.Consumes = append(b.predicate.Consumes, types...)
	return b
}

// Producing declares the media types the route can render responses as.
func (b *RouteBuilder) Producing(types ...string) *RouteBuilder {
	b.predicate.Produces = append(b.predicate.Produces, types...)
	return b
}

// Handle binds the handler and registers the route. The router's middleware
// chain is composed into one effective handler here, so dispatch invokes a
// single function per route.
func (b *RouteBuilder) Handle(fn handler.Func) {
	if fn == nil {
		panic(fmt.Errorf("%w: %s %s", ErrNilHandler, b.predicate.Method, b.predicate.Pattern))
	}

	b.router.routes = append(b.router.routes, route{
		predicate: b.predicate,
		fn:        handler.Chain(b.router.middlewares, fn),
	})
}
