package handler

import (
	"fmt"

	"github.com/routegate/routegate/core/codec"
)

// DecodeError wraps a body decoding failure so the dispatcher can report it
// as a client error instead of an internal one.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode request body: %v", e.Err)
}

// Unwrap returns the underlying codec error.
func (e *DecodeError) Unwrap() error { return e.Err }

// NoBody adapts a handler that takes no request body. Any body present on
// the request is ignored; routes gate body presence through their declared
// consumable types.
func NoBody(fn func(r *Request) (*Entity, error)) Func {
	return fn
}

// Text adapts a handler that consumes the raw body as a string. An absent
// body yields an empty string.
func Text(fn func(r *Request, body string) (*Entity, error)) Func {
	return func(r *Request) (*Entity, error) {
		body, _ := r.Body()
		return fn(r, string(body))
	}
}

// Decode adapts a handler that consumes a structured body of type T,
// decoded with the default codec registry. The codec is selected by the
// request's Content-Type; a request without one decodes as JSON.
func Decode[T any](fn func(r *Request, body T) (*Entity, error)) Func {
	return DecodeWith(codec.Default(), fn)
}

// DecodeWith is Decode with an explicit codec registry.
func DecodeWith[T any](codecs *codec.Registry, fn func(r *Request, body T) (*Entity, error)) Func {
	return func(r *Request) (*Entity, error) {
		var in T

		body, ok := r.Body()
		if ok {
			c, found := codecs.ForContentType(r.ContentType())
			if !found {
				return nil, &DecodeError{Err: fmt.Errorf("no codec for content type %q", r.ContentType())}
			}
			if err := c.Unmarshal(body, &in); err != nil {
				return nil, &DecodeError{Err: err}
			}
		}

		return fn(r, in)
	}
}
