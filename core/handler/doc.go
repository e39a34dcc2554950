// Package handler defines the envelope and handler abstractions shared by
// the routing core: the immutable Request view, the typed response Entity
// with its tagged body variant, the wire-level Response, and the handler
// function and middleware types composed by the router.
//
// Handlers declare their expected input explicitly at registration time via
// the NoBody, Text, and Decode adapters instead of relying on runtime type
// inspection:
//
//	r.Post("/users").Consuming("application/json").Producing("application/json").
//		Handle(handler.Decode(func(req *handler.Request, in CreateUser) (*handler.Entity, error) {
//			return handler.WithStatus(http.StatusCreated, handler.StructuredBody(create(in))), nil
//		}))
package handler
