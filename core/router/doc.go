// Package router implements the route table and dispatcher for single-shot
// request envelopes. Routes are declared through a fluent builder binding a
// request predicate (method, path template, produced and consumed media
// types) to a handler; dispatch is a linear scan over the registered routes
// in declaration order.
//
// When no route fully matches, the partial-match evidence is translated
// into the most specific client error: 415 when path and method match but
// the request body format is not consumable, then 406 when the response
// format is not producible, then 405 when only the path matches, then 404.
//
// Basic usage:
//
//	rt := router.New(router.WithLogger(log))
//	rt.Get("/users/{id}").Producing("application/json").
//		Handle(handler.NoBody(getUser))
//
//	resp := rt.Dispatch(req)
//
// A Router is mutable only during registration. Once all routes are
// declared it is read-only and safe for concurrent dispatch without
// synchronization.
package router
