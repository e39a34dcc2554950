package handler

// Func handles a single routed request and returns the typed response
// entity. Known client-facing failures are returned as response.Error
// values; anything else is treated as an internal failure by the
// dispatcher.
type Func func(r *Request) (*Entity, error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware func(next Func) Func

// Chain builds a single handler from a middleware stack and endpoint.
// The first middleware in the slice runs first.
func Chain(middlewares []Middleware, endpoint Func) Func {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
