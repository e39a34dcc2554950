// Package middleware provides cross-cutting handler middleware for the
// routing core: request ID assignment, structured request logging,
// Prometheus metrics, and token bucket rate limiting.
//
// Middleware is registered once on the router and composed into every
// route's effective handler at registration time:
//
//	rt := router.New(router.WithMiddleware(
//		middleware.RequestID(),
//		middleware.Logging(),
//		middleware.Metrics(),
//	))
package middleware
