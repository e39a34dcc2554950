// Package routegate provides request routing and content negotiation for
// synchronous, single-request/single-response invocations. It matches an
// inbound request envelope against declared routes by method, path template,
// and produced/consumed media types, dispatches to a typed handler through a
// middleware chain, and serializes the typed result back into a wire-level
// response.
//
// # Package Organization
//
// The library is organized into core framework packages, middleware, and a
// hosting adapter:
//
//	github.com/routegate/routegate/core/codec     - Structured-body codecs (JSON, MessagePack, YAML) keyed by media type
//	github.com/routegate/routegate/core/config    - Type-safe environment variable loading
//	github.com/routegate/routegate/core/handler   - Request/response envelope types and handler abstractions
//	github.com/routegate/routegate/core/logger    - Structured logging attribute helpers built on slog
//	github.com/routegate/routegate/core/mediatype - Wildcard-aware media-type compatibility
//	github.com/routegate/routegate/core/response  - Response and error serialization, structured API errors
//	github.com/routegate/routegate/core/router    - Route table, predicate matching, and dispatch
//	github.com/routegate/routegate/middleware     - Request ID, logging, metrics, and rate limiting middleware
//	github.com/routegate/routegate/httpserver     - net/http hosting adapter with graceful shutdown
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/routegate/routegate/core/router
//	go doc -all github.com/routegate/routegate/middleware
package routegate
