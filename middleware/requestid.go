package middleware

import (
	"github.com/google/uuid"

	"github.com/routegate/routegate/core/handler"
)

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *handler.Request) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse a request ID from the incoming request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
// It generates a new UUID for each request and echoes it on the response.
func RequestID() handler.Middleware {
	return RequestIDWithConfig(RequestIDConfig{UseExisting: true})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration. The ID is added to the response entity's headers so the
// caller can correlate the invocation in logs.
func RequestIDWithConfig(cfg RequestIDConfig) handler.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next handler.Func) handler.Func {
		return func(r *handler.Request) (*handler.Entity, error) {
			if cfg.Skip != nil && cfg.Skip(r) {
				return next(r)
			}

			var id string
			if cfg.UseExisting {
				id = r.Header(cfg.HeaderName)
			}
			if id == "" {
				id = cfg.Generator()
			}

			entity, err := next(r)
			if entity != nil {
				entity.WithHeader(cfg.HeaderName, id)
			}
			return entity, err
		}
	}
}
