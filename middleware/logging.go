package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/routegate/routegate/core/handler"
	"github.com/routegate/routegate/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *handler.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// Level for completed-request logging (default: slog.LevelInfo)
	Level slog.Level

	// SlowRequestThreshold logs a warning for handlers slower than this (0 disables)
	SlowRequestThreshold time.Duration
}

// Logging creates a request logging middleware with default configuration.
func Logging() handler.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. Each invocation is logged once on completion with method,
// route, derived status, duration, and the error when one occurred.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next handler.Func) handler.Func {
		return func(r *handler.Request) (*handler.Entity, error) {
			if cfg.Skip != nil && cfg.Skip(r) {
				return next(r)
			}

			start := time.Now()
			entity, err := next(r)
			elapsed := time.Since(start)

			level := cfg.Level
			if cfg.SlowRequestThreshold > 0 && elapsed > cfg.SlowRequestThreshold {
				level = slog.LevelWarn
			}

			cfg.Logger.Log(context.Background(), level, "request completed",
				logger.Method(r.Method()),
				logger.Path(r.Path()),
				logger.Route(r.Route()),
				logger.StatusCode(statusOf(entity, err)),
				logger.Duration(elapsed),
				logger.Error(err),
			)

			return entity, err
		}
	}
}
