package middleware

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/routegate/routegate/core/handler"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *handler.Request) bool

	// Registerer receives the collectors (default: prometheus.DefaultRegisterer)
	Registerer prometheus.Registerer

	// Namespace prefixes the metric names (default: "routegate")
	Namespace string

	// DurationBuckets overrides the histogram buckets (default: prometheus.DefBuckets)
	DurationBuckets []float64
}

// Metrics creates a metrics middleware with default configuration,
// registering its collectors on the default Prometheus registerer.
func Metrics() handler.Middleware {
	return MetricsWithConfig(MetricsConfig{})
}

// MetricsWithConfig creates a metrics middleware with custom configuration.
// It records a request counter labeled by method, route, and status, and a
// duration histogram labeled by method and route. Registration happens once
// per middleware instance; constructing two instances against the same
// registerer panics on the duplicate collectors.
func MetricsWithConfig(cfg MetricsConfig) handler.Middleware {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "routegate"
	}
	if cfg.DurationBuckets == nil {
		cfg.DurationBuckets = prometheus.DefBuckets
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "requests_total",
		Help:      "Total number of dispatched requests.",
	}, []string{"method", "route", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "request_duration_seconds",
		Help:      "Handler execution time in seconds.",
		Buckets:   cfg.DurationBuckets,
	}, []string{"method", "route"})

	cfg.Registerer.MustRegister(requests, duration)

	return func(next handler.Func) handler.Func {
		return func(r *handler.Request) (*handler.Entity, error) {
			if cfg.Skip != nil && cfg.Skip(r) {
				return next(r)
			}

			start := time.Now()
			entity, err := next(r)

			labels := prometheus.Labels{"method": r.Method(), "route": r.Route()}
			duration.With(labels).Observe(time.Since(start).Seconds())

			labels["status"] = strconv.Itoa(statusOf(entity, err))
			requests.With(labels).Inc()

			return entity, err
		}
	}
}
