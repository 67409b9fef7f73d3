package provider

import (
	"github.com/kbukum/dataprovider/logger"
	"github.com/kbukum/dataprovider/observability"
)

// Option configures a Registry.
type Option func(*Registry)

// WithMiddleware wraps every provider at registration time. The first
// middleware is outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(r *Registry) {
		r.middleware = append(r.middleware, mw...)
	}
}

// WithLogger sets the logger used for registry events.
func WithLogger(log *logger.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// WithCacheMetrics records cache hits, misses and registrations on m.
func WithCacheMetrics(m *observability.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}
