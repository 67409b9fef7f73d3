package bootstrap

import (
	"io"
	"time"

	"github.com/kbukum/dataprovider/logger"
	"github.com/kbukum/dataprovider/provider"
)

// Option configures the App during creation.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	logger          *logger.Logger
	registry        *provider.Registry
	instanceID      string
	summaryOut      io.Writer
	gracefulTimeout *time.Duration
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is auto-initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithGracefulTimeout sets the maximum duration for graceful shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.gracefulTimeout = &d
	}
}

// WithRegistry uses r instead of building a registry from the provider
// configuration, e.g. provider.Default().
func WithRegistry(r *provider.Registry) Option {
	return func(o *appOptions) {
		o.registry = r
	}
}

// WithInstanceID overrides the generated instance ID.
func WithInstanceID(id string) Option {
	return func(o *appOptions) {
		o.instanceID = id
	}
}

// WithSummaryWriter sets where the startup summary is printed.
// Defaults to os.Stdout; io.Discard silences it.
func WithSummaryWriter(w io.Writer) Option {
	return func(o *appOptions) {
		o.summaryOut = w
	}
}
