package provider

import (
	"fmt"

	"github.com/kbukum/dataprovider/config"
	"github.com/kbukum/dataprovider/logger"
	"github.com/kbukum/dataprovider/observability"
)

// Config is the provider section of an application configuration.
type Config struct {
	// Name identifies the registry in logs, metrics and health reports.
	Name string `yaml:"name" mapstructure:"name" validate:"required"`
	// LogCalls logs every provider call at debug level.
	LogCalls bool `yaml:"log_calls" mapstructure:"log_calls"`
	// Metrics records provider calls and registry cache activity.
	Metrics bool `yaml:"metrics" mapstructure:"metrics"`
	// Tracing creates a span per provider call.
	Tracing        bool   `yaml:"tracing" mapstructure:"tracing"`
	TracingService string `yaml:"tracing_service" mapstructure:"tracing_service" validate:"required_if=Tracing true"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "default"
	}
	if c.TracingService == "" {
		c.TracingService = c.Name
	}
}

// Validate checks the provider configuration.
func (c *Config) Validate() error {
	if err := config.ValidateStruct(c); err != nil {
		return fmt.Errorf("config.provider: %w", err)
	}
	return nil
}

// NewFromConfig builds a registry whose providers are wrapped with the
// middleware enabled in cfg. Options are applied after the configured ones.
func NewFromConfig(cfg Config, opts ...Option) (*Registry, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.Get("provider").WithFields(map[string]interface{}{"registry": cfg.Name})
	base := []Option{WithLogger(log)}

	var mw []Middleware
	if cfg.Tracing {
		mw = append(mw, WithTracing(cfg.TracingService))
	}
	if cfg.Metrics {
		metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			return nil, fmt.Errorf("creating provider metrics: %w", err)
		}
		mw = append(mw, WithMetrics(metrics))
		base = append(base, WithCacheMetrics(metrics))
	}
	if cfg.LogCalls {
		mw = append(mw, WithLogging(log))
	}
	if len(mw) > 0 {
		base = append(base, WithMiddleware(mw...))
	}

	return NewRegistry(append(base, opts...)...), nil
}
