package bootstrap

import (
	"github.com/kbukum/dataprovider/config"
	"github.com/kbukum/dataprovider/observability"
	"github.com/kbukum/dataprovider/provider"
)

// Config is the application configuration loaded by config.LoadConfig.
//
// Example file:
//
//	name: game-data
//	environment: production
//	logging:
//	  level: info
//	  format: json
//	provider:
//	  log_calls: false
//	  metrics: true
//	telemetry:
//	  enabled: true
//	  endpoint: otel-collector:4318
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Provider             provider.Config      `yaml:"provider" mapstructure:"provider"`
	Telemetry            observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults applies defaults to every section. The provider registry
// is named after the service unless configured otherwise.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Provider.Name == "" {
		c.Provider.Name = c.Name
	}
	c.Provider.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Provider.Validate(); err != nil {
		return err
	}
	return c.Telemetry.Validate()
}

// Load reads the configuration of serviceName and applies defaults.
func Load(serviceName string, opts ...config.LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
