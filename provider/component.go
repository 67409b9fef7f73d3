package provider

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kbukum/dataprovider/component"
	"github.com/kbukum/dataprovider/logger"
)

// Component exposes a Registry to the application lifecycle.
type Component struct {
	name     string
	registry *Registry
}

var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent wraps registry as a lifecycle component named "provider".
func NewComponent(registry *Registry) *Component {
	return &Component{name: "provider", registry: registry}
}

// Registry returns the wrapped registry.
func (c *Component) Registry() *Registry { return c.registry }

func (c *Component) Name() string { return c.name }

// Start logs the registered keys; registration itself happens before start.
func (c *Component) Start(ctx context.Context) error {
	stats := c.registry.Stats()
	log := c.registry.log.WithContext(ctx)
	log.Info("Data provider registry ready", map[string]interface{}{
		"keys":          stats.Keys,
		"registrations": stats.Registrations,
	})
	c.logKeys(log)
	return nil
}

func (c *Component) Stop(context.Context) error { return nil }

// Health reports degraded while no provider is registered.
func (c *Component) Health(context.Context) component.Health {
	stats := c.registry.Stats()
	h := component.Health{
		Name:   c.name,
		Status: component.StatusHealthy,
		Details: map[string]string{
			"keys":                  strconv.Itoa(stats.Keys),
			"registrations":         strconv.FormatUint(stats.Registrations, 10),
			"provider_cache_hits":   strconv.FormatUint(stats.ProviderCacheHits, 10),
			"provider_cache_misses": strconv.FormatUint(stats.ProviderCacheMisses, 10),
		},
	}
	if stats.Keys == 0 {
		h.Status = component.StatusDegraded
		h.Message = "no data providers registered"
	}
	return h
}

func (c *Component) Describe() component.Description {
	stats := c.registry.Stats()
	return component.Description{
		Name:    "Data Provider Registry",
		Type:    "registry",
		Details: fmt.Sprintf("keys=%d registrations=%d", stats.Keys, stats.Registrations),
	}
}

// logKeys writes one debug line per registered key.
func (c *Component) logKeys(log *logger.Logger) {
	for _, k := range c.registry.Keys() {
		log.Debug("Registered key", map[string]interface{}{
			logger.FieldKey:        k.Name(),
			logger.FieldCandidates: len(c.registry.Candidates(k)),
		})
	}
}
