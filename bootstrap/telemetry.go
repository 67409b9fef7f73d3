package bootstrap

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/dataprovider/component"
	"github.com/kbukum/dataprovider/observability"
	"github.com/kbukum/dataprovider/version"
)

// telemetryComponent owns the OpenTelemetry providers. It is registered
// first so that it starts before, and stops after, every other component.
type telemetryComponent struct {
	cfg         observability.Config
	service     string
	version     string
	environment string

	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

func newTelemetryComponent(cfg *Config) *telemetryComponent {
	return &telemetryComponent{
		cfg:         cfg.Telemetry,
		service:     cfg.Name,
		version:     version.Or(cfg.Version),
		environment: cfg.Environment,
	}
}

func (t *telemetryComponent) Name() string { return "telemetry" }

func (t *telemetryComponent) Start(ctx context.Context) error {
	tp, err := observability.InitTracer(ctx, t.cfg.TracerConfig(t.service, t.version, t.environment))
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	mp, err := observability.InitMeter(ctx, t.cfg.MeterConfig(t.service, t.version, t.environment))
	if err != nil {
		_ = tp.Shutdown(ctx)
		return fmt.Errorf("init meter: %w", err)
	}
	t.tracer, t.meter = tp, mp
	return nil
}

func (t *telemetryComponent) Stop(ctx context.Context) error {
	var errs []error
	if t.meter != nil {
		errs = append(errs, t.meter.Shutdown(ctx))
	}
	if t.tracer != nil {
		errs = append(errs, t.tracer.Shutdown(ctx))
	}
	t.tracer, t.meter = nil, nil
	return errors.Join(errs...)
}

func (t *telemetryComponent) Health(context.Context) component.Health {
	if t.tracer == nil {
		return component.Health{Name: t.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: t.Name(), Status: component.StatusHealthy}
}

func (t *telemetryComponent) Describe() component.Description {
	return component.Description{
		Name:    "OpenTelemetry",
		Type:    "telemetry",
		Details: fmt.Sprintf("%s sample=%.2f", t.cfg.Endpoint, t.cfg.SampleRate),
	}
}
