// Package observability provides OpenTelemetry tracing and metrics for the
// data provider registry.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, cfg.Telemetry.TracerConfig("registry", "1.0.0", "dev"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanProviderGet)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, cfg.Telemetry.MeterConfig("registry", "1.0.0", "dev"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("registry"))
//	metrics.RecordCacheLookup(ctx, observability.CacheProvider, true)
//
// Health Checks:
//
//	health := observability.NewServiceHealth("registry", "1.0.0")
//	health.AddComponent(checker.CheckHealth(ctx))
package observability
