package provider

import (
	"context"
	"time"

	"github.com/kbukum/dataprovider/data"
	"github.com/kbukum/dataprovider/observability"
)

// WithMetrics returns a Middleware that records operation count, duration
// and errors per key using observability.Metrics.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(inner DataProvider) DataProvider {
		return &metricsProvider{wrapped: wrapped{inner: inner}, metrics: metrics}
	}
}

type metricsProvider struct {
	wrapped
	metrics *observability.Metrics
}

func (m *metricsProvider) Get(ctx context.Context, holder data.Holder) (any, bool, error) {
	start := time.Now()
	element, ok, err := m.inner.Get(ctx, holder)
	m.record(ctx, "get", time.Since(start), err)
	return element, ok, err
}

func (m *metricsProvider) Offer(ctx context.Context, holder data.Holder, element any) (data.Result, error) {
	start := time.Now()
	result, err := m.inner.Offer(ctx, holder, element)
	m.record(ctx, "offer", time.Since(start), err)
	return result, err
}

func (m *metricsProvider) Remove(ctx context.Context, holder data.Holder) (data.Result, error) {
	start := time.Now()
	result, err := m.inner.Remove(ctx, holder)
	m.record(ctx, "remove", time.Since(start), err)
	return result, err
}

func (m *metricsProvider) record(ctx context.Context, op string, d time.Duration, err error) {
	name := m.inner.Key().Name()
	if err != nil {
		m.metrics.RecordError(ctx, op, name)
	}
	m.metrics.RecordOperation(ctx, name, op, status(err), d)
}
