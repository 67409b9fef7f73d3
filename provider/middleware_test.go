package provider

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/dataprovider/data"
	"github.com/kbukum/dataprovider/logger"
	"github.com/kbukum/dataprovider/observability"
)

func TestChainOrder(t *testing.T) {
	var calls []string
	trace := func(name string) Middleware {
		return func(inner DataProvider) DataProvider {
			calls = append(calls, name)
			return inner
		}
	}
	key := data.NewKey[int]("k")
	Chain(trace("a"), trace("b"), trace("c"))(newFake("p", key.Key))
	assert.Equal(t, []string{"c", "b", "a"}, calls)
}

func TestWrappersForwardIdentity(t *testing.T) {
	key := data.NewKey[int]("k")
	inner := newFake("p", key.Key).withType(dogType).unsupported()
	m, _ := newTestMetrics(t)

	for name, mw := range map[string]Middleware{
		"logging": WithLogging(logger.Nop()),
		"metrics": WithMetrics(m),
		"tracing": WithTracing("test"),
	} {
		t.Run(name, func(t *testing.T) {
			p := mw(inner)
			assert.Same(t, key.Key, p.Key())
			assert.Same(t, dogType, KnownHolderType(p))
			assert.False(t, p.IsSupported(&testHolder{ht: dogType}))
			assert.Same(t, inner, p.(interface{ Unwrap() DataProvider }).Unwrap())
		})
	}
}

func TestWrappedProvidersStillFilterByHolderType(t *testing.T) {
	key := data.NewKey[int]("k")
	r := NewRegistry(WithMiddleware(WithLogging(logger.Nop())))
	r.MustRegister(newFake("dogs", key.Key).withType(dogType))

	assert.True(t, IsEmpty(r.ProviderFor(key.Key, plantType)))
	assert.False(t, IsEmpty(r.ProviderFor(key.Key, dogType)))
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)
	key := data.NewKey[string]("name")
	ctx := context.Background()
	holder := &testHolder{ht: dogType}

	p := WithLogging(log)(newFake("p", key.Key).withValue("rex"))
	v, ok, err := p.Get(ctx, holder)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "rex", v)

	failing := newFake("f", key.Key)
	failing.err = stderrors.New("boom")
	_, err = WithLogging(log)(failing).Offer(ctx, holder, "x")
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "debug", first["level"])
	assert.Equal(t, "name", first[logger.FieldKey])
	assert.Equal(t, "dog", first[logger.FieldHolderType])
	assert.Equal(t, "get", first[logger.FieldOperation])
	assert.Equal(t, true, first["present"])

	assert.Equal(t, "error", second["level"])
	assert.Equal(t, "boom", second[logger.FieldError])
	assert.Equal(t, "error", second["result"])
}

func newTestMetrics(t *testing.T) (*observability.Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := observability.NewMetrics(mp.Meter("provider-test"))
	require.NoError(t, err)
	return m, reader
}

func counterTotal(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "unexpected data type %T", m.Data)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestWithMetrics(t *testing.T) {
	m, reader := newTestMetrics(t)
	key := data.NewKey[int]("k")
	ctx := context.Background()
	holder := &testHolder{ht: dogType}

	p := WithMetrics(m)(newFake("p", key.Key).withValue(1))
	_, _, _ = p.Get(ctx, holder)
	_, _ = p.Offer(ctx, holder, 2)
	_, _ = p.Remove(ctx, holder)

	failing := newFake("f", key.Key)
	failing.err = stderrors.New("boom")
	_, _, _ = WithMetrics(m)(failing).Get(ctx, holder)

	assert.Equal(t, int64(4), counterTotal(t, reader, "provider.operation.total"))
	assert.Equal(t, int64(1), counterTotal(t, reader, "provider.error.total"))
}

func TestCacheMetrics(t *testing.T) {
	m, reader := newTestMetrics(t)
	key := data.NewKey[int]("k")
	r := NewRegistry(WithCacheMetrics(m))
	r.MustRegister(newFake("p", key.Key))
	r.Provider(key.Key)
	r.Provider(key.Key)
	r.Lookup(dogType)

	assert.Equal(t, int64(1), counterTotal(t, reader, "registry.registration.total"))
	// Two provider lookups, one lookup miss and the provider miss it causes.
	assert.Equal(t, int64(4), counterTotal(t, reader, "registry.cache.lookup.total"))
}

func TestWithTracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	key := data.NewKey[int]("k")
	ctx := context.Background()
	holder := &testHolder{ht: dogType}
	p := WithTracing("game")(newFake("p", key.Key).withValue(3))

	_, _, err := p.Get(ctx, holder)
	require.NoError(t, err)
	_, err = p.Offer(ctx, holder, 4)
	require.NoError(t, err)
	_, err = p.Remove(ctx, holder)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, observability.SpanProviderGet, spans[0].Name())
	assert.Equal(t, observability.SpanProviderOffer, spans[1].Name())
	assert.Equal(t, observability.SpanProviderRemove, spans[2].Name())

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "game", attrs[observability.AttrServiceName])
	assert.Equal(t, "k", attrs[observability.AttrDataKey])
	assert.Equal(t, "dog", attrs[observability.AttrHolderType])
	assert.Equal(t, "true", attrs[observability.AttrPresent])
	assert.Equal(t, "ok", attrs[observability.AttrStatus])
}
