package provider

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/dataprovider/data"
	"github.com/kbukum/dataprovider/observability"
)

// WithTracing returns a Middleware that creates an OpenTelemetry span
// around each Get, Offer and Remove.
func WithTracing(serviceName string) Middleware {
	return func(inner DataProvider) DataProvider {
		return &tracingProvider{wrapped: wrapped{inner: inner}, serviceName: serviceName}
	}
}

type tracingProvider struct {
	wrapped
	serviceName string
}

func (t *tracingProvider) start(ctx context.Context, op, spanName string, holder data.Holder) (context.Context, *observability.OperationContext, trace.Span) {
	oc := observability.NewOperationContext(t.serviceName, op, t.inner.Key().Name(), holderTypeName(holder), nil)
	ctx, span := oc.StartSpanForOperation(ctx, spanName)
	return ctx, oc, span
}

func (t *tracingProvider) Get(ctx context.Context, holder data.Holder) (any, bool, error) {
	ctx, oc, span := t.start(ctx, "get", observability.SpanProviderGet, holder)
	element, ok, err := t.inner.Get(ctx, holder)
	observability.SetSpanAttribute(ctx, observability.AttrPresent, ok)
	oc.EndOperation(ctx, span, status(err), err)
	return element, ok, err
}

func (t *tracingProvider) Offer(ctx context.Context, holder data.Holder, element any) (data.Result, error) {
	ctx, oc, span := t.start(ctx, "offer", observability.SpanProviderOffer, holder)
	result, err := t.inner.Offer(ctx, holder, element)
	observability.SetSpanAttribute(ctx, observability.AttrResultType, result.Type.String())
	oc.EndOperation(ctx, span, status(err), err)
	return result, err
}

func (t *tracingProvider) Remove(ctx context.Context, holder data.Holder) (data.Result, error) {
	ctx, oc, span := t.start(ctx, "remove", observability.SpanProviderRemove, holder)
	result, err := t.inner.Remove(ctx, holder)
	observability.SetSpanAttribute(ctx, observability.AttrResultType, result.Type.String())
	oc.EndOperation(ctx, span, status(err), err)
	return result, err
}
