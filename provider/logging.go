package provider

import (
	"context"
	"time"

	"github.com/kbukum/dataprovider/data"
	"github.com/kbukum/dataprovider/logger"
)

// WithLogging returns a Middleware that logs each Get, Offer and Remove.
// Successful calls log at debug level, failures at error level.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner DataProvider) DataProvider {
		return &loggingProvider{wrapped: wrapped{inner: inner}, log: log}
	}
}

type loggingProvider struct {
	wrapped
	log *logger.Logger
}

func (l *loggingProvider) Get(ctx context.Context, holder data.Holder) (any, bool, error) {
	start := time.Now()
	element, ok, err := l.inner.Get(ctx, holder)
	fields := l.fields("get", holder, time.Since(start))
	fields["present"] = ok
	l.emit(ctx, "get", fields, err)
	return element, ok, err
}

func (l *loggingProvider) Offer(ctx context.Context, holder data.Holder, element any) (data.Result, error) {
	start := time.Now()
	result, err := l.inner.Offer(ctx, holder, element)
	fields := l.fields("offer", holder, time.Since(start))
	fields["result"] = result.Type.String()
	l.emit(ctx, "offer", fields, err)
	return result, err
}

func (l *loggingProvider) Remove(ctx context.Context, holder data.Holder) (data.Result, error) {
	start := time.Now()
	result, err := l.inner.Remove(ctx, holder)
	fields := l.fields("remove", holder, time.Since(start))
	fields["result"] = result.Type.String()
	l.emit(ctx, "remove", fields, err)
	return result, err
}

func (l *loggingProvider) fields(op string, holder data.Holder, d time.Duration) map[string]interface{} {
	fields := logger.DurationFields(op, d)
	fields[logger.FieldKey] = l.inner.Key().Name()
	fields[logger.FieldHolderType] = holderTypeName(holder)
	return fields
}

func (l *loggingProvider) emit(ctx context.Context, op string, fields map[string]interface{}, err error) {
	log := l.log.WithContext(ctx)
	if err != nil {
		fields[logger.FieldError] = err.Error()
		log.Error("data provider "+op+" failed", fields)
		return
	}
	log.Debug("data provider "+op+" ok", fields)
}
