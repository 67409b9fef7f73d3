package provider

import "github.com/kbukum/dataprovider/data"

// Middleware transforms a DataProvider by wrapping it. The returned
// provider delegates to the wrapped one while adding cross-cutting behavior
// (logging, metrics, tracing, etc.).
type Middleware func(DataProvider) DataProvider

// Chain composes multiple middlewares into one. Middlewares are applied
// in order: the first middleware is outermost (executes first on the
// way in, last on the way out).
//
// Chain(a, b, c)(provider) is equivalent to a(b(c(provider))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner DataProvider) DataProvider {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// wrapped forwards the identity of the inner provider so that wrappers
// resolve and filter exactly like the provider they wrap.
type wrapped struct {
	inner DataProvider
}

func (w wrapped) Key() *data.Key { return w.inner.Key() }

func (w wrapped) IsSupported(holder data.Holder) bool { return w.inner.IsSupported(holder) }

func (w wrapped) KnownHolderType() *data.HolderType { return KnownHolderType(w.inner) }

// Unwrap returns the provider behind a middleware wrapper.
func (w wrapped) Unwrap() DataProvider { return w.inner }

func holderTypeName(holder data.Holder) string {
	if holder == nil {
		return ""
	}
	return holder.HolderType().String()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
