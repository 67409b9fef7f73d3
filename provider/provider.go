package provider

import (
	"context"

	"github.com/kbukum/dataprovider/data"
)

// DataProvider reads and writes the value of one key on data holders.
//
// Absence is not an error: Get reports a missing value with ok == false,
// and Offer/Remove report unsupported holders through the returned Result.
// The error return is reserved for failures of the provider itself.
type DataProvider interface {
	// Key returns the key this provider serves.
	Key() *data.Key
	// IsSupported reports whether the provider can act on holder.
	IsSupported(holder data.Holder) bool
	// Get returns the current value of the key on holder.
	Get(ctx context.Context, holder data.Holder) (element any, ok bool, err error)
	// Offer sets the value of the key on holder.
	Offer(ctx context.Context, holder data.Holder, element any) (data.Result, error)
	// Remove removes the value of the key from holder.
	Remove(ctx context.Context, holder data.Holder) (data.Result, error)
}

// HolderTyped is optionally implemented by providers that only apply to
// one holder type and its descendants. A nil return means the provider
// declares no holder type.
type HolderTyped interface {
	KnownHolderType() *data.HolderType
}

// KnownHolderType returns the holder type declared by p, or nil.
func KnownHolderType(p DataProvider) *data.HolderType {
	if ht, ok := p.(HolderTyped); ok {
		return ht.KnownHolderType()
	}
	return nil
}

// Predicate selects candidate providers.
type Predicate func(DataProvider) bool

// appliesTo reports whether p may serve holders of type ht. Providers
// without a declared holder type apply everywhere, and a request for
// data.AnyHolder does not filter.
func appliesTo(p DataProvider, ht *data.HolderType) bool {
	if ht == data.AnyHolder {
		return true
	}
	known := KnownHolderType(p)
	return known == nil || known.IsAssignableFrom(ht)
}

// compose resolves the candidates of key into a single provider.
func compose(key *data.Key, candidates []DataProvider) DataProvider {
	switch len(candidates) {
	case 0:
		return newEmptyProvider(key)
	case 1:
		return candidates[0]
	default:
		return newDelegateProvider(key, candidates)
	}
}

func filter(candidates []DataProvider, pred Predicate) []DataProvider {
	out := make([]DataProvider, 0, len(candidates))
	for _, c := range candidates {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}
