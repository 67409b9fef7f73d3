package provider

import (
	"context"

	"github.com/kbukum/dataprovider/data"
	"github.com/kbukum/dataprovider/errors"
)

// Resolver finds the provider for a key on a particular holder.
// *Registry and *Lookup implement it.
type Resolver interface {
	Resolve(key *data.Key, holder data.Holder) DataProvider
}

// Resolve returns ProviderFor(key, holder.HolderType()).
func (r *Registry) Resolve(key *data.Key, holder data.Holder) DataProvider {
	var ht *data.HolderType
	if holder != nil {
		ht = holder.HolderType()
	}
	return r.ProviderFor(key, ht)
}

// Resolve returns Provider(key); the holder type was fixed when the
// lookup was built.
func (l *Lookup) Resolve(key *data.Key, _ data.Holder) DataProvider {
	return l.Provider(key)
}

// GetValue reads key from holder. A present value that is not an E is
// reported as an INVALID_VALUE_TYPE error.
func GetValue[E any](ctx context.Context, r Resolver, holder data.Holder, key data.TypedKey[E]) (E, bool, error) {
	var zero E
	element, ok, err := r.Resolve(key.Key, holder).Get(ctx, holder)
	if err != nil || !ok {
		return zero, false, err
	}
	v, ok := element.(E)
	if !ok {
		return zero, false, errors.InvalidValueType(key.Name(), key.ElementType().String(), element)
	}
	return v, true, nil
}

// OfferValue sets key on holder.
func OfferValue[E any](ctx context.Context, r Resolver, holder data.Holder, key data.TypedKey[E], value E) (data.Result, error) {
	return r.Resolve(key.Key, holder).Offer(ctx, holder, value)
}

// RemoveValue removes key from holder.
func RemoveValue(ctx context.Context, r Resolver, holder data.Holder, key *data.Key) (data.Result, error) {
	return r.Resolve(key, holder).Remove(ctx, holder)
}
