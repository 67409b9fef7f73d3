package provider

import (
	"context"
	"slices"

	"github.com/kbukum/dataprovider/data"
)

// delegateProvider tries several providers of the same key in
// registration order.
type delegateProvider struct {
	key       *data.Key
	providers []DataProvider
}

func newDelegateProvider(key *data.Key, providers []DataProvider) *delegateProvider {
	return &delegateProvider{key: key, providers: slices.Clone(providers)}
}

func (d *delegateProvider) Key() *data.Key { return d.key }

// Providers returns the delegated providers in order.
func (d *delegateProvider) Providers() []DataProvider {
	return slices.Clone(d.providers)
}

func (d *delegateProvider) IsSupported(holder data.Holder) bool {
	for _, p := range d.providers {
		if p.IsSupported(holder) {
			return true
		}
	}
	return false
}

// Get returns the first present value. A provider error ends the search.
func (d *delegateProvider) Get(ctx context.Context, holder data.Holder) (any, bool, error) {
	for _, p := range d.providers {
		element, ok, err := p.Get(ctx, holder)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return element, true, nil
		}
	}
	return nil, false, nil
}

func (d *delegateProvider) Offer(ctx context.Context, holder data.Holder, element any) (data.Result, error) {
	if p := d.supporting(holder); p != nil {
		return p.Offer(ctx, holder, element)
	}
	return data.FailNoData(), nil
}

func (d *delegateProvider) Remove(ctx context.Context, holder data.Holder) (data.Result, error) {
	if p := d.supporting(holder); p != nil {
		return p.Remove(ctx, holder)
	}
	return data.FailNoData(), nil
}

func (d *delegateProvider) supporting(holder data.Holder) DataProvider {
	for _, p := range d.providers {
		if p.IsSupported(holder) {
			return p
		}
	}
	return nil
}

// Delegated returns the providers behind p: the delegated list for a
// composite, nothing for an empty provider and p itself otherwise.
func Delegated(p DataProvider) []DataProvider {
	switch v := p.(type) {
	case *delegateProvider:
		return v.Providers()
	case *emptyProvider:
		return nil
	default:
		return []DataProvider{p}
	}
}
