package provider

import (
	"context"
	"sync/atomic"

	"github.com/kbukum/dataprovider/data"
)

var (
	animalType = data.NewHolderType("animal")
	dogType    = data.NewHolderType("dog", animalType)
	plantType  = data.NewHolderType("plant")

	entityType = data.NewHolderType("entity")
	playerType = data.NewHolderType("player", entityType)
)

type testHolder struct {
	ht *data.HolderType
}

func (h *testHolder) HolderType() *data.HolderType { return h.ht }

// fakeProvider is a scripted DataProvider.
type fakeProvider struct {
	name       string
	key        *data.Key
	holderType *data.HolderType
	value      any
	present    bool
	supported  bool
	err        error
	offers     atomic.Int32
	gets       atomic.Int32
}

func newFake(name string, key *data.Key) *fakeProvider {
	return &fakeProvider{name: name, key: key, supported: true}
}

func (f *fakeProvider) withType(ht *data.HolderType) *fakeProvider {
	f.holderType = ht
	return f
}

func (f *fakeProvider) withValue(v any) *fakeProvider {
	f.value, f.present = v, true
	return f
}

func (f *fakeProvider) unsupported() *fakeProvider {
	f.supported = false
	return f
}

func (f *fakeProvider) Key() *data.Key { return f.key }

func (f *fakeProvider) KnownHolderType() *data.HolderType { return f.holderType }

func (f *fakeProvider) IsSupported(data.Holder) bool { return f.supported }

func (f *fakeProvider) Get(context.Context, data.Holder) (any, bool, error) {
	f.gets.Add(1)
	if f.err != nil {
		return nil, false, f.err
	}
	return f.value, f.present, nil
}

func (f *fakeProvider) Offer(_ context.Context, _ data.Holder, element any) (data.Result, error) {
	f.offers.Add(1)
	if f.err != nil {
		return data.Result{Type: data.ResultError}, f.err
	}
	return data.SuccessResult(data.NewValue(f.key, element)), nil
}

func (f *fakeProvider) Remove(context.Context, data.Holder) (data.Result, error) {
	if f.err != nil {
		return data.Result{Type: data.ResultError}, f.err
	}
	return data.SuccessRemove(data.NewValue(f.key, f.value)), nil
}

// untypedProvider declares no holder type at all.
type untypedProvider struct {
	key *data.Key
}

func (u *untypedProvider) Key() *data.Key               { return u.key }
func (u *untypedProvider) IsSupported(data.Holder) bool { return true }
func (u *untypedProvider) Get(context.Context, data.Holder) (any, bool, error) {
	return "untyped", true, nil
}
func (u *untypedProvider) Offer(context.Context, data.Holder, any) (data.Result, error) {
	return data.SuccessNoData(), nil
}
func (u *untypedProvider) Remove(context.Context, data.Holder) (data.Result, error) {
	return data.SuccessNoData(), nil
}
