package provider

import (
	"context"

	"github.com/kbukum/dataprovider/data"
)

// emptyProvider stands in for a key with no applicable provider.
type emptyProvider struct {
	key *data.Key
}

func newEmptyProvider(key *data.Key) *emptyProvider {
	return &emptyProvider{key: key}
}

func (e *emptyProvider) Key() *data.Key { return e.key }

func (e *emptyProvider) IsSupported(data.Holder) bool { return false }

func (e *emptyProvider) Get(context.Context, data.Holder) (any, bool, error) {
	return nil, false, nil
}

func (e *emptyProvider) Offer(context.Context, data.Holder, any) (data.Result, error) {
	return data.FailNoData(), nil
}

func (e *emptyProvider) Remove(context.Context, data.Holder) (data.Result, error) {
	return data.FailNoData(), nil
}

// IsEmpty reports whether p is the stand-in returned for keys without an
// applicable provider.
func IsEmpty(p DataProvider) bool {
	_, ok := p.(*emptyProvider)
	return ok
}
