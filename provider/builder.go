package provider

import (
	"context"

	"github.com/kbukum/dataprovider/data"
)

// Builder assembles a DataProvider for key from plain functions over a
// concrete holder type H.
//
//	health := data.NewKey[float64]("health")
//	provider.Default().MustRegister(provider.For[*Player](health).
//	    HolderType(PlayerType).
//	    Get(func(p *Player) (float64, bool) { return p.health, true }).
//	    Set(func(p *Player, v float64) bool { p.health = v; return true }).
//	    Build())
type Builder[H data.Holder, E any] struct {
	key        data.TypedKey[E]
	holderType *data.HolderType
	get        func(context.Context, H) (E, bool, error)
	set        func(H, E) bool
	del        func(H) bool
	supports   func(H) bool
}

// For starts a builder for key on holders of Go type H.
func For[H data.Holder, E any](key data.TypedKey[E]) *Builder[H, E] {
	return &Builder[H, E]{key: key}
}

// HolderType declares the holder type the provider applies to. The
// registry uses it to leave the provider out of unrelated lookups.
func (b *Builder[H, E]) HolderType(t *data.HolderType) *Builder[H, E] {
	b.holderType = t
	return b
}

func (b *Builder[H, E]) Get(fn func(H) (E, bool)) *Builder[H, E] {
	b.get = func(_ context.Context, h H) (E, bool, error) {
		v, ok := fn(h)
		return v, ok, nil
	}
	return b
}

// GetErr is like Get for getters that can fail.
func (b *Builder[H, E]) GetErr(fn func(context.Context, H) (E, bool, error)) *Builder[H, E] {
	b.get = fn
	return b
}

func (b *Builder[H, E]) Set(fn func(H, E) bool) *Builder[H, E] {
	b.set = fn
	return b
}

func (b *Builder[H, E]) Delete(fn func(H) bool) *Builder[H, E] {
	b.del = fn
	return b
}

// Supports adds a per-holder check on top of the Go type and holder type
// checks.
func (b *Builder[H, E]) Supports(fn func(H) bool) *Builder[H, E] {
	b.supports = fn
	return b
}

// Build returns the provider. The builder may be reused afterwards.
func (b *Builder[H, E]) Build() DataProvider {
	return &builtProvider[H, E]{
		key:        b.key,
		holderType: b.holderType,
		get:        b.get,
		set:        b.set,
		del:        b.del,
		supports:   b.supports,
	}
}

type builtProvider[H data.Holder, E any] struct {
	key        data.TypedKey[E]
	holderType *data.HolderType
	get        func(context.Context, H) (E, bool, error)
	set        func(H, E) bool
	del        func(H) bool
	supports   func(H) bool
}

func (p *builtProvider[H, E]) Key() *data.Key { return p.key.Key }

func (p *builtProvider[H, E]) KnownHolderType() *data.HolderType { return p.holderType }

func (p *builtProvider[H, E]) IsSupported(holder data.Holder) bool {
	_, ok := p.holder(holder)
	return ok
}

// holder converts holder to H when this provider supports it.
func (p *builtProvider[H, E]) holder(holder data.Holder) (H, bool) {
	h, ok := holder.(H)
	if !ok {
		return h, false
	}
	if p.holderType != nil && !p.holderType.IsAssignableFrom(holder.HolderType()) {
		return h, false
	}
	if p.supports != nil && !p.supports(h) {
		return h, false
	}
	return h, true
}

func (p *builtProvider[H, E]) Get(ctx context.Context, holder data.Holder) (any, bool, error) {
	h, ok := p.holder(holder)
	if !ok || p.get == nil {
		return nil, false, nil
	}
	v, ok, err := p.get(ctx, h)
	if err != nil || !ok {
		return nil, false, err
	}
	return v, true, nil
}

func (p *builtProvider[H, E]) Offer(ctx context.Context, holder data.Holder, element any) (data.Result, error) {
	value, ok := element.(E)
	if !ok {
		return data.FailResult(data.NewValue(p.key.Key, element)), nil
	}
	proposed := p.key.Value(value)

	h, ok := p.holder(holder)
	if !ok || p.set == nil {
		return data.FailResult(proposed), nil
	}
	old, hadOld, err := p.current(ctx, h)
	if err != nil {
		return data.Result{Type: data.ResultError, Rejected: []data.Value{proposed}}, err
	}
	if !p.set(h, value) {
		return data.FailResult(proposed), nil
	}
	if hadOld {
		return data.SuccessResult(proposed, old), nil
	}
	return data.SuccessResult(proposed), nil
}

func (p *builtProvider[H, E]) Remove(ctx context.Context, holder data.Holder) (data.Result, error) {
	h, ok := p.holder(holder)
	if !ok || p.del == nil {
		return data.FailNoData(), nil
	}
	old, hadOld, err := p.current(ctx, h)
	if err != nil {
		return data.Result{Type: data.ResultError}, err
	}
	if !p.del(h) {
		return data.FailNoData(), nil
	}
	if hadOld {
		return data.SuccessRemove(old), nil
	}
	return data.SuccessNoData(), nil
}

func (p *builtProvider[H, E]) current(ctx context.Context, h H) (data.Value, bool, error) {
	if p.get == nil {
		return data.Value{}, false, nil
	}
	v, ok, err := p.get(ctx, h)
	if err != nil || !ok {
		return data.Value{}, false, err
	}
	return p.key.Value(v), true, nil
}
