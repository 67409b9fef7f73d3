package provider

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/kbukum/dataprovider/data"
	"github.com/kbukum/dataprovider/errors"
	"github.com/kbukum/dataprovider/logger"
	"github.com/kbukum/dataprovider/observability"
)

// state is one generation of the registry. The candidate table is never
// mutated after publication; registration publishes a new state with empty
// caches.
type state struct {
	// candidates maps *data.Key to []DataProvider in key registration order.
	candidates *linkedhashmap.Map
	// resolved maps resolveKey to DataProvider.
	resolved sync.Map
	// lookups maps *data.HolderType to *Lookup.
	lookups sync.Map
}

type resolveKey struct {
	holderType *data.HolderType
	key        *data.Key
}

func (s *state) candidatesOf(key *data.Key) []DataProvider {
	v, ok := s.candidates.Get(key)
	if !ok {
		return nil
	}
	return v.([]DataProvider)
}

func (s *state) keys() []*data.Key {
	raw := s.candidates.Keys()
	keys := make([]*data.Key, len(raw))
	for i, k := range raw {
		keys[i] = k.(*data.Key)
	}
	return keys
}

// Stats is a point-in-time view of registry activity.
type Stats struct {
	Keys                int    `json:"keys"`
	Registrations       uint64 `json:"registrations"`
	ProviderCacheHits   uint64 `json:"provider_cache_hits"`
	ProviderCacheMisses uint64 `json:"provider_cache_misses"`
	LookupCacheHits     uint64 `json:"lookup_cache_hits"`
	LookupCacheMisses   uint64 `json:"lookup_cache_misses"`
}

// Registry holds every registered DataProvider and memoizes how they
// resolve per key and holder type.
//
// Reads never block: they load the current state atomically. Register
// serializes writers and swaps in a new state, which drops every cached
// resolution at once.
type Registry struct {
	mu    sync.Mutex
	state atomic.Pointer[state]

	middleware []Middleware
	log        *logger.Logger
	metrics    *observability.Metrics

	registrations atomic.Uint64
	providerHits  atomic.Uint64
	providerMiss  atomic.Uint64
	lookupHits    atomic.Uint64
	lookupMiss    atomic.Uint64
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{log: logger.Get("provider")}
	for _, opt := range opts {
		opt(r)
	}
	r.state.Store(&state{candidates: linkedhashmap.New()})
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry { return NewRegistry() })

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry() }

// Register appends p to the candidates of its key and invalidates every
// cached resolution. Registering the same provider twice is allowed.
func (r *Registry) Register(p DataProvider) error {
	if p == nil {
		return errors.InvalidProvider("provider is nil")
	}
	key := p.Key()
	if key == nil {
		return errors.InvalidProvider("provider has no key")
	}
	if key.Name() == "" {
		return errors.InvalidProvider("provider key has no name")
	}

	for i := len(r.middleware) - 1; i >= 0; i-- {
		p = r.middleware[i](p)
	}

	r.mu.Lock()
	old := r.state.Load()
	next := &state{candidates: linkedhashmap.New()}
	old.candidates.Each(func(k, v interface{}) {
		next.candidates.Put(k, v)
	})
	existing := old.candidatesOf(key)
	// Full slice expression so append never writes into the old state.
	next.candidates.Put(key, append(existing[:len(existing):len(existing)], p))
	r.state.Store(next)
	r.mu.Unlock()

	r.registrations.Add(1)
	if r.metrics != nil {
		r.metrics.RecordRegistration(context.Background(), key.Name())
	}
	r.log.Debug("Data provider registered", map[string]interface{}{
		logger.FieldKey:        key.Name(),
		logger.FieldHolderType: KnownHolderType(p).String(),
		logger.FieldCandidates: len(existing) + 1,
	})
	return nil
}

// MustRegister is like Register but panics on an invalid provider.
func (r *Registry) MustRegister(p DataProvider) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Provider resolves key without holder type filtering.
func (r *Registry) Provider(key *data.Key) DataProvider {
	return r.ProviderFor(key, data.AnyHolder)
}

// ProviderFor resolves key for holders of type holderType. Candidates
// declaring a holder type that is not assignable from holderType are left
// out. The result is cached: until the next registration the same instance
// is returned. A nil holderType is treated as data.AnyHolder.
func (r *Registry) ProviderFor(key *data.Key, holderType *data.HolderType) DataProvider {
	if holderType == nil {
		holderType = data.AnyHolder
	}
	s := r.state.Load()
	return r.resolve(s, key, holderType)
}

func (r *Registry) resolve(s *state, key *data.Key, holderType *data.HolderType) DataProvider {
	rk := resolveKey{holderType: holderType, key: key}
	if p, ok := s.resolved.Load(rk); ok {
		r.providerHits.Add(1)
		r.recordCache(observability.CacheProvider, true)
		return p.(DataProvider)
	}
	r.providerMiss.Add(1)
	r.recordCache(observability.CacheProvider, false)

	candidates := filter(s.candidatesOf(key), func(p DataProvider) bool {
		return appliesTo(p, holderType)
	})
	p, _ := s.resolved.LoadOrStore(rk, compose(key, candidates))
	return p.(DataProvider)
}

// Lookup returns the cached snapshot of every key resolved for holderType.
// Keys with no applicable provider are left out.
func (r *Registry) Lookup(holderType *data.HolderType) *Lookup {
	if holderType == nil {
		holderType = data.AnyHolder
	}
	s := r.state.Load()
	if l, ok := s.lookups.Load(holderType); ok {
		r.lookupHits.Add(1)
		r.recordCache(observability.CacheLookup, true)
		return l.(*Lookup)
	}
	r.lookupMiss.Add(1)
	r.recordCache(observability.CacheLookup, false)

	keys := make([]*data.Key, 0, s.candidates.Size())
	providers := make(map[*data.Key]DataProvider, s.candidates.Size())
	for _, key := range s.keys() {
		p := r.resolve(s, key, holderType)
		if IsEmpty(p) {
			continue
		}
		keys = append(keys, key)
		providers[key] = p
	}

	l, _ := s.lookups.LoadOrStore(holderType, newLookup(keys, providers))
	r.log.Debug("Provider lookup built", map[string]interface{}{
		logger.FieldHolderType: holderType.String(),
		"keys":                 len(keys),
	})
	return l.(*Lookup)
}

// AllProviders returns the resolved providers of Lookup(holderType).
func (r *Registry) AllProviders(holderType *data.HolderType) []DataProvider {
	return r.Lookup(holderType).AllProviders()
}

// BuildLookup builds an uncached snapshot from the candidates accepted by
// pred. Keys left without candidates resolve to empty providers and stay
// in the snapshot.
func (r *Registry) BuildLookup(pred Predicate) *Lookup {
	s := r.state.Load()
	keys := s.keys()
	providers := make(map[*data.Key]DataProvider, len(keys))
	for _, key := range keys {
		providers[key] = compose(key, filter(s.candidatesOf(key), pred))
	}
	return newLookup(keys, providers)
}

// BuildDelegate composes the candidates of key accepted by pred without
// caching the result.
func (r *Registry) BuildDelegate(key *data.Key, pred Predicate) DataProvider {
	s := r.state.Load()
	return compose(key, filter(s.candidatesOf(key), pred))
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []*data.Key {
	return r.state.Load().keys()
}

// Candidates returns the providers registered for key in registration order.
func (r *Registry) Candidates(key *data.Key) []DataProvider {
	return slices.Clone(r.state.Load().candidatesOf(key))
}

// Stats returns the registry counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Keys:                r.state.Load().candidates.Size(),
		Registrations:       r.registrations.Load(),
		ProviderCacheHits:   r.providerHits.Load(),
		ProviderCacheMisses: r.providerMiss.Load(),
		LookupCacheHits:     r.lookupHits.Load(),
		LookupCacheMisses:   r.lookupMiss.Load(),
	}
}

func (r *Registry) recordCache(cache string, hit bool) {
	if r.metrics != nil {
		r.metrics.RecordCacheLookup(context.Background(), cache, hit)
	}
}
