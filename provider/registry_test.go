package provider

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/dataprovider/data"
	"github.com/kbukum/dataprovider/errors"
)

func TestRegisterRejectsMalformedProviders(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		p    DataProvider
	}{
		{"nil provider", nil},
		{"nil key", newFake("p", nil)},
		{"empty key name", newFake("p", data.NewKey[int]("").Key)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := r.Register(tc.p)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidProvider), "got %v", err)
		})
	}
	assert.Empty(t, r.Keys())
	assert.Panics(t, func() { r.MustRegister(nil) })
}

func TestProviderComposition(t *testing.T) {
	key := data.NewKey[int]("level")

	t.Run("no candidates resolves to empty provider", func(t *testing.T) {
		r := NewRegistry()
		p := r.Provider(key.Key)
		assert.True(t, IsEmpty(p))
		assert.Same(t, key.Key, p.Key())
	})

	t.Run("single candidate is returned as is", func(t *testing.T) {
		r := NewRegistry()
		c := newFake("c", key.Key)
		r.MustRegister(c)
		assert.Same(t, c, r.Provider(key.Key))
	})

	t.Run("several candidates compose a delegate in registration order", func(t *testing.T) {
		r := NewRegistry()
		c1, c2, c3 := newFake("c1", key.Key), newFake("c2", key.Key), newFake("c3", key.Key)
		r.MustRegister(c1)
		r.MustRegister(c2)
		r.MustRegister(c3)

		got := Delegated(r.Provider(key.Key))
		require.Len(t, got, 3)
		assert.Same(t, c1, got[0])
		assert.Same(t, c2, got[1])
		assert.Same(t, c3, got[2])
	})

	t.Run("duplicate registration is kept", func(t *testing.T) {
		r := NewRegistry()
		c := newFake("c", key.Key)
		r.MustRegister(c)
		r.MustRegister(c)
		assert.Len(t, Delegated(r.Provider(key.Key)), 2)
		assert.Len(t, r.Keys(), 1)
	})
}

func TestProviderForIsMemoized(t *testing.T) {
	key := data.NewKey[string]("name")
	r := NewRegistry()
	r.MustRegister(newFake("a", key.Key))
	r.MustRegister(newFake("b", key.Key))

	first := r.ProviderFor(key.Key, dogType)
	second := r.ProviderFor(key.Key, dogType)
	assert.Same(t, first, second)

	// Provider(key) and ProviderFor(key, AnyHolder) share the cache entry.
	assert.Same(t, r.Provider(key.Key), r.ProviderFor(key.Key, data.AnyHolder))
	assert.Same(t, r.Provider(key.Key), r.ProviderFor(key.Key, nil))

	empty := data.NewKey[string]("missing")
	assert.Same(t, r.Provider(empty.Key), r.Provider(empty.Key))
}

func TestRegisterInvalidatesCaches(t *testing.T) {
	key := data.NewKey[int]("age")
	other := data.NewKey[int]("weight")
	r := NewRegistry()
	c1 := newFake("c1", key.Key)
	r.MustRegister(c1)

	before := r.ProviderFor(key.Key, animalType)
	beforeOther := r.Provider(other.Key)
	beforeLookup := r.Lookup(animalType)
	assert.Same(t, c1, before)
	assert.Equal(t, 1, beforeLookup.Len())

	c2 := newFake("c2", key.Key)
	r.MustRegister(c2)

	after := r.ProviderFor(key.Key, animalType)
	assert.NotSame(t, before, after)
	assert.Equal(t, []DataProvider{c1, c2}, Delegated(after))

	// Every cache entry is dropped, including unrelated keys.
	assert.NotSame(t, beforeOther, r.Provider(other.Key))
	assert.NotSame(t, beforeLookup, r.Lookup(animalType))
}

func TestHolderTypeFiltering(t *testing.T) {
	key := data.NewKey[bool]("hungry")
	r := NewRegistry()
	forAnimals := newFake("animal", key.Key).withType(animalType)
	r.MustRegister(forAnimals)

	assert.True(t, IsEmpty(r.ProviderFor(key.Key, plantType)))
	assert.Same(t, forAnimals, r.ProviderFor(key.Key, animalType))
	assert.Same(t, forAnimals, r.ProviderFor(key.Key, dogType))

	untyped := &untypedProvider{key: key.Key}
	r.MustRegister(untyped)
	assert.Same(t, untyped, r.ProviderFor(key.Key, plantType))
	assert.Equal(t, []DataProvider{forAnimals, untyped}, Delegated(r.ProviderFor(key.Key, dogType)))
}

func TestNilKnownHolderTypeIsNotFiltered(t *testing.T) {
	key := data.NewKey[int]("x")
	r := NewRegistry()
	p := newFake("nil-type", key.Key)
	r.MustRegister(p)
	assert.Same(t, p, r.ProviderFor(key.Key, plantType))
}

func TestEntityPlayerScenario(t *testing.T) {
	key := data.NewKey[string]("display_name")
	r := NewRegistry()
	c1 := newFake("c1", key.Key).withType(entityType)
	c2 := newFake("c2", key.Key).withType(playerType)
	r.MustRegister(c1)
	r.MustRegister(c2)

	assert.Equal(t, []DataProvider{c1, c2}, Delegated(r.ProviderFor(key.Key, playerType)))
	assert.Same(t, c1, r.ProviderFor(key.Key, entityType))
	// The most general holder type applies no filtering.
	assert.Equal(t, []DataProvider{c1, c2}, Delegated(r.Provider(key.Key)))
}

func TestLookupExcludesEmptyProviders(t *testing.T) {
	health := data.NewKey[float64]("health")
	bark := data.NewKey[string]("bark")
	petals := data.NewKey[int]("petals")

	r := NewRegistry()
	hp := newFake("health", health.Key)
	bk := newFake("bark", bark.Key).withType(dogType)
	pt := newFake("petals", petals.Key).withType(plantType)
	r.MustRegister(hp)
	r.MustRegister(bk)
	r.MustRegister(pt)

	l := r.Lookup(dogType)
	assert.Equal(t, []DataProvider{hp, bk}, l.AllProviders())
	assert.Equal(t, []*data.Key{health.Key, bark.Key}, l.Keys())
	for _, p := range l.AllProviders() {
		assert.False(t, IsEmpty(p))
	}

	// Keys outside the snapshot resolve to one lazily created empty provider.
	missing := l.Provider(petals.Key)
	assert.True(t, IsEmpty(missing))
	assert.Same(t, missing, l.Provider(petals.Key))
	assert.Same(t, bk, l.Provider(bark.Key))

	assert.Same(t, l, r.Lookup(dogType))
	assert.Equal(t, l.AllProviders(), r.AllProviders(dogType))
}

func TestLookupProvidersAreResolvedInstances(t *testing.T) {
	key := data.NewKey[int]("shared")
	r := NewRegistry()
	r.MustRegister(newFake("a", key.Key))
	r.MustRegister(newFake("b", key.Key))

	l := r.Lookup(animalType)
	assert.Same(t, r.ProviderFor(key.Key, animalType), l.Provider(key.Key))
}

func TestAllProvidersIsACopy(t *testing.T) {
	key := data.NewKey[int]("k")
	r := NewRegistry()
	r.MustRegister(newFake("a", key.Key))

	l := r.Lookup(animalType)
	all := l.AllProviders()
	all[0] = nil
	assert.NotNil(t, l.AllProviders()[0])

	keys := l.Keys()
	keys[0] = nil
	assert.NotNil(t, l.Keys()[0])
}

func TestBuildLookupKeepsEmptyEntries(t *testing.T) {
	a := data.NewKey[int]("a")
	b := data.NewKey[int]("b")
	r := NewRegistry()
	pa := newFake("keep", a.Key)
	r.MustRegister(pa)
	r.MustRegister(newFake("drop", b.Key))

	l := r.BuildLookup(func(p DataProvider) bool { return p.(*fakeProvider).name == "keep" })
	require.Equal(t, 2, l.Len())
	assert.Same(t, pa, l.Provider(a.Key))
	assert.True(t, IsEmpty(l.Provider(b.Key)))
	assert.NotSame(t, l, r.BuildLookup(func(DataProvider) bool { return true }))
}

func TestBuildDelegate(t *testing.T) {
	key := data.NewKey[int]("k")
	r := NewRegistry()
	c1 := newFake("c1", key.Key)
	c2 := newFake("c2", key.Key)
	c3 := newFake("c3", key.Key)
	r.MustRegister(c1)
	r.MustRegister(c2)
	r.MustRegister(c3)

	notTwo := func(p DataProvider) bool { return p != DataProvider(c2) }
	d := r.BuildDelegate(key.Key, notTwo)
	assert.Equal(t, []DataProvider{c1, c3}, Delegated(d))
	assert.NotSame(t, d, r.BuildDelegate(key.Key, notTwo))

	assert.Same(t, c1, r.BuildDelegate(key.Key, func(p DataProvider) bool { return p == DataProvider(c1) }))
	assert.True(t, IsEmpty(r.BuildDelegate(key.Key, func(DataProvider) bool { return false })))
}

func TestKeysAndCandidates(t *testing.T) {
	z := data.NewKey[int]("z")
	a := data.NewKey[int]("a")
	r := NewRegistry()
	cz := newFake("z", z.Key)
	r.MustRegister(cz)
	r.MustRegister(newFake("a", a.Key))
	r.MustRegister(newFake("z2", z.Key))

	assert.Equal(t, []*data.Key{z.Key, a.Key}, r.Keys())

	got := r.Candidates(z.Key)
	require.Len(t, got, 2)
	got[0] = nil
	assert.Same(t, cz, r.Candidates(z.Key)[0])
	assert.Empty(t, r.Candidates(data.NewKey[int]("none").Key))
}

func TestStats(t *testing.T) {
	key := data.NewKey[int]("k")
	r := NewRegistry()
	r.MustRegister(newFake("a", key.Key))

	r.Provider(key.Key)
	r.Provider(key.Key)
	r.Lookup(animalType)
	r.Lookup(animalType)

	s := r.Stats()
	assert.Equal(t, 1, s.Keys)
	assert.Equal(t, uint64(1), s.Registrations)
	assert.Equal(t, uint64(1), s.ProviderCacheHits)
	// One miss for Provider, one while building the animal lookup.
	assert.Equal(t, uint64(2), s.ProviderCacheMisses)
	assert.Equal(t, uint64(1), s.LookupCacheHits)
	assert.Equal(t, uint64(1), s.LookupCacheMisses)
}

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestRegistryMiddlewareAppliedAtRegistration(t *testing.T) {
	key := data.NewKey[int]("k")
	var wrapped []string
	mark := func(name string) Middleware {
		return func(inner DataProvider) DataProvider {
			wrapped = append(wrapped, name)
			return inner
		}
	}
	r := NewRegistry(WithMiddleware(mark("outer"), mark("inner")))
	r.MustRegister(newFake("a", key.Key))

	// Inner middleware wraps first.
	assert.Equal(t, []string{"inner", "outer"}, wrapped)
}

func TestConcurrentResolutionConverges(t *testing.T) {
	key := data.NewKey[int]("k")
	r := NewRegistry()
	r.MustRegister(newFake("a", key.Key))
	r.MustRegister(newFake("b", key.Key))

	const workers = 32
	results := make([]DataProvider, workers)
	lookups := make([]*Lookup, workers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = r.ProviderFor(key.Key, dogType)
			lookups[i] = r.Lookup(dogType)
		}()
	}
	close(start)
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
		assert.Same(t, lookups[0], lookups[i])
	}
}

func TestConcurrentRegisterAndResolve(t *testing.T) {
	r := NewRegistry()
	keys := make([]data.TypedKey[int], 8)
	for i := range keys {
		keys[i] = data.NewKey[int]("k" + string(rune('a'+i)))
	}

	var wg sync.WaitGroup
	for i := range keys {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 50 {
				r.MustRegister(newFake("p", keys[i].Key))
			}
		}()
		go func() {
			defer wg.Done()
			for range 200 {
				r.ProviderFor(keys[i].Key, animalType)
				r.Lookup(animalType).AllProviders()
			}
		}()
	}
	wg.Wait()

	// After the last registration every key sees all of its candidates.
	for _, k := range keys {
		assert.Len(t, Delegated(r.ProviderFor(k.Key, animalType)), 50)
	}
	assert.Equal(t, len(keys), r.Lookup(animalType).Len())
	assert.Equal(t, uint64(len(keys)*50), r.Stats().Registrations)
}
