package provider

import (
	"slices"
	"sync"

	"github.com/kbukum/dataprovider/data"
)

// Lookup is an immutable snapshot of resolved providers, one per key.
// Hand it to hot paths instead of querying the Registry repeatedly.
type Lookup struct {
	keys      []*data.Key
	providers map[*data.Key]DataProvider
	// empties caches stand-ins for keys absent from the snapshot.
	empties sync.Map
}

func newLookup(keys []*data.Key, providers map[*data.Key]DataProvider) *Lookup {
	return &Lookup{keys: keys, providers: providers}
}

// AllProviders returns the resolved providers in key registration order.
func (l *Lookup) AllProviders() []DataProvider {
	out := make([]DataProvider, 0, len(l.keys))
	for _, k := range l.keys {
		out = append(out, l.providers[k])
	}
	return out
}

// Provider returns the provider for key. Keys absent from the snapshot
// resolve to an empty provider, which is created once per key and lookup.
func (l *Lookup) Provider(key *data.Key) DataProvider {
	if p, ok := l.providers[key]; ok {
		return p
	}
	if p, ok := l.empties.Load(key); ok {
		return p.(DataProvider)
	}
	p, _ := l.empties.LoadOrStore(key, newEmptyProvider(key))
	return p.(DataProvider)
}

// Len returns the number of keys in the snapshot.
func (l *Lookup) Len() int { return len(l.keys) }

// Keys returns the keys of the snapshot in registration order.
func (l *Lookup) Keys() []*data.Key { return slices.Clone(l.keys) }
