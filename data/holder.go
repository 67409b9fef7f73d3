package data

// HolderType tags a category of subject that providers act upon. Holder
// types form a hierarchy; a type may have several parents.
type HolderType struct {
	name    string
	parents []*HolderType
}

// AnyHolder is the root of every holder type hierarchy.
var AnyHolder = &HolderType{name: "any"}

// NewHolderType creates a holder type that descends from parents, or from
// AnyHolder when no parent is given.
func NewHolderType(name string, parents ...*HolderType) *HolderType {
	ps := make([]*HolderType, 0, len(parents))
	for _, p := range parents {
		if p != nil {
			ps = append(ps, p)
		}
	}
	if len(ps) == 0 {
		ps = append(ps, AnyHolder)
	}
	return &HolderType{name: name, parents: ps}
}

// Name returns the holder type name.
func (t *HolderType) Name() string { return t.name }

// Parents returns a copy of the direct parents.
func (t *HolderType) Parents() []*HolderType {
	return append([]*HolderType(nil), t.parents...)
}

// IsAssignableFrom reports whether other is t or one of its descendants.
func (t *HolderType) IsAssignableFrom(other *HolderType) bool {
	if t == nil || other == nil {
		return false
	}
	if t == AnyHolder || t == other {
		return true
	}
	for _, p := range other.parents {
		if t.IsAssignableFrom(p) {
			return true
		}
	}
	return false
}

func (t *HolderType) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// Holder is a subject whose attributes are read and written through
// providers.
type Holder interface {
	HolderType() *HolderType
}
