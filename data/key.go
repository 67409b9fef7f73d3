package data

import (
	"fmt"
	"reflect"
)

// Key identifies one typed attribute. Keys compare by identity: two keys
// created with the same name are still different keys.
type Key struct {
	name        string
	elementType reflect.Type
}

// NewKey creates a key whose values hold elements of type E.
func NewKey[E any](name string) TypedKey[E] {
	return TypedKey[E]{Key: &Key{
		name:        name,
		elementType: reflect.TypeFor[E](),
	}}
}

// Name returns the key name.
func (k *Key) Name() string { return k.name }

// ElementType returns the Go type of the elements stored under this key.
func (k *Key) ElementType() reflect.Type { return k.elementType }

// Accepts reports whether element can be stored under this key.
func (k *Key) Accepts(element any) bool {
	if element == nil || k.elementType == nil {
		return false
	}
	return reflect.TypeOf(element).AssignableTo(k.elementType)
}

// Valid reports whether the key is usable for registration.
func (k *Key) Valid() bool {
	return k != nil && k.name != "" && k.elementType != nil
}

func (k *Key) String() string {
	if k == nil {
		return "Key(<nil>)"
	}
	return fmt.Sprintf("Key(%s: %s)", k.name, k.elementType)
}

// TypedKey carries the element type of a Key at compile time.
type TypedKey[E any] struct {
	*Key
}

// Value wraps element as a Value of this key.
func (k TypedKey[E]) Value(element E) Value {
	return Value{key: k.Key, element: element}
}
