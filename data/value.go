package data

import "fmt"

// Value is an immutable element bound to its key.
type Value struct {
	key     *Key
	element any
}

// NewValue binds element to key without type checking.
func NewValue(key *Key, element any) Value {
	return Value{key: key, element: element}
}

// Key returns the key of the value.
func (v Value) Key() *Key { return v.key }

// Element returns the stored element.
func (v Value) Element() any { return v.element }

func (v Value) String() string {
	if v.key == nil {
		return fmt.Sprintf("%v", v.element)
	}
	return fmt.Sprintf("%s=%v", v.key.Name(), v.element)
}
