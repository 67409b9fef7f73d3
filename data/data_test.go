package data

import (
	"reflect"
	"testing"
)

func TestNewKey(t *testing.T) {
	k := NewKey[int]("level")

	if k.Name() != "level" {
		t.Errorf("expected name 'level', got %q", k.Name())
	}
	if k.ElementType() != reflect.TypeOf(0) {
		t.Errorf("expected element type int, got %v", k.ElementType())
	}
	if !k.Valid() {
		t.Error("expected key to be valid")
	}
}

func TestKeyIdentity(t *testing.T) {
	a := NewKey[string]("name")
	b := NewKey[string]("name")

	if a.Key == b.Key {
		t.Error("keys with the same name must still be distinct")
	}

	m := map[*Key]int{a.Key: 1, b.Key: 2}
	if len(m) != 2 {
		t.Errorf("expected 2 map entries, got %d", len(m))
	}
}

func TestKeyValid(t *testing.T) {
	var nilKey *Key
	tests := []struct {
		name string
		key  *Key
		want bool
	}{
		{"nil key", nilKey, false},
		{"empty name", NewKey[int]("").Key, false},
		{"zero key", &Key{}, false},
		{"valid", NewKey[int]("x").Key, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.key.Valid(); got != tc.want {
				t.Errorf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKeyAccepts(t *testing.T) {
	k := NewKey[int]("count")

	if !k.Accepts(3) {
		t.Error("expected int to be accepted")
	}
	if k.Accepts("3") {
		t.Error("expected string to be rejected")
	}
	if k.Accepts(nil) {
		t.Error("expected nil to be rejected")
	}
}

func TestTypedKeyValue(t *testing.T) {
	k := NewKey[string]("display_name")
	v := k.Value("Steve")

	if v.Key() != k.Key {
		t.Error("value should be bound to its key")
	}
	if v.Element() != "Steve" {
		t.Errorf("expected element 'Steve', got %v", v.Element())
	}
	if v.String() != "display_name=Steve" {
		t.Errorf("unexpected string form %q", v.String())
	}
}

func TestHolderTypeHierarchy(t *testing.T) {
	entity := NewHolderType("entity")
	animal := NewHolderType("animal", entity)
	dog := NewHolderType("dog", animal)
	plant := NewHolderType("plant", entity)
	tamed := NewHolderType("tamed")
	tamedDog := NewHolderType("tamed_dog", dog, tamed)

	tests := []struct {
		name   string
		parent *HolderType
		child  *HolderType
		want   bool
	}{
		{"same type", animal, animal, true},
		{"direct child", animal, dog, true},
		{"grand child", entity, dog, true},
		{"sibling", animal, plant, false},
		{"reverse direction", dog, animal, false},
		{"any holder accepts everything", AnyHolder, dog, true},
		{"any holder accepts itself", AnyHolder, AnyHolder, true},
		{"narrow type not from any", entity, AnyHolder, false},
		{"second parent", tamed, tamedDog, true},
		{"first parent chain", entity, tamedDog, true},
		{"nil other", entity, nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.parent.IsAssignableFrom(tc.child); got != tc.want {
				t.Errorf("%s.IsAssignableFrom(%s) = %v, want %v", tc.parent, tc.child, got, tc.want)
			}
		})
	}
}

func TestNewHolderTypeDefaultsToAnyHolder(t *testing.T) {
	ht := NewHolderType("block", nil)
	parents := ht.Parents()
	if len(parents) != 1 || parents[0] != AnyHolder {
		t.Errorf("expected [any] parents, got %v", parents)
	}
}

func TestResults(t *testing.T) {
	k := NewKey[int]("food")

	ok := SuccessResult(k.Value(20), k.Value(10))
	if !ok.IsSuccessful() {
		t.Error("expected success")
	}
	if len(ok.Replaced) != 1 || ok.Replaced[0].Element() != 10 {
		t.Errorf("expected replaced [10], got %v", ok.Replaced)
	}

	fail := FailNoData()
	if fail.IsSuccessful() || fail.Type != ResultFailure {
		t.Errorf("expected failure, got %s", fail.Type)
	}
	if len(fail.Successful)+len(fail.Replaced)+len(fail.Rejected) != 0 {
		t.Error("FailNoData must not carry values")
	}

	rejected := FailResult(k.Value(-1))
	if len(rejected.Rejected) != 1 {
		t.Errorf("expected one rejected value, got %d", len(rejected.Rejected))
	}

	if SuccessRemove(k.Value(3)).Replaced[0].Element() != 3 {
		t.Error("removed value should be reported as replaced")
	}
}

func TestResultTypeString(t *testing.T) {
	if ResultCancelled.String() != "cancelled" || ResultType(42).String() != "undefined" {
		t.Error("unexpected ResultType strings")
	}
}
