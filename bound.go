package spread

import (
	"fmt"
	"reflect"
)

// Bound represents a record whose properties are backed by a shared mapping.
//
// Reads and writes through Prop accessors go to the mapping itself, so changes made through
// the record are visible in the mapping and vice versa for as long as both are reachable.
// Bound provides no synchronization, callers sharing it across goroutines need to guard
// both the Bound and its mapping.
type Bound struct {
	values *Mapping
}

// Bind creates a bound record backed by supplied mapping, nil allocates an empty mapping
func Bind(values *Mapping) *Bound {
	if values == nil {
		values = NewMapping()
	}
	return &Bound{values: values}
}

// Mapping returns backing mapping, not a copy
func (b *Bound) Mapping() *Mapping {
	return b.values
}

// Snapshot returns a detached copy of the backing mapping restricted to supplied keys,
// all keys are copied when none are supplied; absent keys are skipped
func (b *Bound) Snapshot(keys ...string) *Mapping {
	if len(keys) == 0 {
		return b.values.Clone()
	}
	ret := NewMapping()
	for _, key := range keys {
		if value, ok := b.values.Lookup(key); ok {
			ret.Set(key, value)
		}
	}
	return ret
}

// Prop represents a typed bound property
type Prop[V any] struct {
	name string
}

// NewProp creates a typed property for supplied mapping key
func NewProp[V any](name string) Prop[V] {
	return Prop[V]{name: name}
}

// Name returns property mapping key
func (p Prop[V]) Name() string {
	return p.name
}

// Value returns property value or error when key is missing or value has another type
func (p Prop[V]) Value(b *Bound) (V, error) {
	var zero V
	value, ok := b.values.Lookup(p.name)
	if !ok {
		return zero, fmt.Errorf("property '%s': %w", p.name, ErrMissingKey)
	}
	if value == nil {
		if isNillable(reflect.TypeOf((*V)(nil)).Elem()) {
			return zero, nil
		}
		return zero, fmt.Errorf("property '%s' expected %T but had nil: %w", p.name, zero, ErrTypeMismatch)
	}
	actual, ok := value.(V)
	if !ok {
		return zero, fmt.Errorf("property '%s' expected %s but had %T: %w", p.name, reflect.TypeOf((*V)(nil)).Elem().String(), value, ErrTypeMismatch)
	}
	return actual, nil
}

// Lookup returns property value and true if key exists with compatible value
func (p Prop[V]) Lookup(b *Bound) (V, bool) {
	value, err := p.Value(b)
	return value, err == nil
}

// Get returns property value, or zero value when key is missing or value has another type
func (p Prop[V]) Get(b *Bound) V {
	value, _ := p.Value(b)
	return value
}

// Set writes property value to the backing mapping
func (p Prop[V]) Set(b *Bound, value V) {
	b.values.Set(p.name, value)
}
