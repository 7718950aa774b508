package spread

import (
	"fmt"
	"reflect"
)

type (
	// Field describes a single named record field: its declared type, accessor, mutator and optional default
	Field[T any] struct {
		name         string
		rType        reflect.Type
		get          func(record *T) (interface{}, error)
		set          func(record *T, value interface{}) error
		defaultValue interface{}
		hasDefault   bool
	}

	// Shape represents an ordered, immutable set of record fields
	Shape[T any] struct {
		name   string
		rType  reflect.Type
		fields []*Field[T]
		index  map[string]int
		marker *Marker
	}
)

// NewField creates a field descriptor for supplied accessor and mutator
func NewField[T, V any](name string, get func(record *T) V, set func(record *T, value V), opts ...FieldOption) *Field[T] {
	return NewCheckedField[T, V](name, func(record *T) (V, error) {
		return get(record), nil
	}, set, opts...)
}

// NewCheckedField creates a field descriptor with an accessor that can fail
func NewCheckedField[T, V any](name string, get func(record *T) (V, error), set func(record *T, value V), opts ...FieldOption) *Field[T] {
	options := newFieldOptions(opts)
	rType := reflect.TypeOf((*V)(nil)).Elem()
	return &Field[T]{
		name:  name,
		rType: rType,
		get: func(record *T) (interface{}, error) {
			value, err := get(record)
			if err != nil {
				return nil, err
			}
			return value, nil
		},
		set: func(record *T, value interface{}) error {
			if value == nil {
				var zero V
				set(record, zero)
				return nil
			}
			actual, ok := value.(V)
			if !ok {
				return &FieldError{Field: name, Reason: Mismatch, Expected: rType, Actual: reflect.TypeOf(value)}
			}
			set(record, actual)
			return nil
		},
		defaultValue: options.defaultValue,
		hasDefault:   options.hasDefault,
	}
}

// Name returns field name used as mapping key
func (f *Field[T]) Name() string {
	return f.name
}

// Type returns field declared type
func (f *Field[T]) Type() reflect.Type {
	return f.rType
}

// Required returns true if field has no default
func (f *Field[T]) Required() bool {
	return !f.hasDefault
}

// Default returns field default and true if defined
func (f *Field[T]) Default() (interface{}, bool) {
	return f.defaultValue, f.hasDefault
}

// Value returns field value of supplied record
func (f *Field[T]) Value(record *T) (interface{}, error) {
	return f.get(record)
}

// NewShape creates a shape for supplied field descriptors, field order is the declaration order
func NewShape[T any](fields ...*Field[T]) (*Shape[T], error) {
	rType := reflect.TypeOf((*T)(nil)).Elem()
	return newShape(rType, fields)
}

// MustShape creates a shape or panics, intended for package level shape registration
func MustShape[T any](fields ...*Field[T]) *Shape[T] {
	ret, err := NewShape(fields...)
	if err != nil {
		panic(err)
	}
	return ret
}

func newShape[T any](rType reflect.Type, fields []*Field[T]) (*Shape[T], error) {
	name := rType.Name()
	if name == "" {
		name = rType.String()
	}
	ret := &Shape[T]{name: name, rType: rType, fields: make([]*Field[T], 0, len(fields)), index: make(map[string]int, len(fields))}
	for _, field := range fields {
		if field == nil {
			return nil, fmt.Errorf("invalid %s shape: field was nil", name)
		}
		if field.name == "" {
			return nil, fmt.Errorf("invalid %s shape: field name was empty", name)
		}
		if _, ok := ret.index[field.name]; ok {
			return nil, fmt.Errorf("invalid %s shape: duplicate field '%s'", name, field.name)
		}
		if field.hasDefault && field.defaultValue != nil {
			value, ok := assign(field.defaultValue, field.rType, false)
			if !ok {
				return nil, fmt.Errorf("invalid %s shape: field '%s' default %T is not assignable to %s", name, field.name, field.defaultValue, field.rType.String())
			}
			field.defaultValue = value
		}
		ret.index[field.name] = len(ret.fields)
		ret.fields = append(ret.fields, field)
	}
	return ret, nil
}

// Name returns shape name
func (s *Shape[T]) Name() string {
	return s.name
}

// Type returns record type
func (s *Shape[T]) Type() reflect.Type {
	return s.rType
}

// Len returns number of fields
func (s *Shape[T]) Len() int {
	return len(s.fields)
}

// Fields returns fields in declaration order
func (s *Shape[T]) Fields() []*Field[T] {
	return append([]*Field[T]{}, s.fields...)
}

// Names returns field names in declaration order
func (s *Shape[T]) Names() []string {
	ret := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		ret = append(ret, field.name)
	}
	return ret
}

// Lookup returns field for supplied name or nil
func (s *Shape[T]) Lookup(name string) *Field[T] {
	index, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.fields[index]
}

// Marker returns presence marker or nil
func (s *Shape[T]) Marker() *Marker {
	return s.marker
}

// Build builds a record from supplied mapping
func (s *Shape[T]) Build(values *Mapping, opts ...BuildOption) (T, error) {
	return Build(s, values, opts...)
}

// ToMapping extracts record fields into a new mapping
func (s *Shape[T]) ToMapping(record *T) (*Mapping, error) {
	return ToMapping(s, record)
}
