package spread

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Build creates a record of supplied shape from mapping values.
//
// Fields are bound in declaration order by same-named mapping keys; a field without a key
// takes its default, or is reported missing. Values of incompatible type are reported as
// mismatch. All offending fields are returned in a single *ConstructionError.
// The mapping is not retained, later mapping changes do not affect the returned record.
func Build[T any](shape *Shape[T], values *Mapping, opts ...BuildOption) (T, error) {
	var record T
	if shape == nil {
		return record, fmt.Errorf("failed to build %T: shape was nil", record)
	}
	options := newBuildOptions(opts)
	var failures []*FieldError
	var bound []bool
	if shape.marker != nil {
		bound = make([]bool, len(shape.fields))
	}
	for i, field := range shape.fields {
		value, ok := values.Lookup(field.name)
		if !ok {
			if !field.hasDefault {
				failures = append(failures, &FieldError{Field: field.name, Reason: Missing, Expected: field.rType})
				continue
			}
			value = field.defaultValue
		} else {
			assigned, ok := assign(value, field.rType, options.convert)
			if !ok {
				failures = append(failures, &FieldError{Field: field.name, Reason: Mismatch, Expected: field.rType, Actual: reflect.TypeOf(value)})
				continue
			}
			value = assigned
			if bound != nil {
				bound[i] = true
			}
		}
		if err := field.set(&record, value); err != nil {
			failures = append(failures, asFieldError(field, value, err))
		}
	}
	if options.strictKeys {
		values.Range(func(key string, value interface{}) bool {
			if _, ok := shape.index[key]; !ok {
				failures = append(failures, &FieldError{Field: key, Reason: Unknown, Actual: reflect.TypeOf(value)})
			}
			return true
		})
	}
	if len(failures) > 0 {
		var zero T
		return zero, &ConstructionError{Shape: shape.name, Fields: failures}
	}
	if shape.marker != nil {
		ptr := unsafe.Pointer(&record)
		shape.marker.EnsureHolder(ptr)
		for i, flag := range bound {
			if !shape.marker.Tracked(i) {
				continue
			}
			if err := shape.marker.Set(ptr, i, flag); err != nil {
				var zero T
				return zero, fmt.Errorf("failed to build %s: %w", shape.name, err)
			}
		}
	}
	return record, nil
}

func asFieldError[T any](field *Field[T], value interface{}, err error) *FieldError {
	if fieldErr, ok := err.(*FieldError); ok {
		fieldErr.Field = field.name
		return fieldErr
	}
	return &FieldError{Field: field.name, Reason: Mismatch, Expected: field.rType, Actual: reflect.TypeOf(value)}
}

// ToMapping returns a snapshot of record fields in shape declaration order.
//
// Only shape fields are emitted. When record carries a non nil presence marker holder,
// fields flagged as unset are skipped. Accessor errors are returned as is.
func ToMapping[T any](shape *Shape[T], record *T) (*Mapping, error) {
	if shape == nil {
		return nil, fmt.Errorf("failed to extract %T: shape was nil", record)
	}
	if record == nil {
		return nil, fmt.Errorf("failed to extract %s: record was nil", shape.name)
	}
	ret := newMapping(len(shape.fields))
	ptr := unsafe.Pointer(record)
	usePresence := shape.marker != nil && shape.marker.CanUseHolder(ptr)
	for i, field := range shape.fields {
		if usePresence && !shape.marker.IsSet(ptr, i) {
			continue
		}
		value, err := field.get(record)
		if err != nil {
			return nil, err
		}
		ret.Set(field.name, value)
	}
	return ret, nil
}
