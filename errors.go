package spread

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	//ErrMissingKey reports bound property without backing mapping key
	ErrMissingKey = errors.New("key was missing in mapping")
	//ErrTypeMismatch reports bound property value of unexpected type
	ErrTypeMismatch = errors.New("value type mismatch")
)

// Reason describes why a field could not be bound
type Reason int

const (
	//Missing required field had no mapping key and no default
	Missing Reason = iota + 1
	//Mismatch value type was incompatible with the field type
	Mismatch
	//Unknown mapping key did not match any field, reported in strict mode only
	Unknown
)

func (r Reason) String() string {
	switch r {
	case Missing:
		return "missing"
	case Mismatch:
		return "mismatch"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

type (
	// FieldError represents a single field binding failure
	FieldError struct {
		Field    string
		Reason   Reason
		Expected reflect.Type
		Actual   reflect.Type
	}

	// ConstructionError aggregates every field that prevented a record from being built
	ConstructionError struct {
		Shape  string
		Fields []*FieldError
	}
)

func (e *FieldError) Error() string {
	switch e.Reason {
	case Missing:
		return fmt.Sprintf("field '%s' (%s) was missing", e.Field, typeName(e.Expected))
	case Mismatch:
		return fmt.Sprintf("field '%s' expected %s but had %s", e.Field, typeName(e.Expected), typeName(e.Actual))
	case Unknown:
		return fmt.Sprintf("key '%s' (%s) did not match any field", e.Field, typeName(e.Actual))
	}
	return fmt.Sprintf("field '%s': %s", e.Field, e.Reason)
}

func (e *ConstructionError) Error() string {
	builder := strings.Builder{}
	builder.WriteString("failed to build ")
	builder.WriteString(e.Shape)
	builder.WriteString(": ")
	for i, field := range e.Fields {
		if i > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(field.Error())
	}
	return builder.String()
}

// Names returns offending field names in report order
func (e *ConstructionError) Names() []string {
	ret := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		ret = append(ret, field.Field)
	}
	return ret
}

// Lookup returns field error for supplied name or nil
func (e *ConstructionError) Lookup(name string) *FieldError {
	for _, field := range e.Fields {
		if field.Field == name {
			return field
		}
	}
	return nil
}

// Unwrap returns individual field errors
func (e *ConstructionError) Unwrap() []error {
	ret := make([]error, 0, len(e.Fields))
	for _, field := range e.Fields {
		ret = append(ret, field)
	}
	return ret
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
