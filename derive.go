package spread

import (
	"fmt"
	"github.com/viant/spread/internal/cache"
	"github.com/viant/spread/internal/tags"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"unsafe"
)

// TagName defines struct tag used by derived shapes
const TagName = tags.TagName

type derivedKey struct {
	rType      reflect.Type
	tagName    string
	caseFormat text.CaseFormat
}

var derivedShapes = cache.New[derivedKey, interface{}]()

// ShapeOf returns a shape derived from struct T exported fields, in declaration order.
//
// Mapping keys come from the spread tag name, or the Go field name formatted with the
// configured case format (lowerCamel by default). Fields tagged spread:"-", unexported
// fields and the presence marker holder are not part of the shape.
// Derived shapes are cached per type and options.
func ShapeOf[T any](opts ...ShapeOption) (*Shape[T], error) {
	options := newShapeOptions(opts)
	rType := reflect.TypeOf((*T)(nil)).Elem()
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported shape type: %s, expected struct", rType.String())
	}
	key := derivedKey{rType: rType, tagName: options.tagName, caseFormat: options.caseFormat}
	shape, err := derivedShapes.GetOrCreate(key, func() (interface{}, error) {
		return deriveShape[T](rType, options)
	})
	if err != nil {
		return nil, err
	}
	return shape.(*Shape[T]), nil
}

// MustShapeOf returns a derived shape or panics
func MustShapeOf[T any](opts ...ShapeOption) *Shape[T] {
	ret, err := ShapeOf[T](opts...)
	if err != nil {
		panic(err)
	}
	return ret
}

func deriveShape[T any](rType reflect.Type, options *shapeOptions) (*Shape[T], error) {
	xStruct := xunsafe.NewStruct(rType)
	var fields []*Field[T]
	var goNames []string
	var holder *reflect.StructField
	for i := range xStruct.Fields {
		xField := &xStruct.Fields[i]
		structField := rType.Field(i)
		if IsSetMarker(structField.Tag) {
			holder = &structField
			continue
		}
		if !structField.IsExported() {
			continue
		}
		tag, err := tags.Parse(structField.Tag, options.tagName)
		if err != nil {
			return nil, fmt.Errorf("invalid %s field '%s': %w", rType.String(), structField.Name, err)
		}
		if tag.Ignore {
			continue
		}
		name := tag.Name
		if name == "" {
			name = options.formatName(structField.Name)
		}
		field := &Field[T]{name: name, rType: structField.Type, get: fieldGetter[T](xField), set: fieldSetter[T](xField)}
		switch {
		case tag.HasDefault:
			value, ok := convertValue(reflect.ValueOf(tag.Default), structField.Type)
			if !ok {
				return nil, fmt.Errorf("invalid %s field '%s': unsupported default %q for %s", rType.String(), structField.Name, tag.Default, structField.Type.String())
			}
			field.defaultValue, field.hasDefault = value, true
		case tag.Optional:
			field.hasDefault = true
		}
		fields = append(fields, field)
		goNames = append(goNames, structField.Name)
	}
	ret, err := newShape(rType, fields)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		if ret.marker, err = newMarker(rType, *holder, goNames); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (o *shapeOptions) formatName(fieldName string) string {
	if o.caseFormat == "" {
		return fieldName
	}
	if fieldName == "ID" {
		switch o.caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, o.caseFormat)
}

// isScalar reports kinds that xunsafe reads and writes by value
func isScalar(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func fieldGetter[T any](xField *xunsafe.Field) func(record *T) (interface{}, error) {
	if !isScalar(xField.Type.Kind()) {
		return func(record *T) (interface{}, error) {
			//Interface() on an addressed struct or array copies it out of the record
			return reflect.NewAt(xField.Type, xField.Pointer(unsafe.Pointer(record))).Elem().Interface(), nil
		}
	}
	return func(record *T) (interface{}, error) {
		return xField.Value(unsafe.Pointer(record)), nil
	}
}

func fieldSetter[T any](xField *xunsafe.Field) func(record *T, value interface{}) error {
	scalar := isScalar(xField.Type.Kind())
	return func(record *T, value interface{}) error {
		ptr := unsafe.Pointer(record)
		if value != nil && xField.Type.Kind() != reflect.Interface && reflect.TypeOf(value) != xField.Type {
			return &FieldError{Field: xField.Name, Reason: Mismatch, Expected: xField.Type, Actual: reflect.TypeOf(value)}
		}
		if scalar && value != nil {
			xField.SetValue(ptr, value)
			return nil
		}
		target := reflect.NewAt(xField.Type, xField.Pointer(ptr)).Elem()
		if value == nil {
			target.Set(reflect.Zero(xField.Type))
			return nil
		}
		target.Set(reflect.ValueOf(value))
		return nil
	}
}
