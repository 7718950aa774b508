package spread

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// assign returns value ready to be set on a field of target type and true,
// or false when value is incompatible with target
func assign(value interface{}, target reflect.Type, convert bool) (interface{}, bool) {
	if value == nil {
		return nil, isNillable(target)
	}
	srcType := reflect.TypeOf(value)
	if srcType == target {
		return value, true
	}
	if srcType.AssignableTo(target) {
		if target.Kind() == reflect.Interface {
			return value, true
		}
		return reflect.ValueOf(value).Convert(target).Interface(), true
	}
	if !convert {
		return nil, false
	}
	return convertValue(reflect.ValueOf(value), target)
}

func isNillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func convertValue(src reflect.Value, target reflect.Type) (interface{}, bool) {
	dest := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, ok := asInt(src)
		if !ok || dest.OverflowInt(v) {
			return nil, false
		}
		dest.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, ok := asUint(src)
		if !ok || dest.OverflowUint(v) {
			return nil, false
		}
		dest.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, ok := asFloat(src)
		if !ok || dest.OverflowFloat(v) {
			return nil, false
		}
		dest.SetFloat(v)
	case reflect.Bool:
		switch src.Kind() {
		case reflect.Bool:
			dest.SetBool(src.Bool())
		case reflect.String:
			v, err := strconv.ParseBool(strings.TrimSpace(src.String()))
			if err != nil {
				return nil, false
			}
			dest.SetBool(v)
		default:
			return nil, false
		}
	case reflect.String:
		if src.Kind() != reflect.String {
			return nil, false
		}
		dest.SetString(src.String())
	default:
		return nil, false
	}
	return dest.Interface(), true
}

func asInt(src reflect.Value) (int64, bool) {
	switch src.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return src.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := src.Uint()
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case reflect.Float32, reflect.Float64:
		f := src.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case reflect.String:
		v, err := strconv.ParseInt(strings.TrimSpace(src.String()), 0, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

func asUint(src reflect.Value) (uint64, bool) {
	switch src.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := src.Int()
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return src.Uint(), true
	case reflect.Float32, reflect.Float64:
		f := src.Float()
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return 0, false
		}
		return uint64(f), true
	case reflect.String:
		v, err := strconv.ParseUint(strings.TrimSpace(src.String()), 0, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

func asFloat(src reflect.Value) (float64, bool) {
	switch src.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(src.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(src.Uint()), true
	case reflect.Float32, reflect.Float64:
		return src.Float(), true
	case reflect.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(src.String()), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
