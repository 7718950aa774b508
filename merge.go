package spread

import "reflect"

// Merge returns a new mapping with the union of supplied mappings keys.
// On key collision the rightmost mapping wins; first seen key position is kept.
// Nil mappings are skipped and no input is modified.
func Merge(mappings ...*Mapping) *Mapping {
	size := 0
	for _, m := range mappings {
		size += m.Len()
	}
	ret := newMapping(size)
	for _, m := range mappings {
		m.Range(func(key string, value interface{}) bool {
			ret.Set(key, value)
			return true
		})
	}
	return ret
}

// Extractor represents a record that can spread its public fields into a mapping
type Extractor interface {
	ToMapping() (*Mapping, error)
}

// Spread extracts supplied sources and merges them left to right, nil sources
// including typed nil pointers are skipped
func Spread(sources ...Extractor) (*Mapping, error) {
	mappings := make([]*Mapping, 0, len(sources))
	for _, source := range sources {
		if isNilSource(source) {
			continue
		}
		m, err := source.ToMapping()
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return Merge(mappings...), nil
}

func isNilSource(source Extractor) bool {
	if source == nil {
		return true
	}
	value := reflect.ValueOf(source)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return value.IsNil()
	}
	return false
}

// Compose merges supplied parts left to right and builds target record from the result
func Compose[T any](target *Shape[T], parts ...*Mapping) (T, error) {
	return Build(target, Merge(parts...))
}
