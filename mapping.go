package spread

import (
	"fmt"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"reflect"
	"sort"
	"strings"
)

type (
	//Entry represents mapping key/value pair
	Entry struct {
		Key   string
		Value interface{}
	}

	// Mapping represents field name to value association.
	// Keys are unique and keep insertion order; re-setting a key keeps its position.
	// Mapping is not safe for concurrent use.
	Mapping struct {
		entries *orderedmap.OrderedMap[string, interface{}]
	}
)

func newMapping(capacity int) *Mapping {
	return &Mapping{entries: orderedmap.New[string, interface{}](capacity)}
}

// Pair creates a mapping entry
func Pair(key string, value interface{}) Entry {
	return Entry{Key: key, Value: value}
}

// NewMapping creates a mapping with supplied entries, later entries override earlier ones
func NewMapping(entries ...Entry) *Mapping {
	ret := newMapping(len(entries))
	for _, entry := range entries {
		ret.Set(entry.Key, entry.Value)
	}
	return ret
}

// FromMap creates a mapping from a map, keys are sorted to keep the order deterministic
func FromMap(aMap map[string]interface{}) *Mapping {
	keys := make([]string, 0, len(aMap))
	for k := range aMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ret := newMapping(len(aMap))
	for _, k := range keys {
		ret.entries.Set(k, aMap[k])
	}
	return ret
}

// Set sets value for supplied key
func (m *Mapping) Set(key string, value interface{}) *Mapping {
	if m.entries == nil {
		m.entries = orderedmap.New[string, interface{}]()
	}
	m.entries.Set(key, value)
	return m
}

// Lookup returns value and true if key exists
func (m *Mapping) Lookup(key string) (interface{}, bool) {
	if m == nil || m.entries == nil {
		return nil, false
	}
	return m.entries.Get(key)
}

// Get returns value for supplied key or nil
func (m *Mapping) Get(key string) interface{} {
	value, _ := m.Lookup(key)
	return value
}

// Has returns true if key exists
func (m *Mapping) Has(key string) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Delete removes supplied key, returns true if key existed
func (m *Mapping) Delete(key string) bool {
	if m == nil || m.entries == nil {
		return false
	}
	_, ok := m.entries.Delete(key)
	return ok
}

// Len returns number of entries
func (m *Mapping) Len() int {
	if m == nil || m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// Keys returns keys in insertion order
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	ret := make([]string, 0, m.Len())
	m.Range(func(key string, _ interface{}) bool {
		ret = append(ret, key)
		return true
	})
	return ret
}

// Range calls fn for each entry in insertion order until fn returns false
func (m *Mapping) Range(fn func(key string, value interface{}) bool) {
	if m == nil || m.entries == nil {
		return
	}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Entries returns entries in insertion order
func (m *Mapping) Entries() []Entry {
	ret := make([]Entry, 0, m.Len())
	m.Range(func(key string, value interface{}) bool {
		ret = append(ret, Entry{Key: key, Value: value})
		return true
	})
	return ret
}

// Clone returns a shallow copy, values are shared, keys are not
func (m *Mapping) Clone() *Mapping {
	ret := newMapping(m.Len())
	m.Range(func(key string, value interface{}) bool {
		ret.entries.Set(key, value)
		return true
	})
	return ret
}

// AsMap returns a detached map copy
func (m *Mapping) AsMap() map[string]interface{} {
	ret := make(map[string]interface{}, m.Len())
	m.Range(func(key string, value interface{}) bool {
		ret[key] = value
		return true
	})
	return ret
}

// Equal returns true if both mappings hold the same key/value pairs, order is ignored
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	m.Range(func(key string, value interface{}) bool {
		candidate, ok := other.Lookup(key)
		if !ok || !reflect.DeepEqual(value, candidate) {
			equal = false
		}
		return equal
	})
	return equal
}

// String returns debug representation in insertion order
func (m *Mapping) String() string {
	builder := strings.Builder{}
	builder.WriteString("{")
	i := 0
	m.Range(func(key string, value interface{}) bool {
		if i > 0 {
			builder.WriteString(", ")
		}
		i++
		builder.WriteString(key)
		builder.WriteString(": ")
		switch actual := value.(type) {
		case string:
			builder.WriteString(fmt.Sprintf("%q", actual))
		default:
			builder.WriteString(fmt.Sprintf("%v", actual))
		}
		return true
	})
	builder.WriteString("}")
	return builder.String()
}
