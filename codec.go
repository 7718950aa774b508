package spread

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/francoispqt/gojay"
	"github.com/goccy/go-yaml"
)

// MarshalJSONObject implements gojay.MarshalerJSONObject, keys are written in insertion order
func (m *Mapping) MarshalJSONObject(enc *gojay.Encoder) {
	m.Range(func(key string, value interface{}) bool {
		switch actual := value.(type) {
		case nil:
			enc.AddNullKey(key)
		case string:
			enc.AddStringKey(key, actual)
		case bool:
			enc.AddBoolKey(key, actual)
		case int:
			enc.AddIntKey(key, actual)
		case int64:
			enc.AddInt64Key(key, actual)
		case int32:
			enc.AddInt32Key(key, actual)
		case uint64:
			enc.AddUint64Key(key, actual)
		case float64:
			enc.AddFloat64Key(key, actual)
		case float32:
			enc.AddFloat32Key(key, actual)
		case *Mapping:
			enc.AddObjectKey(key, actual)
		case gojay.MarshalerJSONObject:
			enc.AddObjectKey(key, actual)
		case gojay.MarshalerJSONArray:
			enc.AddArrayKey(key, actual)
		default:
			data, err := json.Marshal(actual)
			if err != nil {
				data, _ = json.Marshal(fmt.Sprintf("%v", actual))
			}
			embedded := gojay.EmbeddedJSON(data)
			enc.AddEmbeddedJSONKey(key, &embedded)
		}
		return true
	})
}

// IsNil implements gojay.MarshalerJSONObject
func (m *Mapping) IsNil() bool {
	return m == nil
}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject, keys are added in document order,
// nested objects are decoded as *Mapping
func (m *Mapping) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	value, err := decodeJSONValue(raw)
	if err != nil {
		return err
	}
	m.Set(key, value)
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject, zero means any number of keys
func (m *Mapping) NKeys() int {
	return 0
}

// MarshalJSON encodes mapping as JSON object in insertion order
func (m *Mapping) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return gojay.MarshalJSONObject(m)
}

// UnmarshalJSON decodes JSON object into mapping, numbers are decoded as float64
func (m *Mapping) UnmarshalJSON(data []byte) error {
	return gojay.UnmarshalJSONObject(data, m)
}

// jsonItems decodes JSON array keeping nested object order
type jsonItems []interface{}

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray
func (j *jsonItems) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	value, err := decodeJSONValue(raw)
	if err != nil {
		return err
	}
	*j = append(*j, value)
	return nil
}

func decodeJSONValue(raw []byte) (interface{}, error) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return nil, nil
	}
	switch data[0] {
	case '{':
		ret := NewMapping()
		if err := gojay.UnmarshalJSONObject(data, ret); err != nil {
			return nil, err
		}
		return ret, nil
	case '[':
		items := jsonItems{}
		if err := gojay.UnmarshalJSONArray(data, &items); err != nil {
			return nil, err
		}
		return []interface{}(items), nil
	}
	dec := gojay.BorrowDecoder(bytes.NewReader(data))
	defer dec.Release()
	var value interface{}
	if err := dec.DecodeInterface(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// MarshalYAML encodes mapping as ordered YAML map
func (m *Mapping) MarshalYAML() (interface{}, error) {
	ret := make(yaml.MapSlice, 0, m.Len())
	m.Range(func(key string, value interface{}) bool {
		if nested, ok := value.(*Mapping); ok {
			value = nested.toMapSlice()
		}
		ret = append(ret, yaml.MapItem{Key: key, Value: value})
		return true
	})
	return ret, nil
}

func (m *Mapping) toMapSlice() yaml.MapSlice {
	ret, _ := m.MarshalYAML()
	return ret.(yaml.MapSlice)
}

// UnmarshalYAML decodes ordered YAML map into mapping, nested maps are decoded as *Mapping
func (m *Mapping) UnmarshalYAML(data []byte) error {
	var items yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &items, yaml.UseOrderedMap()); err != nil {
		return err
	}
	for _, item := range items {
		m.Set(fmt.Sprintf("%v", item.Key), fromYAMLValue(item.Value))
	}
	return nil
}

func fromYAMLValue(value interface{}) interface{} {
	switch actual := value.(type) {
	case yaml.MapSlice:
		ret := NewMapping()
		for _, item := range actual {
			ret.Set(fmt.Sprintf("%v", item.Key), fromYAMLValue(item.Value))
		}
		return ret
	case []interface{}:
		for i, item := range actual {
			actual[i] = fromYAMLValue(item)
		}
	}
	return value
}
