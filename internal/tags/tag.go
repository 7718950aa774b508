// Package tags parses the spread struct tag.
//
//	Planet string `spread:"name=planet,default=Earth"`
//	Note   string `spread:"note,optional"`
//	cache  string `spread:"-"`
package tags

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName default struct tag name
const TagName = "spread"

// Tag represents spread field tag
type Tag struct {
	Name       string
	Default    string
	HasDefault bool
	Optional   bool
	Ignore     bool
}

func (t *Tag) update(key string, value string, first bool) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "default":
		t.Default = value
		t.HasDefault = true
	case "optional", "omitempty":
		t.Optional = true
	case "-", "ignore", "transient":
		t.Ignore = true
	default:
		if first && value == "" {
			t.Name = key
			return nil
		}
		return fmt.Errorf("unsupported %v tag key: %q", TagName, key)
	}
	return nil
}

// Parse parses tag for supplied tag name, TagName is used when name is empty
func Parse(tag reflect.StructTag, name string) (*Tag, error) {
	if name == "" {
		name = TagName
	}
	ret := &Tag{}
	encoded, ok := tag.Lookup(name)
	if !ok {
		return ret, nil
	}
	if strings.TrimSpace(encoded) == "-" {
		ret.Ignore = true
		return ret, nil
	}
	for i, elem := range split(encoded) {
		if err := ret.update(elem.key, elem.value, i == 0); err != nil {
			return nil, fmt.Errorf("invalid tag %s:%q: %w", name, encoded, err)
		}
	}
	return ret, nil
}
