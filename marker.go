package spread

import (
	"fmt"
	"github.com/viant/xunsafe"
	"reflect"
	"strings"
	"unsafe"
)

const (
	//SetMarkerTag defines presence marker holder tag
	SetMarkerTag = "setMarker"

	legacyMarkerTag = "presenceMarker"
)

// IsSetMarker returns true if struct field tag flags presence marker holder
func IsSetMarker(tag reflect.StructTag) bool {
	if value, ok := tag.Lookup(SetMarkerTag); ok {
		return strings.TrimSpace(value) != "false"
	}
	if value, ok := tag.Lookup(legacyMarkerTag); ok {
		return strings.TrimSpace(value) != "false"
	}
	return false
}

// Marker tracks which record fields were bound from a mapping.
//
// The holder is a pointer to a struct of bool fields named after the record Go fields:
//
//	type FullNameHas struct {
//		First bool
//		Last  bool
//	}
//	type FullName struct {
//		First string
//		Last  string
//		Has   *FullNameHas `setMarker:"true"`
//	}
type Marker struct {
	t          reflect.Type
	holder     *xunsafe.Field
	holderType reflect.Type
	fields     []*xunsafe.Field //indexed by shape field position, nil when not tracked
}

// CanUseHolder returns true if holder was allocated on supplied record
func (p *Marker) CanUseHolder(ptr unsafe.Pointer) bool {
	if p.holder == nil || p.holder.IsNil(ptr) {
		return false
	}
	return true
}

// EnsureHolder allocates holder if it was nil
func (p *Marker) EnsureHolder(ptr unsafe.Pointer) {
	if p.CanUseHolder(ptr) {
		return
	}
	p.holder.SetValue(ptr, reflect.New(p.holderType).Interface())
}

// Set sets field marker
func (p *Marker) Set(ptr unsafe.Pointer, index int, flag bool) error {
	if !p.CanUseHolder(ptr) {
		return fmt.Errorf("holder was empty for %s", p.t.String())
	}
	if index >= len(p.fields) || p.fields[index] == nil {
		return fmt.Errorf("field at index %v was missing in set marker", index)
	}
	p.fields[index].SetBool(p.holder.ValuePointer(ptr), flag)
	return nil
}

// Tracked returns true if holder has a flag for field at index
func (p *Marker) Tracked(index int) bool {
	return index >= 0 && index < len(p.fields) && p.fields[index] != nil
}

// IsSet returns true if field has been set, untracked fields and records without holder are always set
func (p *Marker) IsSet(ptr unsafe.Pointer, index int) bool {
	if !p.CanUseHolder(ptr) {
		return true
	}
	if index >= len(p.fields) || p.fields[index] == nil {
		return true
	}
	return p.fields[index].Bool(p.holder.ValuePointer(ptr))
}

// newMarker creates a marker for holder field, goNames are record Go field names in shape order
func newMarker(owner reflect.Type, holder reflect.StructField, goNames []string) (*Marker, error) {
	holderType := holder.Type
	if holderType.Kind() != reflect.Ptr || holderType.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("invalid %s marker holder '%s': expected pointer to struct but had %s", owner.String(), holder.Name, holderType.String())
	}
	holderType = holderType.Elem()
	ret := &Marker{t: owner, holder: xunsafe.NewField(holder), holderType: holderType, fields: make([]*xunsafe.Field, len(goNames))}
	index := make(map[string]int, len(goNames))
	for i, name := range goNames {
		index[name] = i
	}
	for i := 0; i < holderType.NumField(); i++ {
		markerField := holderType.Field(i)
		pos, ok := index[markerField.Name]
		if !ok {
			return nil, fmt.Errorf("invalid %s marker: field '%v' does not have corresponding struct field", owner.String(), markerField.Name)
		}
		if markerField.Type.Kind() != reflect.Bool {
			return nil, fmt.Errorf("invalid %s marker: field '%v' expected bool but had %s", owner.String(), markerField.Name, markerField.Type.String())
		}
		ret.fields[pos] = xunsafe.NewField(markerField)
	}
	return ret, nil
}
