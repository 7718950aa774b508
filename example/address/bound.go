package address

import "github.com/viant/spread"

var (
	first   = spread.NewProp[string]("first")
	last    = spread.NewProp[string]("last")
	street  = spread.NewProp[string]("street")
	city    = spread.NewProp[string]("city")
	zipCode = spread.NewProp[string]("zipCode")
	planet  = spread.NewProp[string]("planet")
)

type (
	// FullNameMap represents a mutable name backed by a shared mapping
	FullNameMap struct {
		bound *spread.Bound
	}

	// StreetAddressMap represents a read only street address backed by a shared mapping
	StreetAddressMap struct {
		bound *spread.Bound
	}

	// FullAddressMap represents a read only full address backed by a shared mapping
	FullAddressMap struct {
		bound *spread.Bound
	}
)

// NewFullNameMap creates a name backed by supplied mapping
func NewFullNameMap(values *spread.Mapping) *FullNameMap {
	return &FullNameMap{bound: spread.Bind(values)}
}

// FullNameMapOf creates a name backed by a new mapping
func FullNameMapOf(firstName, lastName string) *FullNameMap {
	return NewFullNameMap(spread.NewMapping(spread.Pair(first.Name(), firstName), spread.Pair(last.Name(), lastName)))
}

func (n *FullNameMap) First() string {
	return first.Get(n.bound)
}

func (n *FullNameMap) SetFirst(value string) {
	first.Set(n.bound, value)
}

func (n *FullNameMap) Last() string {
	return last.Get(n.bound)
}

func (n *FullNameMap) SetLast(value string) {
	last.Set(n.bound, value)
}

// Mapping returns backing mapping
func (n *FullNameMap) Mapping() *spread.Mapping {
	return n.bound.Mapping()
}

// ToMapping returns a detached copy of name properties
func (n *FullNameMap) ToMapping() (*spread.Mapping, error) {
	return n.bound.Snapshot(first.Name(), last.Name()), nil
}

// NewStreetAddressMap creates a street address backed by supplied mapping
func NewStreetAddressMap(values *spread.Mapping) *StreetAddressMap {
	return &StreetAddressMap{bound: spread.Bind(values)}
}

// StreetAddressMapOf creates a street address backed by a new mapping
func StreetAddressMapOf(streetName, cityName, zip string) *StreetAddressMap {
	return NewStreetAddressMap(spread.NewMapping(
		spread.Pair(street.Name(), streetName),
		spread.Pair(city.Name(), cityName),
		spread.Pair(zipCode.Name(), zip),
	))
}

func (a *StreetAddressMap) Street() string {
	return street.Get(a.bound)
}

func (a *StreetAddressMap) City() string {
	return city.Get(a.bound)
}

func (a *StreetAddressMap) ZipCode() string {
	return zipCode.Get(a.bound)
}

// ToMapping returns a detached copy of street address properties
func (a *StreetAddressMap) ToMapping() (*spread.Mapping, error) {
	return a.bound.Snapshot(street.Name(), city.Name(), zipCode.Name()), nil
}

// NewFullAddressMap creates a full address backed by supplied mapping
func NewFullAddressMap(values *spread.Mapping) *FullAddressMap {
	return &FullAddressMap{bound: spread.Bind(values)}
}

func (a *FullAddressMap) First() string {
	return first.Get(a.bound)
}

func (a *FullAddressMap) Last() string {
	return last.Get(a.bound)
}

func (a *FullAddressMap) Street() string {
	return street.Get(a.bound)
}

func (a *FullAddressMap) City() string {
	return city.Get(a.bound)
}

func (a *FullAddressMap) ZipCode() string {
	return zipCode.Get(a.bound)
}

func (a *FullAddressMap) Planet() string {
	return planet.Get(a.bound)
}

// Validate returns error if any full address property is missing or mistyped
func (a *FullAddressMap) Validate() error {
	for _, prop := range []spread.Prop[string]{first, last, street, city, zipCode, planet} {
		if _, err := prop.Value(a.bound); err != nil {
			return err
		}
	}
	return nil
}

// ToMapping returns a detached copy of full address properties
func (a *FullAddressMap) ToMapping() (*spread.Mapping, error) {
	return a.bound.Snapshot(first.Name(), last.Name(), street.Name(), city.Name(), zipCode.Name(), planet.Name()), nil
}
