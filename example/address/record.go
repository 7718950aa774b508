package address

import "github.com/viant/spread"

type (
	// FullName represents a person name, its shape is derived from exported fields
	FullName struct {
		First string
		Last  string
	}

	// StreetAddress represents a street address with unexported state and accessors,
	// its shape is registered explicitly
	StreetAddress struct {
		street  string
		city    string
		zipCode string
	}

	// FullAddress represents a name with street address and planet
	FullAddress struct {
		First   string
		Last    string
		Street  string
		City    string
		ZipCode string
		Planet  string
	}
)

var (
	fullNameShape = spread.MustShapeOf[FullName]()

	streetAddressShape = spread.MustShape(
		spread.NewField("street", func(a *StreetAddress) string { return a.street }, func(a *StreetAddress, v string) { a.street = v }),
		spread.NewField("city", func(a *StreetAddress) string { return a.city }, func(a *StreetAddress, v string) { a.city = v }),
		spread.NewField("zipCode", func(a *StreetAddress) string { return a.zipCode }, func(a *StreetAddress, v string) { a.zipCode = v }),
	)

	fullAddressShape = spread.MustShapeOf[FullAddress]()
)

// FullNameShape returns FullName shape
func FullNameShape() *spread.Shape[FullName] {
	return fullNameShape
}

// StreetAddressShape returns StreetAddress shape
func StreetAddressShape() *spread.Shape[StreetAddress] {
	return streetAddressShape
}

// FullAddressShape returns FullAddress shape
func FullAddressShape() *spread.Shape[FullAddress] {
	return fullAddressShape
}

// ToMapping returns name fields
func (n FullName) ToMapping() (*spread.Mapping, error) {
	return fullNameShape.ToMapping(&n)
}

// NewStreetAddress creates a street address
func NewStreetAddress(street, city, zipCode string) StreetAddress {
	return StreetAddress{street: street, city: city, zipCode: zipCode}
}

func (a StreetAddress) Street() string {
	return a.street
}

func (a StreetAddress) City() string {
	return a.city
}

func (a StreetAddress) ZipCode() string {
	return a.zipCode
}

// ToMapping returns street address fields
func (a StreetAddress) ToMapping() (*spread.Mapping, error) {
	return streetAddressShape.ToMapping(&a)
}

// ToMapping returns full address fields
func (a FullAddress) ToMapping() (*spread.Mapping, error) {
	return fullAddressShape.ToMapping(&a)
}
