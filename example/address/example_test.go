package address_test

import (
	"fmt"
	"github.com/viant/spread"
	"github.com/viant/spread/example/address"
)

func Example() {
	fullName := address.FullName{First: "Henry", Last: "O'Conner"}
	streetAddress := address.NewStreetAddress("Dog Basket", "Canine Town", "K9T")

	values, err := spread.Spread(fullName, streetAddress)
	if err != nil {
		fmt.Println(err)
		return
	}
	fullAddress, err := spread.Compose(address.FullAddressShape(), values, spread.NewMapping(spread.Pair("planet", "Earth")))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%+v\n", fullAddress)
	// Output: {First:Henry Last:O'Conner Street:Dog Basket City:Canine Town ZipCode:K9T Planet:Earth}
}

func ExampleNewFullNameMap() {
	values := spread.NewMapping(spread.Pair("first", "Henry"), spread.Pair("last", "O'Conner"))
	fullName := address.NewFullNameMap(values)
	fullName.SetFirst("Henriette")
	values.Set("last", "Breathtaking Beauty")
	fmt.Println(fullName.First(), fullName.Last())
	fmt.Println(values)
	// Output:
	// Henriette Breathtaking Beauty
	// {first: "Henriette", last: "Breathtaking Beauty"}
}

func ExampleFullNameShape() {
	_, err := spread.Build(address.FullNameShape(), spread.NewMapping(spread.Pair("first", "Henry")))
	fmt.Println(err)
	// Output: failed to build FullName: field 'last' (string) was missing
}
