// Package address shows both spread techniques on the same records.
//
// FullName, StreetAddress and FullAddress are value records rebuilt from mappings:
//
//	name := address.FullName{First: "Henry", Last: "O'Conner"}
//	street := address.NewStreetAddress("Dog Basket", "Canine Town", "K9T")
//	values, _ := spread.Spread(name, street)
//	full, _ := spread.Compose(address.FullAddressShape(), values, spread.NewMapping(spread.Pair("planet", "Earth")))
//
// FullNameMap, StreetAddressMap and FullAddressMap keep their properties in a shared mapping.
package address
