// Package spread emulates object spread in Go.
//
// A record is spread into a Mapping, mappings are merged right-biased, and a new record is
// built from the result through its Shape:
//
//	values := spread.Merge(nameValues, streetValues, spread.NewMapping(spread.Pair("planet", "Earth")))
//	address, err := spread.Build(addressShape, values)
//
// Shapes are either registered explicitly with NewShape and NewField accessor pairs, or
// derived once per struct type with ShapeOf. Build reports every missing or mistyped field
// in a single *ConstructionError.
//
// Alternatively, Bind backs record properties with a shared Mapping, where Prop accessors
// read and write through to the mapping entries.
package spread
