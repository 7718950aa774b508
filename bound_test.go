package spread

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBound_Aliasing(t *testing.T) {
	values := NewMapping(Pair("first", "Henry"), Pair("last", "O'Conner"))
	bound := Bind(values)
	first := NewProp[string]("first")
	last := NewProp[string]("last")

	first.Set(bound, "Henriette")
	assert.Equal(t, "Henriette", values.Get("first"), "record write visible in mapping")

	values.Set("last", "Breathtaking Beauty")
	assert.Equal(t, "Breathtaking Beauty", last.Get(bound), "mapping write visible in record")
	assert.Same(t, values, bound.Mapping())
}

func TestBound_Snapshot(t *testing.T) {
	bound := Bind(NewMapping(Pair("first", "Henry"), Pair("last", "O'Conner"), Pair("secret", 1)))
	snapshot := bound.Snapshot("first", "last", "absent")
	assert.Equal(t, []string{"first", "last"}, snapshot.Keys())
	bound.Mapping().Set("first", "Henriette")
	assert.Equal(t, "Henry", snapshot.Get("first"))

	all := bound.Snapshot()
	assert.Equal(t, 3, all.Len())
	all.Set("first", "x")
	assert.Equal(t, "Henriette", bound.Mapping().Get("first"))
}

func TestBind_Nil(t *testing.T) {
	bound := Bind(nil)
	count := NewProp[int]("count")
	count.Set(bound, 3)
	assert.Equal(t, 3, bound.Mapping().Get("count"))
	assert.Equal(t, "count", count.Name())
}

func TestProp_Value(t *testing.T) {
	bound := Bind(NewMapping(Pair("name", "Henry"), Pair("age", "three"), Pair("tags", nil), Pair("count", nil)))
	var testCases = []struct {
		description string
		value       func() (interface{}, error)
		expect      interface{}
		expectErr   error
	}{
		{
			description: "present",
			value:       func() (interface{}, error) { return NewProp[string]("name").Value(bound) },
			expect:      "Henry",
		},
		{
			description: "missing",
			value:       func() (interface{}, error) { return NewProp[string]("planet").Value(bound) },
			expect:      "",
			expectErr:   ErrMissingKey,
		},
		{
			description: "type mismatch",
			value:       func() (interface{}, error) { return NewProp[int]("age").Value(bound) },
			expect:      0,
			expectErr:   ErrTypeMismatch,
		},
		{
			description: "nil for nillable",
			value:       func() (interface{}, error) { return NewProp[[]string]("tags").Value(bound) },
			expect:      []string(nil),
		},
		{
			description: "nil for non nillable",
			value:       func() (interface{}, error) { return NewProp[int]("count").Value(bound) },
			expect:      0,
			expectErr:   ErrTypeMismatch,
		},
	}
	for _, testCase := range testCases {
		actual, err := testCase.value()
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
		} else {
			assert.Nil(t, err, testCase.description)
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestProp_LookupGet(t *testing.T) {
	bound := Bind(NewMapping(Pair("age", 3)))
	age := NewProp[int]("age")
	value, ok := age.Lookup(bound)
	assert.True(t, ok)
	assert.Equal(t, 3, value)

	name := NewProp[string]("name")
	_, ok = name.Lookup(bound)
	assert.False(t, ok)
	assert.Equal(t, "", name.Get(bound))
	assert.Equal(t, "", NewProp[string]("age").Get(bound))
}
