package spread

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
	"testing"
	"time"
)

type planetAddress struct {
	ID       int
	ZipCode  string
	Planet   string  `spread:"default=Earth"`
	Floor    int     `spread:"name=level,default=1"`
	Note     *string `spread:",optional"`
	Internal string  `spread:"-"`
	secret   string
}

func TestShapeOf(t *testing.T) {
	shape, err := ShapeOf[planetAddress]()
	require.Nil(t, err)
	assert.Equal(t, "planetAddress", shape.Name())
	assert.Equal(t, []string{"id", "zipCode", "planet", "level", "note"}, shape.Names())
	assert.True(t, shape.Lookup("id").Required())
	assert.False(t, shape.Lookup("note").Required())
	value, ok := shape.Lookup("level").Default()
	assert.True(t, ok)
	assert.Equal(t, 1, value)

	again, err := ShapeOf[planetAddress]()
	require.Nil(t, err)
	assert.Same(t, shape, again)
}

func TestShapeOf_Build(t *testing.T) {
	note := "ring twice"
	var testCases = []struct {
		description string
		values      *Mapping
		expect      planetAddress
		expectErr   []string
	}{
		{
			description: "defaults",
			values:      NewMapping(Pair("id", 1), Pair("zipCode", "K9T")),
			expect:      planetAddress{ID: 1, ZipCode: "K9T", Planet: "Earth", Floor: 1},
		},
		{
			description: "all values",
			values:      NewMapping(Pair("id", 1), Pair("zipCode", "K9T"), Pair("planet", "Mars"), Pair("level", 3), Pair("note", &note)),
			expect:      planetAddress{ID: 1, ZipCode: "K9T", Planet: "Mars", Floor: 3, Note: &note},
		},
		{
			description: "internal keys are not bound",
			values:      NewMapping(Pair("id", 1), Pair("zipCode", "K9T"), Pair("internal", "x"), Pair("secret", "y"), Pair("Internal", "z")),
			expect:      planetAddress{ID: 1, ZipCode: "K9T", Planet: "Earth", Floor: 1},
		},
		{
			description: "missing and mismatch",
			values:      NewMapping(Pair("zipCode", 9), Pair("note", "text")),
			expectErr:   []string{"id", "zipCode", "note"},
		},
	}
	shape := MustShapeOf[planetAddress]()
	for _, testCase := range testCases {
		actual, err := Build(shape, testCase.values)
		if len(testCase.expectErr) > 0 {
			var constructionErr *ConstructionError
			if assert.True(t, errors.As(err, &constructionErr), testCase.description) {
				assert.Equal(t, testCase.expectErr, constructionErr.Names(), testCase.description)
			}
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestShapeOf_ToMapping(t *testing.T) {
	record := planetAddress{ID: 2, ZipCode: "K9T", Planet: "Earth", Floor: 4, Internal: "x", secret: "y"}
	values, err := ToMapping(MustShapeOf[planetAddress](), &record)
	require.Nil(t, err)
	assert.Equal(t, []string{"id", "zipCode", "planet", "level", "note"}, values.Keys())
	assert.Equal(t, 4, values.Get("level"))
	assert.Nil(t, values.Get("note"))
	assert.False(t, values.Has("internal"))
	assert.False(t, values.Has("secret"))
}

type geoPoint struct {
	X, Y int
}

type survey struct {
	Point   geoPoint
	When    time.Time
	Grid    [2]int
	Origin  *geoPoint
	Labels  map[string]string
	Samples []float64
	Payload interface{}
	Stamp   fmt.Stringer
}

func TestShapeOf_CompositeRoundTrip(t *testing.T) {
	origin := &geoPoint{X: 7}
	var testCases = []struct {
		description string
		record      survey
	}{
		{
			description: "struct and time",
			record:      survey{Point: geoPoint{X: 1, Y: 2}, When: time.Unix(5, 0).UTC()},
		},
		{
			description: "array",
			record:      survey{Grid: [2]int{1, 2}},
		},
		{
			description: "pointer map and slice",
			record:      survey{Origin: origin, Labels: map[string]string{"k": "v"}, Samples: []float64{1.5, 2.5}},
		},
		{
			description: "interfaces",
			record:      survey{Payload: [2]string{"a", "b"}, Stamp: time.Second},
		},
		{
			description: "zero values",
			record:      survey{},
		},
	}
	shape := MustShapeOf[survey]()
	for _, testCase := range testCases {
		values, err := ToMapping(shape, &testCase.record)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual, err := Build(shape, values)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.record, actual, testCase.description)
	}
}

func TestShapeOf_BuildComposite(t *testing.T) {
	shape := MustShapeOf[survey]()
	record, err := Build(shape, NewMapping(
		Pair("point", geoPoint{X: 1, Y: 2}),
		Pair("when", time.Unix(5, 0).UTC()),
		Pair("grid", [2]int{1, 2}),
		Pair("origin", (*geoPoint)(nil)),
		Pair("labels", nil),
		Pair("samples", nil),
		Pair("payload", nil),
		Pair("stamp", nil),
	))
	require.Nil(t, err)
	assert.Equal(t, [2]int{1, 2}, record.Grid)
	assert.Equal(t, geoPoint{X: 1, Y: 2}, record.Point)
	assert.Equal(t, time.Unix(5, 0).UTC(), record.When)
	assert.Nil(t, record.Origin)
}

func TestShapeOf_SnapshotDetached(t *testing.T) {
	record := survey{Point: geoPoint{X: 1}, When: time.Unix(5, 0).UTC(), Grid: [2]int{1, 2}}
	values, err := ToMapping(MustShapeOf[survey](), &record)
	require.Nil(t, err)

	record.Point = geoPoint{X: 9, Y: 9}
	record.When = time.Unix(99, 0).UTC()
	record.Grid[0] = 100

	assert.Equal(t, geoPoint{X: 1}, values.Get("point"))
	assert.Equal(t, time.Unix(5, 0).UTC(), values.Get("when"))
	assert.Equal(t, [2]int{1, 2}, values.Get("grid"))
}

func TestShapeOf_CaseFormat(t *testing.T) {
	type streetAddress struct {
		Street  string
		ZipCode string
	}
	var testCases = []struct {
		description string
		opts        []ShapeOption
		expect      []string
	}{
		{description: "default lower camel", expect: []string{"street", "zipCode"}},
		{description: "lower underscore", opts: []ShapeOption{WithCaseFormat(text.CaseFormatLowerUnderscore)}, expect: []string{"street", "zip_code"}},
		{description: "go names", opts: []ShapeOption{WithCaseFormat("")}, expect: []string{"Street", "ZipCode"}},
	}
	for _, testCase := range testCases {
		shape, err := ShapeOf[streetAddress](testCase.opts...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, shape.Names(), testCase.description)
	}
}

func TestShapeOf_TagName(t *testing.T) {
	type city struct {
		Name string `map:"name=city"`
	}
	shape, err := ShapeOf[city](WithTagName("map"))
	require.Nil(t, err)
	assert.Equal(t, []string{"city"}, shape.Names())
}

func TestShapeOf_Errors(t *testing.T) {
	type badDefault struct {
		Count int `spread:"default=many"`
	}
	type badTag struct {
		Count int `spread:"name=count,colour=red"`
	}
	type duplicate struct {
		A string `spread:"name=x"`
		B string `spread:"name=x"`
	}
	type badMarker struct {
		A   string
		Has *struct{ B bool } `setMarker:"true"`
	}
	_, err := ShapeOf[badDefault]()
	assert.NotNil(t, err, "bad default")
	_, err = ShapeOf[badTag]()
	assert.NotNil(t, err, "bad tag")
	_, err = ShapeOf[duplicate]()
	assert.NotNil(t, err, "duplicate")
	_, err = ShapeOf[badMarker]()
	assert.NotNil(t, err, "bad marker")
	_, err = ShapeOf[int]()
	assert.NotNil(t, err, "not a struct")
	assert.Panics(t, func() {
		MustShapeOf[string]()
	})
}

type trackedHas struct {
	First  bool
	Last   bool
	Planet bool
}

type tracked struct {
	First  string
	Last   string
	Planet string      `spread:"default=Earth"`
	Has    *trackedHas `setMarker:"true"`
}

func TestShapeOf_Marker(t *testing.T) {
	shape := MustShapeOf[tracked]()
	require.NotNil(t, shape.Marker())
	assert.Equal(t, []string{"first", "last", "planet"}, shape.Names())

	record, err := Build(shape, NewMapping(Pair("first", "Henry"), Pair("last", "O'Conner")))
	require.Nil(t, err)
	assert.Equal(t, "Earth", record.Planet)
	require.NotNil(t, record.Has)
	assert.Equal(t, trackedHas{First: true, Last: true}, *record.Has)

	values, err := ToMapping(shape, &record)
	require.Nil(t, err)
	assert.Equal(t, []string{"first", "last"}, values.Keys(), "defaulted fields are not spread")

	clone, err := Build(shape, values)
	require.Nil(t, err)
	assert.Equal(t, record, clone)

	plain := tracked{First: "Henry", Last: "O'Conner", Planet: "Mars"}
	values, err = ToMapping(shape, &plain)
	require.Nil(t, err)
	assert.Equal(t, []string{"first", "last", "planet"}, values.Keys(), "records without holder spread every field")
}

type partlyTrackedHas struct {
	Last bool
}

type partlyTracked struct {
	First string
	Last  string
	Has   *partlyTrackedHas `setMarker:"true"`
}

func TestShapeOf_PartialMarker(t *testing.T) {
	shape := MustShapeOf[partlyTracked]()
	record, err := Build(shape, NewMapping(Pair("first", "Henry"), Pair("last", "O'Conner")))
	require.Nil(t, err)
	require.NotNil(t, record.Has)
	assert.True(t, record.Has.Last)

	values, err := ToMapping(shape, &record)
	require.Nil(t, err)
	assert.Equal(t, []string{"first", "last"}, values.Keys(), "untracked fields are always spread")
}
