package spread

import "github.com/viant/tagly/format/text"

type (
	buildOptions struct {
		convert    bool
		strictKeys bool
	}

	//BuildOption represents build option
	BuildOption func(o *buildOptions)

	fieldOptions struct {
		defaultValue interface{}
		hasDefault   bool
	}

	//FieldOption represents field descriptor option
	FieldOption func(o *fieldOptions)

	shapeOptions struct {
		tagName    string
		caseFormat text.CaseFormat
	}

	//ShapeOption represents derived shape option
	ShapeOption func(o *shapeOptions)
)

func newBuildOptions(opts []BuildOption) *buildOptions {
	ret := &buildOptions{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func newFieldOptions(opts []FieldOption) *fieldOptions {
	ret := &fieldOptions{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func newShapeOptions(opts []ShapeOption) *shapeOptions {
	ret := &shapeOptions{tagName: TagName, caseFormat: text.CaseFormatLowerCamel}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithConversion returns build option converting numeric values between numeric kinds
// when lossless, and parsing strings into numeric and bool fields
func WithConversion() BuildOption {
	return func(o *buildOptions) {
		o.convert = true
	}
}

// WithStrictKeys returns build option reporting mapping keys that match no field
func WithStrictKeys() BuildOption {
	return func(o *buildOptions) {
		o.strictKeys = true
	}
}

// WithDefault returns field option with a default used when mapping has no key for the field
func WithDefault(value interface{}) FieldOption {
	return func(o *fieldOptions) {
		o.defaultValue = value
		o.hasDefault = true
	}
}

// Optional returns field option defaulting the field to its zero value
func Optional() FieldOption {
	return func(o *fieldOptions) {
		o.defaultValue = nil
		o.hasDefault = true
	}
}

// WithTagName returns shape option with custom struct tag name
func WithTagName(name string) ShapeOption {
	return func(o *shapeOptions) {
		o.tagName = name
	}
}

// WithCaseFormat returns shape option formatting Go field names into mapping keys,
// an empty case format keeps Go field names
func WithCaseFormat(caseFormat text.CaseFormat) ShapeOption {
	return func(o *shapeOptions) {
		o.caseFormat = caseFormat
	}
}
