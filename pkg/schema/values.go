package schema

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cast"

	"github.com/blackcoderx/oasconv/pkg/spec"
)

// Property is one expanded member of an object-typed parameter.
type Property struct {
	Name        string
	Value       string
	Description string
}

// ParamValue resolves the default value of a parameter. Highest precedence
// first: the parameter's example, the schema default, the schema example,
// the first enum entry, the first "examples" entry, the numeric minimum.
// Otherwise "".
func ParamValue(param spec.Object) string {
	if v, ok := spec.Get(param, "example"); ok && v != nil {
		return Stringify(v)
	}
	s, _ := spec.GetObject(param, "schema")
	return Value(s)
}

// Value resolves a representative value for a single schema using the same
// precedence as ParamValue minus the parameter-level example.
func Value(s spec.Object) string {
	if s == nil {
		return ""
	}
	if v, ok := spec.Get(s, "default"); ok && v != nil {
		return Stringify(v)
	}
	if v, ok := spec.Get(s, "example"); ok && v != nil {
		return Stringify(v)
	}
	if v, ok := first(s, "enum"); ok {
		return Stringify(v)
	}
	if v, ok := first(s, "examples"); ok {
		return Stringify(v)
	}
	if isNumeric(s) {
		if v, ok := spec.Get(s, "minimum"); ok && v != nil {
			return Stringify(v)
		}
	}
	return ""
}

// PropertyValues expands an object-typed parameter into one value per schema
// property. A property's value comes from the parameter example map, then the
// schema example map, then the property's own default/example/enum/examples/
// minimum.
func PropertyValues(param spec.Object) []Property {
	s, _ := spec.GetObject(param, "schema")
	paramExample, _ := spec.GetObject(param, "example")
	schemaExample, _ := spec.GetObject(s, "example")

	props := Properties(s)
	out := make([]Property, 0, props.Len())
	for name, v := range props.All() {
		prop, _ := v.(spec.Object)
		value := ""
		if ex, ok := spec.Get(paramExample, name); ok && ex != nil {
			value = Stringify(ex)
		} else if ex, ok := spec.Get(schemaExample, name); ok && ex != nil {
			value = Stringify(ex)
		} else {
			value = propertyValue(prop)
		}
		out = append(out, Property{
			Name:        name,
			Value:       value,
			Description: spec.GetString(prop, "description"),
		})
	}
	return out
}

// propertyValue prefers example over default at property level.
func propertyValue(prop spec.Object) string {
	if v, ok := spec.Get(prop, "example"); ok && v != nil {
		return Stringify(v)
	}
	return Value(prop)
}

// FieldValue is the best-effort value of a form field property.
func FieldValue(prop spec.Object) string {
	return propertyValue(prop)
}

func first(s spec.Object, key string) (any, bool) {
	arr, ok := spec.GetSlice(s, key)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	return arr[0], true
}

func isNumeric(s spec.Object) bool {
	switch typeOf(s) {
	case "integer", "number":
		return true
	}
	return false
}

// Stringify renders a document value as parameter text: scalars in their
// natural form, objects and arrays as compact JSON.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case spec.Object, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
	return cast.ToString(v)
}
