// Package schema turns JSON-schema nodes into representative values: empty
// request body skeletons and parameter default values.
package schema

import (
	"github.com/blackcoderx/oasconv/pkg/spec"
)

// IsObject reports whether s describes an object, either by declaring
// "type: object" or by carrying a properties map.
func IsObject(s spec.Object) bool {
	if s == nil {
		return false
	}
	if typeOf(s) == "object" {
		return true
	}
	_, ok := spec.GetObject(s, "properties")
	return ok
}

// IsArray reports whether s describes an array.
func IsArray(s spec.Object) bool {
	if s == nil {
		return false
	}
	if typeOf(s) == "array" {
		return true
	}
	_, ok := spec.GetObject(s, "items")
	return ok && !IsObject(s)
}

// Items returns the item schema of an array schema.
func Items(s spec.Object) spec.Object {
	items, _ := spec.GetObject(s, "items")
	return items
}

// Properties returns the declared properties of s in declaration order,
// including those contributed by allOf members.
func Properties(s spec.Object) spec.Object {
	return properties(s, make(map[spec.Object]bool))
}

func properties(s spec.Object, visiting map[spec.Object]bool) spec.Object {
	out := spec.NewObject()
	if s == nil || visiting[s] {
		return out
	}
	visiting[s] = true
	defer delete(visiting, s)

	if all, ok := spec.GetSlice(s, "allOf"); ok {
		for _, member := range spec.Objects(all) {
			for name, prop := range properties(member, visiting).All() {
				if !out.Has(name) {
					out.Set(name, prop)
				}
			}
		}
	}
	if props, ok := spec.GetObject(s, "properties"); ok {
		for name, prop := range props.All() {
			if !out.Has(name) {
				out.Set(name, prop)
			}
		}
	}
	return out
}

// BuildEmptyBody materializes a skeleton value for s: objects become objects
// with one entry per property, arrays of objects become a one-element array,
// everything else becomes "".
//
// Schemas reached again while they are still being materialized (cyclic
// references) produce an empty object, so the result is always finite.
func BuildEmptyBody(s spec.Object) any {
	return buildEmptyBody(s, make(map[spec.Object]bool))
}

func buildEmptyBody(s spec.Object, visiting map[spec.Object]bool) any {
	if !IsObject(s) && !HasAllOf(s) {
		return ""
	}
	out := spec.NewObject()
	if visiting[s] {
		return out
	}
	visiting[s] = true
	defer delete(visiting, s)

	for name, v := range Properties(s).All() {
		prop, _ := v.(spec.Object)
		switch {
		case IsObject(prop):
			out.Set(name, buildEmptyBody(prop, visiting))
		case IsArray(prop) && IsObject(Items(prop)):
			out.Set(name, []any{buildEmptyBody(Items(prop), visiting)})
		default:
			out.Set(name, "")
		}
	}
	return out
}

// HasAllOf reports whether s composes other schemas with allOf.
func HasAllOf(s spec.Object) bool {
	_, ok := spec.GetSlice(s, "allOf")
	return ok
}

func typeOf(s spec.Object) string {
	v, _ := spec.Get(s, "type")
	switch t := v.(type) {
	case string:
		return t
	case []any:
		// 3.1 style type arrays: first non-null entry
		for _, e := range t {
			if str, ok := e.(string); ok && str != "null" {
				return str
			}
		}
	}
	return ""
}
