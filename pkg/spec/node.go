// Package spec holds the ordered, untyped representation of an OpenAPI document
// and the reference resolver that walks it.
//
// Objects are insertion-ordered maps so that every traversal of a document
// (paths, methods, properties, responses) follows the order in which the
// author wrote it.
package spec

import (
	"fmt"
	"iter"
	"sort"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"github.com/speakeasy-api/openapi/yml"
	"gopkg.in/yaml.v3"
)

// Object is an ordered JSON/YAML object node.
type Object = *sequencedmap.Map[string, any]

// NewObject returns an empty ordered object.
func NewObject() Object {
	return sequencedmap.New[string, any]()
}

// Parse decodes JSON or YAML text into the ordered document model.
// The top-level value must be an object.
func Parse(data []byte) (Object, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	d := &decoder{seen: make(map[*yaml.Node]any)}
	v, err := d.decode(&doc)
	if err != nil {
		return nil, err
	}

	switch obj := v.(type) {
	case Object:
		return obj, nil
	case nil:
		return NewObject(), nil
	default:
		return nil, fmt.Errorf("expected a mapping at the document root, got %T", v)
	}
}

type decoder struct {
	// aliased nodes decode to the same value, preserving identity
	seen map[*yaml.Node]any
}

func (d *decoder) decode(n *yaml.Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	n = yml.ResolveAlias(n)
	if v, ok := d.seen[n]; ok {
		return v, nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.decode(n.Content[0])

	case yaml.MappingNode:
		obj := NewObject()
		d.seen[n] = obj
		content := yml.ResolveMergeKeys(n.Content)
		for i := 0; i+1 < len(content); i += 2 {
			key := yml.ResolveAlias(content[i]).Value
			if obj.Has(key) {
				continue
			}
			val, err := d.decode(content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := d.decode(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil

	case yaml.ScalarNode:
		// JSON has no timestamp type; unquoted dates stay as written
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}

	return nil, nil
}

// FromValue converts plain Go values (as produced by encoding/json or a YAML
// library decoding into map[string]any) into the ordered model. Plain maps
// carry no key order, so their keys are sorted.
func FromValue(v any) any {
	switch t := v.(type) {
	case Object:
		return t
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, FromValue(t[k]))
		}
		return obj
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = val
		}
		return FromValue(m)
	case []any:
		arr := make([]any, len(t))
		for i, e := range t {
			arr[i] = FromValue(e)
		}
		return arr
	case []map[string]any:
		arr := make([]any, len(t))
		for i, e := range t {
			arr[i] = FromValue(e)
		}
		return arr
	default:
		return v
	}
}

// Get returns the value stored under key.
func Get(o Object, key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	return o.Get(key)
}

// Has reports whether key is present, even with a null value.
func Has(o Object, key string) bool {
	if o == nil {
		return false
	}
	return o.Has(key)
}

// GetObject returns the object stored under key.
func GetObject(o Object, key string) (Object, bool) {
	v, ok := Get(o, key)
	if !ok {
		return nil, false
	}
	obj, ok := v.(Object)
	return obj, ok && obj != nil
}

// GetSlice returns the array stored under key.
func GetSlice(o Object, key string) ([]any, bool) {
	v, ok := Get(o, key)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}

// GetString returns the string stored under key, or "".
func GetString(o Object, key string) string {
	v, _ := Get(o, key)
	s, _ := v.(string)
	return s
}

// GetBool returns the boolean stored under key, or false.
func GetBool(o Object, key string) bool {
	v, _ := Get(o, key)
	b, _ := v.(bool)
	return b
}

// Objects returns the object elements of an array, skipping anything else.
func Objects(arr []any) []Object {
	out := make([]Object, 0, len(arr))
	for _, e := range arr {
		if obj, ok := e.(Object); ok && obj != nil {
			out = append(out, obj)
		}
	}
	return out
}

// First returns the first key and value of o in document order.
func First(o Object) (string, any, bool) {
	if o == nil {
		return "", nil, false
	}
	next, stop := iter.Pull2(o.All())
	defer stop()
	return next()
}
