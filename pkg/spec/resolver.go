package spec

import (
	"net/url"
	"strings"

	"github.com/speakeasy-api/openapi/jsonpointer"
)

// componentsPrefix is the only reference form the resolver follows.
const componentsPrefix = "#/components/"

// Resolver replaces "$ref" nodes with their targets.
//
// A Resolver is bound to one document and is not safe for concurrent use.
// Each conversion creates its own, so nothing leaks across calls.
type Resolver struct {
	root Object

	// refs memoizes by reference string. An entry is registered before the
	// target's children are resolved, so a self-referential chain reads back
	// the shared (still filling) object instead of recursing.
	refs map[string]any
	// seen memoizes resolved objects by the identity of their source object.
	seen map[Object]Object
	// pending guards reference chains whose target is itself a bare reference.
	pending map[string]bool

	// OnUnresolved, if set, is called for every reference left in place.
	OnUnresolved func(ref string)
}

// NewResolver returns a resolver looking references up in root.
func NewResolver(root Object) *Resolver {
	return &Resolver{
		root:    root,
		refs:    make(map[string]any),
		seen:    make(map[Object]Object),
		pending: make(map[string]bool),
	}
}

// Resolve returns v with every resolvable reference replaced by its target.
// The input is never mutated. Unresolvable references are returned as-is.
func (r *Resolver) Resolve(v any) any {
	switch t := v.(type) {
	case Object:
		if t == nil {
			return t
		}
		if ref, ok := RefOf(t); ok {
			return r.resolveRef(ref, t)
		}
		return r.resolveObject(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = r.Resolve(e)
		}
		return out
	default:
		return v
	}
}

// ResolveObject is Resolve for callers holding an object. Non-object targets
// yield nil.
func (r *Resolver) ResolveObject(o Object) Object {
	out, _ := r.Resolve(o).(Object)
	return out
}

func (r *Resolver) resolveObject(o Object) Object {
	if out, ok := r.seen[o]; ok {
		return out
	}
	out := NewObject()
	r.seen[o] = out
	r.fill(o, out)
	return out
}

func (r *Resolver) fill(src, dst Object) {
	for k, v := range src.All() {
		dst.Set(k, r.Resolve(v))
	}
}

func (r *Resolver) resolveRef(ref string, node Object) any {
	if !strings.HasPrefix(ref, componentsPrefix) {
		r.unresolved(ref)
		return node
	}
	if cached, ok := r.refs[ref]; ok {
		return cached
	}
	if r.pending[ref] {
		return node
	}

	target, ok := r.Lookup(ref)
	if !ok {
		r.unresolved(ref)
		return node
	}

	obj, isObj := target.(Object)
	switch {
	case !isObj || obj == nil:
		out := r.Resolve(target)
		r.refs[ref] = out
		return out

	case hasRef(obj):
		// reference to a bare reference: follow the chain
		r.pending[ref] = true
		out := r.Resolve(obj)
		delete(r.pending, ref)
		if out == any(obj) {
			return node
		}
		r.refs[ref] = out
		return out
	}

	if out, ok := r.seen[obj]; ok {
		r.refs[ref] = out
		return out
	}
	out := NewObject()
	r.refs[ref] = out
	r.seen[obj] = out
	r.fill(obj, out)
	return out
}

func (r *Resolver) unresolved(ref string) {
	if r.OnUnresolved != nil {
		r.OnUnresolved(ref)
	}
}

// Lookup finds the raw target of a "#/components/..." reference in the
// document. The boolean is false when the reference has another form or does
// not point at anything.
func (r *Resolver) Lookup(ref string) (target any, found bool) {
	if !strings.HasPrefix(ref, componentsPrefix) {
		return nil, false
	}
	ptr := strings.TrimPrefix(ref, "#")
	if unescaped, err := url.PathUnescape(ptr); err == nil {
		ptr = unescaped
	}

	// jsonpointer reflects on every intermediate value and cannot step
	// through a null one
	defer func() {
		if recover() != nil {
			target, found = nil, false
		}
	}()

	t, err := jsonpointer.GetTarget(r.root, jsonpointer.JSONPointer(ptr))
	if err != nil || t == nil {
		return nil, false
	}
	return t, true
}

// RefOf returns the "$ref" string of o, if it has one.
func RefOf(o Object) (string, bool) {
	v, ok := Get(o, "$ref")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func hasRef(o Object) bool {
	_, ok := RefOf(o)
	return ok
}
