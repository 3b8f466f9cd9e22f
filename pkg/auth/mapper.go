// Package auth maps OpenAPI security requirements onto request auth
// configurations.
//
// File organization:
// - mapper.go: requirement selection (operation, document default, opt-out)
// - basic.go: HTTP basic and digest schemes
// - bearer.go: HTTP bearer scheme
// - apikey.go: apiKey schemes in header, query and cookie
// - oauth2.go: OAuth2 flows
package auth

import (
	"strings"

	"github.com/blackcoderx/oasconv/pkg/spec"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

// Resolution is the outcome of mapping one operation's security. Headers and
// Params hold entries that the selected scheme injects into the request.
type Resolution struct {
	Auth    storage.Auth
	Headers []storage.Header
	Params  []storage.Param
}

// Mapper resolves security requirements against a document's
// securitySchemes.
type Mapper struct {
	schemes  spec.Object
	defaults []any
	newID    func() string
}

// NewMapper creates a mapper. schemes is components.securitySchemes and
// defaults the document-level security list; both may be nil.
func NewMapper(schemes spec.Object, defaults []any, newID func() string) *Mapper {
	return &Mapper{
		schemes:  schemes,
		defaults: defaults,
		newID:    newID,
	}
}

// Resolve selects the auth configuration for op.
//
// An explicit empty security list opts out and yields "inherit". A
// non-empty list resolves its first scheme. A missing list falls back to the
// document default, and without one the mode is "none".
func (m *Mapper) Resolve(op spec.Object) Resolution {
	requirements, declared := spec.GetSlice(op, "security")
	if declared && len(requirements) == 0 {
		return Resolution{Auth: storage.Auth{Mode: storage.AuthInherit}}
	}
	if !declared {
		requirements = m.defaults
	}

	name, ok := firstSchemeName(requirements)
	if !ok {
		return none()
	}
	scheme, ok := spec.GetObject(m.schemes, name)
	if !ok {
		return none()
	}
	return m.ResolveScheme(scheme)
}

// ResolveScheme maps a single security scheme definition.
func (m *Mapper) ResolveScheme(scheme spec.Object) Resolution {
	switch strings.ToLower(spec.GetString(scheme, "type")) {
	case "http":
		switch strings.ToLower(spec.GetString(scheme, "scheme")) {
		case "basic":
			return basic()
		case "bearer":
			return bearer()
		case "digest":
			return digest()
		}
	case "apikey":
		return m.apiKey(scheme)
	case "oauth2":
		return oauth2Flow(scheme)
	}
	return none()
}

func none() Resolution {
	return Resolution{Auth: storage.Auth{Mode: storage.AuthNone}}
}

// firstSchemeName returns the first scheme named by the first requirement
// object of a security list.
func firstSchemeName(requirements []any) (string, bool) {
	reqs := spec.Objects(requirements)
	if len(reqs) == 0 {
		return "", false
	}
	name, _, ok := spec.First(reqs[0])
	return name, ok
}
