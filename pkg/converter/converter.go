// Package converter turns OpenAPI v3 documents into API collections.
//
// File organization:
// - converter.go: entry point, failure boundary, pipeline
// - operation.go: operation records, naming, tags, parameters
// - body.go: request body expansion per media type
// - examples.go: response and request body examples
// - links.go: response link scripts
// - servers.go: environments and request-level server variables
// - group.go: tag and path grouping
// - hydrate.go: sequence numbers and default fields
package converter

import (
	"fmt"
	"strings"

	"github.com/blang/semver"

	"github.com/blackcoderx/oasconv/pkg/auth"
	"github.com/blackcoderx/oasconv/pkg/schema"
	"github.com/blackcoderx/oasconv/pkg/spec"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

const (
	collectionVersion = "1"
	untitledName      = "Untitled Collection"
)

// converter holds the state of a single conversion.
type converter struct {
	*options
	auth *auth.Mapper
}

// Convert converts an OpenAPI v3 document into a collection.
//
// input may be raw JSON or YAML text ([]byte or string), a decoded
// map[string]any, or an already parsed spec.Object. Any failure, including a
// panic inside the pipeline, is reported as ErrImportFailed; the cause goes
// to the configured logger.
func Convert(input any, opts ...Option) (coll *storage.Collection, err error) {
	o := newOptions(opts)

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("openapi import panicked", "panic", r)
			coll, err = nil, ErrImportFailed
		}
	}()

	coll, err = convert(input, o)
	if err != nil {
		o.logger.Error("openapi import failed", "error", err)
		return nil, ErrImportFailed
	}
	return coll, nil
}

func convert(input any, o *options) (*storage.Collection, error) {
	raw, err := document(input)
	if err != nil {
		return nil, err
	}

	r := spec.NewResolver(raw)
	r.OnUnresolved = func(ref string) {
		o.logger.Debug("leaving unresolved reference in place", "ref", ref)
	}
	doc := r.ResolveObject(raw)

	if err := checkVersion(doc); err != nil {
		return nil, err
	}
	paths, ok := spec.GetObject(doc, "paths")
	if !ok {
		return nil, ErrMissingPaths
	}

	components, _ := spec.GetObject(doc, "components")
	schemes, _ := spec.GetObject(components, "securitySchemes")
	security, _ := spec.GetSlice(doc, "security")

	c := &converter{options: o}
	c.auth = auth.NewMapper(schemes, security, c.newID)

	coll := &storage.Collection{
		Name:    c.collectionName(doc),
		UID:     c.newID(),
		Version: collectionVersion,
	}

	servers, _ := spec.GetSlice(doc, "servers")
	coll.Environments = c.environments(servers)

	ops := collectOperations(paths)
	entries := make([]entry, 0, len(ops))
	for _, op := range ops {
		entries = append(entries, c.request(op))
	}
	o.logger.Debug("projected operations", "count", len(entries), "group_by", string(o.groupBy))

	switch o.groupBy {
	case GroupByPath:
		coll.Items = c.groupByPath(entries)
	default:
		coll.Items = c.groupByTags(entries)
	}

	hydrate(coll)

	if o.validate {
		if err := storage.Validate(coll); err != nil {
			return nil, err
		}
	}
	return coll, nil
}

// document normalizes the accepted input forms into the ordered model.
func document(input any) (spec.Object, error) {
	switch v := input.(type) {
	case spec.Object:
		if v == nil {
			return spec.NewObject(), nil
		}
		return v, nil
	case []byte:
		return spec.Parse(v)
	case string:
		return spec.Parse([]byte(v))
	case map[string]any:
		obj, _ := spec.FromValue(v).(spec.Object)
		return obj, nil
	case nil:
		return spec.NewObject(), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
}

// checkVersion accepts documents without an "openapi" field and any 3.x
// version. Swagger 2.0 documents are rejected.
func checkVersion(doc spec.Object) error {
	if spec.Has(doc, "swagger") && !spec.Has(doc, "openapi") {
		return ErrUnsupportedVersion
	}
	v, ok := spec.Get(doc, "openapi")
	if !ok || v == nil {
		return nil
	}
	version, err := semver.ParseTolerant(schema.Stringify(v))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedVersion, err)
	}
	if version.Major != 3 {
		return fmt.Errorf("%w: got %s", ErrUnsupportedVersion, version)
	}
	return nil
}

func (c *converter) collectionName(doc spec.Object) string {
	if name := strings.TrimSpace(c.nameOverride); name != "" {
		return name
	}
	info, _ := spec.GetObject(doc, "info")
	if title := strings.TrimSpace(spec.GetString(info, "title")); title != "" {
		return title
	}
	return untitledName
}
