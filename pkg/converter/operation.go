package converter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/blackcoderx/oasconv/pkg/schema"
	"github.com/blackcoderx/oasconv/pkg/spec"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

// methods are the path item keys that hold operations.
var methods = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
	"trace":   true,
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	pathParamPattern  = regexp.MustCompile(`\{([^{}/]+)\}`)
	tagSeparators     = regexp.MustCompile(`[\s.():]+`)
	underscoreRuns    = regexp.MustCompile(`_+`)
)

// operation is one (method, path) pair of the document.
type operation struct {
	method   string
	path     string
	pathItem spec.Object
	op       spec.Object
}

// entry is a projected request plus what the grouping strategies need to
// know about its origin.
type entry struct {
	item storage.Item
	path string
	// folder is the display name of the first tag
	folder string
}

// collectOperations flattens paths × methods in document order.
func collectOperations(paths spec.Object) []operation {
	var ops []operation
	for path, v := range paths.All() {
		item, ok := v.(spec.Object)
		if !ok || item == nil {
			continue
		}
		for key, ov := range item.All() {
			method := strings.ToLower(key)
			if !methods[method] {
				continue
			}
			op, ok := ov.(spec.Object)
			if !ok || op == nil {
				continue
			}
			ops = append(ops, operation{method: method, path: path, pathItem: item, op: op})
		}
	}
	return ops
}

// request projects one operation into a request item.
func (c *converter) request(o operation) entry {
	tags, folder := sanitizeTags(o.op)

	req := &storage.Request{
		URL:     "{{" + baseURLVar + "}}" + toURLPath(o.path),
		Method:  strings.ToUpper(o.method),
		Headers: []storage.Header{},
		Params:  []storage.Param{},
	}

	pathParams, _ := spec.GetSlice(o.pathItem, "parameters")
	opParams, _ := spec.GetSlice(o.op, "parameters")
	for _, p := range mergeParameters(pathParams, opParams) {
		c.addParameter(req, p)
	}

	res := c.auth.Resolve(o.op)
	req.Auth = res.Auth
	req.Headers = append(req.Headers, res.Headers...)
	req.Params = append(req.Params, res.Params...)

	req.Body = c.body(o.op)
	req.Script.Res = linkScript(o.op)

	if servers, ok := spec.GetSlice(o.op, "servers"); ok && len(servers) > 0 {
		req.Vars = c.operationVars(servers)
	}

	item := storage.Item{
		UID:     c.newID(),
		Name:    operationName(o),
		Type:    storage.TypeHTTPRequest,
		Tags:    tags,
		Request: req,
	}
	item.Examples = c.examples(o.op, req)

	return entry{item: item, path: o.path, folder: folder}
}

// addParameter classifies a parameter by location.
func (c *converter) addParameter(req *storage.Request, p spec.Object) {
	name := spec.GetString(p, "name")
	description := spec.GetString(p, "description")
	required := spec.GetBool(p, "required")

	switch in := strings.ToLower(spec.GetString(p, "in")); in {
	case "query", "querystring", "path":
		typ := storage.ParamQuery
		if in == "path" {
			typ = storage.ParamPath
		}
		s, _ := spec.GetObject(p, "schema")
		if schema.IsObject(s) {
			for _, prop := range schema.PropertyValues(p) {
				desc := prop.Description
				if desc == "" {
					desc = description
				}
				req.Params = append(req.Params, c.param(prop.Name, prop.Value, desc, required, typ))
			}
			return
		}
		req.Params = append(req.Params, c.param(name, schema.ParamValue(p), description, required, typ))

	case "header":
		req.Headers = append(req.Headers, storage.Header{
			UID:         c.newID(),
			Name:        name,
			Value:       "",
			Description: description,
			Enabled:     required,
		})

	default:
		c.logger.Debug("skipping parameter", "name", name, "in", spec.GetString(p, "in"))
	}
}

func (c *converter) param(name, value, description string, enabled bool, typ string) storage.Param {
	return storage.Param{
		UID:         c.newID(),
		Name:        name,
		Value:       value,
		Description: description,
		Enabled:     enabled,
		Type:        typ,
	}
}

// mergeParameters overlays operation parameters on path item parameters.
// An operation parameter with the same name and location replaces the path
// item one entirely. Path item parameters that are not overridden come first.
func mergeParameters(pathParams, opParams []any) []spec.Object {
	ops := spec.Objects(opParams)
	overridden := make(map[string]bool, len(ops))
	for _, p := range ops {
		overridden[paramKey(p)] = true
	}

	merged := make([]spec.Object, 0, len(pathParams)+len(ops))
	for _, p := range spec.Objects(pathParams) {
		if !overridden[paramKey(p)] {
			merged = append(merged, p)
		}
	}
	return append(merged, ops...)
}

func paramKey(p spec.Object) string {
	return strings.ToLower(spec.GetString(p, "in")) + ":" + spec.GetString(p, "name")
}

// operationName picks summary, operationId, description, then "METHOD path",
// with whitespace runs collapsed and control characters removed.
func operationName(o operation) string {
	for _, key := range []string{"summary", "operationId", "description"} {
		if name := cleanName(spec.GetString(o.op, key)); name != "" {
			return name
		}
	}
	return strings.ToUpper(o.method) + " " + o.path
}

func cleanName(s string) string {
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// sanitizeTags returns the sanitized, deduplicated tags of op and the
// trimmed original spelling of the first one.
func sanitizeTags(op spec.Object) ([]string, string) {
	raw, _ := spec.GetSlice(op, "tags")
	var (
		tags   []string
		folder string
		seen   = make(map[string]bool, len(raw))
	)
	for _, v := range raw {
		original, ok := v.(string)
		if !ok {
			continue
		}
		tag := sanitizeTag(original)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		if len(tags) == 0 {
			folder = strings.TrimSpace(original)
		}
		tags = append(tags, tag)
	}
	return tags, folder
}

func sanitizeTag(tag string) string {
	tag = tagSeparators.ReplaceAllString(tag, "_")
	tag = underscoreRuns.ReplaceAllString(tag, "_")
	return strings.Trim(tag, "_")
}

// toURLPath rewrites "{name}" path templates to ":name".
func toURLPath(path string) string {
	return pathParamPattern.ReplaceAllString(path, ":$1")
}
