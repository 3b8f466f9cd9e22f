package converter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blackcoderx/oasconv/pkg/schema"
	"github.com/blackcoderx/oasconv/pkg/spec"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

const baseURLVar = "baseUrl"

// serverVarPattern matches a "{name}" server URL template token.
var serverVarPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// environments projects the document's servers into one environment each.
func (c *converter) environments(servers []any) []storage.Environment {
	envs := make([]storage.Environment, 0, len(servers))
	for i, server := range spec.Objects(servers) {
		name := strings.TrimSpace(spec.GetString(server, "name"))
		if name == "" {
			name = strings.TrimSpace(spec.GetString(server, "description"))
		}
		if name == "" {
			name = fmt.Sprintf("Environment %d", i+1)
		}
		env := storage.Environment{
			UID:       c.newID(),
			Name:      name,
			Variables: c.serverVariables(server, storage.VariableText),
		}
		envs = append(envs, env)
	}
	return envs
}

// operationVars projects an operation's own servers into request-level
// variables. Only the first server is used; a request has a single
// baseUrl.
func (c *converter) operationVars(servers []any) *storage.Vars {
	vars := &storage.Vars{Req: []storage.Variable{}, Res: []storage.Variable{}}
	if list := spec.Objects(servers); len(list) > 0 {
		vars.Req = c.serverVariables(list[0], "")
	}
	return vars
}

// serverVariables returns baseUrl followed by one variable per declared
// server variable when the URL is templated.
func (c *converter) serverVariables(server spec.Object, typ string) []storage.Variable {
	url := spec.GetString(server, "url")
	templated := serverVarPattern.MatchString(url)
	if templated {
		url = serverVarPattern.ReplaceAllString(url, "{{$1}}")
	}

	vars := []storage.Variable{c.variable(baseURLVar, strings.TrimSuffix(url, "/"), typ)}
	if !templated {
		return vars
	}

	declared, _ := spec.GetObject(server, "variables")
	for name, v := range declared.All() {
		def, _ := v.(spec.Object)
		vars = append(vars, c.variable(name, serverVariableValue(def), typ))
	}
	return vars
}

func serverVariableValue(def spec.Object) string {
	if v, ok := spec.Get(def, "default"); ok && v != nil {
		return schema.Stringify(v)
	}
	if enum, ok := spec.GetSlice(def, "enum"); ok && len(enum) > 0 {
		return schema.Stringify(enum[0])
	}
	return ""
}

func (c *converter) variable(name, value, typ string) storage.Variable {
	return storage.Variable{
		UID:     c.newID(),
		Name:    name,
		Value:   value,
		Type:    typ,
		Enabled: true,
	}
}
