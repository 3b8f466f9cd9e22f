package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// varPattern matches {{VAR_NAME}} or {{env:VAR_NAME}}
var varPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// pathVarPattern matches :name path parameters in request URLs.
var pathVarPattern = regexp.MustCompile(`:([A-Za-z0-9_.\-]+)`)

// LoadEnvironment loads an environment from a YAML file
func LoadEnvironment(filePath string) (*Environment, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file: %w", err)
	}

	var env Environment
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse environment YAML: %w", err)
	}

	return &env, nil
}

// SaveEnvironment saves an environment to a YAML file
func SaveEnvironment(env Environment, filePath string) error {
	if !strings.HasSuffix(filePath, ".yaml") && !strings.HasSuffix(filePath, ".yml") {
		filePath = filePath + ".yaml"
	}
	return writeYAML(env, filePath)
}

// ListEnvironments lists all environment files
func ListEnvironments(baseDir string) ([]string, error) {
	envDir := GetEnvironmentsDir(baseDir)

	if _, err := os.Stat(envDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	var envs []string
	entries, err := os.ReadDir(envDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read environments directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && (strings.HasSuffix(entry.Name(), ".yaml") || strings.HasSuffix(entry.Name(), ".yml")) {
			name := strings.TrimSuffix(strings.TrimSuffix(entry.Name(), ".yaml"), ".yml")
			envs = append(envs, name)
		}
	}

	return envs, nil
}

// Values returns the enabled variables of an environment by name, with
// {{env:VAR}} references resolved against the process environment.
func (e Environment) Values() map[string]string {
	values := make(map[string]string, len(e.Variables))
	for _, v := range e.Variables {
		if v.Enabled {
			values[v.Name] = resolveEnvRefs(v.Value)
		}
	}
	return values
}

// SubstituteVariables replaces {{VAR}} placeholders with values from the environment
func SubstituteVariables(text string, env map[string]string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		varName := strings.TrimSpace(strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{"))

		// env: prefix references the system environment
		if strings.HasPrefix(varName, "env:") {
			if val := os.Getenv(strings.TrimPrefix(varName, "env:")); val != "" {
				return val
			}
			return match
		}

		if val, ok := env[varName]; ok {
			return val
		}

		return match
	})
}

// ApplyEnvironment returns a copy of req with variables substituted in the
// URL, header and param values, and text bodies.
func ApplyEnvironment(req *Request, env map[string]string) *Request {
	applied := *req
	applied.URL = SubstituteVariables(req.URL, env)

	applied.Headers = make([]Header, len(req.Headers))
	for i, h := range req.Headers {
		h.Value = SubstituteVariables(h.Value, env)
		applied.Headers[i] = h
	}

	applied.Params = make([]Param, len(req.Params))
	for i, p := range req.Params {
		p.Value = SubstituteVariables(p.Value, env)
		applied.Params[i] = p
	}

	applied.Body.JSON = SubstituteVariables(req.Body.JSON, env)
	applied.Body.Text = SubstituteVariables(req.Body.Text, env)
	applied.Body.XML = SubstituteVariables(req.Body.XML, env)

	return &applied
}

// ResolveURL builds the effective URL of a request: variables substituted,
// :name path parameters replaced by their values and enabled query params
// appended. Request-level vars take precedence over env.
func ResolveURL(req *Request, env map[string]string) string {
	vars := make(map[string]string, len(env))
	for k, v := range env {
		vars[k] = v
	}
	if req.Vars != nil {
		for _, v := range req.Vars.Req {
			if v.Enabled {
				vars[v.Name] = v.Value
			}
		}
	}

	applied := ApplyEnvironment(req, vars)
	resolved := applied.URL
	// baseUrl may itself be a template of server variables
	for range 2 {
		next := SubstituteVariables(resolved, vars)
		if next == resolved {
			break
		}
		resolved = next
	}

	pathValues := make(map[string]string)
	query := url.Values{}
	var queryOrder []string
	for _, p := range applied.Params {
		switch p.Type {
		case ParamPath:
			if p.Value != "" {
				pathValues[p.Name] = p.Value
			}
		case ParamQuery:
			if p.Enabled {
				if _, ok := query[p.Name]; !ok {
					queryOrder = append(queryOrder, p.Name)
				}
				query.Add(p.Name, p.Value)
			}
		}
	}

	// Only rewrite the path part; the scheme and port also contain colons
	prefix, path := splitOrigin(resolved)
	path = pathVarPattern.ReplaceAllStringFunc(path, func(match string) string {
		if val, ok := pathValues[strings.TrimPrefix(match, ":")]; ok {
			return url.PathEscape(val)
		}
		return match
	})
	resolved = prefix + path

	if len(queryOrder) == 0 {
		return resolved
	}
	var parts []string
	for _, name := range queryOrder {
		for _, v := range query[name] {
			parts = append(parts, url.QueryEscape(name)+"="+url.QueryEscape(v))
		}
	}
	sep := "?"
	if strings.Contains(resolved, "?") {
		sep = "&"
	}
	return resolved + sep + strings.Join(parts, "&")
}

// splitOrigin splits "scheme://host:port/path" into its origin and path.
func splitOrigin(u string) (string, string) {
	i := strings.Index(u, "://")
	if i < 0 {
		return "", u
	}
	rest := u[i+3:]
	j := strings.Index(rest, "/")
	if j < 0 {
		return u, ""
	}
	return u[:i+3+j], rest[j:]
}

// resolveEnvRefs resolves {{env:VAR}} references in a string
func resolveEnvRefs(text string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		varName := strings.TrimSpace(strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{"))

		if strings.HasPrefix(varName, "env:") {
			if val := os.Getenv(strings.TrimPrefix(varName, "env:")); val != "" {
				return val
			}
		}
		return match
	})
}

// FindEnvironment returns the environment with the given name, or the first
// one when name is empty.
func FindEnvironment(envs []Environment, name string) (*Environment, error) {
	if len(envs) == 0 {
		return nil, fmt.Errorf("collection has no environments")
	}
	if name == "" {
		return &envs[0], nil
	}
	for i := range envs {
		if strings.EqualFold(envs[i].Name, name) {
			return &envs[i], nil
		}
	}
	return nil, fmt.Errorf("environment %q not found", name)
}

// envFilePath returns where SaveCollection writes env under dir.
func envFilePath(dir string, env Environment) string {
	return filepath.Join(GetEnvironmentsDir(dir), SafeFileName(env.Name)+".yaml")
}
