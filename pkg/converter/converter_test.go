package converter

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/oasconv/pkg/storage"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// convertDoc converts doc with deterministic ids and fails the test on error.
func convertDoc(t *testing.T, doc any, opts ...Option) *storage.Collection {
	t.Helper()
	opts = append([]Option{WithIDGenerator(sequentialIDs())}, opts...)
	coll, err := Convert(doc, opts...)
	require.NoError(t, err)
	require.NotNil(t, coll)
	return coll
}

// findItem returns the first item named name, searching depth first.
func findItem(items []storage.Item, name string) *storage.Item {
	for i := range items {
		if items[i].Name == name {
			return &items[i]
		}
		if found := findItem(items[i].Items, name); found != nil {
			return found
		}
	}
	return nil
}

func mustFind(t *testing.T, items []storage.Item, name string) *storage.Item {
	t.Helper()
	it := findItem(items, name)
	require.NotNilf(t, it, "no item named %q", name)
	return it
}

func minimalPaths() map[string]any {
	return map[string]any{
		"/ping": map[string]any{
			"get": map[string]any{"summary": "Ping"},
		},
	}
}

func TestConvert_CollectionName(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		opts []Option
		want string
	}{
		{
			name: "blank title",
			doc:  map[string]any{"info": map[string]any{"title": "  "}, "paths": minimalPaths()},
			want: "Untitled Collection",
		},
		{
			name: "info without title",
			doc:  map[string]any{"info": map[string]any{}, "paths": minimalPaths()},
			want: "Untitled Collection",
		},
		{
			name: "no info",
			doc:  map[string]any{"paths": minimalPaths()},
			want: "Untitled Collection",
		},
		{
			name: "title is trimmed",
			doc:  map[string]any{"info": map[string]any{"title": "  My API  "}, "paths": minimalPaths()},
			want: "My API",
		},
		{
			name: "override wins",
			doc:  map[string]any{"info": map[string]any{"title": "My API"}, "paths": minimalPaths()},
			opts: []Option{WithCollectionName(" Renamed ")},
			want: "Renamed",
		},
		{
			name: "blank override is ignored",
			doc:  map[string]any{"info": map[string]any{"title": "My API"}, "paths": minimalPaths()},
			opts: []Option{WithCollectionName("   ")},
			want: "My API",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll := convertDoc(t, tt.doc, tt.opts...)
			assert.Equal(t, tt.want, coll.Name)
			assert.Equal(t, "1", coll.Version)
		})
	}
}

func TestConvert_Failures(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantLog string
	}{
		{
			name:    "swagger 2",
			input:   `{"swagger": "2.0", "paths": {}}`,
			wantLog: "Only OpenAPI v3 is supported currently",
		},
		{
			name:    "openapi 2",
			input:   "openapi: 2.0.0\npaths: {}\n",
			wantLog: "Only OpenAPI v3 is supported currently",
		},
		{
			name:    "openapi 4",
			input:   "openapi: 4.0.0\npaths: {}\n",
			wantLog: "Only OpenAPI v3 is supported currently",
		},
		{
			name:    "missing paths",
			input:   "openapi: 3.0.0\ninfo: {title: x}\n",
			wantLog: "OpenAPI document has no paths",
		},
		{
			name:    "empty object",
			input:   map[string]any{},
			wantLog: "OpenAPI document has no paths",
		},
		{
			name:    "malformed text",
			input:   "openapi: [3.0",
			wantLog: "failed to parse document",
		},
		{
			name:    "unsupported input",
			input:   42,
			wantLog: "unsupported document input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			coll, err := Convert(tt.input, WithLogger(logger))
			assert.Nil(t, coll)
			assert.Equal(t, ErrImportFailed, err)
			assert.Contains(t, logs.String(), tt.wantLog)
		})
	}
}

func TestConvert_AcceptedVersions(t *testing.T) {
	for _, version := range []string{"", "openapi: 3.0.0\n", "openapi: 3.1.0\n", "openapi: \"3.0\"\n"} {
		t.Run(version, func(t *testing.T) {
			convertDoc(t, version+"paths:\n  /ping:\n    get: {summary: Ping}\n")
		})
	}
}

func TestConvert_EndToEnd(t *testing.T) {
	doc := `{
  "openapi": "3.0.0",
  "info": {"title": "Hello World OpenAPI", "version": "1.0.0"},
  "servers": [{"url": "https://httpbin.org"}],
  "paths": {
    "/get": {
      "get": {
        "summary": "Request and Response",
        "tags": ["Folder1", "Folder2"],
        "responses": {"200": {"description": "OK"}}
      }
    }
  }
}`

	coll := convertDoc(t, doc)

	assert.Equal(t, "Hello World OpenAPI", coll.Name)
	require.Len(t, coll.Environments, 1)
	env := coll.Environments[0]
	assert.Equal(t, "Environment 1", env.Name)
	require.Len(t, env.Variables, 1)
	assert.Equal(t, "baseUrl", env.Variables[0].Name)
	assert.Equal(t, "https://httpbin.org", env.Variables[0].Value)

	require.Len(t, coll.Items, 1)
	folder := coll.Items[0]
	assert.Equal(t, "Folder1", folder.Name)
	assert.True(t, folder.IsFolder())
	require.Len(t, folder.Items, 1)

	item := folder.Items[0]
	assert.Equal(t, "Request and Response", item.Name)
	assert.Equal(t, storage.TypeHTTPRequest, item.Type)
	assert.Equal(t, 1, item.Seq)
	assert.Equal(t, []string{"Folder1", "Folder2"}, item.Tags)
	require.NotNil(t, item.Request)
	assert.Equal(t, "GET", item.Request.Method)
	assert.Equal(t, "{{baseUrl}}/get", item.Request.URL)
	assert.Equal(t, storage.BodyNone, item.Request.Body.Mode)
	assert.Equal(t, storage.AuthNone, item.Request.Auth.Mode)
	assert.Empty(t, item.Request.Headers)
	assert.Empty(t, item.Request.Params)
	assert.Nil(t, item.Request.Vars)
	assert.Empty(t, item.Examples)
}

func TestConvert_Deterministic(t *testing.T) {
	doc := []byte(`
openapi: 3.0.3
info: {title: Pets}
servers:
  - url: https://{env}.example.com
    variables:
      env: {default: prod}
paths:
  /pets:
    get:
      tags: [pets]
      parameters:
        - {name: limit, in: query, schema: {type: integer, minimum: 1}}
    post:
      tags: [pets]
      requestBody:
        content:
          application/json:
            schema: {$ref: '#/components/schemas/Pet'}
  /pets/{id}:
    get:
      tags: [pets]
components:
  schemas:
    Pet:
      type: object
      properties:
        name: {type: string}
        parent: {$ref: '#/components/schemas/Pet'}
`)

	for _, groupBy := range []GroupBy{GroupByTags, GroupByPath} {
		t.Run(string(groupBy), func(t *testing.T) {
			first := convertDoc(t, doc, WithGroupBy(groupBy))
			second := convertDoc(t, doc, WithGroupBy(groupBy))
			assert.Equal(t, first, second)

			a, err := storage.MarshalJSON(first)
			require.NoError(t, err)
			b, err := storage.MarshalJSON(second)
			require.NoError(t, err)
			assert.Equal(t, string(a), string(b))
		})
	}
}

func TestConvert_DefaultIDsAreUUIDs(t *testing.T) {
	coll, err := Convert(map[string]any{"paths": minimalPaths()})
	require.NoError(t, err)

	_, err = uuid.Parse(coll.UID)
	assert.NoError(t, err)
	require.Len(t, coll.Items, 1)
	_, err = uuid.Parse(coll.Items[0].UID)
	assert.NoError(t, err)
}

func TestConvert_UniqueIDs(t *testing.T) {
	coll := convertDoc(t, `
paths:
  /a:
    get:
      tags: [x]
      parameters: [{name: q, in: query}, {name: h, in: header}]
      responses:
        "200":
          content:
            application/json:
              examples: {one: {value: 1}}
servers: [{url: "https://{h}", variables: {h: {default: x}}}]
`)

	seen := make(map[string]bool)
	check := func(id string) {
		require.NotEmpty(t, id)
		assert.Falsef(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	check(coll.UID)
	for _, env := range coll.Environments {
		check(env.UID)
		for _, v := range env.Variables {
			check(v.UID)
		}
	}
	var walk func(items []storage.Item)
	walk = func(items []storage.Item) {
		for _, it := range items {
			check(it.UID)
			walk(it.Items)
			if it.Request != nil {
				for _, h := range it.Request.Headers {
					check(h.UID)
				}
				for _, p := range it.Request.Params {
					check(p.UID)
				}
			}
			for _, ex := range it.Examples {
				check(ex.UID)
			}
		}
	}
	walk(coll.Items)
}

func TestConvert_ValidationCanBeDisabled(t *testing.T) {
	// An empty id generator yields a collection the schema rejects.
	empty := func() string { return "" }

	_, err := Convert(map[string]any{"paths": minimalPaths()}, WithIDGenerator(empty))
	assert.Equal(t, ErrImportFailed, err)

	coll, err := Convert(map[string]any{"paths": minimalPaths()}, WithIDGenerator(empty), WithValidation(false))
	require.NoError(t, err)
	assert.Equal(t, "", coll.UID)
}

func TestParseGroupBy(t *testing.T) {
	tests := []struct {
		in      string
		want    GroupBy
		wantErr bool
	}{
		{"", GroupByTags, false},
		{"tags", GroupByTags, false},
		{" PATH ", GroupByPath, false},
		{"folders", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGroupBy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
