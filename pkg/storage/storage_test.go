package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest(uid, name string, seq int) Item {
	return Item{
		UID:  uid,
		Name: name,
		Type: TypeHTTPRequest,
		Seq:  seq,
		Request: &Request{
			URL:     "{{baseUrl}}/users/:id",
			Method:  "GET",
			Auth:    Auth{Mode: AuthBearer, Bearer: &Bearer{Token: "{{token}}"}},
			Headers: []Header{},
			Params: []Param{
				{UID: uid + "-p1", Name: "id", Value: "42", Enabled: true, Type: ParamPath},
				{UID: uid + "-p2", Name: "fields", Value: "name,email", Enabled: true, Type: ParamQuery},
				{UID: uid + "-p3", Name: "debug", Value: "1", Enabled: false, Type: ParamQuery},
			},
			Body: Body{Mode: BodyNone, FormURLEncoded: []FormField{}, MultipartForm: []FormField{}},
		},
	}
}

func sampleCollection() *Collection {
	return &Collection{
		Name:    "Users API",
		UID:     "c1",
		Version: "1",
		Items: []Item{
			{
				UID:  "f1",
				Name: "users",
				Type: TypeFolder,
				Items: []Item{
					sampleRequest("r1", "Get User", 1),
					sampleRequest("r2", "Get User", 2),
				},
			},
			sampleRequest("r3", "Health / Check", 1),
		},
		Environments: []Environment{
			{
				UID:  "e1",
				Name: "Production",
				Variables: []Variable{
					{UID: "v1", Name: "baseUrl", Value: "https://api.example.com", Type: VariableText, Enabled: true},
				},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(sampleCollection()))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Collection)
	}{
		{"empty uid", func(c *Collection) { c.UID = "" }},
		{"empty name", func(c *Collection) { c.Name = "" }},
		{"wrong version", func(c *Collection) { c.Version = "2" }},
		{"unknown auth mode", func(c *Collection) { c.Items[1].Request.Auth.Mode = "kerberos" }},
		{"unknown method", func(c *Collection) { c.Items[1].Request.Method = "get" }},
		{"request without seq", func(c *Collection) { c.Items[1].Seq = 0 }},
		{"folder with request", func(c *Collection) { c.Items[0].Request = &Request{} }},
		{"unknown param type", func(c *Collection) { c.Items[1].Request.Params[0].Type = "cookie" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sampleCollection()
			tt.mutate(c)

			err := Validate(c)
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.NotEmpty(t, verr.Problems)
		})
	}
}

func TestWriteReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "collection.json")
	c := sampleCollection()

	require.NoError(t, WriteJSON(c, path))
	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestSaveCollection(t *testing.T) {
	dir := t.TempDir()
	c := sampleCollection()

	require.NoError(t, SaveCollection(c, dir))

	files, err := ListRequests(dir)
	require.NoError(t, err)
	sort.Strings(files)
	assert.Equal(t, []string{
		"Health _ Check.yaml",
		filepath.Join("users", "Get User (1).yaml"),
		filepath.Join("users", "Get User.yaml"),
	}, files)

	item, err := LoadRequest(filepath.Join(dir, "users", "Get User (1).yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Get User", item.Name)
	assert.Equal(t, "r2", item.UID)
	assert.Equal(t, c.Items[0].Items[1].Request, item.Request)

	envs, err := ListEnvironments(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Production"}, envs)

	env, err := LoadEnvironment(filepath.Join(GetEnvironmentsDir(dir), "Production.yaml"))
	require.NoError(t, err)
	assert.Equal(t, c.Environments[0], *env)

	_, err = os.Stat(filepath.Join(dir, CollectionFile))
	assert.NoError(t, err)
}

func TestListRequests_MissingDir(t *testing.T) {
	files, err := ListRequests(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.yaml")
	require.NoError(t, WriteYAML(sampleCollection(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Users API")
}

func TestSubstituteVariables(t *testing.T) {
	t.Setenv("OASCONV_TEST_TOKEN", "secret")

	env := map[string]string{"host": "example.com", "port": "8080"}
	tests := []struct {
		in, want string
	}{
		{"https://{{host}}:{{port}}", "https://example.com:8080"},
		{"{{ host }}", "example.com"},
		{"{{missing}}", "{{missing}}"},
		{"Bearer {{env:OASCONV_TEST_TOKEN}}", "Bearer secret"},
		{"{{env:OASCONV_TEST_UNSET}}", "{{env:OASCONV_TEST_UNSET}}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SubstituteVariables(tt.in, env))
	}
}

func TestResolveURL(t *testing.T) {
	env := map[string]string{"baseUrl": "https://api.example.com:8443/v1"}

	req := sampleRequest("r", "Get", 1).Request
	assert.Equal(t, "https://api.example.com:8443/v1/users/42?fields=name%2Cemail", ResolveURL(req, env))

	req.Vars = &Vars{Req: []Variable{{Name: "baseUrl", Value: "https://{{region}}.example.com", Enabled: true}, {Name: "region", Value: "eu", Enabled: true}}}
	assert.Equal(t, "https://eu.example.com/users/42?fields=name%2Cemail", ResolveURL(req, env))
}

func TestEnvironmentValues(t *testing.T) {
	t.Setenv("OASCONV_TEST_HOST", "from-env")

	env := Environment{Variables: []Variable{
		{Name: "a", Value: "1", Enabled: true},
		{Name: "b", Value: "2", Enabled: false},
		{Name: "host", Value: "{{env:OASCONV_TEST_HOST}}", Enabled: true},
	}}
	assert.Equal(t, map[string]string{"a": "1", "host": "from-env"}, env.Values())
}

func TestFindEnvironment(t *testing.T) {
	envs := sampleCollection().Environments

	env, err := FindEnvironment(envs, "")
	require.NoError(t, err)
	assert.Equal(t, "Production", env.Name)

	env, err = FindEnvironment(envs, "production")
	require.NoError(t, err)
	assert.Equal(t, "e1", env.UID)

	_, err = FindEnvironment(envs, "staging")
	assert.Error(t, err)

	_, err = FindEnvironment(nil, "")
	assert.Error(t, err)
}

func TestOAuth2Config(t *testing.T) {
	o := &OAuth2{
		GrantType:      GrantClientCredentials,
		AccessTokenURL: "https://{{authHost}}/token",
		ClientID:       "{{clientId}}",
		ClientSecret:   "{{clientSecret}}",
		Scope:          "read:items  write:items",
	}
	env := map[string]string{"authHost": "auth.example.com", "clientId": "app", "clientSecret": "s3cret"}

	cfg := OAuth2Config(o, env)
	assert.Equal(t, "app", cfg.ClientID)
	assert.Equal(t, "s3cret", cfg.ClientSecret)
	assert.Equal(t, "https://auth.example.com/token", cfg.Endpoint.TokenURL)
	assert.Empty(t, cfg.Endpoint.AuthURL)
	assert.Equal(t, []string{"read:items", "write:items"}, cfg.Scopes)
}

func TestAuthorizeURL(t *testing.T) {
	env := map[string]string{"clientId": "app"}
	tests := []struct {
		name string
		o    *OAuth2
		want string
	}{
		{
			name: "authorization code",
			o: &OAuth2{
				GrantType:        GrantAuthorizationCode,
				AuthorizationURL: "https://a.example.com/authorize",
				ClientID:         "{{clientId}}",
				Scope:            "openid profile",
			},
			want: "https://a.example.com/authorize?client_id=app&response_type=code&scope=openid+profile&state=xyz",
		},
		{
			name: "implicit asks for a token",
			o: &OAuth2{
				GrantType:        GrantImplicit,
				AuthorizationURL: "https://a.example.com/authorize?audience=api",
				ClientID:         "{{clientId}}",
			},
			want: "https://a.example.com/authorize?audience=api&client_id=app&response_type=token&state=xyz",
		},
		{
			name: "client credentials has no consent page",
			o:    &OAuth2{GrantType: GrantClientCredentials, AccessTokenURL: "https://a.example.com/token"},
		},
		{
			name: "missing authorization url",
			o:    &OAuth2{GrantType: GrantAuthorizationCode},
		},
		{
			name: "nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthorizeURL(tt.o, env, "xyz"))
		})
	}
}
