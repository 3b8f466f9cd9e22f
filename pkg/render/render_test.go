package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/oasconv/pkg/storage"
)

func request(name, method, url string) storage.Item {
	return storage.Item{
		Name: name,
		Type: storage.TypeHTTPRequest,
		Request: &storage.Request{
			URL:    url,
			Method: method,
			Auth:   storage.Auth{Mode: storage.AuthNone},
		},
	}
}

func sample() *storage.Collection {
	secured := request("Create Pet", "POST", "{{baseUrl}}/pets")
	secured.Request.Auth.Mode = storage.AuthBearer

	login := request("Login", "GET", "{{baseUrl}}/me")
	login.Request.Auth = storage.Auth{
		Mode: storage.AuthOAuth2,
		OAuth2: &storage.OAuth2{
			GrantType:        storage.GrantAuthorizationCode,
			AuthorizationURL: "https://auth.example.com/authorize",
			ClientID:         "{{clientId}}",
			Scope:            "pets",
		},
	}

	return &storage.Collection{
		Name: "Pets",
		Items: []storage.Item{
			{
				Name: "pets",
				Type: storage.TypeFolder,
				Items: []storage.Item{
					request("List Pets", "GET", "{{baseUrl}}/pets"),
					secured,
					{Name: "empty", Type: storage.TypeFolder},
				},
			},
			request("Health", "GET", "{{baseUrl}}/health"),
			login,
		},
		Environments: []storage.Environment{{
			Name: "Production",
			Variables: []storage.Variable{
				{Name: "baseUrl", Value: "https://pets.example.com", Enabled: true},
				{Name: "clientId", Value: "pets-cli", Enabled: true},
			},
		}},
	}
}

func TestCount(t *testing.T) {
	folders, requests := Count(sample().Items)
	assert.Equal(t, 2, folders)
	assert.Equal(t, 4, requests)

	folders, requests = Count(nil)
	assert.Zero(t, folders)
	assert.Zero(t, requests)
}

func TestSummaryMarkdown(t *testing.T) {
	c := sample()

	md := SummaryMarkdown(c, nil)
	assert.True(t, strings.HasPrefix(md, "# Pets\n"))
	assert.Contains(t, md, "- **Production** `baseUrl=https://pets.example.com` `clientId=pets-cli`")
	assert.Contains(t, md, "## Requests (4 in 2 folders)")
	assert.NotContains(t, md, "[authorize]")
	assert.Contains(t, md, "  - `GET` List Pets `{{baseUrl}}/pets`")
	assert.Contains(t, md, "`POST` Create Pet `{{baseUrl}}/pets` _(auth: bearer)_")

	resolved := SummaryMarkdown(c, &c.Environments[0])
	assert.Contains(t, resolved, "- `GET` Health `https://pets.example.com/health`")
	assert.Contains(t, resolved, "- `GET` Login `https://pets.example.com/me` _(auth: oauth2)_ "+
		"[authorize](https://auth.example.com/authorize?client_id=pets-cli&response_type=code&scope=pets)")
}

func TestUnifiedDiff(t *testing.T) {
	same, err := UnifiedDiff("x", "x", "a\nb\n", "a\nb\n")
	require.NoError(t, err)
	assert.Empty(t, same)

	diff, err := UnifiedDiff("old.json", "new.json", "a\nb\nc\n", "a\nB\nc\n")
	require.NoError(t, err)
	assert.Contains(t, diff, "--- a/old.json")
	assert.Contains(t, diff, "+++ b/new.json")
	assert.Contains(t, diff, "-b\n")
	assert.Contains(t, diff, "+B\n")
}

func TestColorDiff_KeepsLines(t *testing.T) {
	in := "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n same"
	out := ColorDiff(in)
	assert.Len(t, strings.Split(out, "\n"), 6)
	assert.Contains(t, out, "old")
	assert.Contains(t, out, "new")
}

func TestHighlightJSON_InvalidPassesThrough(t *testing.T) {
	assert.Equal(t, "not json", HighlightJSON("not json"))
}
