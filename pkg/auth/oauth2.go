package auth

import (
	"strings"

	"github.com/blackcoderx/oasconv/pkg/spec"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

const (
	clientIDPlaceholder     = "{{clientId}}"
	clientSecretPlaceholder = "{{clientSecret}}"
)

// flowGrants lists the OpenAPI flow keys in the order they are tried when a
// scheme declares several flows.
var flowGrants = []struct {
	flow  string
	grant string
}{
	{"authorizationCode", storage.GrantAuthorizationCode},
	{"clientCredentials", storage.GrantClientCredentials},
	{"password", storage.GrantPassword},
	{"implicit", storage.GrantImplicit},
}

// oauth2Flow maps an oauth2 scheme. The grant type comes from the first flow
// present; its URLs and scopes are copied over.
func oauth2Flow(scheme spec.Object) Resolution {
	cfg := &storage.OAuth2{
		ClientID:     clientIDPlaceholder,
		ClientSecret: clientSecretPlaceholder,
	}

	flows, _ := spec.GetObject(scheme, "flows")
	for _, fg := range flowGrants {
		flow, ok := spec.GetObject(flows, fg.flow)
		if !ok {
			continue
		}
		// implicit flows have no tokenUrl; clientCredentials and password
		// flows have no authorizationUrl
		cfg.GrantType = fg.grant
		cfg.AuthorizationURL = spec.GetString(flow, "authorizationUrl")
		cfg.AccessTokenURL = spec.GetString(flow, "tokenUrl")
		cfg.RefreshTokenURL = spec.GetString(flow, "refreshUrl")
		cfg.Scope = strings.Join(scopes(flow), " ")
		break
	}

	return Resolution{Auth: storage.Auth{
		Mode:   storage.AuthOAuth2,
		OAuth2: cfg,
	}}
}

func scopes(flow spec.Object) []string {
	m, ok := spec.GetObject(flow, "scopes")
	if !ok {
		return nil
	}
	out := make([]string, 0, m.Len())
	for name := range m.Keys() {
		out = append(out, name)
	}
	return out
}
