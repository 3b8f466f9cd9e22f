package storage

import (
	"strings"

	"golang.org/x/oauth2"
)

// OAuth2Config builds the client configuration described by o, with
// {{var}} placeholders resolved from env. Scopes are space separated.
func OAuth2Config(o *OAuth2, env map[string]string) *oauth2.Config {
	sub := func(s string) string { return SubstituteVariables(s, env) }
	return &oauth2.Config{
		ClientID:     sub(o.ClientID),
		ClientSecret: sub(o.ClientSecret),
		RedirectURL:  sub(o.CallbackURL),
		Scopes:       strings.Fields(sub(o.Scope)),
		Endpoint: oauth2.Endpoint{
			AuthURL:  sub(o.AuthorizationURL),
			TokenURL: sub(o.AccessTokenURL),
		},
	}
}

// AuthorizeURL returns the consent page a browser based grant starts from.
// Grants that only talk to the token endpoint return "".
func AuthorizeURL(o *OAuth2, env map[string]string, state string) string {
	if o == nil || o.AuthorizationURL == "" {
		return ""
	}
	cfg := OAuth2Config(o, env)
	switch o.GrantType {
	case GrantAuthorizationCode:
		return cfg.AuthCodeURL(state)
	case GrantImplicit:
		return cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("response_type", "token"))
	default:
		return ""
	}
}
