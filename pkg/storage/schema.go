package storage

// Item types.
const (
	TypeFolder      = "folder"
	TypeHTTPRequest = "http-request"
)

// Param types.
const (
	ParamQuery = "query"
	ParamPath  = "path"
)

// AuthMode is the closed set of auth configurations a request can carry.
type AuthMode string

const (
	AuthNone    AuthMode = "none"
	AuthInherit AuthMode = "inherit"
	AuthBasic   AuthMode = "basic"
	AuthBearer  AuthMode = "bearer"
	AuthDigest  AuthMode = "digest"
	AuthAPIKey  AuthMode = "apikey"
	AuthOAuth2  AuthMode = "oauth2"
)

// BodyMode is the closed set of request body encodings.
type BodyMode string

const (
	BodyNone           BodyMode = "none"
	BodyJSON           BodyMode = "json"
	BodyText           BodyMode = "text"
	BodyXML            BodyMode = "xml"
	BodyFormURLEncoded BodyMode = "formUrlEncoded"
	BodyMultipartForm  BodyMode = "multipartForm"
)

// Collection is the root of a converted API: a tree of folders and requests
// plus the environments they run against.
type Collection struct {
	Name         string        `json:"name" yaml:"name"`
	UID          string        `json:"uid" yaml:"uid"`
	Version      string        `json:"version" yaml:"version"`
	Items        []Item        `json:"items" yaml:"items"`
	Environments []Environment `json:"environments" yaml:"environments"`
}

// Item is either a folder (Type == TypeFolder, Items set) or a request
// (Type == TypeHTTPRequest, Request set).
type Item struct {
	UID      string    `json:"uid" yaml:"uid"`
	Name     string    `json:"name" yaml:"name"`
	Type     string    `json:"type" yaml:"type"`
	Seq      int       `json:"seq,omitempty" yaml:"seq,omitempty"`
	Tags     []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Request  *Request  `json:"request,omitempty" yaml:"request,omitempty"`
	Examples []Example `json:"examples,omitempty" yaml:"examples,omitempty"`
	Items    []Item    `json:"items,omitempty" yaml:"items,omitempty"`
}

// IsFolder reports whether the item is a folder.
func (i Item) IsFolder() bool { return i.Type == TypeFolder }

// Request is the executable part of a request item.
type Request struct {
	URL     string   `json:"url" yaml:"url"`
	Method  string   `json:"method" yaml:"method"`
	Auth    Auth     `json:"auth" yaml:"auth"`
	Headers []Header `json:"headers" yaml:"headers"`
	Params  []Param  `json:"params" yaml:"params"`
	Body    Body     `json:"body" yaml:"body"`
	Script  Script   `json:"script" yaml:"script"`
	Vars    *Vars    `json:"vars,omitempty" yaml:"vars,omitempty"`
}

// Header is a request or response header entry.
type Header struct {
	UID         string `json:"uid" yaml:"uid"`
	Name        string `json:"name" yaml:"name"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// Param is a query or path parameter.
type Param struct {
	UID         string `json:"uid" yaml:"uid"`
	Name        string `json:"name" yaml:"name"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Type        string `json:"type" yaml:"type"`
}

// Auth holds the selected mode and the settings for that mode only.
type Auth struct {
	Mode   AuthMode     `json:"mode" yaml:"mode"`
	Basic  *Credentials `json:"basic,omitempty" yaml:"basic,omitempty"`
	Digest *Credentials `json:"digest,omitempty" yaml:"digest,omitempty"`
	Bearer *Bearer      `json:"bearer,omitempty" yaml:"bearer,omitempty"`
	APIKey *APIKey      `json:"apikey,omitempty" yaml:"apikey,omitempty"`
	OAuth2 *OAuth2      `json:"oauth2,omitempty" yaml:"oauth2,omitempty"`
}

// Credentials are username/password placeholders for basic and digest auth.
type Credentials struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// Bearer is a bearer token placeholder.
type Bearer struct {
	Token string `json:"token" yaml:"token"`
}

// APIKey placements.
const (
	PlacementHeader      = "header"
	PlacementQueryParams = "queryparams"
)

// APIKey describes where an API key is sent.
type APIKey struct {
	Key       string `json:"key" yaml:"key"`
	Value     string `json:"value" yaml:"value"`
	Placement string `json:"placement" yaml:"placement"`
}

// OAuth2 grant types.
const (
	GrantAuthorizationCode = "authorization_code"
	GrantClientCredentials = "client_credentials"
	GrantPassword          = "password"
	GrantImplicit          = "implicit"
)

// OAuth2 carries the flow settings copied from the security scheme.
type OAuth2 struct {
	GrantType        string `json:"grantType" yaml:"grantType"`
	AuthorizationURL string `json:"authorizationUrl" yaml:"authorizationUrl"`
	AccessTokenURL   string `json:"accessTokenUrl" yaml:"accessTokenUrl"`
	RefreshTokenURL  string `json:"refreshTokenUrl" yaml:"refreshTokenUrl"`
	CallbackURL      string `json:"callbackUrl" yaml:"callbackUrl"`
	ClientID         string `json:"clientId" yaml:"clientId"`
	ClientSecret     string `json:"clientSecret" yaml:"clientSecret"`
	Scope            string `json:"scope" yaml:"scope"`
}

// Body holds the selected mode plus the content for every mode.
type Body struct {
	Mode           BodyMode    `json:"mode" yaml:"mode"`
	JSON           string      `json:"json,omitempty" yaml:"json,omitempty"`
	Text           string      `json:"text,omitempty" yaml:"text,omitempty"`
	XML            string      `json:"xml,omitempty" yaml:"xml,omitempty"`
	FormURLEncoded []FormField `json:"formUrlEncoded" yaml:"formUrlEncoded"`
	MultipartForm  []FormField `json:"multipartForm" yaml:"multipartForm"`
}

// FieldText is the type of multipart text fields.
const FieldText = "text"

// FormField is an url-encoded or multipart form entry. Type is only set for
// multipart entries.
type FormField struct {
	UID         string `json:"uid" yaml:"uid"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// Script holds post-response script source.
type Script struct {
	Res string `json:"res,omitempty" yaml:"res,omitempty"`
}

// Vars are request-scoped variable overrides.
type Vars struct {
	Req []Variable `json:"req" yaml:"req"`
	Res []Variable `json:"res" yaml:"res"`
}

// Environment is a named set of variables used for {{name}} substitution.
type Environment struct {
	UID       string     `json:"uid" yaml:"uid"`
	Name      string     `json:"name" yaml:"name"`
	Variables []Variable `json:"variables" yaml:"variables"`
}

// VariableText is the type of every environment variable.
const VariableText = "text"

// Example body types.
const (
	ExampleJSON = "json"
	ExampleText = "text"
)

// Variable is an environment or request variable.
type Variable struct {
	UID     string `json:"uid" yaml:"uid"`
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value" yaml:"value"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Secret  bool   `json:"secret" yaml:"secret"`
}

// Example is a named request or response sample attached to a request item.
type Example struct {
	UID         string           `json:"uid" yaml:"uid"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Request     *ExampleRequest  `json:"request,omitempty" yaml:"request,omitempty"`
	Response    *ExampleResponse `json:"response,omitempty" yaml:"response,omitempty"`
}

// ExampleRequest is a sample request payload.
type ExampleRequest struct {
	URL    string `json:"url" yaml:"url"`
	Method string `json:"method" yaml:"method"`
	Body   Body   `json:"body" yaml:"body"`
}

// ExampleResponse is a sample response.
type ExampleResponse struct {
	Status     int         `json:"status" yaml:"status"`
	StatusText string      `json:"statusText" yaml:"statusText"`
	Headers    []Header    `json:"headers" yaml:"headers"`
	Body       ExampleBody `json:"body" yaml:"body"`
}

// ExampleBody is the typed content of a sample response.
type ExampleBody struct {
	Type    string `json:"type" yaml:"type"`
	Content string `json:"content" yaml:"content"`
}
