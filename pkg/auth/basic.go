package auth

import "github.com/blackcoderx/oasconv/pkg/storage"

// Placeholders written into credentials; users fill them in through
// environment variables.
const (
	usernamePlaceholder = "{{username}}"
	passwordPlaceholder = "{{password}}"
)

// basic maps an http/basic scheme.
func basic() Resolution {
	return Resolution{Auth: storage.Auth{
		Mode: storage.AuthBasic,
		Basic: &storage.Credentials{
			Username: usernamePlaceholder,
			Password: passwordPlaceholder,
		},
	}}
}

// digest maps an http/digest scheme. Digest uses the same credential pair as
// basic; the challenge/response exchange happens at execution time.
func digest() Resolution {
	return Resolution{Auth: storage.Auth{
		Mode: storage.AuthDigest,
		Digest: &storage.Credentials{
			Username: usernamePlaceholder,
			Password: passwordPlaceholder,
		},
	}}
}
