package auth

import "github.com/blackcoderx/oasconv/pkg/storage"

const tokenPlaceholder = "{{token}}"

// bearer maps an http/bearer scheme (JWTs, API tokens). bearerFormat is
// informational only and does not change the mapping.
func bearer() Resolution {
	return Resolution{Auth: storage.Auth{
		Mode:   storage.AuthBearer,
		Bearer: &storage.Bearer{Token: tokenPlaceholder},
	}}
}
