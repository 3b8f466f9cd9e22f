package auth

import (
	"strings"

	"github.com/blackcoderx/oasconv/pkg/spec"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

const apiKeyPlaceholder = "{{apiKey}}"

// apiKey maps an apiKey scheme. Header and cookie keys are sent as a header
// named after the scheme's "name"; query keys become an enabled query param.
func (m *Mapper) apiKey(scheme spec.Object) Resolution {
	name := spec.GetString(scheme, "name")

	res := Resolution{Auth: storage.Auth{
		Mode: storage.AuthAPIKey,
		APIKey: &storage.APIKey{
			Key:       name,
			Value:     apiKeyPlaceholder,
			Placement: storage.PlacementHeader,
		},
	}}

	switch strings.ToLower(spec.GetString(scheme, "in")) {
	case "query":
		res.Auth.APIKey.Placement = storage.PlacementQueryParams
		res.Params = append(res.Params, storage.Param{
			UID:     m.newID(),
			Name:    name,
			Value:   apiKeyPlaceholder,
			Enabled: true,
			Type:    storage.ParamQuery,
		})
	default:
		// header, and cookie which is carried as a header
		res.Headers = append(res.Headers, storage.Header{
			UID:     m.newID(),
			Name:    name,
			Value:   apiKeyPlaceholder,
			Enabled: true,
		})
	}
	return res
}
