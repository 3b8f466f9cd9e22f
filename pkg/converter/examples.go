package converter

import (
	"net/http"
	"strconv"

	"github.com/blackcoderx/oasconv/pkg/schema"
	"github.com/blackcoderx/oasconv/pkg/spec"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

// examples collects the named examples of every response, followed by the
// named examples of a JSON request body. It returns nil when there are none.
func (c *converter) examples(op spec.Object, req *storage.Request) []storage.Example {
	var out []storage.Example

	responses, _ := spec.GetObject(op, "responses")
	for code, v := range responses.All() {
		resp, _ := v.(spec.Object)
		content, _ := spec.GetObject(resp, "content")
		status, statusText := responseStatus(code)

		for contentType, mv := range content.All() {
			media, _ := mv.(spec.Object)
			named, _ := spec.GetObject(media, "examples")
			for key, ev := range named.All() {
				ex, _ := ev.(spec.Object)
				value, _ := spec.Get(ex, "value")

				body := storage.ExampleBody{Type: storage.ExampleText, Content: schema.Stringify(value)}
				if classifyMedia(contentType) == mediaJSON {
					body = storage.ExampleBody{Type: storage.ExampleJSON, Content: prettyJSON(value)}
				}

				out = append(out, storage.Example{
					UID:         c.newID(),
					Name:        exampleName(ex, key),
					Description: spec.GetString(ex, "description"),
					Response: &storage.ExampleResponse{
						Status:     status,
						StatusText: statusText,
						Headers: []storage.Header{{
							UID:     c.newID(),
							Name:    "Content-Type",
							Value:   contentType,
							Enabled: true,
						}},
						Body: body,
					},
				})
			}
		}
	}

	rb, _ := spec.GetObject(op, "requestBody")
	content, _ := spec.GetObject(rb, "content")
	for contentType, mv := range content.All() {
		if classifyMedia(contentType) != mediaJSON {
			continue
		}
		media, _ := mv.(spec.Object)
		named, _ := spec.GetObject(media, "examples")
		for key, ev := range named.All() {
			ex, _ := ev.(spec.Object)
			value, _ := spec.Get(ex, "value")
			out = append(out, storage.Example{
				UID:         c.newID(),
				Name:        exampleName(ex, key),
				Description: spec.GetString(ex, "description"),
				Request: &storage.ExampleRequest{
					URL:    req.URL,
					Method: req.Method,
					Body: storage.Body{
						Mode:           storage.BodyJSON,
						JSON:           prettyJSON(value),
						FormURLEncoded: []storage.FormField{},
						MultipartForm:  []storage.FormField{},
					},
				},
			})
		}
		break
	}

	return out
}

func exampleName(ex spec.Object, key string) string {
	if summary := cleanName(spec.GetString(ex, "summary")); summary != "" {
		return summary
	}
	return key
}

// responseStatus converts a responses key into a status code and its text.
// Keys such as "default" or "2XX" keep the key as text with status 0.
func responseStatus(code string) (int, string) {
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, code
	}
	return n, http.StatusText(n)
}
