package converter

import (
	"bytes"
	"mime"
	"strings"

	"github.com/goccy/go-json"

	"github.com/blackcoderx/oasconv/pkg/schema"
	"github.com/blackcoderx/oasconv/pkg/spec"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

// mediaKind is the closed set of request body media types the converter
// understands.
type mediaKind int

const (
	mediaUnknown mediaKind = iota
	mediaJSON
	mediaFormURLEncoded
	mediaMultipart
	mediaText
	mediaXML
)

// classifyMedia maps a content type to its kind. Parameters such as charset
// are ignored and "+json" structured suffixes count as JSON.
func classifyMedia(contentType string) mediaKind {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(contentType))
	}
	switch {
	case mt == "application/json", strings.HasSuffix(mt, "+json"):
		return mediaJSON
	case mt == "application/x-www-form-urlencoded":
		return mediaFormURLEncoded
	case mt == "multipart/form-data":
		return mediaMultipart
	case mt == "text/plain":
		return mediaText
	case mt == "text/xml", mt == "application/xml":
		return mediaXML
	}
	return mediaUnknown
}

// body expands the request body from the first declared media type.
func (c *converter) body(op spec.Object) storage.Body {
	body := storage.Body{
		Mode:           storage.BodyNone,
		FormURLEncoded: []storage.FormField{},
		MultipartForm:  []storage.FormField{},
	}

	rb, _ := spec.GetObject(op, "requestBody")
	content, _ := spec.GetObject(rb, "content")
	if content.Len() == 0 {
		return body
	}

	contentType, v, _ := spec.First(content)
	media, _ := v.(spec.Object)
	s, _ := spec.GetObject(media, "schema")

	switch classifyMedia(contentType) {
	case mediaJSON:
		body.Mode = storage.BodyJSON
		switch {
		case schema.IsObject(s) || schema.HasAllOf(s):
			body.JSON = prettyJSON(schema.BuildEmptyBody(s))
		case schema.IsArray(s):
			body.JSON = prettyJSON([]any{schema.BuildEmptyBody(schema.Items(s))})
		}
	case mediaFormURLEncoded:
		body.Mode = storage.BodyFormURLEncoded
		body.FormURLEncoded = c.formFields(s, "")
	case mediaMultipart:
		body.Mode = storage.BodyMultipartForm
		body.MultipartForm = c.formFields(s, storage.FieldText)
	case mediaText:
		body.Mode = storage.BodyText
		body.Text = ""
	case mediaXML:
		body.Mode = storage.BodyXML
		body.XML = ""
	case mediaUnknown:
		c.logger.Debug("unsupported request body media type", "content_type", contentType)
	}
	return body
}

func (c *converter) formFields(s spec.Object, typ string) []storage.FormField {
	props := schema.Properties(s)
	fields := make([]storage.FormField, 0, props.Len())
	for name, v := range props.All() {
		prop, _ := v.(spec.Object)
		fields = append(fields, storage.FormField{
			UID:         c.newID(),
			Type:        typ,
			Name:        name,
			Value:       schema.FieldValue(prop),
			Description: spec.GetString(prop, "description"),
			Enabled:     true,
		})
	}
	return fields
}

// prettyJSON renders v with two-space indentation. Key order follows the
// ordered model.
func prettyJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return string(b)
	}
	return buf.String()
}
