package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/goccy/go-json"
)

// HighlightJSON takes a JSON string, validates it, and returns a syntax-highlighted string.
// If the input is not valid JSON, it returns the original string.
func HighlightJSON(input string) string {
	if !json.Valid([]byte(input)) {
		return input
	}

	var sb strings.Builder
	sb.WriteString("```json\n")
	sb.WriteString(input)
	sb.WriteString("\n```")

	out, err := Markdown(sb.String())
	if err != nil {
		return input
	}
	return strings.TrimSpace(out)
}

// Markdown renders markdown for the terminal.
func Markdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
