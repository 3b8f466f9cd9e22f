package converter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/blackcoderx/oasconv/pkg/schema"
	"github.com/blackcoderx/oasconv/pkg/spec"
)

const responseBodyExpr = "$response.body"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// linkScript turns response links into a post-response script that stores
// each link parameter as a runtime variable when the response status
// matches. Responses without a numeric status are skipped.
func linkScript(op spec.Object) string {
	var blocks []string

	responses, _ := spec.GetObject(op, "responses")
	for code, v := range responses.All() {
		resp, _ := v.(spec.Object)
		links, _ := spec.GetObject(resp, "links")
		if links.Len() == 0 {
			continue
		}
		if _, err := strconv.Atoi(code); err != nil {
			continue
		}

		var stmts []string
		for _, lv := range links.All() {
			link, _ := lv.(spec.Object)
			params, _ := spec.GetObject(link, "parameters")
			for name, expr := range params.All() {
				stmts = append(stmts, fmt.Sprintf("  bru.setVar(%s, %s);", strconv.Quote(name), linkExpression(expr)))
			}
		}
		if len(stmts) == 0 {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("if (res.status === %s) {\n%s\n}", code, strings.Join(stmts, "\n")))
	}

	return strings.Join(blocks, "\n")
}

// linkExpression translates a runtime expression. "$response.body" becomes
// res.body and "$response.body#/a/b" becomes res.body.a.b; anything else is
// kept as a string literal.
func linkExpression(v any) string {
	expr := schema.Stringify(v)
	if expr != responseBodyExpr && !strings.HasPrefix(expr, responseBodyExpr+"#") {
		return strconv.Quote(expr)
	}

	var b strings.Builder
	b.WriteString("res.body")
	pointer := strings.TrimPrefix(strings.TrimPrefix(expr, responseBodyExpr), "#")
	for _, token := range strings.Split(pointer, "/") {
		if token == "" {
			continue
		}
		token = strings.NewReplacer("~1", "/", "~0", "~").Replace(token)
		switch {
		case identifierPattern.MatchString(token):
			b.WriteString("." + token)
		case isIndex(token):
			b.WriteString("[" + token + "]")
		default:
			b.WriteString("[" + strconv.Quote(token) + "]")
		}
	}
	return b.String()
}

func isIndex(token string) bool {
	_, err := strconv.Atoi(token)
	return err == nil && !strings.HasPrefix(token, "-")
}
