package render

import (
	"fmt"
	"strings"

	"github.com/blackcoderx/oasconv/pkg/storage"
)

// SummaryMarkdown outlines a collection: its environments and the folder
// tree with each request's method and URL resolved against env. env may be
// nil, in which case URLs keep their placeholders. With an env, OAuth2
// requests using a browser grant also link their consent page.
func SummaryMarkdown(c *storage.Collection, env *storage.Environment) string {
	var values map[string]string
	if env != nil {
		values = env.Values()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", c.Name)

	if len(c.Environments) > 0 {
		sb.WriteString("## Environments\n\n")
		for _, e := range c.Environments {
			fmt.Fprintf(&sb, "- **%s**", e.Name)
			for _, v := range e.Variables {
				fmt.Fprintf(&sb, " `%s=%s`", v.Name, v.Value)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	folders, requests := Count(c.Items)
	fmt.Fprintf(&sb, "## Requests (%d in %d folders)\n\n", requests, folders)
	writeItems(&sb, c.Items, values, 0)
	return sb.String()
}

func writeItems(sb *strings.Builder, items []storage.Item, env map[string]string, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		if item.IsFolder() {
			fmt.Fprintf(sb, "%s- 📁 **%s**\n", indent, item.Name)
			writeItems(sb, item.Items, env, depth+1)
			continue
		}
		if item.Request == nil {
			continue
		}
		url := item.Request.URL
		if env != nil {
			url = storage.ResolveURL(item.Request, env)
		}
		fmt.Fprintf(sb, "%s- `%s` %s `%s`", indent, item.Request.Method, item.Name, url)
		if mode := item.Request.Auth.Mode; mode != storage.AuthNone {
			fmt.Fprintf(sb, " _(auth: %s)_", mode)
		}
		if env != nil {
			if link := storage.AuthorizeURL(item.Request.Auth.OAuth2, env, ""); link != "" {
				fmt.Fprintf(sb, " [authorize](%s)", link)
			}
		}
		sb.WriteString("\n")
	}
}

// Count returns the number of folders and requests in a tree.
func Count(items []storage.Item) (folders, requests int) {
	for _, item := range items {
		if item.IsFolder() {
			folders++
			f, r := Count(item.Items)
			folders += f
			requests += r
			continue
		}
		requests++
	}
	return folders, requests
}
