package converter

import "github.com/blackcoderx/oasconv/pkg/storage"

// hydrate numbers requests per sibling list, starting at 1, and replaces nil
// slices with empty ones so the collection serializes with every field the
// collection UI reads.
func hydrate(c *storage.Collection) {
	if c.Environments == nil {
		c.Environments = []storage.Environment{}
	}
	for i := range c.Environments {
		if c.Environments[i].Variables == nil {
			c.Environments[i].Variables = []storage.Variable{}
		}
	}
	c.Items = hydrateItems(c.Items)
}

func hydrateItems(items []storage.Item) []storage.Item {
	if items == nil {
		return []storage.Item{}
	}
	seq := 0
	for i := range items {
		it := &items[i]
		if it.IsFolder() {
			it.Items = hydrateItems(it.Items)
			continue
		}
		seq++
		it.Seq = seq
		if it.Request != nil {
			hydrateRequest(it.Request)
		}
	}
	return items
}

func hydrateRequest(r *storage.Request) {
	if r.Headers == nil {
		r.Headers = []storage.Header{}
	}
	if r.Params == nil {
		r.Params = []storage.Param{}
	}
	if r.Body.Mode == "" {
		r.Body.Mode = storage.BodyNone
	}
	if r.Body.FormURLEncoded == nil {
		r.Body.FormURLEncoded = []storage.FormField{}
	}
	if r.Body.MultipartForm == nil {
		r.Body.MultipartForm = []storage.FormField{}
	}
	if r.Auth.Mode == "" {
		r.Auth.Mode = storage.AuthNone
	}
}
