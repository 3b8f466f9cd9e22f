package converter

import (
	"strings"

	"github.com/blackcoderx/oasconv/pkg/storage"
)

// groupByTags creates one folder per first sanitized tag, in order of first
// appearance, followed by the untagged requests. Requests with several tags
// are only filed under the first.
func (c *converter) groupByTags(entries []entry) []storage.Item {
	var (
		order    []string
		folders  = make(map[string]*storage.Item)
		untagged []storage.Item
	)
	for _, e := range entries {
		if len(e.item.Tags) == 0 {
			untagged = append(untagged, e.item)
			continue
		}
		key := e.item.Tags[0]
		folder, ok := folders[key]
		if !ok {
			folder = c.folder(e.folder)
			folders[key] = folder
			order = append(order, key)
		}
		folder.Items = append(folder.Items, e.item)
	}

	items := make([]storage.Item, 0, len(order)+len(untagged))
	for _, key := range order {
		items = append(items, *folders[key])
	}
	return append(items, untagged...)
}

// pathNode is one segment of the path trie.
type pathNode struct {
	name     string
	requests []storage.Item
	order    []string
	children map[string]*pathNode
}

func newPathNode(name string) *pathNode {
	return &pathNode{name: name, children: make(map[string]*pathNode)}
}

func (n *pathNode) child(name string) *pathNode {
	if ch, ok := n.children[name]; ok {
		return ch
	}
	ch := newPathNode(name)
	n.children[name] = ch
	n.order = append(n.order, name)
	return ch
}

// collapse folds leaf parameter folders ("{id}" with no subfolders) into
// their parent, so GET /users/{id} sits next to GET /users.
func (n *pathNode) collapse() {
	kept := n.order[:0]
	for _, name := range n.order {
		ch := n.children[name]
		ch.collapse()
		if isPathParam(name) && len(ch.order) == 0 {
			n.requests = append(n.requests, ch.requests...)
			delete(n.children, name)
			continue
		}
		kept = append(kept, name)
	}
	n.order = kept
}

// pathItems returns the node's requests followed by its subfolders.
func (c *converter) pathItems(n *pathNode) []storage.Item {
	items := make([]storage.Item, 0, len(n.requests)+len(n.order))
	items = append(items, n.requests...)
	for _, name := range n.order {
		folder := c.folder(name)
		folder.Items = c.pathItems(n.children[name])
		items = append(items, *folder)
	}
	return items
}

// groupByPath nests requests in a folder per path segment. Parameter
// segments keep their braces as folder names. Requests whose path has no
// literal segment stay at the root.
func (c *converter) groupByPath(entries []entry) []storage.Item {
	root := newPathNode("")
	for _, e := range entries {
		segments := pathSegments(e.path)
		if !hasLiteral(segments) {
			root.requests = append(root.requests, e.item)
			continue
		}
		node := root
		for _, seg := range segments {
			node = node.child(seg)
		}
		node.requests = append(node.requests, e.item)
	}
	root.collapse()
	return c.pathItems(root)
}

func (c *converter) folder(name string) *storage.Item {
	return &storage.Item{
		UID:   c.newID(),
		Name:  name,
		Type:  storage.TypeFolder,
		Items: []storage.Item{},
	}
}

func pathSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

func hasLiteral(segments []string) bool {
	for _, seg := range segments {
		if !isPathParam(seg) {
			return true
		}
	}
	return false
}

func isPathParam(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}
