package content

import (
	"strings"

	"github.com/ancientlore/folderpage/folder"
)

// Trie is a hierarchical view over the pages of a site. Folder nodes carry their
// index page as data; every other page is a leaf.
type Trie struct {
	name     string
	slug     string
	isFolder bool
	data     *folder.Page
	children []*Trie
}

// NewTrie arranges pages into a Trie rooted at the site's "index" folder.
func NewTrie(pages []folder.Page) *Trie {
	root := &Trie{slug: "index", isFolder: true}
	for i := range pages {
		root.Insert(&pages[i])
	}
	return root
}

// Insert adds p below t, creating folder nodes as needed.
func (t *Trie) Insert(p *folder.Page) {
	segs := strings.Split(p.Slug, "/")
	n := t
	for i, seg := range segs[:len(segs)-1] {
		c := n.folderChild(seg)
		if c == nil {
			c = &Trie{
				name:     seg,
				slug:     strings.Join(segs[:i+1], "/") + "/index",
				isFolder: true,
			}
			n.children = append(n.children, c)
		}
		n = c
	}
	last := segs[len(segs)-1]
	if last == "index" {
		n.data = p
		return
	}
	n.children = append(n.children, &Trie{name: last, slug: p.Slug, data: p})
}

func (t *Trie) folderChild(name string) *Trie {
	for _, c := range t.children {
		if c.isFolder && c.name == name {
			return c
		}
	}
	return nil
}

// IsFolder reports whether t is a folder.
func (t *Trie) IsFolder() bool { return t.isFolder }

// Slug returns the slug of the page at t; folders use their index slug.
func (t *Trie) Slug() string { return t.slug }

// DisplayName returns the page title, or the path segment when there is none.
func (t *Trie) DisplayName() string {
	if t.data != nil && t.data.Title != "" {
		return t.data.Title
	}
	return t.name
}

// Data returns the page at t, or nil for a folder without an index page.
func (t *Trie) Data() *folder.Page { return t.data }

// Children returns the nodes directly below t.
func (t *Trie) Children() []folder.Node {
	r := make([]folder.Node, len(t.children))
	for i, c := range t.children {
		r[i] = c
	}
	return r
}

// FindNode walks path from t. A trailing "index" segment names the folder itself.
func (t *Trie) FindNode(path []string) (folder.Node, bool) {
	n := t
	for len(path) > 0 {
		if len(path) == 1 && path[0] == "index" {
			break
		}
		c := n.folderChild(path[0])
		if c == nil && len(path) == 1 {
			c = n.leaf(path[0])
		}
		if c == nil {
			return nil, false
		}
		n, path = c, path[1:]
	}
	return n, true
}

func (t *Trie) leaf(name string) *Trie {
	for _, c := range t.children {
		if !c.isFolder && c.name == name {
			return c
		}
	}
	return nil
}
