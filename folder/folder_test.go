package folder

import (
	"strings"
	"time"
)

// day returns midnight UTC of the given date.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dated returns a page with all three dates set to t.
func dated(s, title string, t time.Time) Page {
	return Page{Slug: s, Title: title, Dates: &Dates{Created: t, Modified: t, Published: t}}
}

// fixedClock returns a Clock that always reports t.
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// testNode is a minimal hierarchical view used to exercise TrieBacked.
type testNode struct {
	name     string
	slug     string
	folder   bool
	data     *Page
	children []*testNode
}

func (n *testNode) IsFolder() bool      { return n.folder }
func (n *testNode) Slug() string        { return n.slug }
func (n *testNode) DisplayName() string { return n.name }
func (n *testNode) Data() *Page         { return n.data }

func (n *testNode) Children() []Node {
	r := make([]Node, len(n.children))
	for i, c := range n.children {
		r[i] = c
	}
	return r
}

func (n *testNode) FindNode(path []string) (Node, bool) {
	if len(path) == 0 || (len(path) == 1 && path[0] == "index") {
		return n, true
	}
	if c := n.child(path[0]); c != nil {
		return c.FindNode(path[1:])
	}
	return nil, false
}

func (n *testNode) child(name string) *testNode {
	for _, c := range n.children {
		if c.name == name && c.folder {
			return c
		}
	}
	return nil
}

// buildTestTrie arranges pages into a testNode tree the way a host would.
func buildTestTrie(pages []Page) *testNode {
	root := &testNode{slug: "index", folder: true}
	for i := range pages {
		p := &pages[i]
		segs := strings.Split(p.Slug, "/")
		n := root
		for j, seg := range segs[:len(segs)-1] {
			c := n.child(seg)
			if c == nil {
				c = &testNode{name: seg, folder: true, slug: strings.Join(segs[:j+1], "/") + "/index"}
				n.children = append(n.children, c)
			}
			n = c
		}
		if last := segs[len(segs)-1]; last == "index" {
			n.data = p
		} else {
			n.children = append(n.children, &testNode{name: last, slug: p.Slug, data: p})
		}
	}
	return root
}

func slugs(pages []Page) []string {
	r := make([]string, len(pages))
	for i := range pages {
		r[i] = pages[i].Slug
	}
	return r
}
