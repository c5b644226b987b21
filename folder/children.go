package folder

import (
	"strings"
	"time"

	"github.com/ancientlore/folderpage/slug"
)

// Node is one entry of a hierarchical view over the pages of a build. A folder node's
// Data is its index page, if it has one.
type Node interface {
	IsFolder() bool
	Slug() string
	DisplayName() string
	Children() []Node
	Data() *Page
}

// Finder looks up a node by the segments of its slug.
type Finder interface {
	FindNode(path []string) (Node, bool)
}

// ChildrenProvider returns the direct children of a folder. The bool result is false
// when the folder is unknown.
type ChildrenProvider interface {
	ChildrenOf(folderSlug string) ([]Page, bool)
}

// NewChildrenProvider returns a TrieBacked provider when trie is not nil, and a
// FlatListBacked provider over pages otherwise.
func NewChildrenProvider(trie Finder, pages []Page, opts Options) ChildrenProvider {
	if trie != nil {
		return &TrieBacked{Root: trie, ShowSubfolders: opts.ShowSubfolders, Now: opts.Now}
	}
	return &FlatListBacked{Pages: pages, ShowSubfolders: opts.ShowSubfolders, Now: opts.Now}
}

// TrieBacked resolves children from a hierarchical view supplied by the host.
type TrieBacked struct {
	Root           Finder
	ShowSubfolders bool
	Now            Clock
}

// ChildrenOf returns the pages directly below folderSlug. Subfolders without an index
// page are rolled up into a single synthesized entry when ShowSubfolders is set.
func (t *TrieBacked) ChildrenOf(folderSlug string) ([]Page, bool) {
	if folderSlug == "" {
		return nil, false
	}
	node, ok := t.Root.FindNode(strings.Split(folderSlug, "/"))
	if !ok || node == nil {
		return nil, false
	}
	var r []Page
	for _, child := range node.Children() {
		if isTagsFolder(child.Slug()) {
			continue
		}
		if data := child.Data(); data != nil {
			r = append(r, *data)
			continue
		}
		if child.IsFolder() && t.ShowSubfolders {
			r = append(r, rollUp(child.Slug(), child.DisplayName(), descendants(child, nil), t.Now))
		}
	}
	return r, true
}

// descendants appends every page below n to r.
func descendants(n Node, r []Page) []Page {
	for _, child := range n.Children() {
		if data := child.Data(); data != nil {
			r = append(r, *data)
		}
		r = descendants(child, r)
	}
	return r
}

// FlatListBacked resolves children by scanning every page of a build.
type FlatListBacked struct {
	Pages          []Page
	ShowSubfolders bool
	Now            Clock
}

// ChildrenOf returns the pages directly below folderSlug, in the same shape as
// TrieBacked.ChildrenOf. Pages nested more than one level down are attributed to the
// subfolder directly below folderSlug.
func (f *FlatListBacked) ChildrenOf(folderSlug string) ([]Page, bool) {
	if folderSlug == "" {
		return nil, false
	}
	prefix := folderPrefix(folderSlug)

	type bucket struct {
		name  string
		index *Page
		pages []Page
	}
	var (
		found   bool
		r       []Page
		buckets []*bucket
		byName  = make(map[string]*bucket)
		seen    = make(map[string]struct{})
	)
	for i := range f.Pages {
		p := &f.Pages[i]
		if !strings.HasPrefix(p.Slug, prefix) {
			continue
		}
		found = true
		rest := p.Slug[len(prefix):]
		if rest == "" || rest == "index" {
			continue
		}
		if _, dup := seen[p.Slug]; dup {
			continue
		}
		seen[p.Slug] = struct{}{}
		name, sub, nested := strings.Cut(rest, "/")
		if !nested {
			if !isTagsFolder(p.Slug) {
				r = append(r, *p)
			}
			continue
		}
		b, ok := byName[name]
		if !ok {
			b = &bucket{name: name}
			byName[name] = b
			buckets = append(buckets, b)
		}
		if sub == "index" {
			b.index = p
		} else {
			b.pages = append(b.pages, *p)
		}
	}
	if !found {
		return nil, false
	}
	for _, b := range buckets {
		s := prefix + b.name + "/index"
		if isTagsFolder(s) {
			continue
		}
		if b.index != nil {
			r = append(r, *b.index)
		} else if f.ShowSubfolders {
			r = append(r, rollUp(s, b.name, b.pages, f.Now))
		}
	}
	return r, true
}

// folderPrefix turns a folder slug into the prefix shared by the slugs of its pages.
func folderPrefix(folderSlug string) string {
	if slug.EndsWith(folderSlug, "index") {
		return slug.TrimSuffix(folderSlug, "index")
	}
	if !strings.HasSuffix(folderSlug, "/") {
		return folderSlug + "/"
	}
	return folderSlug
}

// isTagsFolder reports whether s is the top-level tags folder.
func isTagsFolder(s string) bool {
	return slug.Simplify(s) == tagsFolder
}

// rollUp synthesizes the listing entry of a subfolder that has no index page.
func rollUp(s, name string, pages []Page, now Clock) Page {
	return Page{
		Slug:  s,
		Title: name,
		Tags:  []string{},
		Dates: MostRecent(pages, now),
	}
}

// MostRecent aggregates the dates of pages, taking the latest value of each field.
// Fields that no page supplies are set from now; when now is nil they stay unset, and
// MostRecent returns nil if nothing is known at all.
func MostRecent(pages []Page, now Clock) *Dates {
	var d Dates
	for i := range pages {
		pd := pages[i].Dates
		if pd == nil {
			continue
		}
		d.Created = latest(d.Created, pd.Created)
		d.Modified = latest(d.Modified, pd.Modified)
		d.Published = latest(d.Published, pd.Published)
	}
	if now != nil {
		t := now()
		fill(&d.Created, t)
		fill(&d.Modified, t)
		fill(&d.Published, t)
	}
	if d.Created.IsZero() && d.Modified.IsZero() && d.Published.IsZero() {
		return nil
	}
	return &d
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func fill(t *time.Time, v time.Time) {
	if t.IsZero() {
		*t = v
	}
}
