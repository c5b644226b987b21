package folder

import (
	"path"
	"sort"
	"strings"

	"github.com/ancientlore/folderpage/slug"
)

// tagsFolder is the folder reserved for tag pages; it never gets a folder page.
const tagsFolder = "tags"

// Discover returns every folder path referenced by the slugs of pages, and the subset
// of those folders that already have an explicit index page. Folder paths have no
// trailing "/index". The site root and the tags folder are never included.
func Discover(pages []Page) (folders, withIndex map[string]struct{}) {
	folders = make(map[string]struct{})
	withIndex = make(map[string]struct{})
	for i := range pages {
		s := pages[i].Slug
		if s == "" {
			continue
		}
		for _, f := range ancestors(s) {
			if f == "." || f == "/" || f == tagsFolder {
				continue
			}
			folders[f] = struct{}{}
		}
		if strings.HasSuffix(s, "/index") {
			withIndex[strings.TrimSuffix(s, "/index")] = struct{}{}
		}
	}
	return folders, withIndex
}

// ancestors lists the parent folders of s up to and including ".".
func ancestors(s string) []string {
	dir := path.Dir(s)
	r := []string{dir}
	for dir != "." && dir != "/" {
		dir = path.Dir(dir)
		r = append(r, dir)
	}
	return r
}

// VirtualPages returns a descriptor for each folder in pages that lacks an index page.
// The title of each is label + ": " + the folder path. Descriptors are ordered by slug.
func VirtualPages(pages []Page, label string) []Descriptor {
	folders, withIndex := Discover(pages)
	r := make([]Descriptor, 0, len(folders))
	for f := range folders {
		if _, ok := withIndex[f]; ok {
			continue
		}
		r = append(r, Descriptor{
			Slug:  slug.JoinSegments(f, "index"),
			Title: label + ": " + f,
			Data:  map[string]any{},
		})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Slug < r[j].Slug })
	return r
}
