package content

import (
	"html/template"
	"time"

	"github.com/ancientlore/folderpage/folder"
)

// Document is a page loaded from a Markdown file.
type Document struct {
	Source      string        // path of the Markdown file
	FrontMatter FrontMatter   // front matter from the file or defaults
	Body        template.HTML // rendered Markdown
	ModTime     time.Time
}

// Site is the set of pages of one build.
type Site struct {
	Pages []folder.Page // ordered by source path
	Trie  *Trie
	Built time.Time

	docs  map[string]*Document
	index map[string]int
}

// Document returns the loaded document with the given slug.
func (s *Site) Document(slug string) (*Document, bool) {
	d, ok := s.docs[slug]
	return d, ok
}

// Page returns the page with the given slug.
func (s *Site) Page(slug string) (folder.Page, bool) {
	i, ok := s.index[slug]
	if !ok {
		return folder.Page{}, false
	}
	return s.Pages[i], true
}
