/*
Package content loads a site from a file system. Every Markdown file becomes a page
whose slug is its path without the ".md" extension, so "notes/go/index.md" is the
index page of the "notes/go" folder.

Markdown files may start with TOML front matter delimited by "+++" or YAML front
matter delimited by "---":

	+++
	title = "My glorious page"
	tags = ["go", "web"]
	date = 2024-03-07T10:00:00Z
	+++
	# This is my Heading

Front matter may include:

	Name         Type              Description
	-----------  ----------------  -----------------------------------------
	title        string            Title of page; defaults to the file name
	description  string            Shown on folder pages without a body
	tags         array of strings  Tags for the page
	cssclasses   array of strings  Extra classes for the rendered article
	date         time              Fallback for created and published
	created      time              Creation date; defaults to the file time
	modified     time              Modification date; "lastmod" also works
	published    time              Publish date; defaults to created
	template     string            Override the template to render this file
	draft        bool              Leave the page out of the site

Hidden files and folders (those starting with "."), the "template" folder and files
matching one of the ignore patterns are skipped.
*/
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/ancientlore/folderpage/folder"
	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// ConfigFile is the name of the site configuration file at the root.
const ConfigFile = "site.cfg"

// TemplateFolder holds custom HTML templates.
const TemplateFolder = "template"

// LoadOptions controls which files are loaded.
type LoadOptions struct {
	Ignore []string    // doublestar patterns of paths to skip
	Logger *zap.Logger // nil discards log output
	Now    func() time.Time
}

// Load reads every Markdown file of fsys into a Site. Files with unreadable front
// matter are loaded with defaults and logged.
func Load(fsys fs.FS, opts LoadOptions) (*Site, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	for _, pat := range opts.Ignore {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("Load: invalid ignore pattern %q", pat)
		}
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	site := Site{
		Built: now(),
		docs:  make(map[string]*Document),
		index: make(map[string]int),
	}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if IsHidden(p) || p == TemplateFolder || ignored(opts.Ignore, p) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}
		doc, page, err := loadDocument(fsys, p, d)
		if err != nil {
			if errors.Is(err, errDraft) {
				log.Debug("skipping draft", zap.String("path", p))
				return nil
			}
			log.Warn("cannot load page", zap.String("path", p), zap.Error(err))
			if doc == nil {
				return nil
			}
		}
		site.index[page.Slug] = len(site.Pages)
		site.Pages = append(site.Pages, page)
		site.docs[page.Slug] = doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	site.Trie = NewTrie(site.Pages)
	log.Info("loaded site", zap.Int("pages", len(site.Pages)))
	return &site, nil
}

var errDraft = errors.New("page is a draft")

// loadDocument reads one Markdown file. When only the front matter is bad, the
// document is still returned along with the error.
func loadDocument(fsys fs.FS, p string, d fs.DirEntry) (*Document, folder.Page, error) {
	var page folder.Page
	b, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, page, fmt.Errorf("loadDocument: %w", err)
	}
	doc := Document{Source: p}
	if info, err := d.Info(); err == nil {
		doc.ModTime = info.ModTime()
	}
	md, fmErr := parseFrontMatter(b, &doc.FrontMatter)
	if fmErr != nil {
		doc.FrontMatter = FrontMatter{}
	}
	if doc.FrontMatter.Draft {
		return nil, page, errDraft
	}
	doc.Body = RenderMarkdown(md)

	fm := &doc.FrontMatter
	page = folder.Page{
		Slug:        strings.TrimSuffix(p, ".md"),
		Title:       fm.Title,
		Tags:        fm.Tags,
		Dates:       pageDates(fm, doc.ModTime),
		Description: fm.Description,
		CSSClasses:  fm.CSSClasses,
	}
	if page.Title == "" {
		page.Title = defaultTitle(page.Slug)
	}
	if fmErr != nil {
		return &doc, page, fmt.Errorf("loadDocument: %w", fmErr)
	}
	return &doc, page, nil
}

// pageDates picks the dates of a page from its front matter and file time.
func pageDates(fm *FrontMatter, modTime time.Time) *folder.Dates {
	d := folder.Dates{
		Created:   first(fm.Created, fm.Date, modTime),
		Modified:  first(fm.Modified, fm.LastMod, modTime),
		Published: first(fm.Published, fm.Date),
	}
	d.Published = first(d.Published, d.Created)
	if d.Created.IsZero() && d.Modified.IsZero() && d.Published.IsZero() {
		return nil
	}
	return &d
}

// first returns the first non-zero time.
func first(t ...time.Time) time.Time {
	for _, v := range t {
		if !v.IsZero() {
			return v
		}
	}
	return time.Time{}
}

// defaultTitle derives a title from a slug: the file name, or the folder name for
// index pages.
func defaultTitle(s string) string {
	dir, name := path.Split(s)
	if name == "index" && dir != "" {
		return path.Base(dir)
	}
	return name
}

// ignored reports whether p matches one of the patterns.
func ignored(patterns []string, p string) bool {
	for _, pat := range patterns {
		if ok, _ := doublestar.Match(pat, p); ok {
			return true
		}
	}
	return false
}

// IsHidden reports whether name contains a path element starting with a period.
// The name is assumed to be delimited by forward slashes, as guaranteed by the
// fs.FS interface.
func IsHidden(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") && part != "." {
			return true
		}
	}
	return false
}
