/*
virtual implements a "virtual" view over a fs.FS that serves a Markdown site as HTML,
including a page for every folder.

A special file "site.cfg" at the root holds TOML settings you can read with the
Config method. This file is hidden from view, as is the "template" folder, which may
hold custom HTML templates. At minimum, a template called "default" is used for
Markdown pages and a template called "folder" for folder pages. When the folder does
not exist, built-in templates are used.

Hidden files and folders (those starting with ".") are ignored. Markdown files are
hidden too; they are served through their ".html" counterparts.

# Pages

When "/foo/bar.html" is opened, the page loaded from "/foo/bar.md" is rendered into
HTML. The front matter of the page may name a different template.

# Folder pages

"/foo/index.html" is a folder page. If "/foo/index.md" exists, its content is shown
followed by a listing of everything in the folder; otherwise a virtual page is made
up with just the listing. Listings are sorted folders first, then by date (newest
first), then by title.

# Settings

	locale           = "en-US"             # labels and date format
	defaultdatetype  = "created"           # created, modified or published
	ignore           = ["drafts/**"]       # doublestar patterns to leave out
	expires          = "1m"                # Expires for pages
	staticexpires    = "1h"                # Expires for other files

	[headers]
	X-Frame-Options = "DENY"

	[folder]
	showfoldercount = true
	showsubfolders  = true
	limit           = 0
	flat            = false                # scan all pages instead of using the tree

# Templates

Templates are passed page information, front matter, the site settings and the
rendered HTML. Templates also have these helper functions:

	join(parts ...string) string
		The same as path.Join
	ext(path string) string
		The same as path.Ext
	trimsuffix(string, string) string
		The same as strings.TrimSuffix
	trimprefix(string, string) string
		The same as strings.TrimPrefix
	trimspace(string) string
		The same as strings.TrimSpace
	resolve(current, target string) string
		Link to the target slug relative to the current slug
	children(slug string) []folder.Page
		The direct children of a folder, sorted
	markdown(string) template.HTML
		Render Markdown into HTML
	now() time.Time
		Current time
*/
package virtual

import (
	"errors"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/ancientlore/folderpage/content"
	"github.com/ancientlore/folderpage/folder"
	"go.uber.org/zap"
)

// FS provides a virtual view of a Markdown site suitable for serving over HTTP.
type FS struct {
	fs  fs.FS
	log *zap.Logger
	now folder.Clock
	tr  folder.Translator

	mu    sync.RWMutex
	state *state
}

// state is one build of the site. It is replaced, never modified, on reload.
type state struct {
	cfg     Config
	siteCfg folder.Config
	site    *content.Site
	virtual map[string]folder.Descriptor
	folders []folder.Descriptor // virtual pages ordered by slug
	pt      *folder.PageType
	tpl     *template.Template
}

// Option configures an FS.
type Option func(*FS)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(vfs *FS) { vfs.log = l }
}

// WithClock sets the clock used for build times and undated subfolders.
func WithClock(now folder.Clock) Option {
	return func(vfs *FS) { vfs.now = now }
}

// WithTranslator replaces the built-in localization catalog.
func WithTranslator(tr folder.Translator) Option {
	return func(vfs *FS) { vfs.tr = tr }
}

// New returns a new FS that presents a virtual view of innerFS.
func New(innerFS fs.FS, opts ...Option) (*FS, error) {
	vfs := FS{
		fs:  innerFS,
		log: zap.NewNop(),
		now: time.Now,
		tr:  folder.DefaultCatalog(),
	}
	for _, o := range opts {
		o(&vfs)
	}
	if err := vfs.Reload(); err != nil {
		return nil, err
	}
	return &vfs, nil
}

// Reload reads the configuration, pages and templates again. On error the previous
// build stays in place.
func (vfs *FS) Reload() error {
	cfg, err := ReadConfig(vfs.fs)
	if err != nil {
		return err
	}
	siteCfg, _ := cfg.SiteConfig()
	site, err := content.Load(vfs.fs, content.LoadOptions{
		Ignore: cfg.Ignore,
		Logger: vfs.log,
		Now:    vfs.now,
	})
	if err != nil {
		return err
	}
	st := state{
		cfg:     cfg,
		siteCfg: siteCfg,
		site:    site,
		virtual: make(map[string]folder.Descriptor),
		pt:      folder.New(cfg.FolderOptions(vfs.now), vfs.tr, vfs.log),
	}
	st.folders = st.pt.Generate(folder.BuildState{Pages: site.Pages, Config: siteCfg})
	for _, d := range st.folders {
		st.virtual[d.Slug] = d
	}
	st.tpl, err = vfs.loadTemplates(&st)
	if err != nil {
		return err
	}
	vfs.mu.Lock()
	vfs.state = &st
	vfs.mu.Unlock()
	vfs.log.Info("site ready",
		zap.Int("pages", len(site.Pages)),
		zap.Int("folders", len(st.virtual)),
	)
	return nil
}

// current returns the latest build.
func (vfs *FS) current() *state {
	vfs.mu.RLock()
	defer vfs.mu.RUnlock()
	return vfs.state
}

// Config returns the configuration from the site.cfg file.
func (vfs *FS) Config() Config {
	return vfs.current().cfg
}

// Folders returns the virtual folder pages of the site, ordered by slug.
func (vfs *FS) Folders() []folder.Descriptor {
	return vfs.current().folders
}

// Pages returns the pages of the site followed by its virtual folder pages.
func (vfs *FS) Pages() []folder.Page {
	st := vfs.current()
	r := make([]folder.Page, 0, len(st.site.Pages)+len(st.folders))
	r = append(r, st.site.Pages...)
	for _, d := range st.folders {
		r = append(r, folder.Page{Slug: d.Slug, Title: d.Title})
	}
	return r
}

// Open opens the named file.
//
// When Open returns an error, it should be of type *fs.PathError
// with the Op field set to "open", the Path field set to name,
// and the Err field describing the problem.
//
// Open should reject attempts to open names that do not satisfy
// fs.ValidPath(name), returning a *PathError with Err set to
// ErrInvalid or ErrNotExist.
func (vfs *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if isHiddenFile(name) || (name != "." && content.IsHidden(name)) || path.Ext(name) == ".md" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	st := vfs.current()
	if path.Ext(name) == ".html" {
		f, err := vfs.openPage(st, strings.TrimSuffix(name, ".html"), name)
		if !errors.Is(err, fs.ErrNotExist) {
			return f, err
		}
	}
	f, err := vfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Directories need to be virtual so that listings show pages, not sources.
	if fi.IsDir() {
		return &virtualDir{File: f, path: name, st: st}, nil
	}
	return f, nil
}

// isHiddenFile reports whether name is one of the special files at the root.
func isHiddenFile(name string) bool {
	return name == content.ConfigFile || name == content.TemplateFolder ||
		strings.HasPrefix(name, content.TemplateFolder+"/")
}
