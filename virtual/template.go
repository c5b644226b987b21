package virtual

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/ancientlore/folderpage/content"
	"github.com/ancientlore/folderpage/folder"
	"github.com/ancientlore/folderpage/slug"
)

//go:embed default.html
var defaultTemplate string

// pageInfo has information about the current page.
type pageInfo struct {
	Path     string // path from URL
	Filename string // end portion (file) from URL
	Slug     string // slug of the page, "notes/index" for "/notes/index.html"
}

// Pathname joins the path and filename.
func (p pageInfo) Pathname() string {
	return path.Join(p.Path, p.Filename)
}

// data is what is passed to page templates.
type data struct {
	Title       string              // title of the page
	Tags        []string            // tags of the page
	FrontMatter content.FrontMatter // front matter from Markdown file or defaults
	Page        pageInfo            // information aboout current page
	Content     template.HTML       // rendered Markdown, followed by the listing on folder pages
	Config      Config              // site settings
}

// loadTemplates parses the custom templates in the "template" folder, or the
// built-in templates when there is no such folder.
func (vfs *FS) loadTemplates(st *state) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":       path.Join,
		"ext":        path.Ext,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"trimspace":  strings.TrimSpace,
		"resolve":    slug.ResolveRelative,
		"children":   st.children,
		"markdown":   markdown,
		"now":        vfs.now,
	}
	fi, err := fs.Stat(vfs.fs, content.TemplateFolder)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		tpl, err := template.New("site").Funcs(funcMap).Parse(defaultTemplate)
		if err != nil {
			return nil, fmt.Errorf("loadTemplates: %w", err)
		}
		return tpl, nil
	}
	tpl, err := template.New("site").Funcs(funcMap).ParseFS(vfs.fs, content.TemplateFolder+"/*.html")
	if err != nil {
		return nil, fmt.Errorf("loadTemplates: %w", err)
	}
	return tpl, nil
}

// children returns the sorted direct children of the folder with slug s.
func (st *state) children(s string) []folder.Page {
	opts := st.pt.Options()
	r, _ := folder.NewChildrenProvider(st.finder(), st.site.Pages, opts).ChildrenOf(s)
	return folder.Sort(r, folder.ByDateAndAlphabeticalFolderFirst(st.siteCfg), 0)
}

// finder returns the tree of the site, or nil when folders are resolved by scanning.
func (st *state) finder() folder.Finder {
	if st.cfg.Folder.Flat || st.site.Trie == nil {
		return nil
	}
	return st.site.Trie
}

// markdown renders a Markdown string.
func markdown(s string) template.HTML {
	return content.RenderMarkdown([]byte(s))
}
