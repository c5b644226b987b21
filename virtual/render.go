package virtual

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/ancientlore/folderpage/folder"
	"go.uber.org/zap"
)

// openPage renders the page with slug s as the file name. The error wraps
// fs.ErrNotExist when there is no such page.
func (vfs *FS) openPage(st *state, s, name string) (fs.File, error) {
	b, modTime, err := vfs.renderPage(st, s)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return newRenderFile(path.Base(name), modTime, b), nil
}

// renderPage executes the template for the page with slug s. Folder pages get the
// folder layout with the listing of their children after the page's own content.
func (vfs *FS) renderPage(st *state, s string) ([]byte, time.Time, error) {
	doc, isDoc := st.site.Document(s)
	desc, isVirtual := st.virtual[s]
	if !isDoc && !isVirtual {
		return nil, time.Time{}, fs.ErrNotExist
	}
	dir, file := path.Split(s)
	d := data{
		Page: pageInfo{
			Path:     "/" + dir,
			Filename: file + ".html",
			Slug:     s,
		},
		Config: st.cfg,
	}
	var (
		tplName = "default"
		modTime = st.site.Built
	)
	if isDoc {
		page, _ := st.site.Page(s)
		d.Title = page.Title
		d.Tags = page.Tags
		d.FrontMatter = doc.FrontMatter
		d.Content = doc.Body
		modTime = doc.ModTime
	} else {
		d.Title = desc.Title
		d.FrontMatter.Title = desc.Title
	}
	if st.pt.Match(s) {
		tplName = folder.Layout
		in := folder.RenderInput{
			Slug:     s,
			AllFiles: st.site.Pages,
			Trie:     st.finder(),
			Config:   st.siteCfg,
		}
		if isDoc {
			in.Body = doc.Body
			in.Description = doc.FrontMatter.Description
			in.CSSClasses = doc.FrontMatter.CSSClasses
		}
		d.Content = st.pt.Render(in)
		// folder listings change whenever a child does
		modTime = st.site.Built
	}
	if isDoc && doc.FrontMatter.Template != "" {
		tplName = doc.FrontMatter.Template
	}
	var buf bytes.Buffer
	if err := st.tpl.ExecuteTemplate(&buf, tplName, d); err != nil {
		vfs.log.Warn("cannot execute template",
			zap.String("template", tplName),
			zap.String("slug", s),
			zap.Error(err),
		)
		return nil, modTime, fmt.Errorf("renderPage: %w", err)
	}
	return buf.Bytes(), modTime, nil
}
