package virtual

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/ancientlore/folderpage/content"
)

// virtualDir lists a directory the way it is served. Markdown files appear as
// ".html" pages. A folder without an index page gets a virtual "index.html".
type virtualDir struct {
	fs.File

	path    string
	st      *state
	entries []fs.DirEntry
	listed  bool
	offset  int
}

// ReadDir reads the contents of the directory and returns a slice of up to n
// DirEntry values in directory order, following the fs.ReadDirFile rules.
func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if !d.listed {
		entries, err := d.list()
		if err != nil {
			return nil, err
		}
		d.entries, d.listed = entries, true
	}
	rest := d.entries[d.offset:]
	if n <= 0 {
		d.offset = len(d.entries)
		return rest, nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	n = min(n, len(rest))
	d.offset += n
	return rest[:n], nil
}

// list builds the virtual entries of the directory.
func (d *virtualDir) list() ([]fs.DirEntry, error) {
	rdf, ok := d.File.(fs.ReadDirFile)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: d.path, Err: errors.New("not a directory")}
	}
	entries, err := rdf.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	var (
		r        = make([]fs.DirEntry, 0, len(entries)+1)
		hasIndex bool
	)
	for _, e := range entries {
		full := path.Join(d.path, e.Name())
		if isHiddenFile(full) || content.IsHidden(full) {
			continue
		}
		if !e.IsDir() && path.Ext(full) == ".md" {
			// drafts and ignored files have no page
			if _, ok := d.st.site.Document(strings.TrimSuffix(full, ".md")); !ok {
				continue
			}
			name := strings.TrimSuffix(e.Name(), ".md") + ".html"
			hasIndex = hasIndex || name == "index.html"
			r = append(r, renamedEntry{DirEntry: e, name: name})
			continue
		}
		hasIndex = hasIndex || e.Name() == "index.html"
		r = append(r, e)
	}
	if _, ok := d.st.virtual[folderSlug(d.path)]; ok && !hasIndex {
		r = append(r, dirEntry{fileInfo{name: "index.html", mode: 0444, modTime: d.st.site.Built}})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name() < r[j].Name() })
	return r, nil
}

// folderSlug returns the index page slug of the directory dir.
func folderSlug(dir string) string {
	if dir == "." {
		return "index"
	}
	return dir + "/index"
}
