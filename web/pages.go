package web

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// PageHandler serves pages linked without their extension. Folder listings link
// to "notes/go" and "notes"; these are served as "/notes/go.html" and "/notes/".
// Requests for anything that exists as named are passed through unchanged.
func PageHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if strings.HasSuffix(p, "/") || path.Ext(p) != "" {
			h.ServeHTTP(w, r)
			return
		}
		name := pathToFile(p)
		if fi, err := fs.Stat(fsys, name); err == nil && fi.IsDir() {
			// let the file server redirect to the folder
			h.ServeHTTP(w, r)
			return
		}
		switch {
		case path.Base(name) == "index":
			rewrite(r, strings.TrimSuffix(p, "index"))
		case exists(fsys, name+".html"):
			rewrite(r, p+".html")
		case exists(fsys, path.Join(name, "index.html")):
			rewrite(r, p+"/")
		}
		h.ServeHTTP(w, r)
	})
}

// pathToFile takes a URL path and converts it into the name of the associated file.
func pathToFile(p string) string {
	p = strings.TrimPrefix(path.Clean(p), "/")
	if p == "" {
		return "."
	}
	return p
}

func exists(fsys fs.FS, name string) bool {
	fi, err := fs.Stat(fsys, name)
	return err == nil && !fi.IsDir()
}

// rewrite changes the path of r, which must not be used elsewhere.
func rewrite(r *http.Request, p string) {
	r.URL.Path = p
	r.URL.RawPath = ""
}
