package web

import (
	"io/fs"
	"net/http"
)

// errorPages maps status codes to the site pages shown for them. With a virtual
// file system these are rendered from "404.md" and "500.md".
var errorPages = map[int]string{
	http.StatusNotFound:            "404.html",
	http.StatusInternalServerError: "500.html",
}

// ErrorHandler captures 404 and 500 errors and serves /404.html or /500.html from the file system.
func ErrorHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseWriter{
			ResponseWriter: w,
			fsys:           fsys,
		}
		h.ServeHTTP(writer, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	fsys    fs.FS
	noWrite bool
	err     error
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.noWrite {
		return len(b), w.err
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if file, ok := errorPages[statusCode]; ok {
		if b, err := fs.ReadFile(w.fsys, file); err == nil {
			h := w.Header()
			h.Set("Content-Type", "text/html; charset=utf-8")
			h.Del("X-Content-Type-Options")
			h.Del("Content-Length")
			w.ResponseWriter.WriteHeader(statusCode)
			w.noWrite = true
			_, w.err = w.ResponseWriter.Write(b)
			return
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

// Unwrap returns the underlying writer for http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
