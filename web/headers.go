package web

import (
	"net/http"
	"path"
	"strings"
	"time"
)

var gmtZone *time.Location

func init() {
	var err error
	gmtZone, err = time.LoadLocation("GMT")
	if err != nil {
		gmtZone = time.UTC
	}
}

// HeaderHandler returns an http.Handler that adds the given headers to the response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// ExpiresHandler adds the expires header choosing expires for pages
// and staticExpires for everything else.
func ExpiresHandler(h http.Handler, expires, staticExpires time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expiry := staticExpires
		if isPage(r.URL.Path) {
			expiry = expires
		}
		if expiry != 0 {
			w.Header().Set("Expires", time.Now().Add(expiry).In(gmtZone).Format(time.RFC1123))
		}
		h.ServeHTTP(w, r)
	})
}

// isPage reports whether the URL path names a rendered page: a folder, an
// ".html" file, or a page linked without its extension.
func isPage(p string) bool {
	return strings.HasSuffix(p, "/") || path.Ext(p) == ".html" || path.Ext(p) == ""
}
