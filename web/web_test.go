package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":       {Data: []byte("home")},
		"404.html":         {Data: []byte("lost")},
		"notes/index.html": {Data: []byte("notes folder")},
		"notes/go.html":    {Data: []byte("go page")},
		"style.css":        {Data: []byte("css")},
	}
}

func serve(h http.Handler, p string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
	return w
}

func TestPageHandler(t *testing.T) {
	fsys := testFS()
	var seen string
	h := PageHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Path
	}), fsys)

	tests := []struct {
		in, want string
	}{
		{"/notes/go", "/notes/go.html"},
		{"/notes/go.html", "/notes/go.html"},
		{"/notes/index", "/notes/"},
		{"/index", "/"},
		{"/notes", "/notes"},
		{"/notes/", "/notes/"},
		{"/style.css", "/style.css"},
		{"/missing", "/missing"},
	}
	for _, tt := range tests {
		serve(h, tt.in)
		assert.Equal(t, tt.want, seen, tt.in)
	}
}

func TestServeSite(t *testing.T) {
	fsys := testFS()
	h := ErrorHandler(PageHandler(http.FileServer(http.FS(fsys)), fsys), fsys)

	w := serve(h, "/notes/go")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "go page", w.Body.String())

	w = serve(h, "/notes/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "notes folder", w.Body.String())

	w = serve(h, "/nothing/here")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "lost", w.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestErrorHandlerWithoutPage(t *testing.T) {
	h := ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broken", http.StatusInternalServerError)
	}), fstest.MapFS{})
	w := serve(h, "/")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "broken\n", w.Body.String())
}

func TestHeaders(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	})
	h := HeaderHandler(ExpiresHandler(ok, time.Minute, time.Hour), map[string]string{"X-Frame-Options": "DENY"})

	before := time.Now()
	expiresIn := func(p string) time.Duration {
		w := serve(h, p)
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		exp, err := time.Parse(time.RFC1123, w.Header().Get("Expires"))
		require.NoError(t, err, p)
		return exp.Sub(before.Truncate(time.Second))
	}
	assert.InDelta(t, time.Minute.Seconds(), expiresIn("/notes/go").Seconds(), 5)
	assert.InDelta(t, time.Minute.Seconds(), expiresIn("/notes/").Seconds(), 5)
	assert.InDelta(t, time.Hour.Seconds(), expiresIn("/style.css").Seconds(), 5)

	w := serve(ExpiresHandler(ok, 0, 0), "/")
	assert.Empty(t, w.Header().Get("Expires"))
}

func TestLogHandler(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := LogHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		io.WriteString(w, "hello")
	}), zap.New(core))

	serve(h, "/ok")
	serve(h, "/fail")
	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, int64(5), entries[0].ContextMap()["bytes"])
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(500), entries[1].ContextMap()["status"])
}
