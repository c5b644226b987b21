package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSegments(t *testing.T) {
	tests := []struct {
		parts  []string
		expect string
	}{
		{nil, ""},
		{[]string{"a", "b"}, "a/b"},
		{[]string{"a/", "/b"}, "a/b"},
		{[]string{"/a", "b"}, "/a/b"},
		{[]string{"a", "b/"}, "a/b/"},
		{[]string{"", "a", "/", "b"}, "a/b"},
		{[]string{"..", "tags/go"}, "../tags/go"},
		{[]string{"a/c", "index"}, "a/c/index"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expect, JoinSegments(tt.parts...), "JoinSegments(%q)", tt.parts)
	}
}

func TestJoinSegmentsRoundTrip(t *testing.T) {
	for _, p := range []string{"a", "a/b", "/a/b", "a/b/", "/a/b/c/"} {
		stripped := StripSlashes(p, false)
		assert.Equal(t, stripped, JoinSegments(stripped), "round trip of %q", p)
	}
}

func TestStripSlashes(t *testing.T) {
	assert.Equal(t, "a/b", StripSlashes("/a/b/", false))
	assert.Equal(t, "a/b/", StripSlashes("/a/b/", true))
	assert.Equal(t, "/a", StripSlashes("//a", false))
	assert.Equal(t, "", StripSlashes("/", false))
}

func TestEndsWith(t *testing.T) {
	assert.True(t, EndsWith("index", "index"))
	assert.True(t, EndsWith("a/index", "index"))
	assert.False(t, EndsWith("myindex", "index"))
	assert.False(t, EndsWith("a/myindex", "index"))
	assert.Equal(t, "a/", TrimSuffix("a/index", "index"))
	assert.Equal(t, "a/myindex", TrimSuffix("a/myindex", "index"))
}

func TestSimplify(t *testing.T) {
	assert.Equal(t, "/", Simplify("index"))
	assert.Equal(t, "/", Simplify(""))
	assert.Equal(t, "a/b", Simplify("a/b"))
	for _, f := range []string{"a", "a/b", "x/y/z"} {
		assert.Equal(t, f, Simplify(JoinSegments(f, "index")), "folder %q", f)
	}
}

func TestPathToRoot(t *testing.T) {
	assert.Equal(t, ".", PathToRoot("index"))
	assert.Equal(t, ".", PathToRoot(""))
	assert.Equal(t, "..", PathToRoot("a/index"))
	assert.Equal(t, "../..", PathToRoot("a/b/page"))
	assert.Equal(t, "..", PathToRoot("/a/b/"))
}

func TestResolveRelative(t *testing.T) {
	assert.Equal(t, "./a/b", ResolveRelative("index", "a/b"))
	assert.Equal(t, "../tags/go", ResolveRelative("a/index", "tags/go"))
	assert.Equal(t, "../a/c", ResolveRelative("a/index", "a/c/index"))
	assert.Equal(t, "../../", ResolveRelative("a/b/page", "index"))
}

func TestIsFolderPath(t *testing.T) {
	for _, s := range []string{"a/", "a/index", "a/index.md", "a/index.html", "index"} {
		assert.True(t, IsFolderPath(s), s)
	}
	for _, s := range []string{"a/myindex", "a/b", "indexes"} {
		assert.False(t, IsFolderPath(s), s)
	}
}
