/*
Package slug implements helpers for the slash-delimited page identifiers used throughout
a site. A slug has no leading slash and folder pages end in "/index", for example
"articles/2024/index" or "articles/2024/hello".

Suffix checks in this package are segment aware: "myindex" does not end with "index",
but "a/index" does.
*/
package slug

import "strings"

// JoinSegments joins the non-empty parts with "/", stripping one leading and one
// trailing slash from each. A leading slash on the first part and a trailing slash
// on the last part are kept.
func JoinSegments(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "/" {
			continue
		}
		segments = append(segments, StripSlashes(p, false))
	}
	joined := strings.Join(segments, "/")
	if strings.HasPrefix(parts[0], "/") {
		joined = "/" + joined
	}
	if strings.HasSuffix(parts[len(parts)-1], "/") {
		joined += "/"
	}
	return joined
}

// StripSlashes removes one leading slash and, unless onlyPrefix is set, one trailing slash.
func StripSlashes(s string, onlyPrefix bool) string {
	s = strings.TrimPrefix(s, "/")
	if !onlyPrefix {
		s = strings.TrimSuffix(s, "/")
	}
	return s
}

// EndsWith reports whether s is suffix or ends with "/"+suffix.
func EndsWith(s, suffix string) bool {
	return s == suffix || strings.HasSuffix(s, "/"+suffix)
}

// TrimSuffix removes suffix from s when EndsWith(s, suffix) holds.
func TrimSuffix(s, suffix string) string {
	if EndsWith(s, suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}

// Simplify drops a trailing "index" segment and surrounding slashes.
// The root folder simplifies to "/".
func Simplify(full string) string {
	res := StripSlashes(TrimSuffix(full, "index"), false)
	if res == "" {
		return "/"
	}
	return res
}

// PathToRoot returns the relative path from the folder holding s back to the site root.
func PathToRoot(s string) string {
	depth := -1
	for _, seg := range strings.Split(s, "/") {
		if seg != "" {
			depth++
		}
	}
	if depth <= 0 {
		return "."
	}
	return strings.TrimSuffix(strings.Repeat("../", depth), "/")
}

// ResolveRelative returns a link to target relative to the page current.
func ResolveRelative(current, target string) string {
	return JoinSegments(PathToRoot(current), Simplify(target))
}

// IsFolderPath reports whether s names a folder: it ends in a slash or its last
// segment is an index page.
func IsFolderPath(s string) bool {
	return strings.HasSuffix(s, "/") ||
		EndsWith(s, "index") ||
		EndsWith(s, "index.md") ||
		EndsWith(s, "index.html")
}
