package folder

import (
	"strings"
	"sync"

	"github.com/ancientlore/folderpage/slug"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortFunc compares two pages, returning a negative number when a sorts before b,
// a positive number when a sorts after b, and zero otherwise.
type SortFunc func(a, b *Page) int

// ByDateAndAlphabetical orders dated pages newest first by cfg.DefaultDateType and
// before undated ones. Undated pages are ordered by title, ignoring case, using the
// collation rules of cfg.Locale. Two dated pages with equal dates compare equal.
func ByDateAndAlphabetical(cfg Config) SortFunc {
	titles := newTitleCompare(cfg.Locale)
	return func(a, b *Page) int {
		return byDate(cfg.DefaultDateType, titles, a, b)
	}
}

// ByDateAndAlphabeticalFolderFirst is ByDateAndAlphabetical, except that folder pages
// always sort before other pages.
func ByDateAndAlphabeticalFolderFirst(cfg Config) SortFunc {
	titles := newTitleCompare(cfg.Locale)
	return func(a, b *Page) int {
		af, bf := slug.IsFolderPath(a.Slug), slug.IsFolderPath(b.Slug)
		switch {
		case af && !bf:
			return -1
		case !af && bf:
			return 1
		}
		return byDate(cfg.DefaultDateType, titles, a, b)
	}
}

func byDate(dt DateType, titles func(a, b string) int, a, b *Page) int {
	switch {
	case a.Dates != nil && b.Dates != nil:
		return b.Dates.Get(dt).Compare(a.Dates.Get(dt))
	case a.Dates != nil:
		return -1
	case b.Dates != nil:
		return 1
	}
	return titles(strings.ToLower(a.Title), strings.ToLower(b.Title))
}

// newTitleCompare returns a locale-aware string comparison. A collator keeps
// internal buffers, so calls are serialized.
func newTitleCompare(locale string) func(a, b string) int {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	var (
		mu sync.Mutex
		c  = collate.New(tag, collate.IgnoreCase)
	)
	return func(a, b string) int {
		mu.Lock()
		defer mu.Unlock()
		return c.CompareString(a, b)
	}
}
