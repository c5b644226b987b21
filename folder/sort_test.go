package folder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePages() []Page {
	return []Page{
		dated("notes/a", "A", day(2021, 1, 1)),
		dated("notes/b", "B", day(2023, 1, 1)),
		{Slug: "notes/zeta", Title: "zeta"},
		{Slug: "notes/Alpha", Title: "Alpha"},
		{Slug: "notes/sub/index", Title: "Sub"},
		dated("notes/old/index", "Old", day(2001, 1, 1)),
		dated("notes/new/index", "New", day(2024, 1, 1)),
		{Slug: "notes/beta", Title: "beta"},
	}
}

func TestByDateAndAlphabetical(t *testing.T) {
	less := ByDateAndAlphabetical(DefaultConfig())
	a := dated("a", "A", day(2021, 1, 1))
	b := dated("b", "B", day(2023, 1, 1))
	u := Page{Slug: "u", Title: "u"}
	v := Page{Slug: "v", Title: "V"}

	assert.Positive(t, less(&a, &b), "newer sorts first")
	assert.Negative(t, less(&b, &a))
	assert.Negative(t, less(&a, &u), "dated before undated")
	assert.Positive(t, less(&u, &a))
	assert.Negative(t, less(&u, &v), "titles ignore case")

	same := dated("same", "Zzz", day(2021, 1, 1))
	assert.Zero(t, less(&a, &same), "equal dates have no title tie-break")
}

func TestByDateAndAlphabeticalDateType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultDateType = Modified
	less := ByDateAndAlphabetical(cfg)
	a := Page{Slug: "a", Dates: &Dates{Created: day(2020, 1, 1), Modified: day(2022, 1, 1)}}
	b := Page{Slug: "b", Dates: &Dates{Created: day(2021, 1, 1), Modified: day(2021, 1, 1)}}
	assert.Negative(t, less(&a, &b))

	cfg.DefaultDateType = Created
	less = ByDateAndAlphabetical(cfg)
	assert.Positive(t, less(&a, &b))
}

func TestFolderFirst(t *testing.T) {
	less := ByDateAndAlphabeticalFolderFirst(DefaultConfig())
	pages := samplePages()
	for i := range pages {
		for j := range pages {
			a, b := &pages[i], &pages[j]
			ab, ba := less(a, b), less(b, a)
			assert.Equal(t, sign(ab), -sign(ba), "antisymmetry of %s and %s", a.Slug, b.Slug)
			if isFolder(a) && !isFolder(b) {
				assert.Negative(t, ab, "%s before %s", a.Slug, b.Slug)
			}
		}
	}
	sorted := Sort(pages, less, 0)
	assert.Equal(t, []string{
		"notes/new/index", "notes/old/index", "notes/sub/index",
		"notes/b", "notes/a",
		"notes/Alpha", "notes/beta", "notes/zeta",
	}, slugs(sorted))
}

func TestParseDateType(t *testing.T) {
	for s, want := range map[string]DateType{"": Created, "created": Created, "modified": Modified, "published": Published} {
		dt, err := ParseDateType(s)
		assert.NoError(t, err)
		assert.Equal(t, want, dt)
	}
	_, err := ParseDateType("updated")
	assert.Error(t, err)
}

func isFolder(p *Page) bool {
	return Match(p.Slug) || p.Slug == "index"
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
