package folder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func equivalencePages() []Page {
	return []Page{
		{Slug: "index", Title: "Home"},
		{Slug: "empty/index", Title: "Empty"},
		{Slug: "direct/index", Title: "Direct"},
		dated("direct/a", "A", day(2020, 1, 1)),
		{Slug: "direct/b", Title: "B", Tags: []string{"go"}},
		dated("subs/x/one", "One", day(2021, 3, 1)),
		dated("subs/x/two", "Two", day(2022, 3, 1)),
		{Slug: "subs/y/three", Title: "Three"},
		{Slug: "mixed/index", Title: "Mixed"},
		dated("mixed/p", "P", day(2019, 1, 1)),
		dated("mixed/q/r", "R", day(2018, 1, 1)),
		dated("mixed/q/deep/s", "S", day(2023, 1, 1)),
		{Slug: "mixed/own/index", Title: "Own"},
		dated("mixed/own/t", "T", day(2017, 1, 1)),
		{Slug: "tags/go", Title: "Tag: go"},
	}
}

func byslug(pages []Page) map[string]Page {
	r := make(map[string]Page, len(pages))
	for _, p := range pages {
		r[p.Slug] = p
	}
	return r
}

func TestChildrenEquivalence(t *testing.T) {
	pages := equivalencePages()
	now := fixedClock(day(2030, 1, 1))
	for _, show := range []bool{true, false} {
		trie := &TrieBacked{Root: buildTestTrie(pages), ShowSubfolders: show, Now: now}
		flat := &FlatListBacked{Pages: pages, ShowSubfolders: show, Now: now}
		for _, folder := range []string{"index", "empty/index", "direct/index", "subs/index", "subs/x/index", "mixed/index", "mixed/own/index", "mixed/q/index"} {
			a, okA := trie.ChildrenOf(folder)
			b, okB := flat.ChildrenOf(folder)
			require.True(t, okA, "trie %s", folder)
			require.True(t, okB, "flat %s", folder)
			assert.Len(t, b, len(byslug(b)), "duplicate slugs in %s", folder)
			assert.Equal(t, byslug(a), byslug(b), "folder %s, subfolders %v", folder, show)
		}
	}
}

func TestChildrenOf(t *testing.T) {
	pages := equivalencePages()
	p := &FlatListBacked{Pages: pages, ShowSubfolders: true, Now: fixedClock(day(2030, 1, 1))}

	c, ok := p.ChildrenOf("empty/index")
	assert.True(t, ok)
	assert.Empty(t, c)

	c, _ = p.ChildrenOf("direct/index")
	assert.ElementsMatch(t, []string{"direct/a", "direct/b"}, slugs(c))

	c, _ = p.ChildrenOf("subs/index")
	assert.ElementsMatch(t, []string{"subs/x/index", "subs/y/index"}, slugs(c))
	x := byslug(c)["subs/x/index"]
	assert.Equal(t, "x", x.Title)
	assert.Equal(t, []string{}, x.Tags)
	require.NotNil(t, x.Dates)
	assert.Equal(t, day(2022, 3, 1), x.Dates.Created)
	y := byslug(c)["subs/y/index"]
	require.NotNil(t, y.Dates)
	assert.Equal(t, day(2030, 1, 1), y.Dates.Modified, "undated subfolder uses the clock")

	c, _ = p.ChildrenOf("mixed/index")
	assert.ElementsMatch(t, []string{"mixed/p", "mixed/q/index", "mixed/own/index"}, slugs(c))
	assert.Equal(t, "Own", byslug(c)["mixed/own/index"].Title, "explicit index is used as is")
	assert.Equal(t, day(2023, 1, 1), byslug(c)["mixed/q/index"].Dates.Created, "nested pages roll up")

	c, _ = p.ChildrenOf("index")
	assert.ElementsMatch(t, []string{"empty/index", "direct/index", "subs/index", "mixed/index"}, slugs(c))

	p.ShowSubfolders = false
	c, _ = p.ChildrenOf("mixed/index")
	assert.ElementsMatch(t, []string{"mixed/p", "mixed/own/index"}, slugs(c))
}

func TestChildrenOfUnknown(t *testing.T) {
	pages := equivalencePages()
	for _, p := range []ChildrenProvider{
		NewChildrenProvider(buildTestTrie(pages), pages, DefaultOptions()),
		NewChildrenProvider(nil, pages, DefaultOptions()),
	} {
		_, ok := p.ChildrenOf("missing/index")
		assert.False(t, ok)
		_, ok = p.ChildrenOf("")
		assert.False(t, ok)
	}
}

func TestFolderPrefix(t *testing.T) {
	assert.Equal(t, "a/", folderPrefix("a/index"))
	assert.Equal(t, "", folderPrefix("index"))
	assert.Equal(t, "a/", folderPrefix("a"))
	assert.Equal(t, "a/", folderPrefix("a/"))
	assert.Equal(t, "a/myindex/", folderPrefix("a/myindex"))
}

func TestMostRecent(t *testing.T) {
	pages := []Page{
		{Slug: "a", Dates: &Dates{Created: day(2020, 1, 1)}},
		{Slug: "b", Dates: &Dates{Created: day(2021, 1, 1), Modified: day(2021, 6, 1)}},
		{Slug: "c", Dates: &Dates{Published: day(2019, 5, 5)}},
		{Slug: "d"},
	}
	clock := fixedClock(day(2030, 1, 1))
	assert.Equal(t, &Dates{Created: day(2021, 1, 1), Modified: day(2021, 6, 1), Published: day(2019, 5, 5)}, MostRecent(pages, clock))

	assert.Equal(t, &Dates{Created: day(2021, 1, 1), Modified: day(2021, 6, 1), Published: day(2030, 1, 1)}, MostRecent(pages[:2], clock),
		"a field no page supplies comes from the clock")
	assert.Equal(t, &Dates{Created: day(2021, 1, 1), Modified: day(2021, 6, 1)}, MostRecent(pages[:2], nil))

	assert.Equal(t, &Dates{Created: day(2030, 1, 1), Modified: day(2030, 1, 1), Published: day(2030, 1, 1)}, MostRecent(pages[3:], clock))
	assert.Nil(t, MostRecent(pages[3:], nil))
	assert.Nil(t, MostRecent(nil, nil))
}

func TestMostRecentWallClock(t *testing.T) {
	before := time.Now()
	d := MostRecent(nil, time.Now)
	require.NotNil(t, d)
	assert.False(t, d.Created.Before(before))
	assert.Equal(t, d.Created, d.Published)
}
