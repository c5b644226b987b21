package folder

import (
	"slices"
	"time"

	"github.com/ancientlore/folderpage/slug"
)

// TagLink is a link to the page of one tag.
type TagLink struct {
	Name string
	Href string
}

// Row is the display form of one listed page.
type Row struct {
	Slug      string
	Title     string
	Href      string    // relative to the page holding the listing
	HasDate   bool      // false when the page has no dates
	Date      time.Time // the configured date of the page
	DateLabel string    // localized short date
	Tags      []TagLink
}

// DateTime returns the date in RFC 3339 form for machine readable markup.
func (r Row) DateTime() string {
	return r.Date.UTC().Format(time.RFC3339)
}

// Sort returns a copy of entries ordered by less. When limit is positive, at most
// limit entries are returned.
func Sort(entries []Page, less SortFunc, limit int) []Page {
	list := slices.Clone(entries)
	slices.SortStableFunc(list, func(a, b Page) int { return less(&a, &b) })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

// Rows converts entries into display rows for the page with slug current.
func Rows(current string, entries []Page, cfg Config, tr Translator) []Row {
	rows := make([]Row, 0, len(entries))
	for i := range entries {
		p := &entries[i]
		row := Row{
			Slug:  p.Slug,
			Title: p.Title,
			Href:  slug.ResolveRelative(current, p.Slug),
			Tags:  make([]TagLink, 0, len(p.Tags)),
		}
		if p.Dates != nil {
			row.HasDate = true
			row.Date = p.Dates.Get(cfg.DefaultDateType)
			row.DateLabel = tr.FormatDate(cfg.Locale, row.Date)
		}
		for _, tag := range p.Tags {
			row.Tags = append(row.Tags, TagLink{
				Name: tag,
				Href: slug.ResolveRelative(current, slug.JoinSegments(tagsFolder, tag)),
			})
		}
		rows = append(rows, row)
	}
	return rows
}
