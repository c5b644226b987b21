/*
Package folder implements the folder page type of a site: it finds folders that have no
index page of their own and synthesizes virtual index pages for them, resolves the direct
children of a folder, and renders a folder's content followed by a sorted listing of
those children.

The host supplies the pages of a build as a flat slice of Page values and, optionally, a
hierarchical view of them through the Finder interface. Everything in this package is
synchronous and works only on the values it is given.
*/
package folder

import (
	"fmt"
	"time"
)

// DateType selects which of a page's dates is used for sorting and display.
type DateType string

const (
	Created   DateType = "created"
	Modified  DateType = "modified"
	Published DateType = "published"
)

// ParseDateType validates s, returning Created for an empty string.
func ParseDateType(s string) (DateType, error) {
	switch DateType(s) {
	case "":
		return Created, nil
	case Created, Modified, Published:
		return DateType(s), nil
	}
	return "", fmt.Errorf("ParseDateType: unknown date type %q", s)
}

// Dates holds the dates of a page. A zero field means the date is not known.
type Dates struct {
	Created   time.Time
	Modified  time.Time
	Published time.Time
}

// Get returns the date selected by t.
func (d *Dates) Get(t DateType) time.Time {
	if d == nil {
		return time.Time{}
	}
	switch t {
	case Modified:
		return d.Modified
	case Published:
		return d.Published
	}
	return d.Created
}

// Page is a single page of a site, either authored or synthesized.
type Page struct {
	Slug        string   // unique within a build, e.g. "notes/go/index"
	Title       string   // may be empty
	Tags        []string // in front matter order
	Dates       *Dates   // nil when the page has no dates
	Description string   // shown when a folder page has no body
	CSSClasses  []string // extra classes for the rendered article
}

// Descriptor describes a virtual folder index page produced by Generate.
type Descriptor struct {
	Slug  string         // always ends in "/index"
	Title string         // localized "Folder: " prefix plus the folder path
	Data  map[string]any // empty; a virtual page has no body of its own
}

// Clock returns the current time.
type Clock func() time.Time

// Config carries the host's site settings.
type Config struct {
	Locale          string   // e.g. "en-US"
	DefaultDateType DateType // date used for sorting and display
}

// DefaultConfig returns the settings used when the host provides none.
func DefaultConfig() Config {
	return Config{
		Locale:          DefaultLocale,
		DefaultDateType: Created,
	}
}

// Options configures the folder page type.
type Options struct {
	ShowFolderCount bool     // print "N items under this folder."
	ShowSubfolders  bool     // list subfolders that have no index page
	Sort            SortFunc // nil means ByDateAndAlphabeticalFolderFirst
	Limit           int      // maximum number of listed items; 0 means all
	Now             Clock    // fills in dates of subfolder roll-ups; nil leaves them unset
}

// DefaultOptions returns options that show the item count and subfolders.
func DefaultOptions() Options {
	return Options{
		ShowFolderCount: true,
		ShowSubfolders:  true,
		Now:             time.Now,
	}
}
