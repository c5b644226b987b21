package folder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a locale is empty or not in a catalog.
const DefaultLocale = "en-US"

// Translation keys understood by Catalog.
const (
	KeyFolder           = "pages.folderContent.folder"
	KeyItemsUnderFolder = "pages.folderContent.itemsUnderFolder" // params: "count"
)

// Translator looks up localized strings and formats dates for display.
type Translator interface {
	Translate(locale, key string, params map[string]any) string
	FormatDate(locale string, t time.Time) string
}

// Locale holds the strings of one language.
type Locale struct {
	Folder   string
	ItemOne  string     // item count when there is exactly one item
	ItemMany string     // item count, "{count}" is replaced
	Months   [12]string // abbreviated month names
	Date     string     // "{day}", "{month}" and "{year}" are replaced
}

// Catalog is a Translator backed by a fixed set of locales.
type Catalog struct {
	locales map[string]Locale
	tags    []language.Tag
	matcher language.Matcher
}

// NewCatalog returns a Catalog over locales. The DefaultLocale entry, if present, is
// used when no better match exists.
func NewCatalog(locales map[string]Locale) *Catalog {
	c := Catalog{locales: locales}
	if _, ok := locales[DefaultLocale]; ok {
		c.tags = append(c.tags, language.MustParse(DefaultLocale))
	}
	for name := range locales {
		if name == DefaultLocale {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		c.tags = append(c.tags, tag)
	}
	c.matcher = language.NewMatcher(c.tags)
	return &c
}

// lookup finds the best locale for name.
func (c *Catalog) lookup(name string) Locale {
	if l, ok := c.locales[name]; ok {
		return l
	}
	if len(c.tags) > 0 {
		if tag, err := language.Parse(name); err == nil {
			_, i, conf := c.matcher.Match(tag)
			if conf != language.No {
				if l, ok := c.locales[c.tags[i].String()]; ok {
					return l
				}
			}
		}
	}
	if l, ok := c.locales[DefaultLocale]; ok {
		return l
	}
	return builtinLocales[DefaultLocale]
}

// Translate returns the string for key, or key itself when it is unknown.
func (c *Catalog) Translate(locale, key string, params map[string]any) string {
	l := c.lookup(locale)
	switch key {
	case KeyFolder:
		return l.Folder
	case KeyItemsUnderFolder:
		n := countParam(params)
		if n == 1 {
			return l.ItemOne
		}
		return strings.ReplaceAll(l.ItemMany, "{count}", strconv.Itoa(n))
	}
	return key
}

// FormatDate formats t with an abbreviated month, a two digit day, and the year.
func (c *Catalog) FormatDate(locale string, t time.Time) string {
	l := c.lookup(locale)
	return strings.NewReplacer(
		"{day}", fmt.Sprintf("%02d", t.Day()),
		"{month}", l.Months[t.Month()-1],
		"{year}", strconv.Itoa(t.Year()),
	).Replace(l.Date)
}

func countParam(params map[string]any) int {
	switch v := params["count"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// DefaultCatalog returns a Catalog with the built-in locales.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinLocales)
}

var builtinLocales = map[string]Locale{
	"en-US": {
		Folder:   "Folder",
		ItemOne:  "1 item under this folder.",
		ItemMany: "{count} items under this folder.",
		Months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Date:     "{month} {day}, {year}",
	},
	"de-DE": {
		Folder:   "Ordner",
		ItemOne:  "1 Element in diesem Ordner.",
		ItemMany: "{count} Elemente in diesem Ordner.",
		Months:   [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		Date:     "{day}. {month} {year}",
	},
	"fr-FR": {
		Folder:   "Dossier",
		ItemOne:  "1 élément dans ce dossier.",
		ItemMany: "{count} éléments dans ce dossier.",
		Months:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		Date:     "{day} {month} {year}",
	},
	"es-ES": {
		Folder:   "Carpeta",
		ItemOne:  "1 elemento en esta carpeta.",
		ItemMany: "{count} elementos en esta carpeta.",
		Months:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		Date:     "{day} {month} {year}",
	},
}
