package content

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FrontMatter holds data scraped from a Markdown page.
type FrontMatter struct {
	Title       string    `toml:"title" yaml:"title"`             // Title of this page
	Description string    `toml:"description" yaml:"description"` // Shown on folder pages without a body
	Tags        []string  `toml:"tags" yaml:"tags"`               // Tags to assign to this page
	CSSClasses  []string  `toml:"cssclasses" yaml:"cssclasses"`   // Extra classes for the article
	Date        time.Time `toml:"date" yaml:"date"`               // Fallback for created and published
	Created     time.Time `toml:"created" yaml:"created"`
	Modified    time.Time `toml:"modified" yaml:"modified"`
	LastMod     time.Time `toml:"lastmod" yaml:"lastmod"` // Alias of modified
	Published   time.Time `toml:"published" yaml:"published"`
	Template    string    `toml:"template" yaml:"template"` // The name of the template to use
	Draft       bool      `toml:"draft" yaml:"draft"`       // Drafts are not part of the site
}

// Front matter is delimited by "+++" for TOML and "---" for YAML.
var (
	tomlRegexp = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)
	yamlRegexp = regexp.MustCompile(`(?m)^\s*---\s*$`)
)

// extractFrontMatter splits the front matter and Markdown content. The returned
// format is "toml", "yaml" or empty when there is no front matter.
func extractFrontMatter(x []byte) (fm, r []byte, format string) {
	trimmed := bytes.TrimLeft(x, " \t\r\n")
	var re *regexp.Regexp
	switch {
	case bytes.HasPrefix(trimmed, []byte("+++")):
		re, format = tomlRegexp, "toml"
	case bytes.HasPrefix(trimmed, []byte("---")):
		re, format = yamlRegexp, "yaml"
	default:
		return nil, x, ""
	}
	subs := re.Split(string(x), 3)
	if len(subs) != 3 || strings.TrimSpace(subs[0]) != "" {
		return nil, x, ""
	}
	return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2])), format
}

// parseFrontMatter splits x and unmarshals its front matter into fm, returning the
// Markdown content.
func parseFrontMatter(x []byte, fm *FrontMatter) ([]byte, error) {
	b, r, format := extractFrontMatter(x)
	if len(b) == 0 {
		return r, nil
	}
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(b, fm)
	case "yaml":
		err = yaml.Unmarshal(b, fm)
	}
	if err != nil {
		return r, fmt.Errorf("parseFrontMatter: %w", err)
	}
	return r, nil
}
