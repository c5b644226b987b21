package folder

import (
	"strings"

	"go.uber.org/zap"
)

// Page type registration values.
const (
	Name     = "FolderPage"
	Priority = 10
	Layout   = "folder"
)

// BuildState is the part of a build the page type needs to generate pages.
type BuildState struct {
	Pages  []Page
	Config Config
}

// PageType is the folder page type. It is safe for concurrent use once created.
type PageType struct {
	opts Options
	tr   Translator
	log  *zap.Logger
}

// New creates the folder page type. A nil tr uses DefaultCatalog and a nil logger
// discards log output.
func New(opts Options, tr Translator, logger *zap.Logger) *PageType {
	if tr == nil {
		tr = DefaultCatalog()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageType{opts: opts, tr: tr, log: logger}
}

// Name returns the registration name of the page type.
func (pt *PageType) Name() string { return Name }

// Priority returns the registration priority of the page type.
func (pt *PageType) Priority() int { return Priority }

// Layout returns the name of the layout used for folder pages.
func (pt *PageType) Layout() string { return Layout }

// Options returns the options the page type was created with.
func (pt *PageType) Options() Options { return pt.opts }

// Match reports whether the page with slug s is a folder page.
func (pt *PageType) Match(s string) bool {
	return Match(s)
}

// Match reports whether s is the slug of a folder index page.
func Match(s string) bool {
	return strings.HasSuffix(s, "/index")
}

// Generate returns the virtual index pages of every folder lacking one.
func (pt *PageType) Generate(bs BuildState) []Descriptor {
	label := pt.tr.Translate(bs.Config.Locale, KeyFolder, nil)
	r := VirtualPages(bs.Pages, label)
	pt.log.Debug("generated folder pages", zap.Int("count", len(r)))
	return r
}

// Title returns the title of the folder page for folderSlug, as Generate would.
func (pt *PageType) Title(cfg Config, folderSlug string) string {
	return pt.tr.Translate(cfg.Locale, KeyFolder, nil) + ": " + strings.TrimSuffix(folderSlug, "/index")
}
