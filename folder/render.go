package folder

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"

	"go.uber.org/zap"
)

//go:embed folder.html
var folderTemplate string

var tpl = template.Must(template.New("folder").Parse(folderTemplate))

// contentData is what is passed to the "content" template.
type contentData struct {
	Classes   string
	Content   any // template.HTML for a rendered body, string for a description
	ShowCount bool
	Count     string
	List      template.HTML
}

// RenderInput is everything needed to render one folder page.
type RenderInput struct {
	Slug        string        // slug of the page being rendered
	Body        template.HTML // the page's own rendered markdown, possibly empty
	Description string        // used when Body is empty
	CSSClasses  []string
	AllFiles    []Page // every page of the build
	Trie        Finder // optional hierarchical view of AllFiles
	Config      Config
}

// RenderList renders entries as an HTML list for the page with slug current. The
// entries are sorted by less, or ByDateAndAlphabeticalFolderFirst when less is nil,
// and cut to limit when limit is positive.
func RenderList(current string, entries []Page, cfg Config, less SortFunc, limit int, tr Translator) (template.HTML, error) {
	if less == nil {
		less = ByDateAndAlphabeticalFolderFirst(cfg)
	}
	rows := Rows(current, Sort(entries, less, limit), cfg, tr)
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "list", rows); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Render renders a folder page: its own content followed by the listing of its
// children. It returns an empty string when the page has no slug or the folder
// cannot be found.
func (pt *PageType) Render(in RenderInput) template.HTML {
	if in.Slug == "" {
		return ""
	}
	children, ok := NewChildrenProvider(in.Trie, in.AllFiles, pt.opts).ChildrenOf(in.Slug)
	if !ok {
		pt.log.Debug("folder not found", zap.String("slug", in.Slug))
		return ""
	}
	list, err := RenderList(in.Slug, children, in.Config, pt.opts.Sort, pt.opts.Limit, pt.tr)
	if err != nil {
		pt.log.Warn("cannot render listing", zap.String("slug", in.Slug), zap.Error(err))
		return ""
	}
	data := contentData{
		Classes:   strings.Join(in.CSSClasses, " "),
		Content:   in.Body,
		ShowCount: pt.opts.ShowFolderCount,
		Count:     pt.tr.Translate(in.Config.Locale, KeyItemsUnderFolder, map[string]any{"count": len(children)}),
		List:      list,
	}
	if in.Body == "" {
		data.Content = in.Description
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "content", data); err != nil {
		pt.log.Warn("cannot render folder content", zap.String("slug", in.Slug), zap.Error(err))
		return ""
	}
	return template.HTML(buf.String())
}
