package content

import (
	"html/template"

	"github.com/russross/blackfriday/v2"
)

// RenderMarkdown converts Markdown to HTML.
func RenderMarkdown(md []byte) template.HTML {
	return template.HTML(blackfriday.Run(md, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)))
}
