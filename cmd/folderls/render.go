package main

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/ancientlore/folderpage/folder"
	"github.com/ancientlore/folderpage/slug"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

type renderFlags struct {
	flat     bool
	markdown bool
}

func newRenderCmd(f *rootFlags) *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "render [folder]",
		Short: "Print the HTML body of a folder page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadSite(f)
			if err != nil {
				return err
			}
			s := folderArg(args)
			in := folder.RenderInput{
				Slug:     s,
				AllFiles: env.site.Pages,
				Trie:     env.finder(rf.flat),
				Config:   env.siteCfg,
			}
			if doc, ok := env.site.Document(s); ok {
				in.Body = doc.Body
				in.Description = doc.FrontMatter.Description
				in.CSSClasses = doc.FrontMatter.CSSClasses
			}
			out := string(env.pt.Render(in))
			if out == "" {
				return fmt.Errorf("folder %q not found", slug.Simplify(s))
			}
			if rf.markdown {
				if out, err = toMarkdown(out); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&rf.flat, "flat", false, "Find children by scanning all pages instead of the tree")
	cmd.Flags().BoolVarP(&rf.markdown, "markdown", "m", false, "Convert the HTML to Markdown")
	return cmd
}

// toMarkdown converts rendered HTML into Markdown.
func toMarkdown(s string) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	b, err := htmltomarkdown.ConvertNode(doc)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	return string(b), nil
}
