package main

import (
	"fmt"
	"strings"

	"github.com/ancientlore/folderpage/folder"
	"github.com/ancientlore/folderpage/slug"
	"github.com/spf13/cobra"
)

type lsFlags struct {
	flat         bool
	limit        int
	noSubfolders bool
}

func newLsCmd(f *rootFlags) *cobra.Command {
	var lf lsFlags
	cmd := &cobra.Command{
		Use:   "ls [folder]",
		Short: "Show what a folder page lists",
		Long: `Show the entries of a folder page in listing order: folders first, then
newest first, then by title. The folder defaults to the root of the site.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadSite(f)
			if err != nil {
				return err
			}
			s := folderArg(args)
			opts := env.opts
			if cmd.Flags().Changed("limit") {
				opts.Limit = lf.limit
			}
			if lf.noSubfolders {
				opts.ShowSubfolders = false
			}
			children, ok := folder.NewChildrenProvider(env.finder(lf.flat), env.site.Pages, opts).ChildrenOf(s)
			if !ok {
				return fmt.Errorf("folder %q not found", slug.Simplify(s))
			}
			entries := folder.Sort(children, folder.ByDateAndAlphabeticalFolderFirst(env.siteCfg), opts.Limit)
			rows := folder.Rows(s, entries, env.siteCfg, folder.DefaultCatalog())

			w := cmd.OutOrStdout()
			title := env.pt.Title(env.siteCfg, s)
			if p, ok := env.site.Page(s); ok && p.Title != "" {
				title = p.Title
			}
			count := folder.DefaultCatalog().Translate(env.siteCfg.Locale, folder.KeyItemsUnderFolder, map[string]any{"count": len(children)})
			fmt.Fprintln(w, boxStyle.Render(titleStyle.Render(title)+"\n"+dimStyle.Render(count)))
			for _, r := range rows {
				fmt.Fprintln(w, formatRow(r))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&lf.flat, "flat", false, "Find children by scanning all pages instead of the tree")
	cmd.Flags().IntVarP(&lf.limit, "limit", "n", 0, "Maximum number of entries (0 = all)")
	cmd.Flags().BoolVar(&lf.noSubfolders, "no-subfolders", false, "Leave out subfolders without an index page")
	return cmd
}

// formatRow renders one listing entry on a line.
func formatRow(r folder.Row) string {
	date := strings.Repeat(" ", 12)
	if r.HasDate {
		date = fmt.Sprintf("%-12s", r.DateLabel)
	}
	title := itemStyle.Render(r.Title)
	if slug.IsFolderPath(r.Slug) {
		title = folderStyle.Render(r.Title + "/")
	}
	var b strings.Builder
	b.WriteString(dimStyle.Render(date))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(r.Href))
	for _, t := range r.Tags {
		b.WriteString(" ")
		b.WriteString(tagStyle.Render("#" + t.Name))
	}
	return b.String()
}
