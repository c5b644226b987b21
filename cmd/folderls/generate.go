package main

import (
	"fmt"

	"github.com/ancientlore/folderpage/folder"
	"github.com/spf13/cobra"
)

func newGenerateCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "List the virtual index pages of folders without one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadSite(f)
			if err != nil {
				return err
			}
			pages := env.pt.Generate(folder.BuildState{Pages: env.site.Pages, Config: env.siteCfg})
			w := cmd.OutOrStdout()
			for _, d := range pages {
				fmt.Fprintf(w, "%s  %s\n", dimStyle.Render(d.Slug), d.Title)
			}
			fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d folder pages generated", len(pages))))
			return nil
		},
	}
}
