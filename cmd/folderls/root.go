package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ancientlore/folderpage/content"
	"github.com/ancientlore/folderpage/folder"
	"github.com/ancientlore/folderpage/virtual"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootFlags are shared by every command.
type rootFlags struct {
	root   string
	locale string
	debug  bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "folderls",
		Short: "Inspect the folder pages of a Markdown site",
		Long: `folderls loads a Markdown site the way the server does and shows its folder pages:
which virtual index pages are generated and what each folder lists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&f.root, "root", "r", ".", "Root of web site")
	cmd.PersistentFlags().StringVar(&f.locale, "locale", "", "Locale overriding site.cfg")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "Log debugging information")

	cmd.AddCommand(
		newGenerateCmd(&f),
		newLsCmd(&f),
		newRenderCmd(&f),
	)
	return cmd
}

// siteEnv is a loaded site with its folder page settings.
type siteEnv struct {
	cfg     virtual.Config
	siteCfg folder.Config
	opts    folder.Options
	site    *content.Site
	pt      *folder.PageType
	log     *zap.Logger
}

// loadSite reads the site at f.root.
func loadSite(f *rootFlags) (*siteEnv, error) {
	log := zap.NewNop()
	if f.debug {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("loadSite: %w", err)
		}
	}
	fsys := os.DirFS(f.root)
	cfg, err := virtual.ReadConfig(fsys)
	if err != nil {
		return nil, err
	}
	if f.locale != "" {
		cfg.Locale = f.locale
	}
	siteCfg, err := cfg.SiteConfig()
	if err != nil {
		return nil, err
	}
	site, err := content.Load(fsys, content.LoadOptions{Ignore: cfg.Ignore, Logger: log})
	if err != nil {
		return nil, err
	}
	opts := cfg.FolderOptions(folder.DefaultOptions().Now)
	return &siteEnv{
		cfg:     cfg,
		siteCfg: siteCfg,
		opts:    opts,
		site:    site,
		pt:      folder.New(opts, folder.DefaultCatalog(), log),
		log:     log,
	}, nil
}

// finder returns the tree of the site, or nil to scan all pages.
func (env *siteEnv) finder(flat bool) folder.Finder {
	if flat {
		return nil
	}
	return env.site.Trie
}

// folderSlug turns "notes", "notes/" or "notes/index" into "notes/index". An
// empty name is the root folder.
func folderSlug(name string) string {
	name = strings.Trim(name, "/")
	switch {
	case name == "" || name == "index":
		return "index"
	case strings.HasSuffix(name, "/index"):
		return name
	}
	return name + "/index"
}

// folderArg returns the folder slug named by args, the root when there is none.
func folderArg(args []string) string {
	if len(args) == 0 {
		return "index"
	}
	return folderSlug(args[0])
}
