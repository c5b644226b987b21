package virtual

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ancientlore/folderpage/content"
	"github.com/ancientlore/folderpage/folder"
	"github.com/pelletier/go-toml/v2"
)

// Config contains configuration data from the site.cfg file.
type Config struct {
	Locale          string            `toml:"locale"`          // e.g. "en-US"
	DefaultDateType string            `toml:"defaultdatetype"` // created, modified or published
	Ignore          []string          `toml:"ignore"`          // doublestar patterns of files to leave out
	Expires         Duration          `toml:"expires"`         // Expires header for pages
	StaticExpires   Duration          `toml:"staticexpires"`   // Expires header for other files
	Headers         map[string]string `toml:"headers"`         // extra response headers
	Folder          FolderConfig      `toml:"folder"`
}

// FolderConfig configures folder pages.
type FolderConfig struct {
	ShowFolderCount *bool `toml:"showfoldercount"` // defaults to true
	ShowSubfolders  *bool `toml:"showsubfolders"`  // defaults to true
	Limit           int   `toml:"limit"`           // 0 lists every item
	Flat            bool  `toml:"flat"`            // find children by scanning all pages
}

// SiteConfig returns the folder package settings.
func (c Config) SiteConfig() (folder.Config, error) {
	dt, err := folder.ParseDateType(c.DefaultDateType)
	if err != nil {
		return folder.Config{}, err
	}
	cfg := folder.Config{Locale: c.Locale, DefaultDateType: dt}
	if cfg.Locale == "" {
		cfg.Locale = folder.DefaultLocale
	}
	return cfg, nil
}

// FolderOptions returns the folder page options, using now for subfolder dates.
func (c Config) FolderOptions(now folder.Clock) folder.Options {
	opts := folder.DefaultOptions()
	opts.Now = now
	opts.Limit = c.Folder.Limit
	if c.Folder.ShowFolderCount != nil {
		opts.ShowFolderCount = *c.Folder.ShowFolderCount
	}
	if c.Folder.ShowSubfolders != nil {
		opts.ShowSubfolders = *c.Folder.ShowSubfolders
	}
	return opts
}

// ReadConfig reads the site.cfg file of fsys. It is not an error if the file does not exist.
func ReadConfig(fsys fs.FS) (Config, error) {
	var cfg Config
	b, err := fs.ReadFile(fsys, content.ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("Cannot read config file: %w", err)
	}
	if err = toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("Cannot parse config file: %w", err)
	}
	if _, err = cfg.SiteConfig(); err != nil {
		return cfg, fmt.Errorf("Cannot parse config file: %w", err)
	}
	return cfg, nil
}

// Duration is a time.Duration written as a string such as "10m" in site.cfg.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("Duration: %w", err)
	}
	*d = Duration(p)
	return nil
}
