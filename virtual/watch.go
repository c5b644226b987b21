package virtual

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDelay is how long Watch waits for changes to settle before reloading.
var reloadDelay = 250 * time.Millisecond

// Watch reloads the site whenever something below root changes, until ctx is done.
// root is the operating system directory the FS was made from.
func (vfs *FS) Watch(ctx context.Context, root string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("Watch: %w", err)
	}
	defer w.Close()
	if err = addDirs(w, root); err != nil {
		return fmt.Errorf("Watch: %w", err)
	}
	reload := func() {
		if err := vfs.Reload(); err != nil {
			vfs.log.Error("cannot reload site", zap.Error(err))
		}
	}
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			vfs.log.Debug("file changed", zap.String("name", ev.Name), zap.Stringer("op", ev.Op))
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := addDirs(w, ev.Name); err != nil {
						vfs.log.Warn("cannot watch folder", zap.String("name", ev.Name), zap.Error(err))
					}
				}
			}
			if timer == nil {
				timer = time.AfterFunc(reloadDelay, reload)
			} else {
				timer.Reset(reloadDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			vfs.log.Warn("watch error", zap.Error(err))
		}
	}
}

// addDirs watches dir and every folder below it, except hidden ones.
func addDirs(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
}
