package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/ancientlore/folderpage/virtual"
	"github.com/ancientlore/folderpage/web"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
	"go.uber.org/zap"
)

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of web site.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of the page cache in bytes; 0 disables it.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "How long pages stay cached.")
		fWatch             = flag.Bool("watch", true, "Reload the site when files change.")
		fDebug             = flag.Bool("debug", false, "Log debugging information.")
	)
	flag.Parse()
	flagenv.Parse()

	log, err := newLogger(*fDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create logger: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load the site
	vfs, err := virtual.New(os.DirFS(*fRoot), virtual.WithLogger(log))
	if err != nil {
		log.Error("Cannot load site", zap.String("root", *fRoot), zap.Error(err))
		os.Exit(2)
	}
	cfg := vfs.Config()
	log.Info("Loaded site", zap.String("root", *fRoot), zap.String("locale", cfg.Locale))

	// Shut down on interrupt or on SIGTERM sent from kubernetes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *fWatch {
		go func() {
			if err := vfs.Watch(ctx, *fRoot); err != nil {
				log.Error("Cannot watch site", zap.Error(err))
			}
		}()
	}

	// Cache rendered pages (with no peers)
	var siteFS fs.FS = vfs
	if *fCacheSize > 0 {
		groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })
		siteFS = cachefs.New(vfs, &cachefs.Config{GroupName: "folderpage", SizeInBytes: *fCacheSize, Duration: *fCacheDuration})
		log.Info("Created page cache", zap.Int64("bytes", *fCacheSize), zap.Duration("duration", *fCacheDuration))
	}

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           newHandler(siteFS, cfg, log),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		// We received an interrupt signal, shut down.
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Warn("HTTP server Shutdown", zap.Error(err))
		}
	}()

	// Listen for requests
	log.Info("Listening for requests", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Error("HTTP server", zap.Error(err))
	} else {
		log.Info("Goodbye.")
	}
}

// newHandler builds the handler chain serving siteFS.
func newHandler(siteFS fs.FS, cfg virtual.Config, log *zap.Logger) http.Handler {
	return web.LogHandler(
		web.HeaderHandler(
			web.ExpiresHandler(
				gziphandler.GzipHandler(
					web.ErrorHandler(
						web.PageHandler(
							http.FileServer(http.FS(siteFS)),
							siteFS,
						),
						siteFS,
					),
				),
				time.Duration(cfg.Expires),
				time.Duration(cfg.StaticExpires),
			),
			cfg.Headers,
		),
		log,
	)
}

// newLogger returns a production logger, or a development logger when debug is set.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
