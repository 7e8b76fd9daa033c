package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/brandkit/internal/brand"
	"github.com/ziadkadry99/brandkit/internal/config"
	"github.com/ziadkadry99/brandkit/internal/dashboard"
	"github.com/ziadkadry99/brandkit/internal/progress"
	"github.com/ziadkadry99/brandkit/internal/server"
	"github.com/ziadkadry99/brandkit/internal/site"
	"github.com/ziadkadry99/brandkit/internal/watch"
)

// previewOptions are the resolved serve settings after flags and config.
type previewOptions struct {
	OutputDir string
	Port      int
	Open      bool
	Watch     bool
	AllowAll  bool
	Section   string // page opened in the browser
}

// runPreview serves outputDir until interrupted, rebuilding on changes when
// opts.Watch is set.
func runPreview(parent context.Context, cfg *config.Config, state *brand.State, opts previewOptions) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Port:     opts.Port,
		Dir:      opts.OutputDir,
		AllowAll: opts.AllowAll,
	}, logger)

	dash := dashboard.New(state, logger)
	dash.RegisterRoutes(srv.Router())
	defer dash.Close()

	if opts.Watch {
		w, err := watch.New([]string{cfg.DataDir, cfg.StaticDir}, func(ctx context.Context, paths []string) {
			next, _, err := buildSite(ctx, cfg, opts.OutputDir, true, progress.Nop{})
			if err != nil {
				logger.Error("rebuild failed", zap.Error(err))
				return
			}
			dash.SetState(next)
		}, watch.Options{
			Ignore: ignoreFunc(opts.OutputDir),
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Stop()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down preview server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		dash.Close()
		srv.Shutdown(shutdownCtx)
	}()

	url := pageURL(srv.URL(), opts.Section)
	fmt.Fprintf(os.Stderr, "Serving %s at %s\n", opts.OutputDir, url)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")
	if opts.Open {
		go server.OpenBrowser(url)
	}

	return srv.Start()
}

// pageURL is the dashboard address for a section. Unknown sections land on
// the home page.
func pageURL(base, section string) string {
	id := site.ResolveRoute(section, site.SectionIDs())
	if id == site.HomeSection {
		return base + "/"
	}
	return base + "/#" + id
}

// ignoreFunc drops events from the output directory and from editor or OS
// scratch files.
func ignoreFunc(outputDir string) func(string) bool {
	absOut, _ := filepath.Abs(outputDir)
	return func(path string) bool {
		if abs, err := filepath.Abs(path); err == nil && absOut != "" {
			if abs == absOut || strings.HasPrefix(abs, absOut+string(filepath.Separator)) {
				return true
			}
		}
		base := filepath.Base(path)
		return strings.HasSuffix(base, "~") ||
			strings.HasSuffix(base, ".swp") ||
			strings.HasPrefix(base, ".#") ||
			base == ".DS_Store"
	}
}
