package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ziadkadry99/brandkit/internal/brand"
	"github.com/ziadkadry99/brandkit/internal/config"
	"github.com/ziadkadry99/brandkit/internal/progress"
	"github.com/ziadkadry99/brandkit/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `brandkit init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// sources maps the configured file names onto loader sources.
func sources(cfg *config.Config) brand.Sources {
	return brand.Sources{
		Tokens:    cfg.TokensFile,
		Templates: cfg.TemplatesFile,
		Brand:     cfg.BrandFile,
		Logos:     cfg.LogosFile,
	}
}

// loadState reads the brand documents named by cfg.
func loadState(ctx context.Context, cfg *config.Config) *brand.State {
	return brand.LoadDir(ctx, cfg.DataDir, sources(cfg), logger)
}

// siteOptions builds renderer options from cfg.
func siteOptions(cfg *config.Config, liveReload bool, reporter progress.Reporter) site.Options {
	return site.Options{
		Title:       cfg.Title,
		FontFamily:  cfg.FontFamily,
		ToastMillis: cfg.ToastMillis,
		StaticDir:   cfg.StaticDir,
		Include:     cfg.Include,
		Exclude:     cfg.Exclude,
		LiveReload:  liveReload,
		Reporter:    reporter,
		Logger:      logger,
	}
}

// buildSite loads the data and writes the dashboard into outputDir.
func buildSite(ctx context.Context, cfg *config.Config, outputDir string, liveReload bool, reporter progress.Reporter) (*brand.State, int, error) {
	state := loadState(ctx, cfg)
	n, err := site.NewGenerator(state, outputDir, siteOptions(cfg, liveReload, reporter)).Generate()
	if err != nil {
		return nil, 0, fmt.Errorf("generating site: %w", err)
	}
	return state, n, nil
}

// outputDir returns the --output override, or the configured directory.
func outputDir(cfg *config.Config, override string) string {
	if override != "" {
		return filepath.Clean(override)
	}
	return filepath.Clean(cfg.OutputDir)
}
