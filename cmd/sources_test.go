package cmd

import (
	"testing"

	"github.com/ziadkadry99/brandkit/internal/brand"
	"github.com/ziadkadry99/brandkit/internal/config"
)

func TestSourcesFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if got := sources(cfg); got != brand.DefaultSources() {
		t.Errorf("default sources = %+v, want %+v", got, brand.DefaultSources())
	}

	cfg.LogosFile = ""
	if got := sources(cfg); got.Logos != "" || got.Brand != "brand.json" {
		t.Errorf("sources = %+v", got)
	}
}

func TestBuildSiteFromSample(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = "../testdata/sample_brand/data"
	cfg.StaticDir = "../testdata/sample_brand/assets"

	state, sections, err := buildSite(t.Context(), cfg, t.TempDir(), false, nil)
	if err != nil {
		t.Fatalf("buildSite: %v", err)
	}
	if sections != 9 {
		t.Errorf("sections = %d, want 9", sections)
	}
	if state.HasErrors() {
		t.Errorf("unexpected load errors: %v", state.Errors())
	}
}
