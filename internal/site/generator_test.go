package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ziadkadry99/brandkit/internal/brand"
)

const (
	sampleData   = "../../testdata/sample_brand/data"
	sampleAssets = "../../testdata/sample_brand/assets"
)

func generateSample(t *testing.T, opts Options) (string, *Manifest) {
	t.Helper()
	state := brand.LoadDir(t.Context(), sampleData, brand.DefaultSources(), nil)
	if state.HasErrors() {
		t.Fatalf("sample data failed to load: %v", state.Errors())
	}

	out := t.TempDir()
	gen := NewGenerator(state, out, opts)
	n, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != len(Sections) {
		t.Errorf("sections = %d, want %d", n, len(Sections))
	}

	m, err := ReadManifest(out)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	return out, m
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func TestFullSiteGeneration(t *testing.T) {
	out, m := generateSample(t, Options{
		Title:      "Les Voyages En Art",
		StaticDir:  sampleAssets,
		Exclude:    []string{"**/.DS_Store"},
		FontFamily: "Georgia, serif",
	})

	for _, name := range []string{IndexFile, StyleFile, ScriptFile, ManifestFile} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	html := readOutput(t, out, IndexFile)
	checks := []string{
		"<title>Les Voyages En Art</title>",
		`style.css?v=` + m.BuildID,
		`id="page-home"`,
		`id="page-assets"`,
		`data-menu-toggle="menu-primary"`,
		`download="primary-white@2x.png"`,
		`logo-card__preview--dark`,
		`Télécharger PNG 512px`,
		`Aucun fichier`,
		`Locale`,
		`Ouvrir`,
		`<strong>conférence-spectacle</strong>`,
		`data-copy="#1B2A4A"`,
		`Fait`,
		`En cours`,
		`Fedra Sans Pro, sans-serif`,
	}
	for _, c := range checks {
		if !strings.Contains(html, c) {
			t.Errorf("index.html missing %q", c)
		}
	}
	if strings.Contains(html, `data-menu-toggle="menu-favicon"`) {
		t.Error("single-file logo should not get a download menu")
	}
	if strings.Contains(html, "ZgotmplZ") {
		t.Error("template produced an unsafe-value marker")
	}
}

func TestGenerateCopiesBrandFiles(t *testing.T) {
	out, m := generateSample(t, Options{
		StaticDir: sampleAssets,
		Exclude:   []string{"**/.DS_Store"},
	})

	if _, err := os.Stat(filepath.Join(out, "assets", "logos", "primary.svg")); err != nil {
		t.Errorf("logo not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "assets", "logos", ".DS_Store")); !os.IsNotExist(err) {
		t.Error(".DS_Store should be excluded")
	}
	if _, err := os.Stat(filepath.Join(out, "assets", "__MACOSX")); !os.IsNotExist(err) {
		t.Error("__MACOSX should be skipped")
	}

	if len(m.Files) != 7 {
		t.Errorf("manifest files = %d, want 7", len(m.Files))
	}
	for _, f := range m.Files {
		if !strings.HasPrefix(f.Path, "assets/") || len(f.SHA256) != 64 {
			t.Errorf("bad manifest entry %+v", f)
		}
	}
	if diff := cmp.Diff([]string{"assets/docs/post-preview.png"}, m.Missing); diff != "" {
		t.Errorf("missing mismatch (-want +got):\n%s", diff)
	}
}

func TestManifestContents(t *testing.T) {
	_, m := generateSample(t, Options{Title: "Brand"})

	if _, err := uuid.Parse(m.BuildID); err != nil {
		t.Errorf("build id %q is not a uuid: %v", m.BuildID, err)
	}
	if m.Title != "Brand" {
		t.Errorf("title = %q", m.Title)
	}
	want := brand.Stats{Colors: 6, Templates: 2, Fonts: 2, Assets: 7}
	if diff := cmp.Diff(want, m.Stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if len(m.Logos) != 4 {
		t.Errorf("logos = %d, want 4", len(m.Logos))
	}
	if len(m.Files) != 0 || m.Missing != nil {
		t.Error("no static dir means no files and no missing check")
	}
}

func TestGenerateWarnsOnMissingFiles(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	generateSample(t, Options{
		StaticDir: sampleAssets,
		Exclude:   []string{"**/.DS_Store"},
		Logger:    zap.New(core),
	})

	warned := logs.FilterMessage("referenced brand file not found").All()
	if len(warned) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warned))
	}
	if got := warned[0].ContextMap()["path"]; got != "assets/docs/post-preview.png" {
		t.Errorf("warned path = %v", got)
	}
}

func TestGenerateEscapesContent(t *testing.T) {
	var templates brand.TemplateDocument
	if err := json.Unmarshal([]byte(`{"templates": [
		{"name": "<b>Bold</b>", "description": "Hi <script>alert(1)</script>", "url": "javascript:alert(1)"}
	]}`), &templates); err != nil {
		t.Fatal(err)
	}
	state := brand.NewState(brand.Documents{
		Templates: &templates,
		Brand:     &brand.BrandDocument{Colors: []brand.BrandColor{{Name: "Evil", Hex: "red;background:url(x)"}}},
	}, nil)

	out := t.TempDir()
	if _, err := NewGenerator(state, out, Options{Title: "T"}).Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	html := readOutput(t, out, IndexFile)

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("raw HTML from a description leaked into the page")
	}
	if strings.Contains(html, "<b>Bold</b>") {
		t.Error("template name was not escaped")
	}
	if strings.Contains(html, `href="javascript:`) {
		t.Error("javascript: URL was not neutralised")
	}
	if !strings.Contains(html, "background: transparent") {
		t.Error("unrecognised color should fall back to transparent")
	}
}

func TestGenerateSurfacesLoadErrors(t *testing.T) {
	state := brand.LoadDir(t.Context(), t.TempDir(), brand.DefaultSources(), nil)

	out := t.TempDir()
	if _, err := NewGenerator(state, out, Options{}).Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	html := readOutput(t, out, IndexFile)
	if !strings.Contains(html, `data-load-errors="4"`) {
		t.Error("load error count not passed to the page")
	}
	if !strings.Contains(html, "Aucun logo disponible.") {
		t.Error("empty logo section should render its placeholder")
	}

	m, err := ReadManifest(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.LoadErrors) != 4 || m.LoadErrors[0].Document != brand.DocTokens {
		t.Errorf("manifest load errors = %+v", m.LoadErrors)
	}
}

func TestGenerateLiveReloadFlag(t *testing.T) {
	state := brand.NewState(brand.Documents{}, nil)

	for _, live := range []bool{true, false} {
		out := t.TempDir()
		if _, err := NewGenerator(state, out, Options{LiveReload: live, ToastMillis: 1500}).Generate(); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		html := readOutput(t, out, IndexFile)
		if got := strings.Contains(html, "data-live-reload"); got != live {
			t.Errorf("live=%v: data-live-reload present = %v", live, got)
		}
		if !strings.Contains(html, `data-toast-ms="1500"`) {
			t.Error("toast duration not passed to the page")
		}
	}
}

func TestGenerateSingleTokenSwatch(t *testing.T) {
	fsys := fstest.MapFS{
		"tokens.json": {Data: []byte(`{"colors":{"brand":{"primary":"#112233"}}}`)},
	}
	state := brand.Load(t.Context(), fsys, brand.Sources{Tokens: "tokens.json"}, nil)
	if state.HasErrors() {
		t.Fatalf("unexpected errors: %v", state.Errors())
	}

	out := t.TempDir()
	if _, err := NewGenerator(state, out, Options{Title: "Solo"}).Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	html := readOutput(t, out, IndexFile)

	if n := strings.Count(html, `class="swatch"`); n != 1 {
		t.Errorf("swatches rendered = %d, want 1", n)
	}
	if n := strings.Count(html, `data-copy="#112233"`); n != 1 {
		t.Errorf("copy targets for #112233 = %d, want 1", n)
	}
	if !strings.Contains(html, `<span class="swatch__name">brand-primary</span>`) {
		t.Error("swatch label brand-primary not rendered")
	}
	if !strings.Contains(html, `style="background: #112233"`) {
		t.Error("swatch chip color not rendered")
	}
}
