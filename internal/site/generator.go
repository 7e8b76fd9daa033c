package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/brandkit/internal/brand"
	"github.com/ziadkadry99/brandkit/internal/logging"
	"github.com/ziadkadry99/brandkit/internal/logo"
	"github.com/ziadkadry99/brandkit/internal/progress"
	"github.com/ziadkadry99/brandkit/internal/walker"
)

// Output file names.
const (
	IndexFile    = "index.html"
	StyleFile    = "style.css"
	ScriptFile   = "script.js"
	ManifestFile = "brandkit.json"
)

// Options controls how the dashboard is rendered.
type Options struct {
	Title       string
	FontFamily  string // used when the token document names none
	ToastMillis int
	// StaticDir holds the brand files. It is copied under its own base name,
	// so "assets/logos/x.svg" in the data resolves when StaticDir is "assets".
	StaticDir  string
	Include    []string
	Exclude    []string
	LiveReload bool
	Reporter   progress.Reporter
	Logger     *zap.Logger
}

// Generator writes the static dashboard for one loaded State.
type Generator struct {
	State     *brand.State
	OutputDir string
	Options   Options
}

// NewGenerator creates a Generator for state writing into outputDir.
func NewGenerator(state *brand.State, outputDir string, opts Options) *Generator {
	if opts.ToastMillis <= 0 {
		opts.ToastMillis = 3000
	}
	if opts.Reporter == nil {
		opts.Reporter = progress.Nop{}
	}
	opts.Logger = logging.OrNop(opts.Logger)
	return &Generator{State: state, OutputDir: outputDir, Options: opts}
}

// Manifest describes one build. It is written next to index.html.
type Manifest struct {
	BuildID     string          `json:"build_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Title       string          `json:"title"`
	Stats       brand.Stats     `json:"stats"`
	Logos       []logo.Display  `json:"logos"`
	LoadErrors  []ManifestError `json:"load_errors,omitempty"`
	Files       []ManifestEntry `json:"files"`
	Missing     []string        `json:"missing,omitempty"`
}

// ManifestError is a document that failed to load.
type ManifestError struct {
	Document string `json:"document"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

// ManifestEntry is one copied brand file.
type ManifestEntry struct {
	Path   string      `json:"path"`
	Size   int64       `json:"size"`
	Kind   walker.Kind `json:"kind"`
	SHA256 string      `json:"sha256"`
}

// Generate renders the dashboard and copies the brand files. It returns
// the number of sections rendered.
func (g *Generator) Generate() (int, error) {
	log := g.Options.Logger
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	buildID := uuid.NewString()

	files, err := g.copyStatic()
	if err != nil {
		return 0, fmt.Errorf("copying brand files: %w", err)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildPage(g.State, g.Options, buildID)); err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}

	outputs := []struct {
		name string
		data []byte
	}{
		{IndexFile, buf.Bytes()},
		{StyleFile, []byte(cssContent)},
		{ScriptFile, []byte(jsContent)},
	}
	for _, o := range outputs {
		if err := os.WriteFile(filepath.Join(g.OutputDir, o.name), o.data, 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", o.name, err)
		}
	}

	manifest := g.manifest(buildID, files)
	for _, m := range manifest.Missing {
		log.Warn("referenced brand file not found", zap.String("path", m))
	}
	if err := writeManifest(filepath.Join(g.OutputDir, ManifestFile), manifest); err != nil {
		return 0, err
	}

	log.Info("dashboard generated",
		zap.String("output", g.OutputDir),
		zap.String("build_id", buildID),
		zap.Int("sections", len(Sections)),
		zap.Int("files", len(files)))
	return len(Sections), nil
}

// staticPrefix is the output-relative directory the brand files land in.
func (g *Generator) staticPrefix() string {
	return filepath.Base(filepath.Clean(g.Options.StaticDir))
}

// copyStatic copies the filtered brand files into the output directory and
// returns them with output-relative paths.
func (g *Generator) copyStatic() ([]walker.FileInfo, error) {
	if g.Options.StaticDir == "" {
		return nil, nil
	}
	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.Options.StaticDir,
		Include: g.Options.Include,
		Exclude: g.Options.Exclude,
	})
	if err != nil {
		return nil, err
	}

	prefix := g.staticPrefix()
	rep := g.Options.Reporter
	rep.Start(len(files))
	defer rep.Finish()

	for i := range files {
		rel := path.Join(prefix, files[i].RelPath)
		dst := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
		if err := copyFile(files[i].Path, dst); err != nil {
			return nil, fmt.Errorf("copying %s: %w", files[i].RelPath, err)
		}
		files[i].RelPath = rel
		rep.Update(i+1, rel)
	}
	return files, nil
}

func (g *Generator) manifest(buildID string, files []walker.FileInfo) Manifest {
	m := Manifest{
		BuildID:     buildID,
		GeneratedAt: time.Now().UTC(),
		Title:       g.Options.Title,
		Stats:       g.State.Stats(),
		Logos:       g.State.Logos(),
		Files:       make([]ManifestEntry, 0, len(files)),
	}
	for _, e := range g.State.Errors() {
		m.LoadErrors = append(m.LoadErrors, ManifestError{Document: e.Document, Path: e.Path, Message: e.Err.Error()})
	}

	copied := make(map[string]bool, len(files))
	for _, f := range files {
		copied[f.RelPath] = true
		m.Files = append(m.Files, ManifestEntry{Path: f.RelPath, Size: f.Size, Kind: f.Kind, SHA256: f.ContentHash})
	}
	if g.Options.StaticDir != "" {
		m.Missing = missingReferences(g.State, copied)
	}
	return m
}

// missingReferences lists local paths named by the data that were not part
// of the copied brand files. Absolute URLs are ignored.
func missingReferences(state *brand.State, copied map[string]bool) []string {
	var refs []string
	for _, l := range state.Logos() {
		for _, d := range l.Downloads {
			refs = append(refs, d.Path)
		}
		if len(l.Downloads) == 0 && l.PreviewPath != "" {
			refs = append(refs, l.PreviewPath)
		}
	}
	for _, a := range state.Assets() {
		refs = append(refs, a.Path)
	}
	for _, t := range state.Templates() {
		refs = append(refs, t.Preview)
	}

	var missing []string
	seen := make(map[string]bool)
	for _, r := range refs {
		if r == "" || isRemote(r) || seen[r] {
			continue
		}
		seen[r] = true
		if !copied[path.Clean(r)] {
			missing = append(missing, r)
		}
	}
	return missing
}

func isRemote(ref string) bool {
	for _, p := range []string{"http://", "https://", "//", "data:"} {
		if strings.HasPrefix(ref, p) {
			return true
		}
	}
	return false
}

func writeManifest(dst string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by Generate.
func ReadManifest(outputDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(outputDir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
