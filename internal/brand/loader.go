package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Document kinds, in display order.
const (
	DocTokens    = "tokens"
	DocTemplates = "templates"
	DocBrand     = "brand"
	DocLogos     = "logos"
)

var docOrder = map[string]int{DocTokens: 0, DocTemplates: 1, DocBrand: 2, DocLogos: 3}

// Sources names the document files relative to the data filesystem. An
// empty name skips that document.
type Sources struct {
	Tokens    string
	Templates string
	Brand     string
	Logos     string
}

// DefaultSources returns the conventional file names.
func DefaultSources() Sources {
	return Sources{
		Tokens:    "tokens.json",
		Templates: "templates.json",
		Brand:     "brand.json",
		Logos:     "logos.json",
	}
}

// LoadError records one document that could not be read or decoded.
type LoadError struct {
	Document string `json:"document"`
	Path     string `json:"path"`
	Err      error  `json:"-"`
}

func (e LoadError) Error() string {
	return fmt.Sprintf("loading %s document %s: %v", e.Document, e.Path, e.Err)
}

func (e LoadError) Unwrap() error { return e.Err }

// Load reads the four documents from fsys concurrently and returns once all
// of them have completed or failed. Failures are logged and recorded on the
// returned State; they are never retried and never abort the other reads.
// A section or entry that does not decode is logged and dropped while the
// rest of its document loads.
func Load(ctx context.Context, fsys fs.FS, src Sources, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}

	var docs Documents
	var tokens TokenDocument
	var templates TemplateDocument
	var brandDoc BrandDocument
	var catalog LogoCatalog

	var mu sync.Mutex
	var errs []LoadError
	loaded := make(map[string]bool)

	eg, egCtx := errgroup.WithContext(ctx)
	load := func(kind, path string, into any) {
		if path == "" {
			return
		}
		eg.Go(func() error {
			err := readJSON(egCtx, fsys, path, into)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error("document failed to load",
					zap.String("document", kind),
					zap.String("path", path),
					zap.Error(err))
				errs = append(errs, LoadError{Document: kind, Path: path, Err: err})
				return nil
			}
			if p, ok := into.(partialDocument); ok {
				for _, part := range p.Skipped() {
					logger.Warn("document part skipped",
						zap.String("document", kind),
						zap.String("path", path),
						zap.String("part", part.Part),
						zap.Error(part.Err))
				}
			}
			logger.Debug("document loaded", zap.String("document", kind), zap.String("path", path))
			loaded[kind] = true
			return nil
		})
	}

	load(DocTokens, src.Tokens, &tokens)
	load(DocTemplates, src.Templates, &templates)
	load(DocBrand, src.Brand, &brandDoc)
	load(DocLogos, src.Logos, &catalog)

	// Every goroutine reports through errs and returns nil.
	_ = eg.Wait()

	if loaded[DocTokens] {
		docs.Tokens = &tokens
	}
	if loaded[DocTemplates] {
		docs.Templates = &templates
	}
	if loaded[DocBrand] {
		docs.Brand = &brandDoc
	}
	if loaded[DocLogos] {
		docs.Logos = &catalog
	}

	sort.Slice(errs, func(i, j int) bool {
		return docOrder[errs[i].Document] < docOrder[errs[j].Document]
	})

	state := NewState(docs, errs)
	logger.Info("brand data loaded",
		zap.Int("documents", len(loaded)),
		zap.Int("failures", len(errs)),
		zap.Int("logos", len(state.Logos())))
	return state
}

// LoadDir is Load over a directory on disk.
func LoadDir(ctx context.Context, dir string, src Sources, logger *zap.Logger) *State {
	return Load(ctx, os.DirFS(dir), src, logger)
}

func readJSON(ctx context.Context, fsys fs.FS, path string, into any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	return nil
}
