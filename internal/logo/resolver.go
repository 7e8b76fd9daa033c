package logo

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// variantMarkers lists the filename markers per variant, in priority order.
var variantMarkers = []struct {
	variant Variant
	markers []string
}{
	{VariantWhite, []string{"-white", "_white"}},
	{VariantBlack, []string{"-black", "_black"}},
	{VariantColor, []string{"-color", "_color"}},
	{VariantMono, []string{"-mono", "_mono"}},
}

// variantLabels maps known variants to their display label.
var variantLabels = map[Variant]string{
	VariantWhite: "Blanc",
	VariantBlack: "Noir",
	VariantColor: "Couleur",
	VariantMono:  "Monochrome",
}

// densityMarkers are the retina suffixes recognized in filenames.
var densityMarkers = []string{"@2x", "@3x"}

// pixelSizes are the icon dimensions recognized in filenames.
var pixelSizes = map[int]bool{32: true, 64: true, 128: true, 180: true, 512: true}

// InferVariant looks for a variant marker in name. The second result is
// false when no marker is present.
func InferVariant(name string) (Variant, bool) {
	lower := strings.ToLower(name)
	for _, vm := range variantMarkers {
		for _, m := range vm.markers {
			if strings.Contains(lower, m) {
				return vm.variant, true
			}
		}
	}
	return "", false
}

// VariantLabel returns the human-readable label for v.
func VariantLabel(v Variant) string {
	if label, ok := variantLabels[Variant(strings.ToLower(string(v)))]; ok {
		return label
	}
	if v == "" {
		return variantLabels[VariantColor]
	}
	// Casers are stateful; build one per call.
	return cases.Title(language.French).String(string(v))
}

// FormatLabel derives a display label from a filename: the uppercased
// extension, followed by at most one density or pixel-size suffix.
func FormatLabel(file string) string {
	base := baseName(file)
	stem := strings.TrimSuffix(base, path.Ext(base))
	return joinLabel(extLabel(file), sizeSuffix(stem))
}

// extLabel is the uppercased extension of file, without the dot.
func extLabel(file string) string {
	return strings.ToUpper(strings.TrimPrefix(path.Ext(baseName(file)), "."))
}

func baseName(file string) string {
	return path.Base(strings.ReplaceAll(file, "\\", "/"))
}

func joinLabel(format, size string) string {
	switch {
	case format == "":
		return size
	case size == "":
		return format
	default:
		return format + " " + size
	}
}

// sizeSuffix finds the density or pixel marker in a filename stem.
func sizeSuffix(stem string) string {
	lower := strings.ToLower(stem)
	for _, d := range densityMarkers {
		if strings.Contains(lower, d) {
			return d
		}
	}

	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return r == '-' || r == '_' || r == '@' || r == '.' || r == ' '
	})
	for _, tok := range tokens {
		if n, ok := pixelToken(tok); ok {
			return fmt.Sprintf("%dpx", n)
		}
	}
	return ""
}

// pixelToken accepts "512", "512px" and "512x512".
func pixelToken(tok string) (int, bool) {
	tok = strings.TrimSuffix(tok, "px")
	if w, h, found := strings.Cut(tok, "x"); found {
		if w != h {
			return 0, false
		}
		tok = w
	}
	n, err := strconv.Atoi(tok)
	if err != nil || !pixelSizes[n] {
		return 0, false
	}
	return n, true
}

// Label returns the display label for a file reference. Explicit format and
// size are used verbatim; a missing explicit format falls back to the
// extension.
func (r FileRef) Label() string {
	if r.Source != MetadataExplicit {
		return FormatLabel(r.File)
	}
	format := r.Format
	if format == "" {
		format = extLabel(r.File)
	}
	return joinLabel(format, r.Size)
}

// Resolve turns a catalog entry into its render-ready display record.
func Resolve(e Entry) Display {
	e = e.Normalize()

	variant := resolveVariant(e)
	d := Display{
		ID:           e.ID,
		Name:         e.Name,
		Variant:      variant,
		VariantLabel: VariantLabel(variant),
		Dark:         resolveDark(e.Background, variant),
		PreviewPath:  resolvePreview(e),
		Downloads:    make([]Download, 0, len(e.Files)),
	}
	if d.Name == "" {
		d.Name = e.ID
	}

	for _, f := range e.Files {
		d.Downloads = append(d.Downloads, Download{
			Path:     f.File,
			Label:    f.Label(),
			Filename: baseName(f.File),
		})
	}
	return d
}

// ResolveAll resolves a whole catalog. Ids are made unique: entries
// without one get a positional "logo-N", and repeated ids get a numeric
// suffix. Generated ids never take an id the catalog names explicitly.
func ResolveAll(entries []Entry) []Display {
	named := make(map[string]bool, len(entries))
	for _, e := range entries {
		named[e.ID] = true
	}
	used := make(map[string]bool, len(entries))

	out := make([]Display, 0, len(entries))
	for i, e := range entries {
		if e.ID == "" || used[e.ID] {
			e.ID = uniqueID(e.ID, i, named, used)
		}
		used[e.ID] = true
		out = append(out, Resolve(e))
	}
	return out
}

func uniqueID(id string, i int, named, used map[string]bool) string {
	base := id
	if base == "" {
		base = fmt.Sprintf("logo-%d", i+1)
	}
	candidate := base
	for n := 2; used[candidate] || (candidate != id && named[candidate]); n++ {
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return candidate
}

func resolveVariant(e Entry) Variant {
	if e.Variant != "" {
		return Variant(strings.ToLower(string(e.Variant)))
	}
	if v, ok := InferVariant(e.ID); ok {
		return v
	}
	if len(e.Files) > 0 {
		if v, ok := InferVariant(e.Files[0].File); ok {
			return v
		}
	}
	return VariantColor
}

func resolveDark(bg Background, v Variant) bool {
	switch Background(strings.ToLower(string(bg))) {
	case BackgroundDark:
		return true
	case BackgroundLight:
		return false
	}
	return v == VariantWhite
}

func resolvePreview(e Entry) string {
	for _, f := range e.Files {
		if strings.EqualFold(path.Ext(f.File), ".svg") {
			return f.File
		}
	}
	if len(e.Files) > 0 {
		return e.Files[0].File
	}
	return e.Preview
}
