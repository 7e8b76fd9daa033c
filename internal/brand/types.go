package brand

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ziadkadry99/brandkit/internal/logo"
)

// rawObject is a JSON object whose key order is preserved.
type rawObject = orderedmap.OrderedMap[string, json.RawMessage]

// TokenDocument is the design-token document (tokens.json).
type TokenDocument struct {
	Colors     *rawObject  `json:"colors,omitempty"`
	Typography Typography  `json:"typography"`
	Spacing    *rawObject  `json:"spacing,omitempty"`
	Radius     *rawObject  `json:"radius,omitempty"`
	Components []Component `json:"components,omitempty"`

	skipped []SkippedPart
}

// Typography holds the typography tokens. Scale is optional; the page falls
// back to a fixed sample scale when it is empty.
type Typography struct {
	FontFamily string      `json:"fontFamily,omitempty"`
	Scale      []TypeStyle `json:"scale,omitempty"`
}

// TypeStyle is one step of the typography scale.
type TypeStyle struct {
	Label  string `json:"label"`
	Size   string `json:"size"`
	Weight string `json:"weight"`
	Sample string `json:"sample"`
}

// ComponentStatusDone marks a finished component in the checklist.
const ComponentStatusDone = "done"

// Component is one line of the component checklist.
type Component struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Done reports whether the component is finished.
func (c Component) Done() bool { return c.Status == ComponentStatusDone }

// TemplateDocument is the templates document (templates.json).
type TemplateDocument struct {
	Templates []Template `json:"templates"`

	skipped []SkippedPart
}

// Template is one editable template (Canva, Figma, ...).
type Template struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	URL         string `json:"url,omitempty"`
	Preview     string `json:"preview,omitempty"`
}

// BrandDocument is the brand-kit document (brand.json). Logos is only
// populated by catalogs that predate the separate logo document.
type BrandDocument struct {
	Colors []BrandColor `json:"colors,omitempty"`
	Fonts  []Font       `json:"fonts,omitempty"`
	Assets []Asset      `json:"assets,omitempty"`
	Logos  []logo.Entry `json:"logos,omitempty"`

	skipped []SkippedPart
}

// BrandColor is a named brand color.
type BrandColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Font is a brand typeface.
type Font struct {
	Name        string   `json:"name"`
	Styles      []string `json:"styles,omitempty"`
	DownloadURL string   `json:"downloadUrl,omitempty"`
}

// Asset is a standalone downloadable file.
type Asset struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Icon string `json:"icon,omitempty"`
}

// LogoCatalog is the logo document (logos.json). It is either an object
// with a "logos" list or a bare list of entries.
type LogoCatalog struct {
	Logos []logo.Entry `json:"logos"`

	skipped []SkippedPart
}

// Token is a named design-token value (spacing, radius).
type Token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ColorSwatch is one flattened design-token color.
type ColorSwatch struct {
	Group string `json:"group"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Label is the swatch's display name, "group-name".
func (s ColorSwatch) Label() string { return s.Group + "-" + s.Name }

// Stats are the counters shown on the home section.
type Stats struct {
	Colors    int `json:"colors"`
	Templates int `json:"templates"`
	Fonts     int `json:"fonts"`
	Assets    int `json:"assets"`
}
