package site

import (
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/ziadkadry99/brandkit/internal/brand"
	"github.com/ziadkadry99/brandkit/internal/logo"
)

// maxSpacingBar caps the width of a spacing preview bar, in pixels.
const maxSpacingBar = 200

// defaultTypeScale is shown when the token document carries no scale.
var defaultTypeScale = []brand.TypeStyle{
	{Label: "Display", Size: "64px", Weight: "700", Sample: "Les Voyages En Art"},
	{Label: "Heading 1", Size: "48px", Weight: "700", Sample: "La Peur, le Risque et le Courage"},
	{Label: "Heading 2", Size: "32px", Weight: "600", Sample: "Une expérience artistique unique"},
	{Label: "Heading 3", Size: "24px", Weight: "600", Sample: "Conférences-Spectacles"},
	{Label: "Body Large", Size: "18px", Weight: "400", Sample: "Le Voyage en Art propose des cycles de conférences-spectacles où Isabelle embarque le spectateur dans un voyage à travers les œuvres."},
	{Label: "Body", Size: "16px", Weight: "400", Sample: "Une exploration visuelle dynamique des œuvres d'art rythmée par un texte littéraire."},
	{Label: "Caption", Size: "14px", Weight: "400", Sample: "Isabelle de La Selle — Fondatrice"},
}

// page is the view model of index.html.
type page struct {
	Title           string
	BuildID         string
	FontFamily      template.CSS
	ToastMillis     int
	LiveReload      bool
	LoadErrors      []string
	Nav             []navGroup
	Stats           brand.Stats
	Colors          []swatchView
	TypeScale       []brand.TypeStyle
	Spacing         []spacingView
	Radius          []brand.Token
	Components      []componentView
	Templates       []templateView
	Logos           []logo.Display
	BrandColors     []swatchView
	BrandColorsText string
	Fonts           []fontView
	Assets          []assetView
}

type swatchView struct {
	Label string
	Value string
	CSS   template.CSS
}

type spacingView struct {
	Name  string
	Value string
	Width int
}

type componentView struct {
	Name   string
	Done   bool
	Status string
}

type templateView struct {
	Name        string
	Type        string
	URL         string
	Preview     string
	Description template.HTML
}

type fontView struct {
	Name        string
	Styles      string
	DownloadURL string
}

type assetView struct {
	Name string
	Path string
	Icon string
}

// buildPage assembles the view model for one render of the state.
func buildPage(state *brand.State, opts Options, buildID string) page {
	p := page{
		Title:           opts.Title,
		BuildID:         buildID,
		FontFamily:      cssFontFamily(fontFamily(state, opts)),
		ToastMillis:     opts.ToastMillis,
		LiveReload:      opts.LiveReload,
		Nav:             groupSections(Sections),
		Stats:           state.Stats(),
		Colors:          colorViews(state.ColorSwatches()),
		TypeScale:       typeScale(state),
		Spacing:         spacingViews(state.Spacing()),
		Radius:          state.Radius(),
		Components:      componentViews(state.Tokens().Components),
		Templates:       templateViews(state.Templates()),
		Logos:           state.Logos(),
		BrandColors:     brandColorViews(state.BrandColors()),
		BrandColorsText: state.BrandColorsText(),
		Fonts:           fontViews(state.Fonts()),
		Assets:          assetViews(state.Assets()),
	}
	for _, e := range state.Errors() {
		p.LoadErrors = append(p.LoadErrors, e.Error())
	}
	return p
}

func fontFamily(state *brand.State, opts Options) string {
	if f := strings.TrimSpace(state.Tokens().Typography.FontFamily); f != "" {
		return f
	}
	return opts.FontFamily
}

func typeScale(state *brand.State) []brand.TypeStyle {
	if scale := state.Tokens().Typography.Scale; len(scale) > 0 {
		return scale
	}
	return defaultTypeScale
}

func colorViews(swatches []brand.ColorSwatch) []swatchView {
	out := make([]swatchView, 0, len(swatches))
	for _, s := range swatches {
		out = append(out, swatchView{Label: s.Label(), Value: s.Value, CSS: cssColor(s.Value)})
	}
	return out
}

func brandColorViews(colors []brand.BrandColor) []swatchView {
	out := make([]swatchView, 0, len(colors))
	for _, c := range colors {
		out = append(out, swatchView{Label: c.Name, Value: c.Hex, CSS: cssColor(c.Hex)})
	}
	return out
}

func spacingViews(tokens []brand.Token) []spacingView {
	out := make([]spacingView, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, spacingView{Name: t.Name, Value: t.Value, Width: spacingWidth(t.Value)})
	}
	return out
}

// spacingWidth reads the leading integer of a spacing value ("16px" -> 16),
// capped at maxSpacingBar. Values without one yield 0.
func spacingWidth(value string) int {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0
	}
	return min(n, maxSpacingBar)
}

func componentViews(components []brand.Component) []componentView {
	out := make([]componentView, 0, len(components))
	for _, c := range components {
		status := "En cours"
		if c.Done() {
			status = "Fait"
		}
		out = append(out, componentView{Name: c.Name, Done: c.Done(), Status: status})
	}
	return out
}

func templateViews(templates []brand.Template) []templateView {
	out := make([]templateView, 0, len(templates))
	for _, t := range templates {
		out = append(out, templateView{
			Name:        t.Name,
			Type:        t.Type,
			URL:         t.URL,
			Preview:     t.Preview,
			Description: renderMarkdown(t.Description),
		})
	}
	return out
}

func fontViews(fonts []brand.Font) []fontView {
	out := make([]fontView, 0, len(fonts))
	for _, f := range fonts {
		out = append(out, fontView{
			Name:        f.Name,
			Styles:      strings.Join(f.Styles, ", "),
			DownloadURL: f.DownloadURL,
		})
	}
	return out
}

func assetViews(assets []brand.Asset) []assetView {
	out := make([]assetView, 0, len(assets))
	for _, a := range assets {
		icon := a.Icon
		if icon == "" {
			icon = "📄"
		}
		out = append(out, assetView{Name: a.Name, Path: a.Path, Icon: icon})
	}
	return out
}

var (
	hexColor   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColor  = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\([0-9.,%\s/]+\)$`)
	namedColor = regexp.MustCompile(`^[a-zA-Z]+$`)
	fontList   = regexp.MustCompile(`^[\w\s,'"-]+$`)
)

// cssColor passes a color value through to a style attribute when it has
// a recognised shape, and "transparent" otherwise.
func cssColor(v string) template.CSS {
	v = strings.TrimSpace(v)
	if hexColor.MatchString(v) || funcColor.MatchString(v) || namedColor.MatchString(v) {
		return template.CSS(v)
	}
	return "transparent"
}

// cssFontFamily accepts a comma-separated font list, quoted names included.
func cssFontFamily(v string) template.CSS {
	v = strings.TrimSpace(v)
	if v == "" || !fontList.MatchString(v) {
		return "sans-serif"
	}
	return template.CSS(v)
}
