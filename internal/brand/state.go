package brand

import (
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ziadkadry99/brandkit/internal/logo"
)

// Documents groups the four source documents. A nil field means the
// document is absent or failed to load.
type Documents struct {
	Tokens    *TokenDocument
	Templates *TemplateDocument
	Brand     *BrandDocument
	Logos     *LogoCatalog
}

// State is the loaded, read-only application state handed to renderers.
// Logo entries are resolved once, when the State is built.
type State struct {
	docs   Documents
	logos  []logo.Display
	errors []LoadError
}

// NewState builds a State from already-decoded documents.
func NewState(docs Documents, errs []LoadError) *State {
	s := &State{docs: docs, errors: errs}
	s.logos = logo.ResolveAll(s.logoEntries())
	return s
}

// logoEntries prefers the dedicated catalog and falls back to the logos
// embedded in the brand document.
func (s *State) logoEntries() []logo.Entry {
	if s.docs.Logos != nil && len(s.docs.Logos.Logos) > 0 {
		return s.docs.Logos.Logos
	}
	if s.docs.Brand != nil {
		return s.docs.Brand.Logos
	}
	return nil
}

// Errors returns the documents that failed to load.
func (s *State) Errors() []LoadError { return s.errors }

// HasErrors reports whether any document failed to load.
func (s *State) HasErrors() bool { return len(s.errors) > 0 }

// Tokens returns the design-token document, or an empty one.
func (s *State) Tokens() TokenDocument {
	if s.docs.Tokens == nil {
		return TokenDocument{}
	}
	return *s.docs.Tokens
}

// Templates returns the template list.
func (s *State) Templates() []Template {
	if s.docs.Templates == nil {
		return nil
	}
	return s.docs.Templates.Templates
}

// BrandColors returns the brand-kit colors.
func (s *State) BrandColors() []BrandColor {
	if s.docs.Brand == nil {
		return nil
	}
	return s.docs.Brand.Colors
}

// Fonts returns the brand typefaces.
func (s *State) Fonts() []Font {
	if s.docs.Brand == nil {
		return nil
	}
	return s.docs.Brand.Fonts
}

// Assets returns the standalone downloadable assets.
func (s *State) Assets() []Asset {
	if s.docs.Brand == nil {
		return nil
	}
	return s.docs.Brand.Assets
}

// Logos returns the resolved logo displays.
func (s *State) Logos() []logo.Display { return s.logos }

// ColorSwatches flattens the token color groups in document order.
// Groups that are not JSON objects are skipped.
func (s *State) ColorSwatches() []ColorSwatch {
	colors := s.Tokens().Colors
	if colors == nil {
		return nil
	}

	var out []ColorSwatch
	for group := colors.Oldest(); group != nil; group = group.Next() {
		entries := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(group.Value, entries); err != nil {
			continue
		}
		for c := entries.Oldest(); c != nil; c = c.Next() {
			out = append(out, ColorSwatch{
				Group: group.Key,
				Name:  c.Key,
				Value: scalarString(c.Value),
			})
		}
	}
	return out
}

// Spacing returns the spacing scale in document order.
func (s *State) Spacing() []Token { return tokenList(s.Tokens().Spacing) }

// Radius returns the corner-radius scale in document order.
func (s *State) Radius() []Token { return tokenList(s.Tokens().Radius) }

// Stats counts what the home section advertises. Assets counts every logo
// file plus every standalone asset.
func (s *State) Stats() Stats {
	st := Stats{
		Colors:    len(s.ColorSwatches()),
		Templates: len(s.Templates()),
		Fonts:     len(s.Fonts()),
		Assets:    len(s.Assets()),
	}
	for _, l := range s.logos {
		st.Assets += len(l.Downloads)
	}
	return st
}

// BrandColorsText is the clipboard payload of the copy-all action: one
// "name: hex" line per brand color.
func (s *State) BrandColorsText() string {
	colors := s.BrandColors()
	lines := make([]string, 0, len(colors))
	for _, c := range colors {
		lines = append(lines, c.Name+": "+c.Hex)
	}
	return strings.Join(lines, "\n")
}

func tokenList(obj *rawObject) []Token {
	if obj == nil {
		return nil
	}
	out := make([]Token, 0, obj.Len())
	for p := obj.Oldest(); p != nil; p = p.Next() {
		out = append(out, Token{Name: p.Key, Value: scalarString(p.Value)})
	}
	return out
}

// scalarString renders a JSON scalar as display text: strings unquoted,
// everything else verbatim.
func scalarString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
