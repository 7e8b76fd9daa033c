package brand

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ziadkadry99/brandkit/internal/logo"
)

// SkippedPart is a section or list element that could not be decoded. The
// rest of its document still loads.
type SkippedPart struct {
	Part string
	Err  error
}

func (s SkippedPart) Error() string { return fmt.Sprintf("%s: %v", s.Part, s.Err) }

func (s SkippedPart) Unwrap() error { return s.Err }

// partialDocument is a document decoded section by section.
type partialDocument interface {
	Skipped() []SkippedPart
}

// decoder collects the parts skipped while decoding one document.
type decoder struct {
	skipped []SkippedPart
}

func (d *decoder) skip(part string, err error) {
	d.skipped = append(d.skipped, SkippedPart{Part: part, Err: err})
}

// members splits a JSON object into its top-level members. Anything other
// than an object fails the whole document.
func members(data []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("expected a JSON object, got null")
	}
	return obj, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// field decodes one member into v. A member that fails is recorded and v is
// left untouched.
func (d *decoder) field(raw json.RawMessage, part string, v any) {
	if isNull(raw) {
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		d.skip(part, err)
	}
}

// decodeList decodes a JSON array element by element. Elements that fail
// are recorded and dropped; a member that is not an array is dropped whole.
func decodeList[T any](d *decoder, raw json.RawMessage, part string) []T {
	if isNull(raw) {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		d.skip(part, err)
		return nil
	}
	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			d.skip(fmt.Sprintf("%s[%d]", part, i), err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// UnmarshalJSON decodes each token section on its own.
func (t *TokenDocument) UnmarshalJSON(data []byte) error {
	obj, err := members(data)
	if err != nil {
		return err
	}
	var d decoder
	var doc TokenDocument
	d.field(obj["colors"], "colors", &doc.Colors)
	doc.Typography = decodeTypography(&d, obj["typography"])
	d.field(obj["spacing"], "spacing", &doc.Spacing)
	d.field(obj["radius"], "radius", &doc.Radius)
	doc.Components = decodeList[Component](&d, obj["components"], "components")
	doc.skipped = d.skipped
	*t = doc
	return nil
}

func decodeTypography(d *decoder, raw json.RawMessage) Typography {
	var typo Typography
	if isNull(raw) {
		return typo
	}
	var parts struct {
		FontFamily json.RawMessage `json:"fontFamily"`
		Scale      json.RawMessage `json:"scale"`
	}
	if err := json.Unmarshal(raw, &parts); err != nil {
		d.skip("typography", err)
		return typo
	}
	if !isNull(parts.FontFamily) {
		typo.FontFamily = scalarString(parts.FontFamily)
	}
	typo.Scale = decodeList[TypeStyle](d, parts.Scale, "typography.scale")
	return typo
}

// UnmarshalJSON reads every field as a scalar, so "weight": 700 and
// "weight": "700" are the same.
func (s *TypeStyle) UnmarshalJSON(data []byte) error {
	var raw struct {
		Label  json.RawMessage `json:"label"`
		Size   json.RawMessage `json:"size"`
		Weight json.RawMessage `json:"weight"`
		Sample json.RawMessage `json:"sample"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = TypeStyle{
		Label:  optionalScalar(raw.Label),
		Size:   optionalScalar(raw.Size),
		Weight: optionalScalar(raw.Weight),
		Sample: optionalScalar(raw.Sample),
	}
	return nil
}

func optionalScalar(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	return scalarString(raw)
}

// UnmarshalJSON decodes the template list entry by entry.
func (t *TemplateDocument) UnmarshalJSON(data []byte) error {
	obj, err := members(data)
	if err != nil {
		return err
	}
	var d decoder
	templates := decodeList[Template](&d, obj["templates"], "templates")
	*t = TemplateDocument{Templates: templates, skipped: d.skipped}
	return nil
}

// UnmarshalJSON decodes each brand-kit list entry by entry.
func (b *BrandDocument) UnmarshalJSON(data []byte) error {
	obj, err := members(data)
	if err != nil {
		return err
	}
	var d decoder
	doc := BrandDocument{
		Colors: decodeList[BrandColor](&d, obj["colors"], "colors"),
		Fonts:  decodeList[Font](&d, obj["fonts"], "fonts"),
		Assets: decodeList[Asset](&d, obj["assets"], "assets"),
		Logos:  decodeList[logo.Entry](&d, obj["logos"], "logos"),
	}
	doc.skipped = d.skipped
	*b = doc
	return nil
}

// UnmarshalJSON accepts both the wrapped and the bare-array form and
// decodes the entries one at a time.
func (c *LogoCatalog) UnmarshalJSON(data []byte) error {
	var d decoder
	list := json.RawMessage(data)
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		obj, err := members(data)
		if err != nil {
			return err
		}
		list = obj["logos"]
	}
	*c = LogoCatalog{Logos: decodeList[logo.Entry](&d, list, "logos")}
	c.skipped = d.skipped
	return nil
}

// Skipped lists the token sections that failed to decode.
func (t TokenDocument) Skipped() []SkippedPart { return t.skipped }

// Skipped lists the templates that failed to decode.
func (t TemplateDocument) Skipped() []SkippedPart { return t.skipped }

// Skipped lists the brand-kit entries that failed to decode.
func (b BrandDocument) Skipped() []SkippedPart { return b.skipped }

// Skipped lists the catalog entries that failed to decode.
func (c LogoCatalog) Skipped() []SkippedPart { return c.skipped }
