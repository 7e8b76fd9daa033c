package logo

// Variant is the color treatment of a logo file.
type Variant string

const (
	VariantWhite Variant = "white"
	VariantBlack Variant = "black"
	VariantColor Variant = "color"
	VariantMono  Variant = "mono"
)

// Background is an explicit backdrop hint carried by a catalog entry.
type Background string

const (
	BackgroundDark  Background = "dark"
	BackgroundLight Background = "light"
)

// MetadataSource records where a file's format label came from.
type MetadataSource int

const (
	// MetadataInferred means the label is derived from the filename.
	MetadataInferred MetadataSource = iota
	// MetadataExplicit means the catalog supplied format (and maybe size).
	MetadataExplicit
)

func (s MetadataSource) String() string {
	if s == MetadataExplicit {
		return "explicit"
	}
	return "inferred"
}

// FileRef is one downloadable representation of a logo.
type FileRef struct {
	File   string         `json:"file"`
	Format string         `json:"format,omitempty"`
	Size   string         `json:"size,omitempty"`
	Source MetadataSource `json:"-"`
}

// Entry is one logo concept as it appears in the catalog.
//
// Path and Format belong to the first catalog revision, where each entry
// pointed at exactly one file. They are folded into Files on decode.
type Entry struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Variant    Variant    `json:"variant,omitempty"`
	Background Background `json:"background,omitempty"`
	Files      Files      `json:"files,omitempty"`
	Preview    string     `json:"preview,omitempty"`
	Path       string     `json:"path,omitempty"`
	Format     string     `json:"format,omitempty"`
}

// Download is one entry of a logo's download control.
type Download struct {
	Path     string `json:"path"`
	Label    string `json:"label"`
	Filename string `json:"filename"`
}

// Display is the resolved, render-ready view of an Entry.
type Display struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Variant      Variant    `json:"variant"`
	VariantLabel string     `json:"variant_label"`
	Dark         bool       `json:"dark_backdrop"`
	PreviewPath  string     `json:"preview_path,omitempty"`
	Downloads    []Download `json:"downloads"`
}

// HasFiles reports whether the logo has anything to download.
func (d Display) HasFiles() bool { return len(d.Downloads) > 0 }

// MultiFile reports whether the logo needs a download menu rather than a
// single link.
func (d Display) MultiFile() bool { return len(d.Downloads) > 1 }

// MenuID is the DOM id of the logo's download menu.
func (d Display) MenuID() string { return "menu-" + d.ID }
