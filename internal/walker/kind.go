package walker

import (
	"path/filepath"
	"strings"
)

// Kind is a broad category of brand file.
type Kind string

const (
	KindVector   Kind = "vector"
	KindRaster   Kind = "raster"
	KindDocument Kind = "document"
	KindFont     Kind = "font"
	KindArchive  Kind = "archive"
	KindOther    Kind = "other"
)

var extToKind = map[string]Kind{
	".svg":   KindVector,
	".eps":   KindVector,
	".ai":    KindVector,
	".png":   KindRaster,
	".jpg":   KindRaster,
	".jpeg":  KindRaster,
	".gif":   KindRaster,
	".webp":  KindRaster,
	".ico":   KindRaster,
	".pdf":   KindDocument,
	".docx":  KindDocument,
	".pptx":  KindDocument,
	".txt":   KindDocument,
	".otf":   KindFont,
	".ttf":   KindFont,
	".woff":  KindFont,
	".woff2": KindFont,
	".zip":   KindArchive,
}

// DetectKind returns the file category for filename based on its extension.
func DetectKind(filename string) Kind {
	if k, ok := extToKind[strings.ToLower(filepath.Ext(filename))]; ok {
		return k
	}
	return KindOther
}
