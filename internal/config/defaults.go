package config

// DefaultExcludes are glob patterns never copied into the generated site.
var DefaultExcludes = []string{
	".git/**",
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/*.tmp",
	"**/~*",
}

// DefaultFontFamily is used when the token document names no font family.
const DefaultFontFamily = "Fedra Sans Pro, sans-serif"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:         "Les Voyages En Art",
		DataDir:       "data",
		TokensFile:    "tokens.json",
		TemplatesFile: "templates.json",
		BrandFile:     "brand.json",
		LogosFile:     "logos.json",
		StaticDir:     "assets",
		Include:       []string{"**"},
		Exclude:       append([]string(nil), DefaultExcludes...),
		OutputDir:     "site",
		FontFamily:    DefaultFontFamily,
		ToastMillis:   3000,
		LogLevel:      LogInfo,
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
			Watch:           true,
			Open:            false,
		},
	}
}
