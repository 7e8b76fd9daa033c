package config

// LogLevel is the minimum level written by the logger.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level brandkit configuration, corresponding to .brandkit.yml.
type Config struct {
	Title         string       `yaml:"title" koanf:"title"`
	DataDir       string       `yaml:"data_dir" koanf:"data_dir"`
	TokensFile    string       `yaml:"tokens_file" koanf:"tokens_file"`
	TemplatesFile string       `yaml:"templates_file" koanf:"templates_file"`
	BrandFile     string       `yaml:"brand_file" koanf:"brand_file"`
	LogosFile     string       `yaml:"logos_file" koanf:"logos_file"`
	StaticDir     string       `yaml:"static_dir" koanf:"static_dir"`
	Include       []string     `yaml:"include" koanf:"include"`
	Exclude       []string     `yaml:"exclude" koanf:"exclude"`
	OutputDir     string       `yaml:"output_dir" koanf:"output_dir"`
	FontFamily    string       `yaml:"font_family" koanf:"font_family"`
	ToastMillis   int          `yaml:"toast_ms" koanf:"toast_ms"`
	LogLevel      LogLevel     `yaml:"log_level" koanf:"log_level"`
	Server        ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds settings for the local preview server.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool `yaml:"watch" koanf:"watch"`
	Open            bool `yaml:"open" koanf:"open"`
}
