// Package am holds the i18ntypes configuration ("I am").
//
// Values are layered, lowest precedence first: built-in defaults,
// i18ntypes.toml found by walking up from the working directory,
// I18NTYPES_* environment variables, then command-line flags bound by the CLI.
package am

// Config represents the i18ntypes configuration
type Config struct {
	Locales LocalesConfig `mapstructure:"locales" toml:"locales" yaml:"locales"`
	Output  OutputConfig  `mapstructure:"output" toml:"output" yaml:"output"`
	Watch   WatchConfig   `mapstructure:"watch" toml:"watch" yaml:"watch"`
	Log     LogConfig     `mapstructure:"log" toml:"log" yaml:"log"`
}

// LocalesConfig configures where translation files are read from
type LocalesConfig struct {
	Dir   string `mapstructure:"dir" toml:"dir" yaml:"dir"`       // Directory of <namespace>.json files
	Order string `mapstructure:"order" toml:"order" yaml:"order"` // "sorted" (default) or "listing"
}

// OutputConfig configures the generated declaration file
type OutputConfig struct {
	File             string   `mapstructure:"file" toml:"file" yaml:"file"`
	DefaultNamespace string   `mapstructure:"default_namespace" toml:"default_namespace" yaml:"default_namespace"` // empty = first namespace
	Modules          []string `mapstructure:"modules" toml:"modules" yaml:"modules"`                               // modules augmented with CustomTypeOptions
}

// WatchConfig configures watch mode
type WatchConfig struct {
	Enabled    bool `mapstructure:"enabled" toml:"enabled" yaml:"enabled"`
	DebounceMS int  `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms"` // 0 = regenerate on every event
}

// LogConfig configures log output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json"`
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme"` // everforest, gruvbox
}

// Locale file ordering modes
const (
	OrderSorted  = "sorted"
	OrderListing = "listing"
)

// ProjectConfigName is the file searched for from the working directory upwards
const ProjectConfigName = "i18ntypes.toml"

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
