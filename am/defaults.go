package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults used when neither config nor flags name a path
const (
	DefaultLocalesDir = "src/locale/ru"
	DefaultOutputFile = "src/lib/i18n/i18n.d.ts"
)

// DefaultModules are the modules whose CustomTypeOptions get augmented
var DefaultModules = []string{"i18next", "react-i18next"}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("locales.dir", DefaultLocalesDir)
	v.SetDefault("locales.order", OrderSorted)

	v.SetDefault("output.file", DefaultOutputFile)
	v.SetDefault("output.default_namespace", "")
	v.SetDefault("output.modules", DefaultModules)

	v.SetDefault("watch.enabled", false)
	v.SetDefault("watch.debounce_ms", 0) // One regeneration per event

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", "everforest")
}

// BindEnvVars explicitly binds the path settings to short environment variables
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("locales.dir", "I18NTYPES_LOCALES_DIR", "LOCALES_DIR")
	_ = v.BindEnv("output.file", "I18NTYPES_OUTPUT_FILE")
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Locales: %s (%s), Output: %s, Watch: %t}",
		c.Locales.Dir, c.Locales.Order, c.Output.File, c.Watch.Enabled)
}
