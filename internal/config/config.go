// Filename: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the whole application configuration as unmarshalled by viper.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Rule   RuleConfig   `mapstructure:"rule" yaml:"rule"`
}

// LoggerConfig controls the zap logger and optional rotating file output.
type LoggerConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // "console" or "json"

	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// RuleConfig is the bare-strings rule surface. Any field left empty falls
// back to the rule's built-in defaults.
type RuleConfig struct {
	// Whitelist lists literal substrings that never count as translatable
	// content on their own.
	Whitelist []string `mapstructure:"whitelist" yaml:"whitelist"`
	// Attributes maps a tag name or `/pattern/flags` selector to the
	// attribute names that must not carry bare strings.
	Attributes map[string][]string `mapstructure:"attributes" yaml:"attributes"`
	// Directives lists directive names whose literal string argument is
	// checked. Every entry must carry the `v-` binding prefix.
	Directives []string `mapstructure:"directives" yaml:"directives"`
}

// Validate is the schema check the analysis core assumes has already
// happened: directive names must carry the binding prefix. Pattern keys are
// validated when the analyzer compiles them.
func (rc RuleConfig) Validate() error {
	for _, d := range rc.Directives {
		if !strings.HasPrefix(d, "v-") {
			return fmt.Errorf("rule.directives entry %q must start with \"v-\"", d)
		}
	}
	return nil
}

// SetDefaults registers the configuration defaults on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
}
