// Package config provides configuration loading and management.
package config

import (
	"github.com/vktrace/cli/internal/templates"
)

// Configuration keys, as they appear in config.yaml.
const (
	KeyShim       = "shim"
	KeyOutputDir  = "outputDir"
	KeySubstitute = "substitute"
	KeyTimestamps = "log.timestamps"
	KeyVars       = "vars"
)

// DefaultOutputDir is the project directory used when none is given.
const DefaultOutputDir = "vktrace-replay"

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the vktrace CLI configuration.
// Loaded from ~/.vktrace/config.yaml.
type Config struct {
	// Shim is the shim variant linked by default. A comma separated list
	// selects several variants.
	// Env: VKTRACE_SHIM, Default: gold-reference
	Shim string `mapstructure:"shim" yaml:"shim"`

	// OutputDir is the project directory `project init` uses without an argument.
	// Env: VKTRACE_OUTPUT_DIR, Default: vktrace-replay
	OutputDir string `mapstructure:"outputDir" yaml:"outputDir"`

	// Substitute resolves @VAR@ placeholders when scaffolding.
	// Env: VKTRACE_SUBSTITUTE, Default: false
	Substitute bool `mapstructure:"substitute" yaml:"substitute"`

	// Vars are configure_file variables merged under -D definitions.
	// Keys keep their case, so they are decoded outside viper.
	Vars map[string]string `mapstructure:"-" yaml:"vars,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `vktrace config init` to generate the initial config file.
func DefaultConfig() *Config {
	on := true
	return &Config{
		Shim:      templates.DefaultShim,
		OutputDir: DefaultOutputDir,
		Log: LogConfig{
			Timestamps: &on,
		},
	}
}
