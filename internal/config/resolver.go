package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/vktrace/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Layer is one candidate value for a key.
type Layer struct {
	Source ConfigSource
	Value  string
	Set    bool
}

// ResolvedValue records the winning value of a key and the values it shadowed.
type ResolvedValue struct {
	Key      string                  `json:"key" yaml:"key"`
	Value    string                  `json:"value" yaml:"value"`
	Source   ConfigSource            `json:"source" yaml:"source"`
	Shadowed map[ConfigSource]string `json:"shadowed,omitempty" yaml:"shadowed,omitempty"`
}

// Resolve picks the first set layer. Layers are given highest precedence first.
func Resolve(key string, layers ...Layer) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	won := false
	for _, l := range layers {
		if !l.Set {
			continue
		}
		if won {
			rv.Shadowed[l.Source] = l.Value
			continue
		}
		rv.Value = l.Value
		rv.Source = l.Source
		won = true
	}
	return rv
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) VKTRACE_CONFIG env, (3) ~/.vktrace/config.yaml
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	envValue := os.Getenv(EnvConfig)

	return Resolve("config",
		Layer{Source: SourceFlag, Value: flagValue, Set: flagValue != ""},
		Layer{Source: SourceEnv, Value: envValue, Set: envValue != ""},
		Layer{Source: SourceDefault, Value: paths.ConfigFile, Set: true},
	), nil
}

// FlagValues carries command-line overrides. Nil fields were not given.
type FlagValues struct {
	Shim       *string
	OutputDir  *string
	Substitute *bool
	Timestamps *bool
}

// Settings is the effective configuration after precedence resolution.
type Settings struct {
	Shims      []string
	OutputDir  string
	Substitute bool
	Timestamps bool
	Vars       map[string]string

	// Values lists each resolved key in a stable order.
	Values []ResolvedValue
}

// Resolve applies flag > env > config > default to every key of cfg.
// cfg must have been produced by this loader's Load.
func (l *Loader) Resolve(cfg *Config, flags FlagValues) (*Settings, error) {
	defaults := DefaultConfig()

	resolveKey := func(key string, flag *string, fileValue, defValue string) ResolvedValue {
		flagLayer := Layer{Source: SourceFlag}
		if flag != nil {
			flagLayer.Value, flagLayer.Set = *flag, true
		}
		envValue, envSet := l.EnvValue(key)
		return Resolve(key,
			flagLayer,
			Layer{Source: SourceEnv, Value: envValue, Set: envSet},
			Layer{Source: SourceConfig, Value: fileValue, Set: l.InFile(key)},
			Layer{Source: SourceDefault, Value: defValue, Set: true},
		)
	}

	fileTimestamps := *defaults.Log.Timestamps
	if cfg.Log.Timestamps != nil {
		fileTimestamps = *cfg.Log.Timestamps
	}

	values := []ResolvedValue{
		resolveKey(KeyShim, flags.Shim, cfg.Shim, defaults.Shim),
		resolveKey(KeyOutputDir, flags.OutputDir, cfg.OutputDir, defaults.OutputDir),
		resolveKey(KeySubstitute, boolString(flags.Substitute), strconv.FormatBool(cfg.Substitute), strconv.FormatBool(defaults.Substitute)),
		resolveKey(KeyTimestamps, boolString(flags.Timestamps), strconv.FormatBool(fileTimestamps), strconv.FormatBool(*defaults.Log.Timestamps)),
	}

	s := &Settings{
		Shims:     SplitShims(values[0].Value),
		OutputDir: values[1].Value,
		Vars:      cfg.Vars,
		Values:    values,
	}

	var err error
	if s.Substitute, err = parseBool(values[2]); err != nil {
		return nil, err
	}
	if s.Timestamps, err = parseBool(values[3]); err != nil {
		return nil, err
	}

	effective := &Config{Shim: values[0].Value, Vars: cfg.Vars}
	if err := effective.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// VarKeys returns the configured variable names, sorted.
func (s *Settings) VarKeys() []string {
	keys := make([]string, 0, len(s.Vars))
	for k := range s.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func boolString(b *bool) *string {
	if b == nil {
		return nil
	}
	s := strconv.FormatBool(*b)
	return &s
}

func parseBool(rv ResolvedValue) (bool, error) {
	b, err := strconv.ParseBool(rv.Value)
	if err != nil {
		return false, &ValidationError{
			Field:   rv.Key,
			Message: fmt.Sprintf("invalid boolean %q from %s", rv.Value, rv.Source),
		}
	}
	return b, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
