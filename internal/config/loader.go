package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Environment variable prefix for vktrace configuration.
const envPrefix = "VKTRACE"

// envNames maps configuration keys to their environment variables.
var envNames = map[string]string{
	KeyShim:       "VKTRACE_SHIM",
	KeyOutputDir:  "VKTRACE_OUTPUT_DIR",
	KeySubstitute: "VKTRACE_SUBSTITUTE",
	KeyTimestamps: "VKTRACE_LOG_TIMESTAMPS",
}

// Loader reads the config file and the environment layer.
// The file layer and the env layer are kept apart so that
// resolution can report where each value came from.
type Loader struct {
	file *viper.Viper
	env  *viper.Viper
	path string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	file := viper.New()
	defaults := DefaultConfig()
	file.SetDefault(KeyShim, defaults.Shim)
	file.SetDefault(KeyOutputDir, defaults.OutputDir)
	file.SetDefault(KeySubstitute, defaults.Substitute)
	file.SetDefault(KeyTimestamps, *defaults.Log.Timestamps)

	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	for key, name := range envNames {
		_ = env.BindEnv(key, name)
	}

	return &Loader{file: file, env: env}
}

// Load reads configuration from configFile. An empty path selects the
// default location. A missing file yields defaults.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	l.path = expandedPath

	l.file.SetConfigFile(expandedPath)
	l.file.SetConfigType("yaml")

	var raw []byte
	if err := l.file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		raw, err = os.ReadFile(expandedPath)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.file.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// viper lowercases map keys; variable names are case sensitive
	if len(raw) > 0 {
		var vars struct {
			Vars map[string]string `yaml:"vars"`
		}
		if err := yaml.Unmarshal(raw, &vars); err != nil {
			return nil, fmt.Errorf("decoding vars: %w", err)
		}
		cfg.Vars = vars.Vars
	}

	return &cfg, nil
}

// Path returns the expanded path of the last loaded config file.
func (l *Loader) Path() string {
	return l.path
}

// InFile reports whether the loaded config file sets key.
func (l *Loader) InFile(key string) bool {
	return l.file.InConfig(key)
}

// EnvValue returns the environment override for key, if any.
func (l *Loader) EnvValue(key string) (string, bool) {
	if !l.env.IsSet(key) {
		return "", false
	}
	return l.env.GetString(key), true
}

// EnvName returns the environment variable bound to key.
func EnvName(key string) string {
	return envNames[key]
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// WriteConfig writes cfg as YAML to path, creating parent directories.
// An existing file is replaced only when force is set.
func WriteConfig(path string, cfg *Config, force bool) error {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if !force {
		exists, err := ConfigFileExists(expandedPath)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("config file already exists: %s", expandedPath)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return os.WriteFile(expandedPath, data, 0o600)
}
