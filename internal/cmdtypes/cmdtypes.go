// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/template, internal/cmd/project, internal/cmd/config).
package cmdtypes

import (
	"github.com/vktrace/cli/internal/config"
	"github.com/vktrace/cli/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded config file merged over defaults.
	Config *config.Config

	// Loader produced Config and resolves per-command overrides against it.
	Loader *config.Loader

	// LoadErr is set when the config file could not be read. Commands that
	// need configuration return it.
	LoadErr error

	// ConfigPath is the resolved --config path.
	ConfigPath config.ResolvedValue

	// Settings is the resolution without command-specific flags.
	Settings *config.Settings

	// OutputFormat is the resolved --output value.
	OutputFormat output.Format

	Verbose bool
}
