// Package cmdutil provides shared command utilities for the project and
// template subcommands. It centralizes flag groups, configuration
// resolution, and result rendering.
package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/config"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/scaffold"
	"github.com/vktrace/cli/internal/templates"
)

// ShimFlags holds the shim selection flags (project init, diff, pack).
type ShimFlags struct {
	Shims    []string
	AllShims bool
}

// AddTo registers the shim flags on the given cobra command.
func (f *ShimFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.Shims, "shim", nil,
		"Shim variant to include (can be repeated; "+strings.Join(templates.ShimVariants(), ", ")+")")
	cmd.Flags().BoolVar(&f.AllShims, "all-shims", false,
		"Include every shim variant")
}

// SubstitutionFlags holds the configure_file substitution flags.
type SubstitutionFlags struct {
	Defines    []string
	Substitute bool
	DollarVars bool
	Strict     bool
}

// AddTo registers the substitution flags on the given cobra command.
func (f *SubstitutionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.Defines, "define", "D", nil,
		"Define a substitution variable as KEY=VALUE (can be repeated; implies --substitute)")
	cmd.Flags().BoolVar(&f.Substitute, "substitute", false,
		"Resolve @VAR@ placeholders (env: VKTRACE_SUBSTITUTE)")
	cmd.Flags().BoolVar(&f.DollarVars, "dollar-vars", false,
		"Also resolve defined ${VAR} references (implies --substitute)")
	cmd.Flags().BoolVar(&f.Strict, "strict", false,
		"Fail when a @VAR@ placeholder has no value (implies --substitute)")
}

// Enabled reports whether rendering is on. --define, --strict and
// --dollar-vars imply --substitute. Without an explicit --substitute the
// resolved setting decides.
func (f *SubstitutionFlags) Enabled(cmd *cobra.Command, gc *cmdtypes.GlobalConfig) bool {
	base := gc.Settings != nil && gc.Settings.Substitute
	if cmd.Flags().Changed("substitute") {
		base = f.Substitute
	}
	return base || f.implied()
}

func (f *SubstitutionFlags) implied() bool {
	return len(f.Defines) > 0 || f.Strict || f.DollarVars
}

// Vars merges -D definitions over the configured variables.
func (f *SubstitutionFlags) Vars(gc *cmdtypes.GlobalConfig) (map[string]string, error) {
	defines, err := templates.ParseDefines(f.Defines)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", "Definitions take the form -D NAME=VALUE")
	}
	var configured map[string]string
	if gc.Settings != nil {
		configured = gc.Settings.Vars
	}
	return mergeVars(configured, defines), nil
}

// RendererOptions maps the flags onto renderer options.
func (f *SubstitutionFlags) RendererOptions() []templates.RendererOption {
	var opts []templates.RendererOption
	if f.DollarVars {
		opts = append(opts, templates.WithDollarVars())
	}
	if f.Strict {
		opts = append(opts, templates.WithStrict())
	}
	return opts
}

func mergeVars(base, over map[string]string) map[string]string {
	vars := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		vars[k] = v
	}
	for k, v := range over {
		vars[k] = v
	}
	return vars
}

// ProjectFlags combines the flags that decide which files a project holds
// and what they contain.
type ProjectFlags struct {
	Shim         ShimFlags
	Substitution SubstitutionFlags
}

// AddTo registers all project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	f.Shim.AddTo(cmd)
	f.Substitution.AddTo(cmd)
}

// ResolveOptions builds scaffold options for a command from its flags,
// the environment, and the config file.
func (f *ProjectFlags) ResolveOptions(cmd *cobra.Command, gc *cmdtypes.GlobalConfig, outputDir *string) (scaffold.Options, *config.Settings, error) {
	if gc.LoadErr != nil {
		return scaffold.Options{}, nil, oerrors.Wrap(oerrors.ErrValidation, gc.LoadErr.Error())
	}

	defines, err := templates.ParseDefines(f.Substitution.Defines)
	if err != nil {
		return scaffold.Options{}, nil, oerrors.NewValidationError(err.Error(), "", "Definitions take the form -D NAME=VALUE")
	}

	var flags config.FlagValues
	if cmd.Flags().Changed("shim") {
		joined := strings.Join(f.Shim.Shims, ",")
		flags.Shim = &joined
	}
	if cmd.Flags().Changed("substitute") {
		flags.Substitute = &f.Substitution.Substitute
	}
	flags.OutputDir = outputDir

	settings, err := gc.Loader.Resolve(gc.Config, flags)
	if err != nil {
		return scaffold.Options{}, nil, oerrors.NewValidationError(err.Error(), gc.Loader.Path(), "")
	}
	config.LogResolvedValues(settings.Values)

	opts := scaffold.Options{
		Shims:      settings.Shims,
		AllShims:   f.Shim.AllShims,
		Vars:       mergeVars(settings.Vars, defines),
		Substitute: settings.Substitute || f.Substitution.implied(),
		DollarVars: f.Substitution.DollarVars,
		Strict:     f.Substitution.Strict,
	}
	return opts, settings, nil
}
