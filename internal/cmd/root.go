// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cfgcmd "github.com/vktrace/cli/internal/cmd/config"
	"github.com/vktrace/cli/internal/cmd/project"
	tmplcmd "github.com/vktrace/cli/internal/cmd/template"
	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/config"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
)

// rootFlags are the persistent flags of the root command.
type rootFlags struct {
	config     string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the vktrace CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	gc := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "vktrace",
		Short: "Vulkan capture replay project generator",
		Long: `vktrace emits the support files of a Vulkan capture replay project:
the CMake build, platform entry points, helper library, and the shim
variants that intercept every replayed Vulkan call.

Generated capture code (gen_*.cpp) is dropped into sample_cpp_trace/ and
picked up by the build.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, gc)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: VKTRACE_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "table", "Output format: table, yaml, json")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		tmplcmd.NewTemplateCmd(gc),
		project.NewProjectCmd(gc),
		cfgcmd.NewConfigCmd(gc),
		NewVersionCmd(gc),
	)

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(c *cobra.Command, flags *rootFlags, gc *cmdtypes.GlobalConfig) error {
	format, err := output.ParseFormat(flags.output)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), "", "")
	}
	gc.OutputFormat = format
	gc.Verbose = flags.verbose

	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}
	gc.ConfigPath = configPath

	// A broken config file must not block commands that do not need it
	gc.Loader = config.NewLoader()
	gc.Config, gc.LoadErr = gc.Loader.Load(configPath.Value)
	if gc.LoadErr != nil {
		gc.Loader = config.NewLoader()
		gc.Config = config.DefaultConfig()
	}

	var timestamps *bool
	if c.Flags().Changed("timestamps") {
		timestamps = &flags.timestamps
	}
	settings, err := gc.Loader.Resolve(gc.Config, config.FlagValues{Timestamps: timestamps})
	if err != nil && gc.LoadErr == nil {
		gc.LoadErr = err
	}
	gc.Settings = settings

	logCfg := output.LogConfig{Verbose: flags.verbose}
	if settings != nil {
		logCfg.Timestamps = output.BoolPtr(settings.Timestamps)
	}
	output.SetupLogging(logCfg)

	if gc.LoadErr != nil {
		output.Warn("ignoring config, using defaults", "config", configPath.Value, "error", gc.LoadErr)
	}
	if flags.verbose {
		output.Debug("initializing CLI",
			"config", configPath.Value,
			"configSource", configPath.Source,
			"output", format,
		)
		if settings != nil {
			config.LogResolvedValues(settings.Values)
		}
	}

	return nil
}
