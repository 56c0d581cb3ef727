package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/cmdutil"
	"github.com/vktrace/cli/internal/config"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new vktrace configuration file",
		Long: `Create a new vktrace configuration file with default values.

The configuration file is created at ~/.vktrace/config.yaml by default.
Use --config or VKTRACE_CONFIG to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, force bool) error {
	path, err := config.ExpandPath(gc.ConfigPath.Value)
	if err != nil {
		return cmdutil.Exit(fmt.Errorf("expanding config path: %w", err))
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.Exit(fmt.Errorf("checking config file: %w", err))
	}
	if exists && !force {
		return cmdutil.Exit(oerrors.NewValidationError(
			"config file already exists",
			path,
			"Use --force to overwrite",
		))
	}

	if err := config.WriteConfig(path, config.DefaultConfig(), force); err != nil {
		return cmdutil.Exit(err)
	}

	output.Info("wrote config", "path", path)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Created "+path))
	return nil
}
