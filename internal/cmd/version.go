package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/version"
)

// versionReport is the structured form of `vktrace version`.
type versionReport struct {
	CLI   version.Info      `json:"cli" yaml:"cli"`
	CMake version.CMakeInfo `json:"cmake" yaml:"cmake"`
}

// NewVersionCmd creates the version command.
func NewVersionCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show vktrace CLI version information.

Displays:
  - vktrace version, commit, and build date
  - Embedded template files and shim variants
  - The cmake binary in PATH and whether it can build emitted projects`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			report := versionReport{
				CLI:   version.Get(),
				CMake: version.DetectCMake(c.Context()),
			}

			out := c.OutOrStdout()
			if gc.OutputFormat != "" && gc.OutputFormat != output.FormatTable {
				return output.WriteStructured(out, gc.OutputFormat, report)
			}

			fmt.Fprintln(out, report.CLI.String())
			fmt.Fprintln(out)
			fmt.Fprintln(out, "CMake:")
			fmt.Fprintln(out, report.CMake.String())
			return nil
		},
	}
}
