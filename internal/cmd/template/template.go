// Package template provides CLI command implementations for the template command group.
package template

import (
	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Inspect the embedded project templates",
		Long: `Inspect the files the replay project is built from.

Every file has a fixed index and a name. Files are grouped into sets;
the shim sets are alternative implementations of the replay shim and
exactly one is linked by the build.`,
	}

	c.AddCommand(
		NewListCmd(gc),
		NewShowCmd(gc),
		NewCatCmd(gc),
		NewSetsCmd(gc),
	)

	return c
}
