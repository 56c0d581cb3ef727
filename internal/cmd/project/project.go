// Package project provides CLI command implementations for the project command group.
package project

import (
	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
)

// NewProjectCmd creates the project command group.
func NewProjectCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "project",
		Short: "Scaffold and check replay projects",
		Long: `Scaffold, check, and bundle Vulkan capture replay projects.

A project holds the top-level CMake build, the sample and helper sources,
the shim header, and one or more shim variants. Generated capture code is
added to sample_cpp_trace/ afterwards.`,
	}

	c.AddCommand(
		NewInitCmd(gc),
		NewDiffCmd(gc),
		NewPackCmd(gc),
	)

	return c
}
