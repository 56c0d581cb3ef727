package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/cmdutil"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/scaffold"
)

// diffOptions holds the flags for the diff command.
type diffOptions struct {
	project cmdutil.ProjectFlags
}

// NewDiffCmd creates the project diff command.
func NewDiffCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &diffOptions{}

	c := &cobra.Command{
		Use:   "diff [dir]",
		Short: "Compare a project with its templates",
		Long: `Compare a scaffolded project with the files 'project init' would write.

Pass the same shim and substitution flags that created the project.
Files outside the selection, such as gen_*.cpp, are ignored.

Exit codes:
  0 - Project matches its templates
  2 - Files are missing or modified
  5 - Project directory not found`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, gc, opts, args)
		},
	}

	opts.project.AddTo(c)

	return c
}

func runDiff(c *cobra.Command, gc *cmdtypes.GlobalConfig, opts *diffOptions, args []string) error {
	var dir *string
	if len(args) > 0 {
		dir = &args[0]
	}

	sopts, settings, err := opts.project.ResolveOptions(c, gc, dir)
	if err != nil {
		return cmdutil.Exit(err)
	}
	sopts.TargetDir = settings.OutputDir

	var report *scaffold.Report
	err = output.RunWithSpinner(c.Context(), func(ctx context.Context) error {
		var verifyErr error
		report, verifyErr = scaffold.Verify(ctx, sopts)
		return verifyErr
	}, output.WithTitle("Comparing "+sopts.TargetDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cmdutil.Exit(oerrors.NewNotFoundError(
				fmt.Sprintf("project directory %s does not exist", sopts.TargetDir),
				sopts.TargetDir,
				"Run 'vktrace project init' first",
			))
		}
		return cmdutil.Exit(err)
	}

	if err := cmdutil.WriteReport(c.OutOrStdout(), gc.OutputFormat, report); err != nil {
		return err
	}

	if report.Drifted() {
		return &oerrors.ExitError{
			Code:    oerrors.ExitValidationError,
			Err:     oerrors.Wrap(oerrors.ErrDrift, fmt.Sprintf("%d missing, %d modified", len(report.Missing), len(report.Modified))),
			Printed: true,
		}
	}
	return nil
}
