package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/cmdutil"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/scaffold"
	"github.com/vktrace/cli/internal/templates"
)

// initOptions holds the flags for the init command.
type initOptions struct {
	project cmdutil.ProjectFlags
	force   bool
	dryRun  bool
	jobs    int
}

// NewInitCmd creates the project init command.
func NewInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &initOptions{}

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a replay project",
		Long: `Scaffold a replay project into dir.

Without dir the configured output directory is used (default vktrace-replay).
The target must be empty or missing unless --force is given.

Files are written verbatim. --substitute resolves @VAR@ placeholders from
the config file vars and -D definitions, like CMake configure_file.`,
		Example: `  # Scaffold with the default gold-reference shim
  vktrace project init ./replay

  # Scaffold every shim variant
  vktrace project init ./replay --all-shims

  # Preview the files of the profiling shim
  vktrace project init ./replay --shim timestamp-profiling --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, gc, opts, args)
		},
	}

	opts.project.AddTo(c)
	c.Flags().BoolVarP(&opts.force, "force", "f", false, "Write into a non-empty directory and overwrite files")
	c.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show the files that would be written")
	c.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Parallel file writes (default: number of CPUs)")

	return c
}

func runInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, opts *initOptions, args []string) error {
	var dir *string
	if len(args) > 0 {
		dir = &args[0]
	}

	sopts, settings, err := opts.project.ResolveOptions(c, gc, dir)
	if err != nil {
		return cmdutil.Exit(err)
	}
	sopts.TargetDir = settings.OutputDir
	sopts.Force = opts.force
	sopts.DryRun = opts.dryRun
	sopts.Concurrency = opts.jobs

	var result *scaffold.Result
	err = output.RunWithSpinner(c.Context(), func(ctx context.Context) error {
		var genErr error
		result, genErr = scaffold.NewGenerator(sopts).Generate(ctx)
		return genErr
	}, output.WithTitle("Scaffolding "+sopts.TargetDir))
	if err != nil {
		return cmdutil.Exit(err)
	}

	out := c.OutOrStdout()
	if err := cmdutil.WriteResult(out, gc.OutputFormat, result, gc.Verbose); err != nil {
		return err
	}
	if gc.OutputFormat != output.FormatTable || opts.dryRun {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Scaffolded %d files in %s", len(result.Files), result.TargetDir)))
	fmt.Fprintln(out, buildHint(result))
	return nil
}

// buildHint tells how to configure the emitted project.
func buildHint(result *scaffold.Result) string {
	styles := output.GetStyles()
	args := filepath.Join(result.TargetDir, "build.sh")
	if len(result.Shims) > 0 && result.Shims[0] != templates.DefaultShim {
		if dir, err := scaffold.ShimDir(result.Shims[0]); err == nil {
			args = "SHIM_VARIANT=" + dir + " " + args
		}
	}
	return styles.Muted.Render("Next: copy gen_*.cpp into sample_cpp_trace/ and run " + args)
}
