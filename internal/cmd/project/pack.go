package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/cmdutil"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/scaffold"
)

// BundleExt is the file extension of project bundles.
const BundleExt = ".tar.lz4"

// packOptions holds the flags for the pack command.
type packOptions struct {
	project cmdutil.ProjectFlags
	name    string
	force   bool
}

// NewPackCmd creates the project pack command.
func NewPackCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &packOptions{}

	c := &cobra.Command{
		Use:   "pack <file" + BundleExt + ">",
		Short: "Bundle a project as an LZ4-compressed tarball",
		Long: `Write the files 'project init' would emit to an LZ4-compressed tar
bundle instead of a directory. Entries are rooted at the project name,
which defaults to the bundle file name without its extension.

Bundles are reproducible: equal flags produce byte-identical files.
Use - to write the bundle to stdout.`,
		Example: `  # Bundle every shim variant
  vktrace project pack replay.tar.lz4 --all-shims

  # Stream a bundle to a remote machine
  vktrace project pack - --name replay | ssh host 'lz4 -d | tar x'`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPack(c, gc, opts, args[0])
		},
	}

	opts.project.AddTo(c)
	c.Flags().StringVar(&opts.name, "name", "", "Root directory of bundle entries")
	c.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing bundle")

	return c
}

func runPack(c *cobra.Command, gc *cmdtypes.GlobalConfig, opts *packOptions, file string) error {
	sopts, settings, err := opts.project.ResolveOptions(c, gc, nil)
	if err != nil {
		return cmdutil.Exit(err)
	}
	sopts.TargetDir = settings.OutputDir
	sopts.ProjectName = bundleName(opts.name, file)

	if file == "-" {
		_, err := scaffold.Pack(c.Context(), c.OutOrStdout(), sopts)
		return cmdutil.Exit(err)
	}

	if !opts.force {
		if _, err := os.Stat(file); err == nil {
			return cmdutil.Exit(oerrors.NewValidationError(
				fmt.Sprintf("bundle %s already exists", file), file, "Use --force to overwrite"))
		}
	}

	f, err := os.Create(file)
	if err != nil {
		return cmdutil.Exit(fmt.Errorf("creating bundle: %w", err))
	}

	var result *scaffold.Result
	err = output.RunWithSpinner(c.Context(), func(ctx context.Context) error {
		var packErr error
		result, packErr = scaffold.Pack(ctx, f, sopts)
		return packErr
	}, output.WithTitle("Packing "+file))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(file)
		return cmdutil.Exit(err)
	}

	result.TargetDir = file
	out := c.OutOrStdout()
	if err := cmdutil.WriteResult(out, gc.OutputFormat, result, gc.Verbose); err != nil {
		return err
	}
	if gc.OutputFormat == output.FormatTable {
		fmt.Fprintln(out)
		fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Packed %d files into %s", len(result.Files), file)))
	}
	return nil
}

// bundleName picks the entry root: --name, else the file name without
// its extension. Empty defers to the output directory.
func bundleName(name, file string) string {
	if name != "" || file == "-" {
		return name
	}
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, BundleExt)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
