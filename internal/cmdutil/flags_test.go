package cmdutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/config"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/scaffold"
	"github.com/vktrace/cli/internal/templates"
	"github.com/vktrace/cli/internal/testutil"
)

// parse registers the project flags on a fresh command and parses args.
func parse(t *testing.T, args ...string) (*cobra.Command, *ProjectFlags) {
	t.Helper()
	var flags ProjectFlags
	c := &cobra.Command{Use: "test"}
	flags.AddTo(c)
	require.NoError(t, c.ParseFlags(args))
	return c, &flags
}

func TestResolveOptions_Defaults(t *testing.T) {
	gc := testutil.GlobalConfig(t, "")
	c, flags := parse(t)

	opts, settings, err := flags.ResolveOptions(c, gc, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{templates.DefaultShim}, opts.Shims)
	assert.False(t, opts.Substitute)
	assert.Equal(t, config.DefaultOutputDir, settings.OutputDir)
}

func TestResolveOptions_FlagsWin(t *testing.T) {
	gc := testutil.GlobalConfig(t, "shim: validation\nvars:\n  A: config\n  B: config\n")
	c, flags := parse(t, "--shim", "timestamp-profiling", "--shim", "rdoc-auto-capture", "-D", "B=flag")
	dir := "out"

	opts, settings, err := flags.ResolveOptions(c, gc, &dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"timestamp-profiling", "rdoc-auto-capture"}, opts.Shims)
	assert.Equal(t, map[string]string{"A": "config", "B": "flag"}, opts.Vars)
	assert.True(t, opts.Substitute)
	assert.Equal(t, "out", settings.OutputDir)
}

func TestResolveOptions_ImpliedSubstitute(t *testing.T) {
	for _, arg := range []string{"--strict", "--dollar-vars", "--substitute"} {
		t.Run(arg, func(t *testing.T) {
			gc := testutil.GlobalConfig(t, "")
			c, flags := parse(t, arg)

			opts, _, err := flags.ResolveOptions(c, gc, nil)
			require.NoError(t, err)
			assert.True(t, opts.Substitute)
		})
	}
}

func TestResolveOptions_Errors(t *testing.T) {
	t.Run("bad define", func(t *testing.T) {
		gc := testutil.GlobalConfig(t, "")
		c, flags := parse(t, "-D", "NOVALUE")
		_, _, err := flags.ResolveOptions(c, gc, nil)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})

	t.Run("unknown shim", func(t *testing.T) {
		gc := testutil.GlobalConfig(t, "")
		c, flags := parse(t, "--shim", "bogus")
		_, _, err := flags.ResolveOptions(c, gc, nil)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})

	t.Run("config load error", func(t *testing.T) {
		gc := testutil.GlobalConfig(t, "")
		gc.LoadErr = errors.New("reading config file: boom")
		c, flags := parse(t)
		_, _, err := flags.ResolveOptions(c, gc, nil)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestSubstitutionFlags_Enabled(t *testing.T) {
	gc := testutil.GlobalConfig(t, "substitute: true\n")

	c, flags := parse(t)
	assert.True(t, flags.Substitution.Enabled(c, gc))

	c, flags = parse(t, "--substitute=false")
	assert.False(t, flags.Substitution.Enabled(c, gc))

	c, flags = parse(t, "--substitute=false", "-D", "A=1")
	assert.True(t, flags.Substitution.Enabled(c, gc))

	c, flags = parse(t)
	assert.False(t, flags.Substitution.Enabled(c, &cmdtypes.GlobalConfig{}))
}

func TestSubstitutionFlags_RendererOptions(t *testing.T) {
	f := SubstitutionFlags{DollarVars: true, Strict: true}
	r := templates.NewRenderer(map[string]string{"A": "1"}, f.RendererOptions()...)

	got, missing := r.RenderString("@A@ ${A} @B@")
	assert.Equal(t, "1 1 @B@", got)
	assert.Equal(t, []string{"B"}, missing)

	assert.Empty(t, (&SubstitutionFlags{}).RendererOptions())
}

func TestExit(t *testing.T) {
	assert.NoError(t, Exit(nil))

	err := Exit(oerrors.Wrap(oerrors.ErrNotFound, "missing"))
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitNotFound, exitErr.Code)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	clean := &scaffold.Report{Unchanged: []string{"a", "b"}}
	require.NoError(t, WriteReport(&buf, output.FormatTable, clean))
	assert.Contains(t, buf.String(), "No drift detected.")
	assert.Contains(t, buf.String(), "2 files match their templates")

	buf.Reset()
	drifted := &scaffold.Report{Missing: []string{"build.sh"}}
	require.NoError(t, WriteReport(&buf, output.FormatTable, drifted))
	assert.Contains(t, buf.String(), "build.sh")
	assert.NotContains(t, buf.String(), "match their templates")
}

func TestWriteResult_Structured(t *testing.T) {
	var buf bytes.Buffer
	result := &scaffold.Result{ProjectName: "replay", Files: []scaffold.FileResult{{Path: "CMakeLists.txt", Set: "root", Status: output.StatusCreated}}}
	require.NoError(t, WriteResult(&buf, output.FormatYAML, result, false))
	assert.Contains(t, buf.String(), "projectName: replay")
	assert.Contains(t, buf.String(), "status: created")
}
