package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/config"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/testutil"
)

// globalConfig loads the config at path with the given output format.
func globalConfig(t *testing.T, path string, format output.Format) *cmdtypes.GlobalConfig {
	t.Helper()
	gc := &cmdtypes.GlobalConfig{
		ConfigPath:   config.ResolvedValue{Key: "config", Value: path, Source: config.SourceFlag},
		OutputFormat: format,
		Loader:       config.NewLoader(),
	}
	gc.Config, gc.LoadErr = gc.Loader.Load(path)
	if gc.LoadErr == nil {
		gc.Settings, gc.LoadErr = gc.Loader.Resolve(gc.Config, config.FlagValues{})
	}
	return gc
}

func run(t *testing.T, gc *cmdtypes.GlobalConfig, args ...string) (string, error) {
	t.Helper()
	c := NewConfigCmd(gc)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestNewConfigInitCmd(t *testing.T) {
	c := NewConfigInitCmd(&cmdtypes.GlobalConfig{})

	assert.Equal(t, "init", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.NotNil(t, c.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	testutil.IsolateEnv(t)
	path := filepath.Join(t.TempDir(), ".vktrace", "config.yaml")

	out, err := run(t, globalConfig(t, path, output.FormatTable), "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Shim, cfg.Shim)
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
}

func TestConfigInit_ExistingFile(t *testing.T) {
	testutil.IsolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shim: validation\n"), 0o600))

	_, err := run(t, globalConfig(t, path, output.FormatTable), "init")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "--force")

	_, err = run(t, globalConfig(t, path, output.FormatTable), "init", "--force")
	require.NoError(t, err)

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Shim, cfg.Shim)
}

func TestConfigShow_Table(t *testing.T) {
	testutil.IsolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shim: validation\nvars:\n  USERFILE_PLATFORM: x64\n"), 0o600))

	out, err := run(t, globalConfig(t, path, output.FormatTable), "show")
	require.NoError(t, err)

	assert.Contains(t, out, path)
	assert.Contains(t, out, "validation")
	assert.Contains(t, out, "vars.USERFILE_PLATFORM")
	assert.Contains(t, out, "x64")
}

func TestConfigShow_Sources(t *testing.T) {
	testutil.IsolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shim: validation\n"), 0o600))
	t.Setenv("VKTRACE_OUTPUT_DIR", "/tmp/replay")

	out, err := run(t, globalConfig(t, path, output.FormatJSON), "show")
	require.NoError(t, err)

	var report struct {
		ConfigFile string `json:"configFile"`
		Values     []struct {
			Key    string `json:"key"`
			Value  string `json:"value"`
			Source string `json:"source"`
		} `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, path, report.ConfigFile)

	sources := map[string]string{}
	values := map[string]string{}
	for _, v := range report.Values {
		sources[v.Key] = v.Source
		values[v.Key] = v.Value
	}
	assert.Equal(t, "config", sources[config.KeyShim])
	assert.Equal(t, "validation", values[config.KeyShim])
	assert.Equal(t, "env", sources[config.KeyOutputDir])
	assert.Equal(t, "/tmp/replay", values[config.KeyOutputDir])
	assert.Equal(t, "default", sources[config.KeySubstitute])
}

func TestConfigShow_InvalidConfig(t *testing.T) {
	testutil.IsolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shim: bogus\n"), 0o600))

	_, err := run(t, globalConfig(t, path, output.FormatTable), "show")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestShadowedSources(t *testing.T) {
	rv := config.ResolvedValue{Shadowed: map[config.ConfigSource]string{
		config.SourceDefault: "gold-reference",
		config.SourceConfig:  "validation",
		config.SourceEnv:     "rdoc-auto-capture",
	}}
	assert.Equal(t, []string{"env", "config"}, shadowedSources(rv))
	assert.Empty(t, shadowedSources(config.ResolvedValue{}))
}
