package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func unsetEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestResolve_Precedence(t *testing.T) {
	rv := Resolve("shim",
		Layer{Source: SourceFlag, Value: "validation", Set: true},
		Layer{Source: SourceEnv, Value: "rdoc-auto-capture", Set: true},
		Layer{Source: SourceConfig, Set: false},
		Layer{Source: SourceDefault, Value: "gold-reference", Set: true},
	)

	assert.Equal(t, "validation", rv.Value)
	assert.Equal(t, SourceFlag, rv.Source)
	assert.Equal(t, map[ConfigSource]string{
		SourceEnv:     "rdoc-auto-capture",
		SourceDefault: "gold-reference",
	}, rv.Shadowed)
}

func TestResolve_NothingSet(t *testing.T) {
	rv := Resolve("x", Layer{Source: SourceFlag})
	assert.Empty(t, rv.Value)
	assert.Empty(t, rv.Source)
	assert.Empty(t, rv.Shadowed)
}

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath("/flag/path/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "/flag/path/config.yaml", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/path/config.yaml", result.Shadowed[SourceEnv])
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath("")
	require.NoError(t, err)

	assert.Equal(t, "/env/path/config.yaml", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_Default(t *testing.T) {
	unsetEnv(t, EnvConfig)

	result, err := ResolveConfigPath("")
	require.NoError(t, err)

	assert.Contains(t, result.Value, ".vktrace")
	assert.Contains(t, result.Value, "config.yaml")
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestLoaderResolve(t *testing.T) {
	unsetEnv(t, "VKTRACE_SHIM", "VKTRACE_OUTPUT_DIR", "VKTRACE_SUBSTITUTE", "VKTRACE_LOG_TIMESTAMPS")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shim: validation\nsubstitute: true\n"), 0o600))

	t.Run("config over default", func(t *testing.T) {
		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		s, err := loader.Resolve(cfg, FlagValues{})
		require.NoError(t, err)

		assert.Equal(t, []string{"validation"}, s.Shims)
		assert.Equal(t, DefaultOutputDir, s.OutputDir)
		assert.True(t, s.Substitute)
		assert.True(t, s.Timestamps)

		require.Len(t, s.Values, 4)
		assert.Equal(t, SourceConfig, s.Values[0].Source)
		assert.Equal(t, "gold-reference", s.Values[0].Shadowed[SourceDefault])
		assert.Equal(t, SourceDefault, s.Values[1].Source)
	})

	t.Run("env over config", func(t *testing.T) {
		t.Setenv("VKTRACE_SHIM", "rdoc-auto-capture,validation")
		t.Setenv("VKTRACE_LOG_TIMESTAMPS", "false")

		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		s, err := loader.Resolve(cfg, FlagValues{})
		require.NoError(t, err)

		assert.Equal(t, []string{"rdoc-auto-capture", "validation"}, s.Shims)
		assert.Equal(t, SourceEnv, s.Values[0].Source)
		assert.Equal(t, "validation", s.Values[0].Shadowed[SourceConfig])
		assert.False(t, s.Timestamps)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("VKTRACE_SHIM", "rdoc-auto-capture")

		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		s, err := loader.Resolve(cfg, FlagValues{
			Shim:       strPtr("timestamp-profiling"),
			OutputDir:  strPtr("out"),
			Substitute: boolPtr(false),
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"timestamp-profiling"}, s.Shims)
		assert.Equal(t, "out", s.OutputDir)
		assert.False(t, s.Substitute)
		assert.Equal(t, SourceFlag, s.Values[2].Source)
	})

	t.Run("invalid env bool", func(t *testing.T) {
		t.Setenv("VKTRACE_SUBSTITUTE", "maybe")

		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		_, err = loader.Resolve(cfg, FlagValues{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, KeySubstitute, verr.Field)
	})

	t.Run("unknown shim", func(t *testing.T) {
		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		_, err = loader.Resolve(cfg, FlagValues{Shim: strPtr("bogus")})
		assert.Error(t, err)
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~", home},
		{"~/.vktrace/config.yaml", filepath.Join(home, ".vktrace", "config.yaml")},
		{"~other/x", "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
