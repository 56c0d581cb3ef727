// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/config"
	"github.com/vktrace/cli/internal/output"
)

// EnvVars are the environment variables the CLI reads.
var EnvVars = []string{
	config.EnvConfig,
	config.EnvName(config.KeyShim),
	config.EnvName(config.KeyOutputDir),
	config.EnvName(config.KeySubstitute),
	config.EnvName(config.KeyTimestamps),
}

// IsolateEnv points HOME at a fresh directory and clears every VKTRACE_*
// override for the duration of the test. It returns the new HOME.
func IsolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range EnvVars {
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("failed to unset %s: %v", name, err)
		}
	}
	return home
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// GlobalConfig isolates the environment and loads a configuration the way
// the root command does. content, when not empty, becomes the config file.
func GlobalConfig(t *testing.T, content string) *cmdtypes.GlobalConfig {
	t.Helper()
	IsolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if content != "" {
		WriteFile(t, filepath.Dir(path), filepath.Base(path), content)
	}

	gc := &cmdtypes.GlobalConfig{
		ConfigPath:   config.ResolvedValue{Key: "config", Value: path, Source: config.SourceFlag},
		OutputFormat: output.FormatTable,
		Loader:       config.NewLoader(),
	}
	gc.Config, gc.LoadErr = gc.Loader.Load(path)
	if gc.LoadErr == nil {
		gc.Settings, gc.LoadErr = gc.Loader.Resolve(gc.Config, config.FlagValues{})
	}
	return gc
}

// CountFiles returns the number of regular files under dir.
func CountFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err == nil && d.Type().IsRegular() {
			n++
		}
		return err
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", dir, err)
	}
	return n
}
