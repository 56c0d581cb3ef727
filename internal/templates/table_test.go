package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_AllEntriesPopulated(t *testing.T) {
	for _, id := range IDs() {
		t.Run(id.String(), func(t *testing.T) {
			d, err := Lookup(id)
			require.NoError(t, err)
			assert.NotEmpty(t, d.Name)
			assert.NotEmpty(t, d.Content)
			assert.False(t, strings.HasSuffix(d.Name, templateSuffix))
		})
	}
}

func TestLookup_RootCMake(t *testing.T) {
	d, err := Lookup(RootCMake)
	require.NoError(t, err)

	assert.Equal(t, "", d.Dir)
	assert.Equal(t, "CMakeLists.txt", d.Name)
	assert.True(t, strings.HasPrefix(d.Content, "CMAKE_MINIMUM_REQUIRED (VERSION 3.9)"))
	assert.Equal(t, KindCMake, d.Kind())
}

func TestLookup_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		id   ID
	}{
		{"count", Count},
		{"negative", -1},
		{"far past end", Count + 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.id)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))
			assert.Equal(t, FileDesc{}, d)

			var idxErr *IndexError
			require.True(t, errors.As(err, &idxErr))
			assert.Equal(t, tt.id, idxErr.ID)
		})
	}
}

func TestMustLookup_PanicsOnInvalidID(t *testing.T) {
	assert.Panics(t, func() { MustLookup(Count) })
	assert.NotPanics(t, func() { MustLookup(BuildBatch) })
}

func TestLookup_Idempotent(t *testing.T) {
	for _, id := range IDs() {
		first := MustLookup(id)
		second := MustLookup(id)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s changed between lookups (-first +second):\n%s", id, diff)
		}
	}
}

func TestLookup_ConcurrentReaders(t *testing.T) {
	want := All()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range IDs() {
				d, err := Lookup(id)
				if err != nil || d != want[id] {
					t.Errorf("concurrent lookup of %s returned a different entry", id)
				}
			}
		}()
	}
	wg.Wait()
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	require.Len(t, all, int(Count))

	all[RootCMake].Content = "mutated"
	assert.NotEqual(t, "mutated", MustLookup(RootCMake).Content)
}

func TestCount_MatchesEmbeddedFiles(t *testing.T) {
	var embedded []string
	err := fs.WalkDir(FS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			embedded = append(embedded, strings.TrimSuffix(p, templateSuffix))
		}
		return nil
	})
	require.NoError(t, err)

	var paths []string
	for _, d := range All() {
		paths = append(paths, d.Path())
	}

	assert.Len(t, paths, int(Count))
	assert.ElementsMatch(t, embedded, paths)
}

func TestPaths_Unique(t *testing.T) {
	seen := make(map[string]ID)
	for _, id := range IDs() {
		p := MustLookup(id).Path()
		if prev, ok := seen[p]; ok {
			t.Fatalf("%s and %s both map to %s", prev, id, p)
		}
		seen[p] = id
	}
}

func TestRoundTrip_VerbatimWrite(t *testing.T) {
	dir := t.TempDir()
	for _, d := range All() {
		target := filepath.Join(dir, filepath.FromSlash(d.Path()))
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		require.NoError(t, os.WriteFile(target, []byte(d.Content), 0o644))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, d.Content, string(got), "round trip of %s", d.Path())
	}
}

func TestFileDesc_Path(t *testing.T) {
	assert.Equal(t, "build.sh", FileDesc{Name: "build.sh"}.Path())
	assert.Equal(t, "helper/helper.h", FileDesc{Dir: "helper", Name: "helper.h"}.Path())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"CMakeLists.txt", KindCMake},
		{"toolchain.cmake", KindCMake},
		{"helper.h", KindHeader},
		{"helper.cpp", KindSource},
		{"template.vcxproj.user", KindMSBuild},
		{"build.sh", KindScript},
		{"build.bat", KindScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.name))
		})
	}
}

func TestExecutable(t *testing.T) {
	assert.True(t, MustLookup(BuildScript).Executable())
	assert.False(t, MustLookup(BuildBatch).Executable())
	assert.False(t, MustLookup(HelperCpp).Executable())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     ID
		wantErr  bool
		outRange bool
	}{
		{"by name", "root-cmake", RootCMake, false, false},
		{"by index", "13", ShimHeader, false, false},
		{"last index", "29", BuildBatch, false, false},
		{"index past end", "30", 0, true, true},
		{"negative index", "-1", 0, true, true},
		{"unknown name", "nope", 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.outRange, errors.Is(err, ErrIndexOutOfRange))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "sample-main-win", SampleMainWin.String())
	assert.Equal(t, "ID(30)", Count.String())

	for _, id := range IDs() {
		parsed, err := ParseID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestBuildScripts_ConfigureInsideBuildDir(t *testing.T) {
	// -S/-B need CMake 3.13; the project floor is 3.9
	sh := MustLookup(BuildScript).Content
	assert.Contains(t, sh, `cd "$BUILD_DIR" && cmake "$SCRIPT_DIR"`)

	bat := MustLookup(BuildBatch).Content
	assert.Contains(t, bat, `pushd "%BUILD_DIR%"`)

	for _, content := range []string{sh, bat} {
		assert.NotContains(t, content, " -S ")
		assert.NotContains(t, content, " -B ")
	}
	assert.Contains(t, MustLookup(RootCMake).Content, "CMAKE_MINIMUM_REQUIRED (VERSION 3.9)")
}
