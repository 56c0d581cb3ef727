package output

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree("replay", map[string]string{
		"CMakeLists.txt":                "root",
		"helper/helper.h":               "helper",
		"helper/helper.cpp":             "helper",
		"sample_cpp_trace/main_win.cpp": "",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "replay/")
	assert.True(t, strings.HasPrefix(lines[1], "├── helper/"))
	assert.True(t, strings.HasPrefix(lines[2], "│   ├── helper.cpp"))
	assert.True(t, strings.HasPrefix(lines[3], "│   └── helper.h"))
	assert.True(t, strings.HasPrefix(lines[4], "├── sample_cpp_trace/"))
	assert.Equal(t, "│   └── main_win.cpp", lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "└── CMakeLists.txt"))
	assert.Contains(t, lines[6], "root")

	assert.Empty(t, RenderFileTree("replay", nil))
}

func TestRenderDiff(t *testing.T) {
	styles := GetStyles()

	assert.Equal(t, "No drift detected.", RenderDiff(nil, nil, styles))

	out := RenderDiff(
		[]string{"build.sh"},
		[]ModifiedItem{{Name: "helper/helper.h", Diff: " keep\n-old\n+new\n"}},
		styles,
	)
	assert.Contains(t, out, "Missing:")
	assert.Contains(t, out, "build.sh")
	assert.Contains(t, out, "Modified:")
	assert.Contains(t, out, "helper/helper.h")
	assert.Contains(t, out, "-old")
	assert.Contains(t, out, "+new")
	assert.Contains(t, out, "Summary: 1 missing, 1 modified")
}

func TestDriftSummary(t *testing.T) {
	assert.Equal(t, "No drift", driftSummary(0, 0))
	assert.Equal(t, "2 missing", driftSummary(2, 0))
	assert.Equal(t, "3 modified", driftSummary(0, 3))
}

func TestTable(t *testing.T) {
	tbl := NewTable("INDEX", "PATH").Row("0", "CMakeLists.txt").Row("1", "build.sh")
	assert.Equal(t, 2, tbl.Len())

	out := tbl.String()
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "CMakeLists.txt")
	assert.Contains(t, out, "build.sh")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteStructured(t *testing.T) {
	type row struct {
		Index int    `json:"index" yaml:"index"`
		Path  string `json:"path" yaml:"path"`
	}
	rows := []row{{0, "CMakeLists.txt"}}

	var buf bytes.Buffer
	require.NoError(t, WriteStructured(&buf, FormatJSON, rows))
	assert.Contains(t, buf.String(), `"path": "CMakeLists.txt"`)

	buf.Reset()
	require.NoError(t, WriteStructured(&buf, FormatYAML, rows))
	var decoded []row
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rows, decoded)

	assert.Error(t, WriteStructured(&buf, FormatTable, rows))
}

func TestRunWithSpinner_NoTTY(t *testing.T) {
	// go test output is never a terminal
	called := false
	err := RunWithSpinner(context.Background(), func(context.Context) error {
		called = true
		return nil
	}, WithTitle("Generating"))
	require.NoError(t, err)
	assert.True(t, called)

	boom := errors.New("boom")
	err = RunWithSpinner(context.Background(), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}
