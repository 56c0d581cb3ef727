package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/vktrace/cli/internal/output"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 2

// Verify compares a scaffolded project with the files opts would emit.
// Files outside the selection are ignored.
func Verify(ctx context.Context, opts Options) (*Report, error) {
	info, err := os.Stat(opts.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("checking project directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", opts.TargetDir)
	}

	_, files, err := plan(opts)
	if err != nil {
		return nil, err
	}

	report := &Report{TargetDir: opts.TargetDir}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := f.desc.Path()
		got, err := os.ReadFile(filepath.Join(opts.TargetDir, filepath.FromSlash(path)))
		if errors.Is(err, fs.ErrNotExist) {
			report.Missing = append(report.Missing, path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if string(got) == f.desc.Content {
			report.Unchanged = append(report.Unchanged, path)
			continue
		}

		output.Debug("file drifted", "path", path)
		report.Modified = append(report.Modified, Drift{
			Path: path,
			Diff: LineDiff(f.desc.Content, string(got)),
		})
	}

	return report, nil
}

// LineDiff renders a line diff from want to got. Removed lines start with
// '-', added lines with '+', and kept context lines with ' '. Long unchanged
// runs are collapsed to "...".
func LineDiff(want, got string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		return ""
	}

	var sb strings.Builder
	for i, d := range diffs {
		chunk := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writePrefixed(&sb, "-", chunk)
		case diffmatchpatch.DiffInsert:
			writePrefixed(&sb, "+", chunk)
		case diffmatchpatch.DiffEqual:
			first, last := i == 0, i == len(diffs)-1
			head, tail := diffContext, diffContext
			if first {
				head = 0
			}
			if last {
				tail = 0
			}
			if len(chunk) <= head+tail {
				writePrefixed(&sb, " ", chunk)
				continue
			}
			writePrefixed(&sb, " ", chunk[:head])
			sb.WriteString("...\n")
			writePrefixed(&sb, " ", chunk[len(chunk)-tail:])
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func writePrefixed(sb *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
