package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
)

// Generator writes a replay project to disk.
type Generator struct {
	opts Options
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate emits the selected files under the target directory.
// The target is checked before the first write, so a refused run leaves
// it untouched.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if g.opts.TargetDir == "" {
		return nil, oerrors.NewValidationError("target directory is required", "", "")
	}

	name, err := projectName(g.opts)
	if err != nil {
		return nil, err
	}

	shims, files, err := plan(g.opts)
	if err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	log := output.ProjectLogger(name)
	log.Debug("generating project",
		"target", g.opts.TargetDir,
		"shims", strings.Join(shims, ","),
		"files", len(files),
		"substitute", g.opts.Substitute)

	results := make([]FileResult, len(files))
	exists := make([]bool, len(files))
	for i, f := range files {
		target := filepath.Join(g.opts.TargetDir, filepath.FromSlash(f.desc.Path()))
		_, statErr := os.Stat(target)
		switch {
		case statErr == nil:
			// checkTargetDir only lets existing files through with Force
			exists[i] = true
		case !errors.Is(statErr, fs.ErrNotExist):
			return nil, fmt.Errorf("checking %s: %w", target, statErr)
		}

		results[i] = FileResult{
			ID:   f.id,
			Path: f.desc.Path(),
			Set:  f.set,
			Size: len(f.desc.Content),
		}
	}

	result := &Result{
		TargetDir:   g.opts.TargetDir,
		ProjectName: name,
		Shims:       shims,
		Files:       results,
	}

	if g.opts.DryRun {
		for i := range results {
			results[i].Status = output.StatusPlanned
			if exists[i] {
				results[i].Status = output.StatusReplaced
			}
		}
		return result, nil
	}

	limit := g.opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i := range files {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if err := writeFile(g.opts.TargetDir, files[i]); err != nil {
				return err
			}
			results[i].Status = output.StatusCreated
			if exists[i] {
				results[i].Status = output.StatusOverwritten
			}
			log.Debug("created file", "path", results[i].Path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// writeFile writes one planned file below root.
func writeFile(root string, f plannedFile) error {
	target := filepath.Join(root, filepath.FromSlash(f.desc.Path()))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(target), err)
	}

	mode := fs.FileMode(0o644)
	if f.desc.Executable() {
		mode = 0o755
	}

	if err := os.WriteFile(target, []byte(f.desc.Content), mode); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	// WriteFile keeps the mode of a file it overwrites
	if err := os.Chmod(target, mode); err != nil {
		return fmt.Errorf("setting mode of %s: %w", target, err)
	}
	return nil
}

// checkTargetDir validates the target directory.
func (g *Generator) checkTargetDir() error {
	info, err := os.Stat(g.opts.TargetDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return oerrors.NewValidationError("target is not a directory", g.opts.TargetDir, "")
	}

	entries, err := os.ReadDir(g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) > 0 && !g.opts.Force {
		return oerrors.NewValidationError(
			"directory is not empty",
			g.opts.TargetDir,
			"use --force to overwrite existing files",
		)
	}

	return nil
}
