package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/templates"
)

// baseSets are emitted into every project.
var baseSets = []string{"root", "sample", "helper", "shim-header"}

// ResolveShims returns the shim variants opts selects, deduplicated in
// registry order.
func ResolveShims(opts Options) ([]string, error) {
	if opts.AllShims {
		return templates.ShimVariants(), nil
	}
	if len(opts.Shims) == 0 {
		return []string{templates.DefaultShim}, nil
	}

	want := make(map[string]bool, len(opts.Shims))
	for _, name := range opts.Shims {
		if !templates.IsValidShim(name) {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("unknown shim variant %q", name),
				"",
				"Valid shims: "+strings.Join(templates.ShimVariants(), ", "),
			)
		}
		want[name] = true
	}

	var shims []string
	for _, name := range templates.ShimVariants() {
		if want[name] {
			shims = append(shims, name)
		}
	}
	return shims, nil
}

// Select returns the table entries opts emits, in enumeration order.
func Select(opts Options) ([]templates.ID, error) {
	shims, err := ResolveShims(opts)
	if err != nil {
		return nil, err
	}
	return selectSets(append(append([]string(nil), baseSets...), shims...))
}

func selectSets(names []string) ([]templates.ID, error) {
	var picked [templates.Count]bool
	for _, name := range names {
		s, err := templates.GetSet(name)
		if err != nil {
			return nil, err
		}
		for _, id := range s.IDs {
			picked[id] = true
		}
	}

	var ids []templates.ID
	for _, id := range templates.IDs() {
		if picked[id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// ShimDir returns the project directory of a shim variant, the value of the
// SHIM_VARIANT CMake cache variable that links it.
func ShimDir(shim string) (string, error) {
	s, err := templates.GetSet(shim)
	if err != nil {
		return "", err
	}
	if !s.Shim || len(s.IDs) == 0 {
		return "", fmt.Errorf("%s is not a shim variant", shim)
	}
	return templates.MustLookup(s.IDs[0]).Dir, nil
}

// projectName returns opts.ProjectName or the base name of the target.
func projectName(opts Options) (string, error) {
	name := opts.ProjectName
	if name == "" {
		abs, err := filepath.Abs(opts.TargetDir)
		if err != nil {
			return "", err
		}
		name = filepath.Base(abs)
	}
	if err := templates.ValidateProjectName(name); err != nil {
		return "", oerrors.NewValidationError(err.Error(), "", "pass --name with a plain directory name")
	}
	return name, nil
}

// plannedFile is a table entry after substitution.
type plannedFile struct {
	id   templates.ID
	set  string
	desc templates.FileDesc
}

// plan selects and renders the files for opts.
func plan(opts Options) ([]string, []plannedFile, error) {
	shims, err := ResolveShims(opts)
	if err != nil {
		return nil, nil, err
	}
	ids, err := selectSets(append(append([]string(nil), baseSets...), shims...))
	if err != nil {
		return nil, nil, err
	}

	var renderer *templates.Renderer
	if opts.Substitute {
		var ropts []templates.RendererOption
		if opts.DollarVars {
			ropts = append(ropts, templates.WithDollarVars())
		}
		if opts.Strict {
			ropts = append(ropts, templates.WithStrict())
		}
		renderer = templates.NewRenderer(opts.Vars, ropts...)
	}

	files := make([]plannedFile, 0, len(ids))
	for _, id := range ids {
		desc, err := templates.Lookup(id)
		if err != nil {
			return nil, nil, err
		}
		if renderer != nil {
			desc, err = renderer.RenderFile(desc)
			if err != nil {
				var unresolved *templates.UnresolvedError
				if errors.As(err, &unresolved) {
					return nil, nil, &oerrors.DetailError{
						Type:     "validation failed",
						Message:  "unresolved variables: " + strings.Join(unresolved.Names, ", "),
						Location: unresolved.Path,
						Hint:     "Define them with -D NAME=VALUE or drop --strict",
						Cause:    oerrors.ErrValidation,
					}
				}
				return nil, nil, err
			}
		}
		set, err := templates.SetFor(id)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, plannedFile{id: id, set: set, desc: desc})
	}
	return shims, files, nil
}
