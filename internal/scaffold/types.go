// Package scaffold writes the replay project tree from the template table.
package scaffold

import (
	"github.com/vktrace/cli/internal/templates"
)

// Options configures project generation, verification, and packing.
type Options struct {
	// TargetDir is the project root on disk.
	TargetDir string

	// ProjectName roots bundle entries. Defaults to the base of TargetDir.
	ProjectName string

	// Shims selects the shim variants. Empty selects templates.DefaultShim.
	Shims []string

	// AllShims selects every shim variant and overrides Shims.
	AllShims bool

	// Vars are configure_file variables used when Substitute is set.
	Vars map[string]string

	// Substitute resolves @VAR@ placeholders. Files are verbatim otherwise.
	Substitute bool

	// DollarVars also resolves defined ${VAR} references.
	DollarVars bool

	// Strict fails on @VAR@ placeholders without a value.
	Strict bool

	// Force allows a non-empty target and overwriting existing files.
	Force bool

	// DryRun reports the plan without touching disk.
	DryRun bool

	// Concurrency bounds parallel file writes. Zero uses runtime.NumCPU().
	Concurrency int
}

// FileResult is the outcome for one emitted file.
type FileResult struct {
	ID     templates.ID `json:"index" yaml:"index"`
	Path   string       `json:"path" yaml:"path"`
	Set    string       `json:"set" yaml:"set"`
	Status string       `json:"status" yaml:"status"`
	Size   int          `json:"size" yaml:"size"`
}

// Result summarizes a generate or pack run.
type Result struct {
	TargetDir   string       `json:"targetDir" yaml:"targetDir"`
	ProjectName string       `json:"projectName" yaml:"projectName"`
	Shims       []string     `json:"shims" yaml:"shims"`
	Files       []FileResult `json:"files" yaml:"files"`
}

// Drift is a scaffolded file whose content no longer matches its template.
type Drift struct {
	Path string `json:"path" yaml:"path"`
	Diff string `json:"diff" yaml:"diff"`
}

// Report is the outcome of Verify.
type Report struct {
	TargetDir string   `json:"targetDir" yaml:"targetDir"`
	Missing   []string `json:"missing" yaml:"missing"`
	Modified  []Drift  `json:"modified" yaml:"modified"`
	Unchanged []string `json:"unchanged" yaml:"unchanged"`
}

// Drifted reports whether any file is missing or modified.
func (r *Report) Drifted() bool {
	return len(r.Missing) > 0 || len(r.Modified) > 0
}
