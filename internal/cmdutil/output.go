package cmdutil

import (
	"fmt"
	"io"
	"strconv"

	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/scaffold"
)

// Exit wraps err with the exit code its sentinel maps to.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}

// WriteFileLines writes one status line per file.
func WriteFileLines(w io.Writer, files []scaffold.FileResult) {
	for _, f := range files {
		fmt.Fprintln(w, output.FormatFileLine(f.Path, f.Status))
	}
}

// WriteResultTree writes the files of a result as a tree annotated with
// their set and status.
func WriteResultTree(w io.Writer, result *scaffold.Result) {
	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f.Path] = f.Set + ", " + output.StatusStyle(f.Status).Render(f.Status)
	}
	fmt.Fprint(w, output.RenderFileTree(result.ProjectName, files))
}

// WriteResult renders a generate or pack result in the requested format.
func WriteResult(w io.Writer, format output.Format, result *scaffold.Result, verbose bool) error {
	if format != output.FormatTable {
		return output.WriteStructured(w, format, result)
	}

	if verbose {
		WriteFileLines(w, result.Files)
		fmt.Fprintln(w)
	}
	WriteResultTree(w, result)
	return nil
}

// WriteReport renders a drift report in the requested format.
func WriteReport(w io.Writer, format output.Format, report *scaffold.Report) error {
	if format != output.FormatTable {
		return output.WriteStructured(w, format, report)
	}

	modified := make([]output.ModifiedItem, len(report.Modified))
	for i, d := range report.Modified {
		modified[i] = output.ModifiedItem{Name: d.Path, Diff: d.Diff}
	}
	fmt.Fprintln(w, output.RenderDiff(report.Missing, modified, output.GetStyles()))
	if !report.Drifted() {
		fmt.Fprintln(w, output.FormatCheckmark(strconv.Itoa(len(report.Unchanged))+" files match their templates"))
	}
	return nil
}
