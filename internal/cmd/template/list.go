package template

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/templates"
)

// entry is the listed form of one template file.
type entry struct {
	Index int    `json:"index" yaml:"index"`
	ID    string `json:"id" yaml:"id"`
	Path  string `json:"path" yaml:"path"`
	Kind  string `json:"kind" yaml:"kind"`
	Set   string `json:"set" yaml:"set"`
	Size  int    `json:"size" yaml:"size"`
}

// NewListCmd creates the template list command.
func NewListCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every template file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			entries, err := listEntries()
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if gc.OutputFormat != "" && gc.OutputFormat != output.FormatTable {
				return output.WriteStructured(out, gc.OutputFormat, entries)
			}

			tbl := output.NewTable("INDEX", "ID", "PATH", "KIND", "SET", "SIZE")
			for _, e := range entries {
				tbl.Row(strconv.Itoa(e.Index), e.ID, e.Path, e.Kind, e.Set, strconv.Itoa(e.Size))
			}
			fmt.Fprintln(out, tbl.String())
			return nil
		},
	}
}

func listEntries() ([]entry, error) {
	entries := make([]entry, 0, templates.Count)
	for _, id := range templates.IDs() {
		d, err := templates.Lookup(id)
		if err != nil {
			return nil, err
		}
		set, err := templates.SetFor(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{
			Index: int(id),
			ID:    id.String(),
			Path:  d.Path(),
			Kind:  string(d.Kind()),
			Set:   set,
			Size:  len(d.Content),
		})
	}
	return entries, nil
}
