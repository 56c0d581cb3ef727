package template

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/templates"
)

// setInfo is the listed form of a template set.
type setInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	UseCase     string   `json:"useCase,omitempty" yaml:"useCase,omitempty"`
	Shim        bool     `json:"shim" yaml:"shim"`
	Default     bool     `json:"default" yaml:"default"`
	Files       []string `json:"files" yaml:"files"`
}

func newSetInfo(s templates.Set) (setInfo, error) {
	info := setInfo{
		Name:        s.Name,
		Description: s.Description,
		UseCase:     s.UseCase,
		Shim:        s.Shim,
		Default:     s.Default,
		Files:       make([]string, 0, len(s.IDs)),
	}
	for _, id := range s.IDs {
		d, err := templates.Lookup(id)
		if err != nil {
			return setInfo{}, err
		}
		info.Files = append(info.Files, d.Path())
	}
	return info, nil
}

// NewSetsCmd creates the template sets command.
func NewSetsCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List template sets and shim variants",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			var infos []setInfo
			for _, s := range templates.Sets() {
				info, err := newSetInfo(s)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}

			out := c.OutOrStdout()
			if gc.OutputFormat != "" && gc.OutputFormat != output.FormatTable {
				return output.WriteStructured(out, gc.OutputFormat, infos)
			}

			tbl := output.NewTable("NAME", "FILES", "SHIM", "DESCRIPTION")
			for _, info := range infos {
				shim := ""
				if info.Shim {
					shim = "yes"
				}
				if info.Default {
					shim = "default"
				}
				tbl.Row(info.Name, strconv.Itoa(len(info.Files)), shim, info.Description)
			}
			fmt.Fprintln(out, tbl.String())
			return nil
		},
	}
}
