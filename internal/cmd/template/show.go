package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
	"github.com/vktrace/cli/internal/templates"
)

// NewShowCmd creates the template show command.
func NewShowCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show <set>",
		Short: "Describe a template set",
		Long: `Describe a template set and the files it emits.

Run 'vktrace template sets' for the available names.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := templates.GetSet(args[0])
			if err != nil {
				return &oerrors.ExitError{
					Code: oerrors.ExitNotFound,
					Err:  oerrors.NewNotFoundError(err.Error(), "", "Run 'vktrace template sets' to list sets"),
				}
			}
			info, err := newSetInfo(s)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if gc.OutputFormat != "" && gc.OutputFormat != output.FormatTable {
				return output.WriteStructured(out, gc.OutputFormat, info)
			}

			styles := output.GetStyles()
			fmt.Fprintln(out, styles.Bold.Render(info.Name))
			fmt.Fprintln(out, info.Description)
			if info.UseCase != "" {
				fmt.Fprintln(out, styles.Muted.Render("Use when: "+info.UseCase))
			}
			if info.Default {
				fmt.Fprintln(out, styles.Muted.Render("Linked by default"))
			}
			fmt.Fprintln(out)

			files := make(map[string]string, len(s.IDs))
			for _, id := range s.IDs {
				d, err := templates.Lookup(id)
				if err != nil {
					return err
				}
				files[d.Path()] = fmt.Sprintf("#%d %s", int(id), id)
			}
			fmt.Fprint(out, output.RenderFileTree(info.Name, files))
			return nil
		},
	}
}
