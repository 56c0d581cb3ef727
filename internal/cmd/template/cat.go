package template

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/cmdutil"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/templates"
)

// NewCatCmd creates the template cat command.
func NewCatCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var subst cmdutil.SubstitutionFlags

	c := &cobra.Command{
		Use:   "cat <id|index>",
		Short: "Print the content of a template file",
		Long: `Print the content of a template file, verbatim by default.

The file is named by its id (root-cmake) or its index (0). Indexes
outside the table exit with code 5.

Substitution flags render @VAR@ placeholders the way 'project init' does.`,
		Example: `  # Print the top-level CMakeLists.txt
  vktrace template cat 0

  # Render the Visual Studio user file for x64
  vktrace template cat sample-user-file -D USERFILE_PLATFORM=x64`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCat(c, gc, &subst, args[0])
		},
	}

	subst.AddTo(c)

	return c
}

func runCat(c *cobra.Command, gc *cmdtypes.GlobalConfig, subst *cmdutil.SubstitutionFlags, arg string) error {
	id, err := templates.ParseID(arg)
	if err != nil {
		if errors.Is(err, templates.ErrIndexOutOfRange) {
			return cmdutil.Exit(err)
		}
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err:  oerrors.NewNotFoundError(err.Error(), "", "Run 'vktrace template list' to list templates"),
		}
	}

	d, err := templates.Lookup(id)
	if err != nil {
		return cmdutil.Exit(err)
	}

	content := d.Content
	if subst.Enabled(c, gc) {
		vars, err := subst.Vars(gc)
		if err != nil {
			return cmdutil.Exit(err)
		}
		d, err = templates.NewRenderer(vars, subst.RendererOptions()...).RenderFile(d)
		if err != nil {
			return cmdutil.Exit(oerrors.Wrap(oerrors.ErrValidation, err.Error()))
		}
		content = d.Content
	}

	fmt.Fprint(c.OutOrStdout(), content)
	return nil
}
