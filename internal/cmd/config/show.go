package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vktrace/cli/internal/cmdtypes"
	"github.com/vktrace/cli/internal/cmdutil"
	"github.com/vktrace/cli/internal/config"
	oerrors "github.com/vktrace/cli/internal/errors"
	"github.com/vktrace/cli/internal/output"
)

// showReport is the structured form of `vktrace config show`.
type showReport struct {
	ConfigFile string                 `json:"configFile" yaml:"configFile"`
	Source     config.ConfigSource    `json:"configSource" yaml:"configSource"`
	Values     []config.ResolvedValue `json:"values" yaml:"values"`
	Vars       map[string]string      `json:"vars,omitempty" yaml:"vars,omitempty"`
}

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show every configuration value and where it came from.

Values resolve in order: flag, environment (VKTRACE_*), config file, default.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigShow(c, gc)
		},
	}
}

func runConfigShow(c *cobra.Command, gc *cmdtypes.GlobalConfig) error {
	if gc.LoadErr != nil {
		return cmdutil.Exit(oerrors.NewValidationError(gc.LoadErr.Error(), gc.ConfigPath.Value,
			"Fix the file or recreate it with 'vktrace config init --force'"))
	}

	report := showReport{
		ConfigFile: gc.ConfigPath.Value,
		Source:     gc.ConfigPath.Source,
		Values:     gc.Settings.Values,
		Vars:       gc.Settings.Vars,
	}

	out := c.OutOrStdout()
	if gc.OutputFormat != output.FormatTable {
		return output.WriteStructured(out, gc.OutputFormat, report)
	}

	styles := output.GetStyles()
	fmt.Fprintf(out, "Config file: %s %s\n", report.ConfigFile, styles.Muted.Render("("+string(report.Source)+")"))
	fmt.Fprintln(out)

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range report.Values {
		source := string(v.Source)
		if shadowed := shadowedSources(v); len(shadowed) > 0 {
			source += " (overrides " + strings.Join(shadowed, ", ") + ")"
		}
		tbl.Row(v.Key, v.Value, source)
	}
	for _, k := range gc.Settings.VarKeys() {
		tbl.Row(config.KeyVars+"."+k, report.Vars[k], string(config.SourceConfig))
	}
	fmt.Fprintln(out, tbl.String())
	return nil
}

// shadowedSources lists the user-set layers a value overrides.
func shadowedSources(v config.ResolvedValue) []string {
	var names []string
	for _, src := range []config.ConfigSource{config.SourceEnv, config.SourceConfig} {
		if _, ok := v.Shadowed[src]; ok {
			names = append(names, string(src))
		}
	}
	return names
}
