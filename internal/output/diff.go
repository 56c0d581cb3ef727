package output

import (
	"strconv"
	"strings"
)

// ModifiedItem is a drifted file and its line diff.
type ModifiedItem struct {
	Name string
	Diff string
}

// RenderDiff renders the drift of a generated project.
// Diff lines starting with '+' or '-' are colored.
func RenderDiff(missing []string, modified []ModifiedItem, styles *Styles) string {
	if len(missing) == 0 && len(modified) == 0 {
		return "No drift detected."
	}

	var sb strings.Builder

	if len(missing) > 0 {
		sb.WriteString(styles.Error.Render("Missing:"))
		sb.WriteString("\n")
		for _, name := range missing {
			sb.WriteString("  - ")
			sb.WriteString(styles.Error.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(modified) > 0 {
		sb.WriteString(styles.Warning.Render("Modified:"))
		sb.WriteString("\n")
		for _, mod := range modified {
			sb.WriteString("  ~ ")
			sb.WriteString(styles.Warning.Render(mod.Name))
			sb.WriteString("\n")
			for _, line := range strings.Split(strings.TrimRight(mod.Diff, "\n"), "\n") {
				if line == "" {
					continue
				}
				sb.WriteString("    ")
				switch line[0] {
				case '+':
					sb.WriteString(styles.Success.Render(line))
				case '-':
					sb.WriteString(styles.Error.Render(line))
				default:
					sb.WriteString(line)
				}
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Summary: ")
	sb.WriteString(driftSummary(len(missing), len(modified)))
	sb.WriteString("\n")

	return sb.String()
}

func driftSummary(missing, modified int) string {
	parts := make([]string, 0, 2)
	if missing > 0 {
		parts = append(parts, strconv.Itoa(missing)+" missing")
	}
	if modified > 0 {
		parts = append(parts, strconv.Itoa(modified)+" modified")
	}
	if len(parts) == 0 {
		return "No drift"
	}
	return strings.Join(parts, ", ")
}
