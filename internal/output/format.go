package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format specifies how listing commands print their results.
type Format string

const (
	// FormatTable outputs a styled table.
	FormatTable Format = "table"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"

	// FormatJSON outputs indented JSON.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ValidFormats returns the accepted --output values.
func ValidFormats() []string {
	return []string{"table", "yaml", "json"}
}

// ParseFormat parses a --output value. Empty selects the table format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// WriteStructured encodes v as YAML or JSON.
func WriteStructured(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		err := encoder.Encode(v)
		if closeErr := encoder.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %s is not a structured format", format)
	}
}
