package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vktrace/cli/internal/templates"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	for _, shim := range SplitShims(c.Shim) {
		if !templates.IsValidShim(shim) {
			errs = append(errs, ValidationError{
				Field:   KeyShim,
				Message: fmt.Sprintf("unknown shim variant %q (valid: %s)", shim, strings.Join(templates.ShimVariants(), ", ")),
			})
		}
	}

	names := make([]string, 0, len(c.Vars))
	for name := range c.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := templates.ValidateVarName(name); err != nil {
			errs = append(errs, ValidationError{Field: KeyVars + "." + name, Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SplitShims splits a comma separated shim list, dropping blanks.
func SplitShims(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
