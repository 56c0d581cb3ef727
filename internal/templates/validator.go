package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// Variable names follow CMake's configure_file token rules.
var varNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateVarName checks if name can appear in an @NAME@ token.
func ValidateVarName(name string) error {
	if name == "" {
		return fmt.Errorf("variable name cannot be empty")
	}
	if !varNameRegex.MatchString(name) {
		return fmt.Errorf("invalid variable name %q: must start with a letter or underscore and contain only letters, digits, and underscores", name)
	}
	return nil
}

// ParseDefine splits a KEY=VALUE definition. The value may be empty or contain '='.
func ParseDefine(def string) (string, string, error) {
	key, value, ok := strings.Cut(def, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid definition %q: expected KEY=VALUE", def)
	}
	if err := ValidateVarName(key); err != nil {
		return "", "", err
	}
	return key, value, nil
}

// ParseDefines parses every definition into a map. Later definitions win.
func ParseDefines(defs []string) (map[string]string, error) {
	vars := make(map[string]string, len(defs))
	for _, def := range defs {
		k, v, err := ParseDefine(def)
		if err != nil {
			return nil, err
		}
		vars[k] = v
	}
	return vars, nil
}

// ValidateProjectName checks a project directory name used inside bundles.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid project name %q: must be a single path element", name)
	}
	return nil
}
