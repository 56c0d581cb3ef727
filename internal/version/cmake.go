package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
)

// cmakeVersionRegex matches output like "cmake version 3.28.3".
var cmakeVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9.]+)?`)

// CMakeInfo describes the cmake binary used to build emitted projects.
type CMakeInfo struct {
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	Found      bool   `json:"found" yaml:"found"`
	Compatible bool   `json:"compatible" yaml:"compatible"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
}

// String returns a human-readable summary.
func (c CMakeInfo) String() string {
	if !c.Found {
		return "  Binary Version: not found\n  Binary Path:    -"
	}

	compat := "compatible"
	if !c.Compatible {
		compat = c.Message
	}

	return fmt.Sprintf("  Binary Version: %s (%s)\n  Binary Path:    %s", c.Version, compat, c.Path)
}

// DetectCMake finds cmake in PATH and checks it against MinCMakeVersion.
func DetectCMake(ctx context.Context) CMakeInfo {
	path, err := exec.LookPath("cmake")
	if err != nil {
		return CMakeInfo{Message: "cmake not found in PATH"}
	}

	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return CMakeInfo{Path: path, Found: true, Message: "failed to run cmake: " + err.Error()}
	}

	v, err := extractVersion(out.String())
	if err != nil {
		return CMakeInfo{Path: path, Found: true, Message: err.Error()}
	}

	info := CMakeInfo{Version: v, Path: path, Found: true, Compatible: CMakeVersionSatisfies(MinCMakeVersion, v)}
	if !info.Compatible {
		info.Message = "incompatible - project requires " + MinCMakeVersion + " or newer"
	}
	return info
}

func extractVersion(output string) (string, error) {
	match := cmakeVersionRegex.FindString(output)
	if match == "" {
		return "", fmt.Errorf("failed to parse cmake version from output: %q", output)
	}
	return match, nil
}
