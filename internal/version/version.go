// Package version provides version information for the vktrace CLI.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/vktrace/cli/internal/templates"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// MinCMakeVersion is the CMAKE_MINIMUM_REQUIRED of the emitted project.
const MinCMakeVersion = "3.9"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version" yaml:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate" yaml:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// Templates is the number of embedded project files.
	Templates int `json:"templates" yaml:"templates"`

	// ShimVariants lists the embedded shim variants.
	ShimVariants []string `json:"shimVariants" yaml:"shimVariants"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:      Version,
		GitCommit:    GitCommit,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Templates:    int(templates.Count),
		ShimVariants: templates.ShimVariants(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("vktrace CLI:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n\nTemplates:\n  Files: %d\n  Shims: %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.Templates, strings.Join(i.ShimVariants, ", "))
}

// CMakeVersionSatisfies reports whether have is at least want.
// Only MAJOR.MINOR are compared.
func CMakeVersionSatisfies(want, have string) bool {
	wMaj, wMin, ok := majorMinor(want)
	if !ok {
		return false
	}
	hMaj, hMin, ok := majorMinor(have)
	if !ok {
		return false
	}
	if hMaj != wMaj {
		return hMaj > wMaj
	}
	return hMin >= wMin
}

func majorMinor(v string) (int, int, bool) {
	parts := strings.Split(strings.TrimPrefix(v, "v"), ".")
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
