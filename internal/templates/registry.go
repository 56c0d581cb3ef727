package templates

import (
	"fmt"
	"strings"
)

// Set is a named group of table entries emitted together.
type Set struct {
	// Name is the set identifier (helper, gold-reference, ...).
	Name string

	// Description explains what the files in the set provide.
	Description string

	// UseCase describes when to pick the set. Only set for shim variants.
	UseCase string

	// Shim marks a shim variant. Exactly one variant is linked by the project build.
	Shim bool

	// Default indicates the shim variant used when none is requested.
	Default bool

	// IDs are the entries of the set in table order.
	IDs []ID
}

// DefaultShim is the shim variant used when --shim is not specified.
const DefaultShim = "gold-reference"

// sets is the internal registry, in emission order.
var sets = []Set{
	{
		Name:        "root",
		Description: "Top-level CMake project and build scripts",
		IDs:         []ID{RootCMake, BuildScript, BuildBatch},
	},
	{
		Name:        "sample",
		Description: "Replay entry points for Windows, Xlib, Yeti and GGP",
		IDs: []ID{
			SampleCMake, SampleCommonH, SampleMainWin, SampleMainXlib,
			SampleMainYeti, SampleMainGGP, SampleUserFile,
		},
	},
	{
		Name:        "helper",
		Description: "Shared replay helpers: memory remapping, format sizes, image readback",
		IDs:         []ID{HelperCMake, HelperH, HelperCpp, HelperFormatH, HelperFormatSizeAndAspect},
	},
	{
		Name:        "shim-header",
		Description: "Declarations of the shim_vk* entry points every shim implements",
		IDs:         []ID{ShimHeader},
	},
	{
		Name:        "gold-reference",
		Description: "Dumps render pass attachments after every draw for golden image comparison",
		UseCase:     "Regression testing of drivers and captures against reference images",
		Shim:        true,
		Default:     true,
		IDs: []ID{
			GoldReferenceCMake, GoldReferenceShim, GoldReferenceUtilsH,
			GoldReferenceUtils, GoldReferenceFormatConversion,
		},
	},
	{
		Name:        "timestamp-profiling",
		Description: "Brackets recorded commands with timestamp queries and writes per-call timings",
		UseCase:     "GPU cost breakdown of a captured frame",
		Shim:        true,
		IDs: []ID{
			TimestampProfilingCMake, TimestampProfilingShim, TimestampProfilingShimBase,
			TimestampProfilingUtilsH, TimestampProfilingUtils,
		},
	},
	{
		Name:        "rdoc-auto-capture",
		Description: "Triggers a RenderDoc capture of a chosen replayed frame",
		UseCase:     "Re-capturing a replay under RenderDoc without manual interaction",
		Shim:        true,
		IDs:         []ID{AutoCaptureCMake, AutoCaptureShim},
	},
	{
		Name:        "validation",
		Description: "Enables validation layers and writes their reports to a file",
		UseCase:     "Checking a captured frame for API misuse",
		Shim:        true,
		IDs:         []ID{ValidationCMake, ValidationShim},
	},
}

// GetSet returns a set by name.
func GetSet(name string) (Set, error) {
	for _, s := range sets {
		if s.Name == name {
			return cloneSet(s), nil
		}
	}
	return Set{}, fmt.Errorf("unknown template set %q; valid sets: %s", name, strings.Join(SetNames(), ", "))
}

// Sets returns every set in emission order.
func Sets() []Set {
	out := make([]Set, len(sets))
	for i, s := range sets {
		out[i] = cloneSet(s)
	}
	return out
}

// SetNames returns all set names.
func SetNames() []string {
	names := make([]string, len(sets))
	for i, s := range sets {
		names[i] = s.Name
	}
	return names
}

// ShimVariants returns the names of the shim sets.
func ShimVariants() []string {
	var names []string
	for _, s := range sets {
		if s.Shim {
			names = append(names, s.Name)
		}
	}
	return names
}

// IsValidShim checks if name is a shim variant.
func IsValidShim(name string) bool {
	for _, s := range sets {
		if s.Shim && s.Name == name {
			return true
		}
	}
	return false
}

// SetFor returns the name of the set that contains id.
func SetFor(id ID) (string, error) {
	if !id.Valid() {
		return "", &IndexError{ID: id}
	}
	for _, s := range sets {
		for _, sid := range s.IDs {
			if sid == id {
				return s.Name, nil
			}
		}
	}
	return "", fmt.Errorf("template %s belongs to no set", id)
}

func cloneSet(s Set) Set {
	s.IDs = append([]ID(nil), s.IDs...)
	return s
}
