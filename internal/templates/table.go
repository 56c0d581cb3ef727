package templates

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrIndexOutOfRange is matched by every error returned for an id outside [0, Count).
var ErrIndexOutOfRange = errors.New("template index out of range")

// IndexError reports a lookup with an invalid template id.
type IndexError struct {
	ID ID
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrIndexOutOfRange, int(e.ID), int(Count))
}

// Is lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Kind is the role of a template file in the generated project.
type Kind string

const (
	KindCMake   Kind = "cmake"
	KindHeader  Kind = "header"
	KindSource  Kind = "source"
	KindMSBuild Kind = "msbuild"
	KindScript  Kind = "script"
)

// KindOf classifies a file by its name.
func KindOf(name string) Kind {
	switch {
	case name == "CMakeLists.txt" || strings.HasSuffix(name, ".cmake"):
		return KindCMake
	case strings.HasSuffix(name, ".h"):
		return KindHeader
	case strings.HasSuffix(name, ".user"):
		return KindMSBuild
	case strings.HasSuffix(name, ".sh") || strings.HasSuffix(name, ".bat"):
		return KindScript
	default:
		return KindSource
	}
}

// FileDesc describes one file of the replay project.
type FileDesc struct {
	// Dir is the slash-separated directory relative to the project root.
	// Empty for files that live in the root.
	Dir string

	// Name is the file name.
	Name string

	// Content is the complete file text, placeholders unresolved.
	Content string
}

// Path returns the project-relative, slash-separated path of the file.
func (d FileDesc) Path() string {
	if d.Dir == "" {
		return d.Name
	}
	return path.Join(d.Dir, d.Name)
}

// Kind returns the role of the file.
func (d FileDesc) Kind() Kind {
	return KindOf(d.Name)
}

// Executable reports whether the file is written with the executable bit set.
func (d FileDesc) Executable() bool {
	return strings.HasSuffix(d.Name, ".sh")
}

type location struct {
	dir, name string
}

var locations = [Count]location{
	RootCMake:                     {"", "CMakeLists.txt"},
	SampleCMake:                   {"sample_cpp_trace", "CMakeLists.txt"},
	SampleCommonH:                 {"sample_cpp_trace", "common.h"},
	SampleMainWin:                 {"sample_cpp_trace", "main_win.cpp"},
	SampleMainXlib:                {"sample_cpp_trace", "main_xlib.cpp"},
	SampleMainYeti:                {"sample_cpp_trace", "main_yeti.cpp"},
	SampleMainGGP:                 {"sample_cpp_trace", "main_ggp.cpp"},
	SampleUserFile:                {"sample_cpp_trace", "template.vcxproj.user"},
	HelperCMake:                   {"helper", "CMakeLists.txt"},
	HelperH:                       {"helper", "helper.h"},
	HelperCpp:                     {"helper", "helper.cpp"},
	HelperFormatH:                 {"helper", "format_helper.h"},
	HelperFormatSizeAndAspect:     {"helper", "format_size_and_aspect.cpp"},
	ShimHeader:                    {"sample_cpp_shim", "shim_vulkan.h"},
	GoldReferenceCMake:            {"gold_reference_shim", "CMakeLists.txt"},
	GoldReferenceShim:             {"gold_reference_shim", "shim_vulkan.cpp"},
	GoldReferenceUtilsH:           {"gold_reference_shim", "utils.h"},
	GoldReferenceUtils:            {"gold_reference_shim", "utils.cpp"},
	GoldReferenceFormatConversion: {"gold_reference_shim", "format_conversion.cpp"},
	TimestampProfilingCMake:       {"timestamp_profiling_shim", "CMakeLists.txt"},
	TimestampProfilingShim:        {"timestamp_profiling_shim", "shim_vulkan.cpp"},
	TimestampProfilingShimBase:    {"timestamp_profiling_shim", "shim_vulkan_base.cpp"},
	TimestampProfilingUtilsH:      {"timestamp_profiling_shim", "utils.h"},
	TimestampProfilingUtils:       {"timestamp_profiling_shim", "utils.cpp"},
	AutoCaptureCMake:              {"rdoc_auto_capture_shim", "CMakeLists.txt"},
	AutoCaptureShim:               {"rdoc_auto_capture_shim", "shim_vulkan.cpp"},
	ValidationCMake:               {"validation_shim", "CMakeLists.txt"},
	ValidationShim:                {"validation_shim", "shim_vulkan.cpp"},
	BuildScript:                   {"", "build.sh"},
	BuildBatch:                    {"", "build.bat"},
}

// table is filled once during package initialization and never written again,
// so concurrent readers need no synchronization.
var table = loadTable()

func loadTable() [Count]FileDesc {
	var t [Count]FileDesc
	for i, loc := range locations {
		t[i] = FileDesc{
			Dir:     loc.dir,
			Name:    loc.name,
			Content: mustReadTemplate(loc.dir, loc.name),
		}
	}
	return t
}

// Lookup returns the table entry for id.
func Lookup(id ID) (FileDesc, error) {
	if !id.Valid() {
		return FileDesc{}, &IndexError{ID: id}
	}
	return table[id], nil
}

// MustLookup is like Lookup but panics on an invalid id.
func MustLookup(id ID) FileDesc {
	d, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return d
}

// All returns a copy of the table in id order.
func All() []FileDesc {
	out := make([]FileDesc, Count)
	copy(out, table[:])
	return out
}
