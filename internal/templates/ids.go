package templates

import (
	"fmt"
	"strconv"
)

// ID identifies one entry of the template table.
type ID int

// Template identifiers, in table order.
const (
	RootCMake ID = iota
	SampleCMake
	SampleCommonH
	SampleMainWin
	SampleMainXlib
	SampleMainYeti
	SampleMainGGP
	SampleUserFile
	HelperCMake
	HelperH
	HelperCpp
	HelperFormatH
	HelperFormatSizeAndAspect
	ShimHeader
	GoldReferenceCMake
	GoldReferenceShim
	GoldReferenceUtilsH
	GoldReferenceUtils
	GoldReferenceFormatConversion
	TimestampProfilingCMake
	TimestampProfilingShim
	TimestampProfilingShimBase
	TimestampProfilingUtilsH
	TimestampProfilingUtils
	AutoCaptureCMake
	AutoCaptureShim
	ValidationCMake
	ValidationShim
	BuildScript
	BuildBatch

	// Count is the number of entries in the table: every file of the
	// embedded payload directories, one id per file.
	Count
)

var idNames = [Count]string{
	RootCMake:                     "root-cmake",
	SampleCMake:                   "sample-cmake",
	SampleCommonH:                 "sample-common-h",
	SampleMainWin:                 "sample-main-win",
	SampleMainXlib:                "sample-main-xlib",
	SampleMainYeti:                "sample-main-yeti",
	SampleMainGGP:                 "sample-main-ggp",
	SampleUserFile:                "sample-user-file",
	HelperCMake:                   "helper-cmake",
	HelperH:                       "helper-h",
	HelperCpp:                     "helper-cpp",
	HelperFormatH:                 "helper-format-h",
	HelperFormatSizeAndAspect:     "helper-format-size-and-aspect",
	ShimHeader:                    "shim-header",
	GoldReferenceCMake:            "gold-reference-cmake",
	GoldReferenceShim:             "gold-reference-shim",
	GoldReferenceUtilsH:           "gold-reference-utils-h",
	GoldReferenceUtils:            "gold-reference-utils",
	GoldReferenceFormatConversion: "gold-reference-format-conversion",
	TimestampProfilingCMake:       "timestamp-profiling-cmake",
	TimestampProfilingShim:        "timestamp-profiling-shim",
	TimestampProfilingShimBase:    "timestamp-profiling-shim-base",
	TimestampProfilingUtilsH:      "timestamp-profiling-utils-h",
	TimestampProfilingUtils:       "timestamp-profiling-utils",
	AutoCaptureCMake:              "auto-capture-cmake",
	AutoCaptureShim:               "auto-capture-shim",
	ValidationCMake:               "validation-cmake",
	ValidationShim:                "validation-shim",
	BuildScript:                   "build-script",
	BuildBatch:                    "build-batch",
}

// Valid reports whether id indexes the table.
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

// String returns the kebab-case name of the id.
func (id ID) String() string {
	if !id.Valid() {
		return "ID(" + strconv.Itoa(int(id)) + ")"
	}
	return idNames[id]
}

// IDs returns every identifier in table order.
func IDs() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// ParseID resolves a template name ("root-cmake") or decimal index ("0").
// Numeric input is range-checked so the caller gets ErrIndexOutOfRange.
func ParseID(s string) (ID, error) {
	if n, err := strconv.Atoi(s); err == nil {
		id := ID(n)
		if !id.Valid() {
			return id, &IndexError{ID: id}
		}
		return id, nil
	}
	for i, name := range idNames {
		if name == s {
			return ID(i), nil
		}
	}
	return -1, fmt.Errorf("unknown template %q", s)
}
