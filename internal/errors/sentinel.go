// Package errors provides sentinel errors and exit codes for the vktrace CLI.
package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (flags, names, definitions).
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates the target tree cannot be written.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, set, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrDrift indicates a scaffolded project no longer matches its templates.
	ErrDrift = errors.New("project drift")
)
