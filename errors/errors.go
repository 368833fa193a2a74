// Package errors provides error handling for i18ntypes.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for user-facing messages
//   - Marking errors with a sentinel kind while keeping their own message
//
// Usage:
//
//	// Wrap with context
//	if err := os.WriteFile(path, data, 0644); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
//	// Classify as a parse failure
//	return errors.Mark(err, errors.ErrParse)
//
//	// Check errors
//	if errors.IsParseError(err) {
//	    // malformed locale file
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Error kinds produced while generating declarations.
// Use these with errors.Is() for type-safe error checking.
// Attach them with errors.Mark() so the original message survives.
var (
	// ErrFileSystem indicates a missing or unreadable locale directory or output path
	ErrFileSystem = New("file system error")

	// ErrParse indicates a locale file that is not a valid JSON object
	ErrParse = New("parse error")

	// ErrNoLocales indicates the locale directory holds no .json files.
	// Callers treat it as a warning, not a failure.
	ErrNoLocales = New("no locale files found")

	// ErrInvalidRequest indicates invalid options or arguments
	ErrInvalidRequest = New("invalid request")
)

// IsFileSystemError checks if an error is or wraps ErrFileSystem
func IsFileSystemError(err error) bool {
	return err != nil && Is(err, ErrFileSystem)
}

// IsParseError checks if an error is or wraps ErrParse
func IsParseError(err error) bool {
	return err != nil && Is(err, ErrParse)
}

// IsNoLocales checks if an error is or wraps ErrNoLocales
func IsNoLocales(err error) bool {
	return err != nil && Is(err, ErrNoLocales)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// FileSystem marks err as a file system failure and adds context.
func FileSystem(err error, format string, args ...interface{}) error {
	return Mark(Wrapf(err, format, args...), ErrFileSystem)
}

// Parse marks err as a parse failure and adds context.
func Parse(err error, format string, args ...interface{}) error {
	return Mark(Wrapf(err, format, args...), ErrParse)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidRequest)
}
