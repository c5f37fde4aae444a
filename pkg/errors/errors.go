// Package errors provides structured error types for the tabwrap application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_TOO_NARROW: Width-budget failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidWidths, "width %q is not a nonnegative integer", s)
//	if errors.Is(err, errors.ErrCodeInvalidWidths) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidWidths Code = "INVALID_WIDTHS"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"

	// Table shape errors
	ErrCodeEmptyTable     Code = "EMPTY_TABLE"
	ErrCodeWidthsMismatch Code = "WIDTHS_MISMATCH"

	// Width-budget errors
	ErrCodeTableTooNarrow  Code = "TABLE_TOO_NARROW"
	ErrCodeColumnTooNarrow Code = "COLUMN_TOO_NARROW"

	// I/O errors
	ErrCodeIO Code = "IO_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Cell identifies a table cell by zero-based coordinates.
type Cell struct {
	Row int
	Col int
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
	Cell    *Cell  // Offending cell coordinate (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewAt creates a new Error carrying the offending cell coordinate.
// Row and col are zero-based; messages render them one-based for users.
func NewAt(code Code, row, col int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cell:    &Cell{Row: row, Col: col},
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// CellOf extracts the offending cell coordinate from an error, if present.
func CellOf(err error) (Cell, bool) {
	var e *Error
	if errors.As(err, &e) && e.Cell != nil {
		return *e.Cell, true
	}
	return Cell{}, false
}
