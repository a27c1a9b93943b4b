// Package errors provides structured error types for punishboard.
//
// Every user-facing failure carries a machine-readable [Code] so the CLI,
// the HTTP API and the terminal UI can report it consistently:
//
//   - Board validation: EMPTY_SPACE_LIST, INVALID_SPACE_COUNT,
//     DUPLICATE_SPACE_NAME, EMPTY_SPACE_NAME
//   - Session phase: GAME_STARTED, GAME_NOT_STARTED
//   - Lookup: SPACE_NOT_FOUND, NOT_FOUND
//   - Options: INVALID_INPUT, INVALID_FORMAT, INVALID_VIZ_TYPE
//   - INTERNAL_ERROR for everything unexpected
//
// Validation errors are recoverable: they are reported to the user and never
// change session state.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateSpaceName, "board space %q already exists", name)
//	if errors.Is(err, errors.ErrCodeDuplicateSpaceName) {
//	    // tell the user
//	}
//
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "save space list")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Board validation errors
	ErrCodeEmptySpaceList     Code = "EMPTY_SPACE_LIST"
	ErrCodeInvalidSpaceCount  Code = "INVALID_SPACE_COUNT"
	ErrCodeDuplicateSpaceName Code = "DUPLICATE_SPACE_NAME"
	ErrCodeEmptySpaceName     Code = "EMPTY_SPACE_NAME"

	// Session phase errors
	ErrCodeGameStarted    Code = "GAME_STARTED"
	ErrCodeGameNotStarted Code = "GAME_NOT_STARTED"

	// Lookup errors
	ErrCodeSpaceNotFound Code = "SPACE_NOT_FOUND"
	ErrCodeNotFound      Code = "NOT_FOUND"

	// Option errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidVizType Code = "INVALID_VIZ_TYPE"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

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

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code anywhere in its chain.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error.
// Returns the empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message to show a user, without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err is one of the recoverable board
// validation errors.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeEmptySpaceList, ErrCodeInvalidSpaceCount,
		ErrCodeDuplicateSpaceName, ErrCodeEmptySpaceName,
		ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidVizType:
		return true
	}
	return false
}
