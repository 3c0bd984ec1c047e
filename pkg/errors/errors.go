// Package errors defines the coded errors returned by routeviz packages.
//
// Every failure a caller may want to tell apart carries a [Code]:
//
//   - LOAD_ERROR: the routing table could not be opened or parsed
//   - EMPTY_PATH: the endpoints of a net with no points were requested
//   - UNKNOWN_LAYER: the combined view has no color for a point's layer
//   - INVALID_INPUT, INVALID_FORMAT, INVALID_VIEW, INVALID_CONFIG: rejected
//     options, flags or configuration files
//   - UNSUPPORTED: a required external tool is missing
//
// Codes survive wrapping with fmt.Errorf and %w:
//
//	_, err := plot.Combined(paths, vias, st)
//	if errors.Is(err, errors.ErrCodeUnknownLayer) {
//	    // report the offending row
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error category.
type Code string

const (
	ErrCodeLoad         Code = "LOAD_ERROR"
	ErrCodeEmptyPath    Code = "EMPTY_PATH"
	ErrCodeUnknownLayer Code = "UNKNOWN_LAYER"

	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidView   Code = "INVALID_VIEW"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a [Code] with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with code and a formatted message that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err's text without the code prefix of its outermost
// *Error. Other errors are returned unchanged.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}
