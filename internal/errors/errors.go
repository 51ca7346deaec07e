// Package errors defines the structured error values shared by the extraction
// and rendering commands.
//
// Fatal conditions (missing inputs, undecodable files, OCR or write failures)
// are reported as *ProcessingError with a stable Code. Per-field data problems
// are never errors; callers skip them.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a ProcessingError.
type ErrorCode string

const (
	// Input errors
	ErrorInputNotFound ErrorCode = "INPUT_NOT_FOUND"
	ErrorDecodeFailed  ErrorCode = "DECODE_FAILED"

	// Processing errors
	ErrorOCRFailed ErrorCode = "OCR_FAILED"

	// Output errors
	ErrorWriteFailed ErrorCode = "WRITE_FAILED"
)

// ProcessingError represents a structured processing error
type ProcessingError struct {
	Code    ErrorCode
	Message string
	Path    string
	Cause   error
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

// Factory functions for common errors

// NewInputNotFoundError reports a missing input file. kind is a human label
// such as "Image" or "JSON" and appears first in the message.
func NewInputNotFoundError(kind, path string) *ProcessingError {
	return &ProcessingError{
		Code:    ErrorInputNotFound,
		Message: fmt.Sprintf("%s not found: %s", kind, path),
		Path:    path,
	}
}

func NewDecodeError(kind, path string, cause error) *ProcessingError {
	return &ProcessingError{
		Code:    ErrorDecodeFailed,
		Message: fmt.Sprintf("failed to decode %s: %s", kind, path),
		Path:    path,
		Cause:   cause,
	}
}

func NewOCRFailedError(engine, path string, cause error) *ProcessingError {
	return &ProcessingError{
		Code:    ErrorOCRFailed,
		Message: fmt.Sprintf("OCR failed with engine %s: %s", engine, path),
		Path:    path,
		Cause:   cause,
	}
}

func NewWriteError(path string, cause error) *ProcessingError {
	return &ProcessingError{
		Code:    ErrorWriteFailed,
		Message: fmt.Sprintf("failed to write %s", path),
		Path:    path,
		Cause:   cause,
	}
}

// HasCode reports whether err wraps a ProcessingError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var pe *ProcessingError
	if stderrors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// Message returns the message of the outermost ProcessingError in err, or
// err.Error() for any other error. Commands print it after "Error: ".
func Message(err error) string {
	var pe *ProcessingError
	if stderrors.As(err, &pe) {
		if pe.Cause != nil {
			return fmt.Sprintf("%s: %v", pe.Message, pe.Cause)
		}
		return pe.Message
	}
	return err.Error()
}
