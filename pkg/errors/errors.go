package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a typed error code.
type ErrorCode string

const (
	// ErrorCodeUnsupportedRecordType means a value passed to an output is
	// not the tabular record abstraction the output accepts.
	ErrorCodeUnsupportedRecordType ErrorCode = "UNSUPPORTED_RECORD_TYPE"
	// ErrorCodeIOFailure wraps an underlying file I/O failure.
	ErrorCodeIOFailure ErrorCode = "IO_FAILURE"
	// ErrorCodeMalformedFile means a file written by this kit could not be
	// read back in the expected shape.
	ErrorCodeMalformedFile ErrorCode = "MALFORMED_FILE"
	// ErrorCodeInvalidConfig means loaded configuration failed validation.
	ErrorCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrorCodeInternal represents an unclassified internal error.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// OutputError represents a kit error with a code and optional cause.
type OutputError struct {
	Code    ErrorCode
	Message string
	Err     error
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *OutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *OutputError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error.
func (e *OutputError) WithDetails(details map[string]interface{}) *OutputError {
	e.Details = details
	return e
}

// New creates a new kit error.
func New(code ErrorCode, message string) *OutputError {
	return &OutputError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new kit error around an underlying error.
func Wrap(code ErrorCode, message string, err error) *OutputError {
	return &OutputError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err is (or wraps) an OutputError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var oe *OutputError
	if stderrors.As(err, &oe) {
		return oe.Code == code
	}
	return false
}

// FromError converts a standard error to an OutputError.
// If the error is already an OutputError, it returns it as-is.
// Otherwise, it wraps it as an internal error.
func FromError(err error) *OutputError {
	if err == nil {
		return nil
	}

	var oe *OutputError
	if stderrors.As(err, &oe) {
		return oe
	}

	return Wrap(ErrorCodeInternal, "an internal error occurred", err)
}

// Common error constructors

// NewUnsupportedRecordTypeError creates an unsupported-record-type error.
func NewUnsupportedRecordTypeError(message string) *OutputError {
	return New(ErrorCodeUnsupportedRecordType, message)
}

// NewIOError creates an I/O failure error around an underlying error.
func NewIOError(message string, err error) *OutputError {
	return Wrap(ErrorCodeIOFailure, message, err)
}

// NewMalformedFileError creates a malformed-file error around an underlying error.
func NewMalformedFileError(message string, err error) *OutputError {
	return Wrap(ErrorCodeMalformedFile, message, err)
}

// NewInvalidConfigError creates an invalid-configuration error.
func NewInvalidConfigError(message string, err error) *OutputError {
	return Wrap(ErrorCodeInvalidConfig, message, err)
}
