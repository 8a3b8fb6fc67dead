package errors

import (
	"encoding/json"
	"fmt"
)

// Code identifies a specific error condition.
type Code string

const (
	// Presentation layer
	CodeLayoutMismatch  Code = "LAYOUT_MISMATCH"
	CodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"

	// Input collection
	CodeInputAborted Code = "INPUT_ABORTED"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Data store
	CodeNotFound    Code = "NOT_FOUND"
	CodeDuplicate   Code = "DUPLICATE"
	CodeStoreFailed Code = "STORE_FAILED"

	// Configuration
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// Error is a structured error carrying a Code and optional details.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *Error) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new Error
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is reports whether err, or anything it wraps, is an *Error with code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the first Code found in err's chain.
func GetCode(err error) Code {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
