// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-segbuf.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrDuplicateName   = fmt.Errorf("duplicate segment name in schema")
	ErrSpecMismatch    = fmt.Errorf("segment specs do not match schema")
	ErrNegativeCount   = fmt.Errorf("negative segment count")
	ErrUnknownName     = fmt.Errorf("segment name not declared in schema")
	ErrReleased        = fmt.Errorf("buffer storage already released")
	ErrAllocFailed     = fmt.Errorf("backing allocation failed")
	ErrBadAlignment    = fmt.Errorf("allocator block misaligned for element type")
	ErrElementType     = fmt.Errorf("element type is not trivially copyable")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeDuplicateName
	ErrCodeSpecMismatch
	ErrCodeNegativeCount
	ErrCodeUnknownName
	ErrCodeReleased
	ErrCodeAllocFailed
	ErrCodeBadAlignment
	ErrCodeElementType
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// sentinels maps each code to the package sentinel so errors.Is works on
// structured errors.
var sentinels = map[ErrorCode]error{
	ErrCodeDuplicateName:   ErrDuplicateName,
	ErrCodeSpecMismatch:    ErrSpecMismatch,
	ErrCodeNegativeCount:   ErrNegativeCount,
	ErrCodeUnknownName:     ErrUnknownName,
	ErrCodeReleased:        ErrReleased,
	ErrCodeAllocFailed:     ErrAllocFailed,
	ErrCodeBadAlignment:    ErrBadAlignment,
	ErrCodeElementType:     ErrElementType,
	ErrCodeInvalidArgument: ErrInvalidArgument,
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap resolves the structured error to its package sentinel.
func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
