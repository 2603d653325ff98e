// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types for the spsc-ring library.

package api

import "fmt"

// Common errors used across the library.
//
// Short writes and short reads are not errors: the ring signals insufficient
// space or data through zero or short counts, and callers retry at their own
// pace.
var (
	ErrInvalidCapacity  = fmt.Errorf("capacity out of range")
	ErrAllocationFailed = fmt.Errorf("allocation failed")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeAllocationFailed
	ErrCodeInvalidArgument
	ErrCodeInternal
)

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

// Unwrap maps the code back to the matching sentinel so errors.Is works.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidCapacity:
		return ErrInvalidCapacity
	case ErrCodeAllocationFailed:
		return ErrAllocationFailed
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
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
