// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types and error handling utilities for the objpool library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrOversizedType: the requested type does not fit the largest slot class.
	// This is a usage error, raised before any memory is requested.
	ErrOversizedType = fmt.Errorf("type exceeds maximum slot size")

	// ErrReferenceType: the requested type contains Go pointers (pointers, maps,
	// slices, strings, channels, interfaces or funcs). Pooled slots live in
	// memory the garbage collector does not scan, so only pointer-free types
	// are supported.
	ErrReferenceType = fmt.Errorf("type contains pointers")

	// ErrOutOfMemory: the block source could not supply a new chunk during
	// pool growth. The core never retries; the failure propagates as-is.
	ErrOutOfMemory = fmt.Errorf("block source exhausted")

	// ErrWrongThread: an allocator with the thread guard enabled was used from
	// an OS thread other than its origin thread.
	ErrWrongThread = fmt.Errorf("allocator used outside its origin thread")

	// ErrClosed: the allocator has been closed.
	ErrClosed = fmt.Errorf("allocator is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOversized
	ErrCodeReferenceType
	ErrCodeOutOfMemory
	ErrCodeWrongThread
	ErrCodeClosed
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
