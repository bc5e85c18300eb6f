// Package igemm structured error types for better error handling
package igemm

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Memory errors
	ErrTypeMemory ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Dimension mismatch errors
	ErrTypeDimension
	// Execution errors
	ErrTypeExecution
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("igemm %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("igemm %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeMemory:
		return "Memory"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeDimension:
		return "Dimension"
	case ErrTypeExecution:
		return "Execution"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewMemoryError creates a memory-related error
func NewMemoryError(op string, message string, err error) error {
	return &Error{
		Type:    ErrTypeMemory,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &Error{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewDimensionError creates a dimension mismatch error
func NewDimensionError(op string, message string) error {
	return &Error{
		Type:    ErrTypeDimension,
		Op:      op,
		Message: message,
	}
}

// NewExecutionError creates an execution error
func NewExecutionError(op string, message string, err error) error {
	return &Error{
		Type:    ErrTypeExecution,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Common pre-defined errors

var (
	// ErrNilMatrix indicates a nil matrix operand
	ErrNilMatrix = NewInvalidArgError("Multiply", "nil matrix operand")

	// ErrDimensionMismatch indicates incompatible operand shapes
	ErrDimensionMismatch = NewDimensionError("Multiply", "operand dimensions do not agree")

	// ErrAliasedOutput indicates C shares storage with A or B
	ErrAliasedOutput = NewInvalidArgError("Multiply", "output matrix aliases an input")

	// ErrInvalidSize indicates invalid size parameter
	ErrInvalidSize = NewInvalidArgError("Get", "size must be positive")

	// ErrDoubleFree indicates a buffer returned to the pool twice
	ErrDoubleFree = NewMemoryError("Put", "buffer returned twice", nil)
)

// IsMemoryError checks if an error is a memory error
func IsMemoryError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeMemory
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

// IsDimensionError checks if an error is a dimension mismatch error
func IsDimensionError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeDimension
	}
	return false
}
