package constrain

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	// ErrCodeInvalidConstraint means a constraint was not fully specified at
	// emission time. The engine is never called for it.
	ErrCodeInvalidConstraint Code = "INVALID_CONSTRAINT"
	// ErrCodeEngineRejected means a container refused a constraint, for
	// example because an item is outside its subtree.
	ErrCodeEngineRejected Code = "ENGINE_REJECTED"
	// ErrCodeInvalidDocument means a layout document could not be decoded or
	// names an unknown step.
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	// ErrCodeUnknownElement means a layout document references an element it
	// never declared.
	ErrCodeUnknownElement Code = "UNKNOWN_ELEMENT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates an Error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error wrapping cause.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsCode reports whether any *Error in err's tree carries code.
// Joined errors are searched branch by branch.
func IsCode(err error, code Code) bool {
	switch x := err.(type) {
	case nil:
		return false
	case *Error:
		return x.Code == code || IsCode(x.Cause, code)
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if IsCode(e, code) {
				return true
			}
		}
		return false
	case interface{ Unwrap() error }:
		return IsCode(x.Unwrap(), code)
	default:
		return false
	}
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
