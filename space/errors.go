package space

import (
	"errors"
	"fmt"
)

// Kind classifies a space error.
type Kind int

const (
	// KindInvalidArgument marks a malformed construction or normalization
	// argument: unknown transform name, bad bounds, unclassifiable grid spec.
	KindInvalidArgument Kind = iota + 1

	// KindPrecondition marks a call made before its prerequisites held, such
	// as transforming through an unfitted encoder.
	KindPrecondition
)

// Error is an error raised by search-space construction, normalization, or
// sampling. It carries the operation that failed and an error kind for
// programmatic handling.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// Op is the operation that failed, e.g. "NewReal" or "Normalize".
	Op string
	// Message describes the error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// invalidArgumentf creates a KindInvalidArgument error for op.
func invalidArgumentf(op, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

// preconditionErr wraps err as a KindPrecondition error for op.
func preconditionErr(op string, err error) *Error {
	return &Error{Kind: KindPrecondition, Op: op, Message: "precondition violated", Err: err}
}

// IsInvalidArgument reports whether err is a space error of kind
// KindInvalidArgument.
func IsInvalidArgument(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalidArgument
}

// IsPrecondition reports whether err is a space error of kind
// KindPrecondition.
func IsPrecondition(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindPrecondition
}
