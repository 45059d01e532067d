package common

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure categories of the spatial model.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidArgument indicates a malformed coordinate, a non-positive
	// dimension or an out-of-range count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateKey indicates a name that is already registered.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrTypeMismatch indicates a value of the wrong kind, such as a nil or
	// unconstructed obstacle.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNotFound indicates a lookup of an unknown name.
	ErrNotFound = errors.New("not found")
)

// Error kinds categorize errors by their type.
const (
	KindInvalidArgument = "invalid_argument"
	KindDuplicateKey    = "duplicate_key"
	KindTypeMismatch    = "type_mismatch"
	KindNotFound        = "not_found"
)

// Error wraps a sentinel with the operation that failed and a message.
//
// Error supports errors.Is against both the sentinel and another *Error
// carrying the same Kind:
//
//	_, err := environment.NewWorld(0, 10)
//	errors.Is(err, common.ErrInvalidArgument) // true
type Error struct {
	// Op is the operation that failed (e.g. "World.AddWaypoint").
	Op string

	// Kind categorizes the error (e.g. KindInvalidArgument).
	Kind string

	// Msg is a human-readable description.
	Msg string

	// Err is the sentinel the error wraps.
	Err error

	// Context carries optional debugging values.
	Context map[string]any
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if len(e.Context) > 0 {
		return fmt.Sprintf("%s (%s): %s [context: %+v]", e.Op, e.Kind, msg, e.Context)
	}
	return fmt.Sprintf("%s (%s): %s", e.Op, e.Kind, msg)
}

// Unwrap returns the wrapped sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Kind (and Op, when the target sets one).
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			return t.Op == "" || e.Op == t.Op
		}
		return false
	}
	return errors.Is(e.Err, target)
}

// WithContext returns a copy of e with ctx merged into its context.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	newErr.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

func newError(op, kind string, sentinel error, format string, args ...any) *Error {
	return &Error{
		Op:   op,
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Err:  sentinel,
	}
}

// InvalidArgument creates an Error wrapping ErrInvalidArgument.
func InvalidArgument(op, format string, args ...any) *Error {
	return newError(op, KindInvalidArgument, ErrInvalidArgument, format, args...)
}

// DuplicateKey creates an Error wrapping ErrDuplicateKey.
func DuplicateKey(op, format string, args ...any) *Error {
	return newError(op, KindDuplicateKey, ErrDuplicateKey, format, args...)
}

// TypeMismatch creates an Error wrapping ErrTypeMismatch.
func TypeMismatch(op, format string, args ...any) *Error {
	return newError(op, KindTypeMismatch, ErrTypeMismatch, format, args...)
}

// NotFound creates an Error wrapping ErrNotFound.
func NotFound(op, format string, args ...any) *Error {
	return newError(op, KindNotFound, ErrNotFound, format, args...)
}
