package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrUnauthorized = Register(2, "unauthorized")
	ErrNotFound     = Register(3, "not found")
	ErrInvalidMsg   = Register(4, "invalid message")
	ErrInvalidModel = Register(5, "invalid model")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = Register(6, "duplicate")
	// ErrHuman marks a code path that is only reachable through a
	// programming mistake.
	ErrHuman            = Register(7, "coding error")
	ErrCannotBeModified = Register(8, "cannot be modified")
	ErrEmpty            = Register(9, "value is empty")
	ErrInvalidState     = Register(10, "invalid state")
	ErrInvalidType      = Register(11, "invalid type")
	// ErrInsufficientAmount is returned when funds do not cover a transfer
	// or a fee.
	ErrInsufficientAmount = Register(12, "insufficient amount")
	ErrInvalidAmount      = Register(13, "invalid amount")
	ErrInvalidInput       = Register(14, "invalid input")
	ErrExpired            = Register(15, "expired")
	ErrOverflow           = Register(16, "value overflow")
	ErrDatabase           = Register(17, "database error")
	ErrIteratorDone       = Register(18, "iterator done")
	ErrMetadata           = Register(20, "invalid metadata")
	// ErrCurrency is returned when coins of different tickers are mixed.
	ErrCurrency = Register(21, "currency")

	// ErrPanic wraps a recovered panic. Its message is never shown to
	// clients outside of debug mode.
	ErrPanic = Register(111222, "panic")
)

// registry maps each used code to its root error. Code 1 stands for every
// error that was not registered.
var registry = map[uint32]*Error{
	internalABCICode: {code: internalABCICode, desc: internalABCILog},
}

// Register declares a root error. Extensions declare their own codes at
// package initialization. It panics if the code is taken.
func Register(code uint32, description string) *Error {
	if prev, ok := registry[code]; ok {
		panic(fmt.Sprintf("error code %d already registered for %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}

// Error is a root error, created with Register.
type Error struct {
	code uint32
	desc string
}

func (e *Error) Error() string {
	return e.desc
}

func (e *Error) ABCICode() uint32 {
	return e.code
}

// Is returns true if err is e or wraps it. A nil root error matches only a
// nil err.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	return visit(err, func(cur error) bool {
		root, ok := cur.(*Error)
		return ok && root == e
	})
}

// isNilErr also treats a typed nil pointer as a nil error.
func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Wrap adds a description to err. The first wrap of an error records the
// stack trace. Wrapping a nil error returns nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Recover turns a panic into an ErrPanic assigned to err. It must be
// called with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

// visit calls fn on err and on every error it wraps, depth first, and
// stops as soon as fn returns true. It reports whether fn did.
func visit(err error, fn func(error) bool) bool {
	for !isNilErr(err) {
		if fn(err) {
			return true
		}
		if g, ok := err.(unpacker); ok {
			for _, member := range g.Unpack() {
				if visit(member, fn) {
					return true
				}
			}
			return false
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}
