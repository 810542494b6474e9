package array

import (
	"fmt"
	"strings"
)

// Kind categorizes an Array error.
type Kind string

const (
	KindOutOfMemory Kind = "out_of_memory"
	KindOutOfBounds Kind = "out_of_bounds"
	KindBadArgument Kind = "bad_argument"
)

// Sentinel errors for use with errors.Is. Any *Error of the same Kind
// matches its sentinel regardless of Op or Detail.
var (
	ErrOutOfMemory = &Error{Kind: KindOutOfMemory}
	ErrOutOfBounds = &Error{Kind: KindOutOfBounds}
	ErrBadArgument = &Error{Kind: KindBadArgument}
)

// Error is returned by every failing Array operation.
type Error struct {
	Cause  error
	Op     string
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("array: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func newError(op string, kind Kind, format string, args ...any) *Error {
	e := &Error{Op: op, Kind: kind}
	if len(args) > 0 {
		e.Detail = fmt.Sprintf(format, args...)
	} else {
		e.Detail = format
	}
	return e
}

func errNilArray(op string) *Error {
	return newError(op, KindBadArgument, "nil array")
}
