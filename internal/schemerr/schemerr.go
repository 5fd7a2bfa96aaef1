// Package schemerr implements a single error family: one error type
// discriminated by Kind, carrying an optional source position and an
// optional wrapped cause.
//
// Grounded on internal/interp/errors (one InterpreterError struct with a
// Category tag, Pos, Message, Unwrap) and its catalog.go (centralized
// ErrMsg* format strings instead of scattering fmt.Sprintf calls across
// the evaluator).
package schemerr

import (
	"fmt"

	"github.com/gophersource/schemer/internal/token"
)

// Kind discriminates the one error family.
type Kind string

const (
	LexicalError     Kind = "LexicalError"
	ParseError       Kind = "ParseError"
	UnboundVariable  Kind = "UnboundVariable"
	TypeError        Kind = "TypeError"
	ArityError       Kind = "ArityError"
	ArithmeticError  Kind = "ArithmeticError"
	ReadOnlyError    Kind = "ReadOnly"
)

// SchemeError is the single, non-resumable error type every component in
// this module raises. There is no exception-catching at the language level
// in this revision.
type SchemeError struct {
	Kind    Kind
	Message string
	Pos     *token.Position
	Cause   error
	Stack   StackTrace
}

func (e *SchemeError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *SchemeError) Unwrap() error { return e.Cause }

// WithStack returns a copy of e with its stack trace set, used by apply to
// attach the active call chain at the point an error is raised.
func (e *SchemeError) WithStack(st StackTrace) *SchemeError {
	cp := *e
	cp.Stack = st
	return &cp
}

func newf(kind Kind, pos *token.Position, format string, args ...any) *SchemeError {
	return &SchemeError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// New constructs an error of kind with a plain message and no position.
func New(kind Kind, message string) *SchemeError {
	return &SchemeError{Kind: kind, Message: message}
}

// Wrap constructs an error of kind wrapping cause, preserving errors.Is/As
// access to it.
func Wrap(kind Kind, cause error, message string) *SchemeError {
	return &SchemeError{Kind: kind, Message: message, Cause: cause}
}

// At returns a copy of e with pos attached, used when a caller knows the
// source position but the error was raised somewhere deeper that doesn't.
func At(e *SchemeError, pos *token.Position) *SchemeError {
	cp := *e
	cp.Pos = pos
	return &cp
}

// KindOf returns the Kind of err if it is (or wraps) a *SchemeError, and ok
// = false otherwise.
func KindOf(err error) (Kind, bool) {
	se, ok := As(err)
	if !ok {
		return "", false
	}
	return se.Kind, true
}

// As unwraps err looking for a *SchemeError, the way errors.As does for a
// single known target type.
func As(err error) (*SchemeError, bool) {
	var se *SchemeError
	ok := asSchemeError(err, &se)
	return se, ok
}

func asSchemeError(err error, target **SchemeError) bool {
	for err != nil {
		if se, ok := err.(*SchemeError); ok {
			*target = se
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
