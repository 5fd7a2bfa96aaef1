package schemerr

import "github.com/gophersource/schemer/internal/token"

// Error Message Catalog
//
// Centralized message formats, one per Kind, so the evaluator and
// primitive library raise consistently worded errors instead of each
// call site hand-rolling fmt.Sprintf text. Mirrors
// internal/interp/errors/catalog.go's ErrMsg* constants.

const (
	msgUnterminatedString = "unterminated string literal"
	msgBadEscape          = "invalid escape sequence in string literal"
	msgUnknownHashPrefix  = "unknown # syntax: %s"
	msgMalformedNumber    = "malformed numeric literal: %q"
	msgUnterminatedList   = "missing ) to close list"
	msgBadDotted          = "dot must be followed by exactly one datum and )"
	msgBadClauseShape     = "malformed %s clause: %s"

	msgUnboundVariable = "unbound variable: %s"

	msgWrongType     = "expected %s, got %s"
	msgWrongTypeArg  = "%s: argument %d must be %s, got %s"
	msgNotApplicable = "the object %s is not applicable"

	msgArityExact  = "%s: expected %d argument(s), got %d"
	msgArityAtLeast = "%s: expected at least %d argument(s), got %d"

	msgDivisionByZero = "division by zero"
	msgCarOfNonPair   = "car: argument is not a pair"
	msgCdrOfNonPair   = "cdr: argument is not a pair"

	msgReadOnly = "%s: object is immutable"
)

func LexErr(pos token.Position, format string, args ...any) *SchemeError {
	e := newf(LexicalError, &pos, format, args...)
	return e
}

func ParseErr(pos token.Position, format string, args ...any) *SchemeError {
	return newf(ParseError, &pos, format, args...)
}

func Unbound(name string) *SchemeError {
	return newf(UnboundVariable, nil, msgUnboundVariable, name)
}

func WrongType(expected, got string) *SchemeError {
	return newf(TypeError, nil, msgWrongType, expected, got)
}

func WrongArgType(proc string, argIdx int, expected, got string) *SchemeError {
	return newf(TypeError, nil, msgWrongTypeArg, proc, argIdx, expected, got)
}

func NotApplicable(repr string) *SchemeError {
	return newf(TypeError, nil, msgNotApplicable, repr)
}

func ArityExact(proc string, want, got int) *SchemeError {
	return newf(ArityError, nil, msgArityExact, proc, want, got)
}

func ArityAtLeast(proc string, want, got int) *SchemeError {
	return newf(ArityError, nil, msgArityAtLeast, proc, want, got)
}

func DivisionByZero() *SchemeError {
	return newf(ArithmeticError, nil, msgDivisionByZero)
}

func CarOfNonPair() *SchemeError {
	return newf(ArithmeticError, nil, msgCarOfNonPair)
}

func CdrOfNonPair() *SchemeError {
	return newf(ArithmeticError, nil, msgCdrOfNonPair)
}

func ReadOnly(what string) *SchemeError {
	return newf(ReadOnlyError, nil, msgReadOnly, what)
}

func BadClauseShape(form, detail string) *SchemeError {
	return newf(ParseError, nil, msgBadClauseShape, form, detail)
}

func UnterminatedString(pos token.Position) *SchemeError {
	return newf(LexicalError, &pos, msgUnterminatedString)
}

func BadEscape(pos token.Position) *SchemeError {
	return newf(LexicalError, &pos, msgBadEscape)
}

func UnknownHashPrefix(pos token.Position, text string) *SchemeError {
	return newf(LexicalError, &pos, msgUnknownHashPrefix, text)
}

func MalformedNumber(pos token.Position, text string) *SchemeError {
	return newf(LexicalError, &pos, msgMalformedNumber, text)
}

func UnterminatedList(pos token.Position) *SchemeError {
	return newf(ParseError, &pos, msgUnterminatedList)
}

func BadDotted(pos token.Position) *SchemeError {
	return newf(ParseError, &pos, msgBadDotted)
}
