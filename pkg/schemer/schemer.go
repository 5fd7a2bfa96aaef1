// Package schemer is the embedded library surface: Read, Eval,
// LoadPrimitives, MakeTopLevelEnv, plus value constructors and inspectors
// for each kind. internal/reader, internal/evaluator, and internal/builtins
// implement the actual reader/evaluator/primitive-table logic; this package
// is the thin, stable façade a host program imports instead of reaching
// into internal/.
//
// Grounded on the pkg/dwscript embedding façade (an Engine type wrapping
// lexer/parser/interp with New/Eval/RegisterFunction), simplified here
// because this language has no FFI registration surface to expose: the
// collaborator-facing contract is exactly Read/Eval/LoadPrimitives/
// MakeTopLevelEnv plus the value kinds themselves.
package schemer

import (
	"github.com/gophersource/schemer/internal/builtins"
	"github.com/gophersource/schemer/internal/evaluator"
	"github.com/gophersource/schemer/internal/reader"
	"github.com/gophersource/schemer/internal/value"
)

// Value is the heterogeneous value/datum type shared by the reader and the
// evaluator.
type Value = value.Value

// Environment is a lexical frame chain.
type Environment = value.Environment

// Heap is the process-wide arena owning every allocated value.
type Heap = value.Heap

// NewHeap allocates a fresh arena with its own symbol table. Most
// embedders want exactly one Heap per process; see MakeTopLevelEnv for the
// common case of heap-plus-top-level-environment in one call.
func NewHeap() *Heap { return value.NewHeap() }

// MakeTopLevelEnv allocates a fresh heap and a fresh top-level
// environment over it with the standard primitive library already
// installed.
func MakeTopLevelEnv() *Environment {
	heap := value.NewHeap()
	env := heap.NewEnvironment(nil)
	LoadPrimitives(env)
	return env
}

// LoadPrimitives installs the standard primitive bindings into env, bound
// to env's own heap.
func LoadPrimitives(env *Environment) {
	builtins.NewStandard(env.Heap()).Install(env)
}

// Read parses a complete source string into zero or more top-level
// datums, allocating on heap.
func Read(text, filename string, heap *Heap) ([]Value, error) {
	rd, err := reader.New(text, filename, heap)
	if err != nil {
		return nil, err
	}
	return rd.ReadAll()
}

// ReadOne parses and returns the first top-level datum in text.
func ReadOne(text, filename string, heap *Heap) (Value, error) {
	rd, err := reader.New(text, filename, heap)
	if err != nil {
		return nil, err
	}
	return rd.Read()
}

// Eval evaluates one datum under env.
func Eval(datum Value, env *Environment) (Value, error) {
	return evaluator.Eval(datum, env)
}

// Apply invokes a procedure value on already-evaluated arguments, running
// any tail position in its body to completion.
func Apply(proc Value, args []Value) (Value, error) {
	return evaluator.Apply(proc, args)
}

// Force evaluates and memoizes a promise's thunk.
func Force(p Value) (Value, error) {
	return evaluator.Force(p)
}

// Value constructors ---------------------------------------------------------

// Empty is the singleton empty-list value.
var Empty = value.Empty

// True and False are the singleton boolean values.
var (
	True  = value.True
	False = value.False
)

// Bool returns the canonical singleton for a native bool.
func Bool(b bool) *value.BoolVal { return value.Bool(b) }

// Int wraps a native int64 as an exact integer value.
func Int(n int64) value.IntVal { return value.IntVal(n) }

// Float wraps a native float64 as an inexact value.
func Float(f float64) value.FloatVal { return value.FloatVal(f) }

// Char wraps a native byte as a character value.
func Char(b byte) value.CharVal { return value.CharVal(b) }

// Value inspectors ------------------------------------------------------------

// IsTruthy implements the language rule that only #f is false.
func IsTruthy(v Value) bool { return value.IsTruthy(v) }

// IsNumber reports whether v is an Int or a Float.
func IsNumber(v Value) bool { return value.IsNumber(v) }

// Kind returns v's disjoint kind tag.
func Kind(v Value) value.Kind { return v.Kind() }
