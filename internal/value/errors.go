package value

import "errors"

// Sentinel errors returned by in-place mutators in this package. Callers in
// internal/builtins and internal/evaluator translate these into typed
// SchemeError kinds (ReadOnly, ArithmeticError) with source position
// attached; this package itself carries no position information and no
// error-kind taxonomy, only the mechanical fact of the failure.
var (
	errReadOnlyString    = errors.New("string is read-only")
	errStringIndexRange  = errors.New("string index out of range")
	errReadOnlyVector    = errors.New("vector is read-only")
	errVectorIndexRange  = errors.New("vector index out of range")
	errReadOnlyPair      = errors.New("pair is read-only")
)

// IsReadOnlyErr reports whether err was raised by a mutator refusing to
// write to a value flagged read-only.
func IsReadOnlyErr(err error) bool {
	return errors.Is(err, errReadOnlyString) || errors.Is(err, errReadOnlyVector) || errors.Is(err, errReadOnlyPair)
}

// IsRangeErr reports whether err was raised by an out-of-range index.
func IsRangeErr(err error) bool {
	return errors.Is(err, errStringIndexRange) || errors.Is(err, errVectorIndexRange)
}
