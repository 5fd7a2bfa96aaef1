package builtins

import (
	"github.com/gophersource/schemer/internal/evaluator"
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/value"
)

// registerControl wires the Control group into r. apply, map, and for-each
// call back into evaluator.Apply for a concrete result (not a tail
// continuation) since a primitive's contract is to return a finished
// value; force delegates to evaluator.Force, which owns the re-entrant-
// promise bookkeeping.
func registerControl(r *Registry, heap *value.Heap) {
	r.register("procedure?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("procedure?", 1, args); err != nil {
			return nil, err
		}
		_, ok := args[0].(*value.Procedure)
		return value.Bool(ok), nil
	}, CategoryControl, "reports whether the argument is a procedure")

	r.register("apply", func(args []value.Value) (value.Value, error) {
		if err := wantAtLeast("apply", 2, args); err != nil {
			return nil, err
		}
		proc := args[0]
		last, err := asProperList("apply", len(args)-1, args[len(args)-1])
		if err != nil {
			return nil, err
		}
		callArgs := append(append([]value.Value{}, args[1:len(args)-1]...), last...)
		return evaluator.Apply(proc, callArgs)
	}, CategoryControl, "applies a procedure to a list of arguments, splicing the last argument")

	r.register("map", func(args []value.Value) (value.Value, error) {
		if err := wantAtLeast("map", 2, args); err != nil {
			return nil, err
		}
		proc := args[0]
		lists, n, err := sameLengthLists("map", args[1:])
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, n)
		for i := 0; i < n; i++ {
			callArgs := make([]value.Value, len(lists))
			for j, l := range lists {
				callArgs[j] = l[i]
			}
			v, err := evaluator.Apply(proc, callArgs)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return value.List(heap, out...), nil
	}, CategoryControl, "applies a procedure to successive elements of one or more lists, collecting results")

	r.register("for-each", func(args []value.Value) (value.Value, error) {
		if err := wantAtLeast("for-each", 2, args); err != nil {
			return nil, err
		}
		proc := args[0]
		lists, n, err := sameLengthLists("for-each", args[1:])
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			callArgs := make([]value.Value, len(lists))
			for j, l := range lists {
				callArgs[j] = l[i]
			}
			if _, err := evaluator.Apply(proc, callArgs); err != nil {
				return nil, err
			}
		}
		return value.Empty, nil
	}, CategoryControl, "applies a procedure to successive elements of one or more lists, for effect")

	r.register("force", func(args []value.Value) (value.Value, error) {
		if err := wantExact("force", 1, args); err != nil {
			return nil, err
		}
		return evaluator.Force(args[0])
	}, CategoryControl, "forces a promise, memoizing its result")
}

// sameLengthLists converts the list arguments of map/for-each to slices,
// checking that they are all proper lists of equal length.
func sameLengthLists(proc string, args []value.Value) ([][]value.Value, int, error) {
	lists := make([][]value.Value, len(args))
	for i, a := range args {
		elems, err := asProperList(proc, i+1, a)
		if err != nil {
			return nil, 0, err
		}
		lists[i] = elems
	}
	n := len(lists[0])
	for _, l := range lists {
		if len(l) != n {
			return nil, 0, schemerr.BadClauseShape(proc, "all list arguments must have the same length")
		}
	}
	return lists, n, nil
}
