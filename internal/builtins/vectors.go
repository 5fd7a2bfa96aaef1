package builtins

import (
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/value"
)

func registerVectors(r *Registry, heap *value.Heap) {
	r.register("vector?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("vector?", 1, args); err != nil {
			return nil, err
		}
		_, ok := args[0].(*value.VectorVal)
		return value.Bool(ok), nil
	}, CategoryVector, "reports whether the argument is a vector")

	r.register("make-vector", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, schemerr.ArityAtLeast("make-vector", 1, len(args))
		}
		n, err := asInt("make-vector", 0, args[0])
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, wrongType("make-vector", 0, "non-negative length", args[0])
		}
		var fill value.Value = value.Empty
		if len(args) == 2 {
			fill = args[1]
		}
		elems := make([]value.Value, n)
		for i := range elems {
			elems[i] = fill
		}
		return heap.NewVector(elems), nil
	}, CategoryVector, "allocates a fresh vector of a given length")

	r.register("vector", func(args []value.Value) (value.Value, error) {
		elems := make([]value.Value, len(args))
		copy(elems, args)
		return heap.NewVector(elems), nil
	}, CategoryVector, "builds a vector from its arguments")

	r.register("vector-length", func(args []value.Value) (value.Value, error) {
		if err := wantExact("vector-length", 1, args); err != nil {
			return nil, err
		}
		v, err := asVector("vector-length", 0, args[0])
		if err != nil {
			return nil, err
		}
		return value.IntVal(v.Len()), nil
	}, CategoryVector, "length of a vector")

	r.register("vector-ref", func(args []value.Value) (value.Value, error) {
		if err := wantExact("vector-ref", 2, args); err != nil {
			return nil, err
		}
		v, err := asVector("vector-ref", 0, args[0])
		if err != nil {
			return nil, err
		}
		i, err := asInt("vector-ref", 1, args[1])
		if err != nil {
			return nil, err
		}
		elem, ok := v.At(int(i))
		if !ok {
			return nil, schemerr.New(schemerr.ArithmeticError, "vector-ref: index out of range")
		}
		return elem, nil
	}, CategoryVector, "returns the element at a vector index")

	r.register("vector-set!", func(args []value.Value) (value.Value, error) {
		if err := wantExact("vector-set!", 3, args); err != nil {
			return nil, err
		}
		v, err := asVector("vector-set!", 0, args[0])
		if err != nil {
			return nil, err
		}
		i, err := asInt("vector-set!", 1, args[1])
		if err != nil {
			return nil, err
		}
		if mutErr := v.Set(int(i), args[2]); mutErr != nil {
			if value.IsReadOnlyErr(mutErr) {
				return nil, schemerr.ReadOnly("vector-set!")
			}
			return nil, schemerr.New(schemerr.ArithmeticError, "vector-set!: index out of range")
		}
		return value.Empty, nil
	}, CategoryVector, "mutates a vector in place")

	r.register("vector->list", func(args []value.Value) (value.Value, error) {
		if err := wantExact("vector->list", 1, args); err != nil {
			return nil, err
		}
		v, err := asVector("vector->list", 0, args[0])
		if err != nil {
			return nil, err
		}
		return value.List(heap, v.Elems...), nil
	}, CategoryVector, "converts a vector to a list")

	r.register("list->vector", func(args []value.Value) (value.Value, error) {
		if err := wantExact("list->vector", 1, args); err != nil {
			return nil, err
		}
		elems, err := asProperList("list->vector", 0, args[0])
		if err != nil {
			return nil, err
		}
		return heap.NewVector(elems), nil
	}, CategoryVector, "converts a list to a vector")

	r.register("vector-fill!", func(args []value.Value) (value.Value, error) {
		if err := wantExact("vector-fill!", 2, args); err != nil {
			return nil, err
		}
		v, err := asVector("vector-fill!", 0, args[0])
		if err != nil {
			return nil, err
		}
		for i := 0; i < v.Len(); i++ {
			if mutErr := v.Set(i, args[1]); mutErr != nil {
				return nil, schemerr.ReadOnly("vector-fill!")
			}
		}
		return value.Empty, nil
	}, CategoryVector, "fills every position of a vector with a value")

	r.register("vector-copy", func(args []value.Value) (value.Value, error) {
		if err := wantExact("vector-copy", 1, args); err != nil {
			return nil, err
		}
		v, err := asVector("vector-copy", 0, args[0])
		if err != nil {
			return nil, err
		}
		cp := make([]value.Value, v.Len())
		copy(cp, v.Elems)
		return heap.NewVector(cp), nil
	}, CategoryVector, "returns a freshly allocated copy of a vector")
}
