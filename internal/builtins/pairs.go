package builtins

import (
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/value"
)

func registerPairs(r *Registry, heap *value.Heap) {
	r.register("pair?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("pair?", 1, args); err != nil {
			return nil, err
		}
		_, ok := args[0].(*value.Pair)
		return value.Bool(ok), nil
	}, CategoryPair, "reports whether the argument is a pair")

	r.register("cons", func(args []value.Value) (value.Value, error) {
		if err := wantExact("cons", 2, args); err != nil {
			return nil, err
		}
		return heap.NewPair(args[0], args[1]), nil
	}, CategoryPair, "allocates a new pair")

	r.register("car", func(args []value.Value) (value.Value, error) {
		if err := wantExact("car", 1, args); err != nil {
			return nil, err
		}
		p, ok := args[0].(*value.Pair)
		if !ok {
			return nil, schemerr.CarOfNonPair()
		}
		return p.Car, nil
	}, CategoryPair, "returns a pair's car")

	r.register("cdr", func(args []value.Value) (value.Value, error) {
		if err := wantExact("cdr", 1, args); err != nil {
			return nil, err
		}
		p, ok := args[0].(*value.Pair)
		if !ok {
			return nil, schemerr.CdrOfNonPair()
		}
		return p.Cdr, nil
	}, CategoryPair, "returns a pair's cdr")

	r.register("set-car!", func(args []value.Value) (value.Value, error) {
		if err := wantExact("set-car!", 2, args); err != nil {
			return nil, err
		}
		p, err := asPair("set-car!", 0, args[0])
		if err != nil {
			return nil, err
		}
		if p.ReadOnly {
			return nil, schemerr.ReadOnly("set-car!")
		}
		p.Car = args[1]
		return value.Empty, nil
	}, CategoryPair, "mutates a pair's car")

	r.register("set-cdr!", func(args []value.Value) (value.Value, error) {
		if err := wantExact("set-cdr!", 2, args); err != nil {
			return nil, err
		}
		p, err := asPair("set-cdr!", 0, args[0])
		if err != nil {
			return nil, err
		}
		if p.ReadOnly {
			return nil, schemerr.ReadOnly("set-cdr!")
		}
		p.Cdr = args[1]
		return value.Empty, nil
	}, CategoryPair, "mutates a pair's cdr")

	r.register("list?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("list?", 1, args); err != nil {
			return nil, err
		}
		return value.Bool(value.IsList(args[0])), nil
	}, CategoryPair, "reports whether the argument is a proper, non-circular list")

	r.register("list", func(args []value.Value) (value.Value, error) {
		return value.List(heap, args...), nil
	}, CategoryPair, "builds a list of its arguments")

	r.register("length", func(args []value.Value) (value.Value, error) {
		if err := wantExact("length", 1, args); err != nil {
			return nil, err
		}
		n := value.Length(args[0])
		if n < 0 {
			return nil, wrongType("length", 0, "list", args[0])
		}
		return value.IntVal(n), nil
	}, CategoryPair, "length of a proper list")

	r.register("append", func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return value.Empty, nil
		}
		var all []value.Value
		for i, a := range args[:len(args)-1] {
			elems, err := asProperList("append", i, a)
			if err != nil {
				return nil, err
			}
			all = append(all, elems...)
		}
		return value.DottedList(heap, args[len(args)-1], all...), nil
	}, CategoryPair, "concatenates lists, sharing the last argument as the tail")

	r.register("reverse", func(args []value.Value) (value.Value, error) {
		if err := wantExact("reverse", 1, args); err != nil {
			return nil, err
		}
		elems, err := asProperList("reverse", 0, args[0])
		if err != nil {
			return nil, err
		}
		rev := make([]value.Value, len(elems))
		for i, e := range elems {
			rev[len(elems)-1-i] = e
		}
		return value.List(heap, rev...), nil
	}, CategoryPair, "returns a freshly allocated reversed list")

	r.register("list-tail", func(args []value.Value) (value.Value, error) {
		if err := wantExact("list-tail", 2, args); err != nil {
			return nil, err
		}
		k, err := asInt("list-tail", 1, args[1])
		if err != nil {
			return nil, err
		}
		cur := args[0]
		for i := int64(0); i < k; i++ {
			p, ok := cur.(*value.Pair)
			if !ok {
				return nil, schemerr.New(schemerr.ArithmeticError, "list-tail: index out of range")
			}
			cur = p.Cdr
		}
		return cur, nil
	}, CategoryPair, "returns the sublist obtained by cdring k times")

	r.register("list-ref", func(args []value.Value) (value.Value, error) {
		if err := wantExact("list-ref", 2, args); err != nil {
			return nil, err
		}
		k, err := asInt("list-ref", 1, args[1])
		if err != nil {
			return nil, err
		}
		cur := args[0]
		for i := int64(0); i < k; i++ {
			p, ok := cur.(*value.Pair)
			if !ok {
				return nil, schemerr.New(schemerr.ArithmeticError, "list-ref: index out of range")
			}
			cur = p.Cdr
		}
		p, ok := cur.(*value.Pair)
		if !ok {
			return nil, schemerr.New(schemerr.ArithmeticError, "list-ref: index out of range")
		}
		return p.Car, nil
	}, CategoryPair, "returns the k-th element of a list")

	searchers := map[string]func(a, b value.Value) bool{
		"memq": value.Eq, "memv": value.Eqv, "member": value.Equal,
	}
	for name, cmp := range searchers {
		cmp := cmp
		name := name
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantExact(name, 2, args); err != nil {
				return nil, err
			}
			cur := args[1]
			for {
				p, ok := cur.(*value.Pair)
				if !ok {
					return value.False, nil
				}
				if cmp(args[0], p.Car) {
					return p, nil
				}
				cur = p.Cdr
			}
		}, CategoryPair, "searches a list, returning the first matching sublist or #f")
	}

	assocers := map[string]func(a, b value.Value) bool{
		"assq": value.Eq, "assv": value.Eqv, "assoc": value.Equal,
	}
	for name, cmp := range assocers {
		cmp := cmp
		name := name
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantExact(name, 2, args); err != nil {
				return nil, err
			}
			elems, err := asProperList(name, 1, args[1])
			if err != nil {
				return nil, err
			}
			for _, e := range elems {
				p, ok := e.(*value.Pair)
				if !ok {
					return nil, wrongType(name, 1, "association list", args[1])
				}
				if cmp(args[0], p.Car) {
					return p, nil
				}
			}
			return value.False, nil
		}, CategoryPair, "searches an association list, returning the first matching entry or #f")
	}
}
