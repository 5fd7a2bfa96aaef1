package builtins

import "github.com/gophersource/schemer/internal/value"

func registerEquivalence(r *Registry) {
	r.register("eq?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("eq?", 2, args); err != nil {
			return nil, err
		}
		return value.Bool(value.Eq(args[0], args[1])), nil
	}, CategoryEquivalence, "identity comparison")

	r.register("eqv?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("eqv?", 2, args); err != nil {
			return nil, err
		}
		return value.Bool(value.Eqv(args[0], args[1])), nil
	}, CategoryEquivalence, "identity-or-same-value comparison")

	r.register("equal?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("equal?", 2, args); err != nil {
			return nil, err
		}
		return value.Bool(value.Equal(args[0], args[1])), nil
	}, CategoryEquivalence, "recursive structural comparison")
}

func registerBooleans(r *Registry) {
	r.register("not", func(args []value.Value) (value.Value, error) {
		if err := wantExact("not", 1, args); err != nil {
			return nil, err
		}
		return value.Bool(!value.IsTruthy(args[0])), nil
	}, CategoryBoolean, "logical negation; only #f is false")

	r.register("boolean?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("boolean?", 1, args); err != nil {
			return nil, err
		}
		_, ok := args[0].(*value.BoolVal)
		return value.Bool(ok), nil
	}, CategoryBoolean, "reports whether the argument is a boolean")
}
