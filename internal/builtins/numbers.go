package builtins

import (
	"math"

	"github.com/gophersource/schemer/internal/lexer"
	"github.com/gophersource/schemer/internal/numfmt"
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/value"
)

// numCompare orders two numbers, comparing as int64 when both are exact to
// avoid float64's precision loss on large integers.
func numCompare(a, b value.Value) int {
	if ai, ok := a.(value.IntVal); ok {
		if bi, ok := b.(value.IntVal); ok {
			switch {
			case ai < bi:
				return -1
			case ai > bi:
				return 1
			default:
				return 0
			}
		}
	}
	af, bf := value.AsFloat(a), value.AsFloat(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

func checkNumbers(proc string, args []value.Value) error {
	for i, a := range args {
		if err := asNumber(proc, i, a); err != nil {
			return err
		}
	}
	return nil
}

func registerNumbers(r *Registry, heap *value.Heap) {
	r.register("number?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("number?", 1, args); err != nil {
			return nil, err
		}
		return value.Bool(value.IsNumber(args[0])), nil
	}, CategoryNumber, "reports whether the argument is a number")

	for _, name := range []string{"complex?", "real?", "rational?"} {
		name := name
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantExact(name, 1, args); err != nil {
				return nil, err
			}
			return value.Bool(value.IsNumber(args[0])), nil
		}, CategoryNumber, "every number is "+name)
	}

	r.register("integer?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("integer?", 1, args); err != nil {
			return nil, err
		}
		switch n := args[0].(type) {
		case value.IntVal:
			return value.True, nil
		case value.FloatVal:
			return value.Bool(float64(n) == math.Trunc(float64(n))), nil
		default:
			return value.False, nil
		}
	}, CategoryNumber, "reports whether the argument is integer-valued")

	r.register("exact?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("exact?", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("exact?", 0, args[0]); err != nil {
			return nil, err
		}
		return value.Bool(value.IsExact(args[0])), nil
	}, CategoryNumber, "reports whether a number is exact")

	r.register("inexact?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("inexact?", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("inexact?", 0, args[0]); err != nil {
			return nil, err
		}
		return value.Bool(!value.IsExact(args[0])), nil
	}, CategoryNumber, "reports whether a number is inexact")

	comparisons := map[string]func(c int) bool{
		"=":  func(c int) bool { return c == 0 },
		"<":  func(c int) bool { return c < 0 },
		">":  func(c int) bool { return c > 0 },
		"<=": func(c int) bool { return c <= 0 },
		">=": func(c int) bool { return c >= 0 },
	}
	for name, ok := range comparisons {
		name, ok := name, ok
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantAtLeast(name, 2, args); err != nil {
				return nil, err
			}
			if err := checkNumbers(name, args); err != nil {
				return nil, err
			}
			for i := 0; i < len(args)-1; i++ {
				if !ok(numCompare(args[i], args[i+1])) {
					return value.False, nil
				}
			}
			return value.True, nil
		}, CategoryNumber, "pairwise-chained numeric comparison")
	}

	r.register("zero?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("zero?", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("zero?", 0, args[0]); err != nil {
			return nil, err
		}
		return value.Bool(numCompare(args[0], value.IntVal(0)) == 0), nil
	}, CategoryNumber, "reports whether a number is zero")

	r.register("positive?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("positive?", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("positive?", 0, args[0]); err != nil {
			return nil, err
		}
		return value.Bool(numCompare(args[0], value.IntVal(0)) > 0), nil
	}, CategoryNumber, "reports whether a number is greater than zero")

	r.register("negative?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("negative?", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("negative?", 0, args[0]); err != nil {
			return nil, err
		}
		return value.Bool(numCompare(args[0], value.IntVal(0)) < 0), nil
	}, CategoryNumber, "reports whether a number is less than zero")

	r.register("odd?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("odd?", 1, args); err != nil {
			return nil, err
		}
		n, err := asInt("odd?", 0, args[0])
		if err != nil {
			return nil, err
		}
		return value.Bool(n%2 != 0), nil
	}, CategoryNumber, "reports whether an integer is odd")

	r.register("even?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("even?", 1, args); err != nil {
			return nil, err
		}
		n, err := asInt("even?", 0, args[0])
		if err != nil {
			return nil, err
		}
		return value.Bool(n%2 == 0), nil
	}, CategoryNumber, "reports whether an integer is even")

	extrema := map[string]func(c int) bool{
		"min": func(c int) bool { return c < 0 },
		"max": func(c int) bool { return c > 0 },
	}
	for name, better := range extrema {
		name, better := name, better
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantAtLeast(name, 1, args); err != nil {
				return nil, err
			}
			if err := checkNumbers(name, args); err != nil {
				return nil, err
			}
			best := args[0]
			inexact := !value.IsExact(best)
			for _, a := range args[1:] {
				if !value.IsExact(a) {
					inexact = true
				}
				if better(numCompare(a, best)) {
					best = a
				}
			}
			if inexact && value.IsExact(best) {
				return value.FloatVal(value.AsFloat(best)), nil
			}
			return best, nil
		}, CategoryNumber, "returns the extreme argument, inexact if any argument is inexact")
	}

	r.register("+", func(args []value.Value) (value.Value, error) {
		if err := checkNumbers("+", args); err != nil {
			return nil, err
		}
		return reduceNumeric(args, 0, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
	}, CategoryNumber, "sum of its arguments")

	r.register("*", func(args []value.Value) (value.Value, error) {
		if err := checkNumbers("*", args); err != nil {
			return nil, err
		}
		return reduceNumeric(args, 1, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
	}, CategoryNumber, "product of its arguments")

	r.register("-", func(args []value.Value) (value.Value, error) {
		if err := wantAtLeast("-", 1, args); err != nil {
			return nil, err
		}
		if err := checkNumbers("-", args); err != nil {
			return nil, err
		}
		if len(args) == 1 {
			if n, ok := args[0].(value.IntVal); ok {
				return value.IntVal(-n), nil
			}
			return value.FloatVal(-value.AsFloat(args[0])), nil
		}
		return foldLeft(args, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
	}, CategoryNumber, "difference, or negation with one argument")

	r.register("/", func(args []value.Value) (value.Value, error) {
		if err := wantAtLeast("/", 1, args); err != nil {
			return nil, err
		}
		if err := checkNumbers("/", args); err != nil {
			return nil, err
		}
		return divideAll(args)
	}, CategoryNumber, "quotient, or reciprocal with one argument")

	r.register("abs", func(args []value.Value) (value.Value, error) {
		if err := wantExact("abs", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("abs", 0, args[0]); err != nil {
			return nil, err
		}
		if n, ok := args[0].(value.IntVal); ok {
			if n < 0 {
				return -n, nil
			}
			return n, nil
		}
		return value.FloatVal(math.Abs(value.AsFloat(args[0]))), nil
	}, CategoryNumber, "absolute value")

	r.register("quotient", func(args []value.Value) (value.Value, error) {
		a, b, err := intPair("quotient", args)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, schemerr.DivisionByZero()
		}
		return value.IntVal(a / b), nil
	}, CategoryNumber, "truncating integer division")

	r.register("remainder", func(args []value.Value) (value.Value, error) {
		a, b, err := intPair("remainder", args)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, schemerr.DivisionByZero()
		}
		return value.IntVal(a % b), nil
	}, CategoryNumber, "remainder, taking the dividend's sign")

	r.register("modulo", func(args []value.Value) (value.Value, error) {
		a, b, err := intPair("modulo", args)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, schemerr.DivisionByZero()
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return value.IntVal(m), nil
	}, CategoryNumber, "modulo, taking the divisor's sign")

	rounders := map[string]func(float64) float64{
		"floor":    math.Floor,
		"ceiling":  math.Ceil,
		"truncate": math.Trunc,
		"round":    math.RoundToEven,
	}
	for name, fn := range rounders {
		name, fn := name, fn
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantExact(name, 1, args); err != nil {
				return nil, err
			}
			if err := asNumber(name, 0, args[0]); err != nil {
				return nil, err
			}
			if n, ok := args[0].(value.IntVal); ok {
				return n, nil
			}
			return value.FloatVal(fn(value.AsFloat(args[0]))), nil
		}, CategoryNumber, "rounds toward "+name+"; exact integers pass through unchanged")
	}

	r.register("expt", func(args []value.Value) (value.Value, error) {
		if err := wantExact("expt", 2, args); err != nil {
			return nil, err
		}
		if err := checkNumbers("expt", args); err != nil {
			return nil, err
		}
		base, exp := args[0], args[1]
		if e, ok := exp.(value.IntVal); ok && e >= 0 {
			if b, ok := base.(value.IntVal); ok {
				result := int64(1)
				for i := int64(0); i < int64(e); i++ {
					result *= int64(b)
				}
				return value.IntVal(result), nil
			}
		}
		return value.FloatVal(math.Pow(value.AsFloat(base), value.AsFloat(exp))), nil
	}, CategoryNumber, "exponentiation")

	r.register("sqrt", func(args []value.Value) (value.Value, error) {
		if err := wantExact("sqrt", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("sqrt", 0, args[0]); err != nil {
			return nil, err
		}
		f := math.Sqrt(value.AsFloat(args[0]))
		if n, ok := args[0].(value.IntVal); ok && n >= 0 {
			if root := int64(math.Round(f)); root*root == int64(n) {
				return value.IntVal(root), nil
			}
		}
		return value.FloatVal(f), nil
	}, CategoryNumber, "square root, exact when the argument is a perfect square")

	r.register("exact->inexact", func(args []value.Value) (value.Value, error) {
		if err := wantExact("exact->inexact", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("exact->inexact", 0, args[0]); err != nil {
			return nil, err
		}
		return value.FloatVal(value.AsFloat(args[0])), nil
	}, CategoryNumber, "converts to inexact")

	r.register("inexact->exact", func(args []value.Value) (value.Value, error) {
		if err := wantExact("inexact->exact", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("inexact->exact", 0, args[0]); err != nil {
			return nil, err
		}
		if n, ok := args[0].(value.IntVal); ok {
			return n, nil
		}
		return value.IntVal(int64(math.Round(value.AsFloat(args[0])))), nil
	}, CategoryNumber, "converts to exact, rounding a non-integral float")

	r.register("number->string", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, schemerr.ArityAtLeast("number->string", 1, len(args))
		}
		if err := asNumber("number->string", 0, args[0]); err != nil {
			return nil, err
		}
		radix := int64(10)
		if len(args) == 2 {
			var err error
			radix, err = asInt("number->string", 1, args[1])
			if err != nil {
				return nil, err
			}
		}
		var s string
		switch n := args[0].(type) {
		case value.IntVal:
			s = numfmt.FormatInt(int64(n), int(radix))
		case value.FloatVal:
			s = numfmt.FormatFloat(float64(n))
		}
		return heap.NewReadOnlyString(s), nil
	}, CategoryNumber, "renders a number as a string")

	r.register("string->number", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, schemerr.ArityAtLeast("string->number", 1, len(args))
		}
		s, err := asString("string->number", 0, args[0])
		if err != nil {
			return nil, err
		}
		radix := int64(10)
		if len(args) == 2 {
			radix, err = asInt("string->number", 1, args[1])
			if err != nil {
				return nil, err
			}
		}
		iv, fv, isFloat, ok := lexer.ParseFullNumber(s.String(), int(radix))
		if !ok {
			return value.False, nil
		}
		if isFloat {
			return value.FloatVal(fv), nil
		}
		return value.IntVal(iv), nil
	}, CategoryNumber, "parses a string as a number, or returns #f")
}

func reduceNumeric(args []value.Value, identity int64, intOp func(a, b int64) int64, fltOp func(a, b float64) float64) value.Value {
	exact := true
	for _, a := range args {
		if !value.IsExact(a) {
			exact = false
			break
		}
	}
	if exact {
		acc := identity
		for _, a := range args {
			acc = intOp(acc, int64(a.(value.IntVal)))
		}
		return value.IntVal(acc)
	}
	acc := float64(identity)
	for _, a := range args {
		acc = fltOp(acc, value.AsFloat(a))
	}
	return value.FloatVal(acc)
}

func foldLeft(args []value.Value, intOp func(a, b int64) int64, fltOp func(a, b float64) float64) value.Value {
	exact := true
	for _, a := range args {
		if !value.IsExact(a) {
			exact = false
			break
		}
	}
	if exact {
		acc := int64(args[0].(value.IntVal))
		for _, a := range args[1:] {
			acc = intOp(acc, int64(a.(value.IntVal)))
		}
		return value.IntVal(acc)
	}
	acc := value.AsFloat(args[0])
	for _, a := range args[1:] {
		acc = fltOp(acc, value.AsFloat(a))
	}
	return value.FloatVal(acc)
}

// divideAll implements "/" including the reciprocal form and the fallback
// to an inexact result when exact integers don't divide evenly; there is no
// rational tower, so an inexact quotient is the closest honest answer.
func divideAll(args []value.Value) (value.Value, error) {
	if len(args) == 1 {
		return reciprocal(args[0])
	}
	exact := true
	for _, a := range args {
		if !value.IsExact(a) {
			exact = false
			break
		}
	}
	if exact {
		num := int64(args[0].(value.IntVal))
		rest := make([]int64, len(args)-1)
		for i, a := range args[1:] {
			rest[i] = int64(a.(value.IntVal))
		}
		whole := num
		clean := true
		for _, d := range rest {
			if d == 0 {
				return nil, schemerr.DivisionByZero()
			}
			if whole%d != 0 {
				clean = false
				break
			}
			whole /= d
		}
		if clean {
			return value.IntVal(whole), nil
		}
	}
	acc := value.AsFloat(args[0])
	for _, a := range args[1:] {
		d := value.AsFloat(a)
		if d == 0 {
			return nil, schemerr.DivisionByZero()
		}
		acc /= d
	}
	return value.FloatVal(acc), nil
}

func reciprocal(v value.Value) (value.Value, error) {
	if n, ok := v.(value.IntVal); ok {
		if n == 0 {
			return nil, schemerr.DivisionByZero()
		}
		if n == 1 || n == -1 {
			return n, nil
		}
		return value.FloatVal(1 / float64(n)), nil
	}
	f := value.AsFloat(v)
	if f == 0 {
		return nil, schemerr.DivisionByZero()
	}
	return value.FloatVal(1 / f), nil
}

func intPair(proc string, args []value.Value) (int64, int64, error) {
	if err := wantExact(proc, 2, args); err != nil {
		return 0, 0, err
	}
	a, err := asInt(proc, 0, args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := asInt(proc, 1, args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
