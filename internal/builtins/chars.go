package builtins

import (
	"github.com/gophersource/schemer/internal/casefold"
	"github.com/gophersource/schemer/internal/value"
)

func registerChars(r *Registry) {
	r.register("char?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("char?", 1, args); err != nil {
			return nil, err
		}
		_, ok := args[0].(value.CharVal)
		return value.Bool(ok), nil
	}, CategoryChar, "reports whether the argument is a character")

	comparisons := map[string]func(a, b value.CharVal) bool{
		"char=?":  func(a, b value.CharVal) bool { return a == b },
		"char<?":  func(a, b value.CharVal) bool { return a < b },
		"char>?":  func(a, b value.CharVal) bool { return a > b },
		"char<=?": func(a, b value.CharVal) bool { return a <= b },
		"char>=?": func(a, b value.CharVal) bool { return a >= b },
	}
	for name, cmp := range comparisons {
		name, cmp := name, cmp
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantAtLeast(name, 2, args); err != nil {
				return nil, err
			}
			chars := make([]value.CharVal, len(args))
			for i, a := range args {
				c, err := asChar(name, i, a)
				if err != nil {
					return nil, err
				}
				chars[i] = c
			}
			for i := 0; i < len(chars)-1; i++ {
				if !cmp(chars[i], chars[i+1]) {
					return value.False, nil
				}
			}
			return value.True, nil
		}, CategoryChar, "pairwise-chained character comparison")
	}

	ciComparisons := map[string]func(a, b byte) bool{
		"char-ci=?":  func(a, b byte) bool { return a == b },
		"char-ci<?":  func(a, b byte) bool { return a < b },
		"char-ci>?":  func(a, b byte) bool { return a > b },
		"char-ci<=?": func(a, b byte) bool { return a <= b },
		"char-ci>=?": func(a, b byte) bool { return a >= b },
	}
	for name, cmp := range ciComparisons {
		name, cmp := name, cmp
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantAtLeast(name, 2, args); err != nil {
				return nil, err
			}
			folded := make([]byte, len(args))
			for i, a := range args {
				c, err := asChar(name, i, a)
				if err != nil {
					return nil, err
				}
				folded[i] = casefold.Byte(byte(c))
			}
			for i := 0; i < len(folded)-1; i++ {
				if !cmp(folded[i], folded[i+1]) {
					return value.False, nil
				}
			}
			return value.True, nil
		}, CategoryChar, "pairwise-chained case-insensitive character comparison")
	}

	r.register("char-upcase", func(args []value.Value) (value.Value, error) {
		if err := wantExact("char-upcase", 1, args); err != nil {
			return nil, err
		}
		c, err := asChar("char-upcase", 0, args[0])
		if err != nil {
			return nil, err
		}
		return value.CharVal(casefold.UpperByte(byte(c))), nil
	}, CategoryChar, "returns the uppercase equivalent of a character")

	r.register("char-downcase", func(args []value.Value) (value.Value, error) {
		if err := wantExact("char-downcase", 1, args); err != nil {
			return nil, err
		}
		c, err := asChar("char-downcase", 0, args[0])
		if err != nil {
			return nil, err
		}
		return value.CharVal(casefold.Byte(byte(c))), nil
	}, CategoryChar, "returns the lowercase equivalent of a character")

	r.register("char->integer", func(args []value.Value) (value.Value, error) {
		if err := wantExact("char->integer", 1, args); err != nil {
			return nil, err
		}
		c, err := asChar("char->integer", 0, args[0])
		if err != nil {
			return nil, err
		}
		return value.IntVal(c), nil
	}, CategoryChar, "returns a character's code point")

	r.register("integer->char", func(args []value.Value) (value.Value, error) {
		if err := wantExact("integer->char", 1, args); err != nil {
			return nil, err
		}
		n, err := asInt("integer->char", 0, args[0])
		if err != nil {
			return nil, err
		}
		return value.CharVal(byte(n)), nil
	}, CategoryChar, "returns the character with the given code point")

	kinds := map[string]func(byte) bool{
		"char-alphabetic?": func(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') },
		"char-numeric?":    func(b byte) bool { return b >= '0' && b <= '9' },
		"char-whitespace?": func(b byte) bool {
			switch b {
			case ' ', '\t', '\n', '\r', '\f', '\v':
				return true
			}
			return false
		},
		"char-upper-case?": func(b byte) bool { return b >= 'A' && b <= 'Z' },
		"char-lower-case?": func(b byte) bool { return b >= 'a' && b <= 'z' },
	}
	for name, pred := range kinds {
		name, pred := name, pred
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantExact(name, 1, args); err != nil {
				return nil, err
			}
			c, err := asChar(name, 0, args[0])
			if err != nil {
				return nil, err
			}
			return value.Bool(pred(byte(c))), nil
		}, CategoryChar, "classifies a character")
	}
}
