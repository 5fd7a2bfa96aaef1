package builtins

import (
	"strings"

	"github.com/gophersource/schemer/internal/casefold"
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/value"
)

func registerStrings(r *Registry, heap *value.Heap) {
	r.register("string?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string?", 1, args); err != nil {
			return nil, err
		}
		_, ok := args[0].(*value.StringVal)
		return value.Bool(ok), nil
	}, CategoryString, "reports whether the argument is a string")

	r.register("make-string", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, schemerr.ArityAtLeast("make-string", 1, len(args))
		}
		n, err := asInt("make-string", 0, args[0])
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, wrongType("make-string", 0, "non-negative length", args[0])
		}
		fill := byte(' ')
		if len(args) == 2 {
			c, err := asChar("make-string", 1, args[1])
			if err != nil {
				return nil, err
			}
			fill = byte(c)
		}
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = fill
		}
		return heap.NewString(string(buf)), nil
	}, CategoryString, "allocates a fresh string of a given length")

	r.register("string", func(args []value.Value) (value.Value, error) {
		buf := make([]byte, len(args))
		for i, a := range args {
			c, err := asChar("string", i, a)
			if err != nil {
				return nil, err
			}
			buf[i] = byte(c)
		}
		return heap.NewString(string(buf)), nil
	}, CategoryString, "builds a string from its character arguments")

	r.register("string-length", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string-length", 1, args); err != nil {
			return nil, err
		}
		s, err := asString("string-length", 0, args[0])
		if err != nil {
			return nil, err
		}
		return value.IntVal(s.Len()), nil
	}, CategoryString, "length of a string in bytes")

	r.register("string-ref", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string-ref", 2, args); err != nil {
			return nil, err
		}
		s, err := asString("string-ref", 0, args[0])
		if err != nil {
			return nil, err
		}
		i, err := asInt("string-ref", 1, args[1])
		if err != nil {
			return nil, err
		}
		b, ok := s.ByteAt(int(i))
		if !ok {
			return nil, schemerr.New(schemerr.ArithmeticError, "string-ref: index out of range")
		}
		return value.CharVal(b), nil
	}, CategoryString, "returns the character at a string index")

	r.register("string-set!", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string-set!", 3, args); err != nil {
			return nil, err
		}
		s, err := asString("string-set!", 0, args[0])
		if err != nil {
			return nil, err
		}
		i, err := asInt("string-set!", 1, args[1])
		if err != nil {
			return nil, err
		}
		c, err := asChar("string-set!", 2, args[2])
		if err != nil {
			return nil, err
		}
		if mutErr := s.SetByteAt(int(i), byte(c)); mutErr != nil {
			if value.IsReadOnlyErr(mutErr) {
				return nil, schemerr.ReadOnly("string-set!")
			}
			return nil, schemerr.New(schemerr.ArithmeticError, "string-set!: index out of range")
		}
		return value.Empty, nil
	}, CategoryString, "mutates a string in place")

	eqComparisons := map[string]func(a, b string) bool{
		"string=?":  func(a, b string) bool { return a == b },
		"string<?":  func(a, b string) bool { return a < b },
		"string>?":  func(a, b string) bool { return a > b },
		"string<=?": func(a, b string) bool { return a <= b },
		"string>=?": func(a, b string) bool { return a >= b },
	}
	for name, cmp := range eqComparisons {
		name, cmp := name, cmp
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantAtLeast(name, 2, args); err != nil {
				return nil, err
			}
			strs := make([]string, len(args))
			for i, a := range args {
				s, err := asString(name, i, a)
				if err != nil {
					return nil, err
				}
				strs[i] = s.String()
			}
			for i := 0; i < len(strs)-1; i++ {
				if !cmp(strs[i], strs[i+1]) {
					return value.False, nil
				}
			}
			return value.True, nil
		}, CategoryString, "pairwise-chained string comparison")
	}

	ciComparisons := map[string]func(a, b string) bool{
		"string-ci=?":  func(a, b string) bool { return a == b },
		"string-ci<?":  func(a, b string) bool { return a < b },
		"string-ci>?":  func(a, b string) bool { return a > b },
		"string-ci<=?": func(a, b string) bool { return a <= b },
		"string-ci>=?": func(a, b string) bool { return a >= b },
	}
	for name, cmp := range ciComparisons {
		name, cmp := name, cmp
		r.register(name, func(args []value.Value) (value.Value, error) {
			if err := wantAtLeast(name, 2, args); err != nil {
				return nil, err
			}
			strs := make([]string, len(args))
			for i, a := range args {
				s, err := asString(name, i, a)
				if err != nil {
					return nil, err
				}
				strs[i] = foldBytes(s.String())
			}
			for i := 0; i < len(strs)-1; i++ {
				if !cmp(strs[i], strs[i+1]) {
					return value.False, nil
				}
			}
			return value.True, nil
		}, CategoryString, "pairwise-chained case-insensitive string comparison")
	}

	r.register("substring", func(args []value.Value) (value.Value, error) {
		if err := wantExact("substring", 3, args); err != nil {
			return nil, err
		}
		s, err := asString("substring", 0, args[0])
		if err != nil {
			return nil, err
		}
		start, err := asInt("substring", 1, args[1])
		if err != nil {
			return nil, err
		}
		end, err := asInt("substring", 2, args[2])
		if err != nil {
			return nil, err
		}
		str := s.String()
		if start < 0 || end > int64(len(str)) || start > end {
			return nil, schemerr.New(schemerr.ArithmeticError, "substring: index out of range")
		}
		return heap.NewString(str[start:end]), nil
	}, CategoryString, "returns the substring between two indices")

	r.register("string-append", func(args []value.Value) (value.Value, error) {
		var sb strings.Builder
		for i, a := range args {
			s, err := asString("string-append", i, a)
			if err != nil {
				return nil, err
			}
			sb.WriteString(s.String())
		}
		return heap.NewString(sb.String()), nil
	}, CategoryString, "concatenates its string arguments")

	r.register("string->list", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string->list", 1, args); err != nil {
			return nil, err
		}
		s, err := asString("string->list", 0, args[0])
		if err != nil {
			return nil, err
		}
		str := s.String()
		elems := make([]value.Value, len(str))
		for i := 0; i < len(str); i++ {
			elems[i] = value.CharVal(str[i])
		}
		return value.List(heap, elems...), nil
	}, CategoryString, "converts a string to a list of characters")

	r.register("list->string", func(args []value.Value) (value.Value, error) {
		if err := wantExact("list->string", 1, args); err != nil {
			return nil, err
		}
		elems, err := asProperList("list->string", 0, args[0])
		if err != nil {
			return nil, err
		}
		buf := make([]byte, len(elems))
		for i, e := range elems {
			c, err := asChar("list->string", i, e)
			if err != nil {
				return nil, err
			}
			buf[i] = byte(c)
		}
		return heap.NewString(string(buf)), nil
	}, CategoryString, "converts a list of characters to a string")

	r.register("string-copy", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string-copy", 1, args); err != nil {
			return nil, err
		}
		s, err := asString("string-copy", 0, args[0])
		if err != nil {
			return nil, err
		}
		return heap.NewString(s.String()), nil
	}, CategoryString, "returns a freshly allocated copy of a string")

	r.register("string-fill!", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string-fill!", 2, args); err != nil {
			return nil, err
		}
		s, err := asString("string-fill!", 0, args[0])
		if err != nil {
			return nil, err
		}
		c, err := asChar("string-fill!", 1, args[1])
		if err != nil {
			return nil, err
		}
		for i := 0; i < s.Len(); i++ {
			if mutErr := s.SetByteAt(i, byte(c)); mutErr != nil {
				return nil, schemerr.ReadOnly("string-fill!")
			}
		}
		return value.Empty, nil
	}, CategoryString, "fills every position of a string with a character")

	r.register("string-upcase", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string-upcase", 1, args); err != nil {
			return nil, err
		}
		s, err := asString("string-upcase", 0, args[0])
		if err != nil {
			return nil, err
		}
		return heap.NewString(mapBytes(s.String(), casefold.UpperByte)), nil
	}, CategoryString, "returns an uppercased copy of a string")

	r.register("string-downcase", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string-downcase", 1, args); err != nil {
			return nil, err
		}
		s, err := asString("string-downcase", 0, args[0])
		if err != nil {
			return nil, err
		}
		return heap.NewString(mapBytes(s.String(), casefold.Byte)), nil
	}, CategoryString, "returns a lowercased copy of a string")
}

// foldBytes case-folds s one byte at a time instead of through
// strings.ToLower's rune decoding, since StringVal is a byte-oriented ASCII
// sequence that may hold high-bit bytes not meant to be read as UTF-8.
func foldBytes(s string) string {
	return mapBytes(s, casefold.Byte)
}

func mapBytes(s string, f func(byte) byte) string {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		buf[i] = f(s[i])
	}
	return string(buf)
}
