package builtins

import (
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/value"
)

func wrongType(proc string, idx int, expected string, got value.Value) error {
	return schemerr.WrongArgType(proc, idx+1, expected, got.Kind().String())
}

func wantExact(proc string, n int, args []value.Value) error {
	if len(args) != n {
		return schemerr.ArityExact(proc, n, len(args))
	}
	return nil
}

func wantAtLeast(proc string, n int, args []value.Value) error {
	if len(args) < n {
		return schemerr.ArityAtLeast(proc, n, len(args))
	}
	return nil
}

func asInt(proc string, idx int, v value.Value) (int64, error) {
	n, ok := v.(value.IntVal)
	if !ok {
		return 0, wrongType(proc, idx, "integer", v)
	}
	return int64(n), nil
}

func asNumber(proc string, idx int, v value.Value) error {
	if !value.IsNumber(v) {
		return wrongType(proc, idx, "number", v)
	}
	return nil
}

func asPair(proc string, idx int, v value.Value) (*value.Pair, error) {
	p, ok := v.(*value.Pair)
	if !ok {
		return nil, wrongType(proc, idx, "pair", v)
	}
	return p, nil
}

func asString(proc string, idx int, v value.Value) (*value.StringVal, error) {
	s, ok := v.(*value.StringVal)
	if !ok {
		return nil, wrongType(proc, idx, "string", v)
	}
	return s, nil
}

func asVector(proc string, idx int, v value.Value) (*value.VectorVal, error) {
	vec, ok := v.(*value.VectorVal)
	if !ok {
		return nil, wrongType(proc, idx, "vector", v)
	}
	return vec, nil
}

func asSymbol(proc string, idx int, v value.Value) (*value.Symbol, error) {
	s, ok := v.(*value.Symbol)
	if !ok {
		return nil, wrongType(proc, idx, "symbol", v)
	}
	return s, nil
}

func asChar(proc string, idx int, v value.Value) (value.CharVal, error) {
	c, ok := v.(value.CharVal)
	if !ok {
		return 0, wrongType(proc, idx, "char", v)
	}
	return c, nil
}

func asProperList(proc string, idx int, v value.Value) ([]value.Value, error) {
	elems, ok := value.ListToSlice(v)
	if !ok {
		return nil, wrongType(proc, idx, "list", v)
	}
	return elems, nil
}
