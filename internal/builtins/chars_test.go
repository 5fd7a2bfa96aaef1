package builtins

import (
	"testing"

	"github.com/gophersource/schemer/internal/value"
)

func callPrim(t *testing.T, r *Registry, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	e, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("no such primitive: %s", name)
	}
	return e.Fn(args)
}

func TestCharComparisons(t *testing.T) {
	r := newRegistry()
	registerChars(r)

	got, err := callPrim(t, r, "char<?", value.CharVal('a'), value.CharVal('b'), value.CharVal('c'))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.True {
		t.Errorf("char<? a b c = %v, want #t", got)
	}

	got, err = callPrim(t, r, "char=?", value.CharVal('a'), value.CharVal('b'))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.False {
		t.Errorf("char=? a b = %v, want #f", got)
	}
}

func TestCharCiComparisonsFoldCase(t *testing.T) {
	r := newRegistry()
	registerChars(r)

	got, err := callPrim(t, r, "char-ci=?", value.CharVal('A'), value.CharVal('a'))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.True {
		t.Errorf("char-ci=? A a = %v, want #t", got)
	}
}

func TestCharUpcaseDowncase(t *testing.T) {
	r := newRegistry()
	registerChars(r)

	got, err := callPrim(t, r, "char-upcase", value.CharVal('q'))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.CharVal('Q') {
		t.Errorf("char-upcase q = %v, want Q", got)
	}

	got, err = callPrim(t, r, "char-downcase", value.CharVal('Q'))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.CharVal('q') {
		t.Errorf("char-downcase Q = %v, want q", got)
	}
}

func TestCharIntegerConversion(t *testing.T) {
	r := newRegistry()
	registerChars(r)

	got, err := callPrim(t, r, "char->integer", value.CharVal('A'))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.IntVal(65) {
		t.Errorf("char->integer A = %v, want 65", got)
	}

	got, err = callPrim(t, r, "integer->char", value.IntVal(65))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.CharVal('A') {
		t.Errorf("integer->char 65 = %v, want A", got)
	}
}

func TestCharClassification(t *testing.T) {
	r := newRegistry()
	registerChars(r)

	cases := []struct {
		name string
		c    byte
		want bool
	}{
		{"char-alphabetic?", 'x', true},
		{"char-alphabetic?", '5', false},
		{"char-numeric?", '5', true},
		{"char-whitespace?", ' ', true},
		{"char-upper-case?", 'Z', true},
		{"char-lower-case?", 'z', true},
	}
	for _, c := range cases {
		got, err := callPrim(t, r, c.name, value.CharVal(c.c))
		if err != nil {
			t.Fatal(err)
		}
		if value.IsTruthy(got) != c.want {
			t.Errorf("%s %q = %v, want %v", c.name, c.c, got, c.want)
		}
	}
}
