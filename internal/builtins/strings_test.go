package builtins

import (
	"testing"

	"github.com/gophersource/schemer/internal/value"
)

func TestStringBasics(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerStrings(r, heap)

	got, err := callPrim(t, r, "string", value.CharVal('h'), value.CharVal('i'))
	if err != nil {
		t.Fatal(err)
	}
	s, ok := got.(*value.StringVal)
	if !ok || s.String() != "hi" {
		t.Fatalf("string h i = %v, want \"hi\"", got)
	}

	got, err = callPrim(t, r, "string-length", s)
	if err != nil {
		t.Fatal(err)
	}
	if got != value.IntVal(2) {
		t.Errorf("string-length = %v, want 2", got)
	}

	got, err = callPrim(t, r, "string-ref", s, value.IntVal(1))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.CharVal('i') {
		t.Errorf("string-ref = %v, want #\\i", got)
	}
}

func TestStringAppendAndCopy(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerStrings(r, heap)

	a := heap.NewString("foo")
	b := heap.NewString("bar")
	got, err := callPrim(t, r, "string-append", a, b)
	if err != nil {
		t.Fatal(err)
	}
	if s := got.(*value.StringVal).String(); s != "foobar" {
		t.Errorf("string-append = %q, want foobar", s)
	}

	cp, err := callPrim(t, r, "string-copy", a)
	if err != nil {
		t.Fatal(err)
	}
	if cp.(*value.StringVal) == a {
		t.Error("string-copy must return a distinct StringVal")
	}
}

func TestStringCiComparisonFoldsASCIICase(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerStrings(r, heap)

	got, err := callPrim(t, r, "string-ci=?", heap.NewString("ABC"), heap.NewString("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.True {
		t.Errorf("string-ci=? ABC abc = %v, want #t", got)
	}
}

func TestStringUpcaseDowncase(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerStrings(r, heap)

	got, err := callPrim(t, r, "string-upcase", heap.NewString("AbC"))
	if err != nil {
		t.Fatal(err)
	}
	if s := got.(*value.StringVal).String(); s != "ABC" {
		t.Errorf("string-upcase = %q, want ABC", s)
	}

	got, err = callPrim(t, r, "string-downcase", heap.NewString("AbC"))
	if err != nil {
		t.Fatal(err)
	}
	if s := got.(*value.StringVal).String(); s != "abc" {
		t.Errorf("string-downcase = %q, want abc", s)
	}
}

func TestStringSetReadOnlyErrors(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerStrings(r, heap)

	s := heap.NewReadOnlyString("abc")
	if _, err := callPrim(t, r, "string-set!", s, value.IntVal(0), value.CharVal('z')); err == nil {
		t.Error("expected an error mutating a read-only string")
	}
}

func TestMakeStringRejectsNegativeLength(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerStrings(r, heap)

	if _, err := callPrim(t, r, "make-string", value.IntVal(-1)); err == nil {
		t.Error("expected a negative-length error")
	}
}

func TestSubstring(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerStrings(r, heap)

	got, err := callPrim(t, r, "substring", heap.NewString("hello world"), value.IntVal(0), value.IntVal(5))
	if err != nil {
		t.Fatal(err)
	}
	if s := got.(*value.StringVal).String(); s != "hello" {
		t.Errorf("substring = %q, want hello", s)
	}
}
