package reader

import (
	"io"
	"testing"

	"github.com/gophersource/schemer/internal/value"
)

func readOne(t *testing.T, src string) value.Value {
	t.Helper()
	h := value.NewHeap()
	r, err := New(src, "test", h)
	if err != nil {
		t.Fatalf("New(%q): %v", src, err)
	}
	v, err := r.Read()
	if err != nil {
		t.Fatalf("Read(%q): %v", src, err)
	}
	return v
}

func TestReadAtoms(t *testing.T) {
	if v := readOne(t, "42"); v != value.IntVal(42) {
		t.Errorf("got %v, want IntVal(42)", v)
	}
	if v := readOne(t, "3.5"); v != value.FloatVal(3.5) {
		t.Errorf("got %v, want FloatVal(3.5)", v)
	}
	if v := readOne(t, "#t"); v != value.True {
		t.Errorf("got %v, want True", v)
	}
	if v := readOne(t, "#f"); v != value.False {
		t.Errorf("got %v, want False", v)
	}
	if v := readOne(t, "#\\a"); v != value.CharVal('a') {
		t.Errorf("got %v, want CharVal('a')", v)
	}
	sv, ok := readOne(t, `"hi"`).(*value.StringVal)
	if !ok || sv.String() != "hi" {
		t.Errorf("got %v, want StringVal(hi)", sv)
	}
}

func TestReadSymbolInterning(t *testing.T) {
	h := value.NewHeap()
	r, _ := New("foo foo", "test", h)
	a, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if a.(*value.Symbol) != b.(*value.Symbol) {
		t.Error("two reads of the same identifier must intern to the same *Symbol")
	}
}

func TestReadProperList(t *testing.T) {
	h := value.NewHeap()
	v := readOne(t, "(1 2 3)")
	elems, ok := value.ListToSlice(v)
	if !ok {
		t.Fatalf("expected a proper list, got %v", v)
	}
	want := []value.Value{value.IntVal(1), value.IntVal(2), value.IntVal(3)}
	if len(elems) != len(want) {
		t.Fatalf("len = %d, want %d", len(elems), len(want))
	}
	for i := range want {
		if elems[i] != want[i] {
			t.Errorf("elem %d = %v, want %v", i, elems[i], want[i])
		}
	}
	_ = h
}

func TestReadDottedPair(t *testing.T) {
	v := readOne(t, "(1 . 2)")
	p, ok := v.(*value.Pair)
	if !ok {
		t.Fatalf("expected a pair, got %v", v)
	}
	if p.Car != value.IntVal(1) || p.Cdr != value.IntVal(2) {
		t.Errorf("got (%v . %v), want (1 . 2)", p.Car, p.Cdr)
	}
	if value.IsList(v) {
		t.Error("(1 . 2) must not be a proper list")
	}
}

func TestReadNestedList(t *testing.T) {
	v := readOne(t, "(1 (2 3) 4)")
	elems, ok := value.ListToSlice(v)
	if !ok || len(elems) != 3 {
		t.Fatalf("got %v", v)
	}
	inner, ok := value.ListToSlice(elems[1])
	if !ok || len(inner) != 2 {
		t.Fatalf("inner list: got %v", elems[1])
	}
}

func TestReadVector(t *testing.T) {
	v := readOne(t, "#(1 2 3)")
	vec, ok := v.(*value.VectorVal)
	if !ok {
		t.Fatalf("expected a vector, got %v", v)
	}
	if vec.Len() != 3 {
		t.Fatalf("len = %d, want 3", vec.Len())
	}
}

func TestReadQuoteAbbreviations(t *testing.T) {
	cases := []struct {
		src  string
		head string
	}{
		{"'x", "quote"},
		{"`x", "quasiquote"},
		{",x", "unquote"},
		{",@x", "unquote-splicing"},
	}
	for _, c := range cases {
		v := readOne(t, c.src)
		elems, ok := value.ListToSlice(v)
		if !ok || len(elems) != 2 {
			t.Fatalf("%s: expected a 2-element list, got %v", c.src, v)
		}
		sym, ok := elems[0].(*value.Symbol)
		if !ok || sym.Name != c.head {
			t.Errorf("%s: head = %v, want %s", c.src, elems[0], c.head)
		}
	}
}

func TestReadAllMultipleTopLevelForms(t *testing.T) {
	h := value.NewHeap()
	r, err := New("(define x 1) (+ x 2)", "test", h)
	if err != nil {
		t.Fatal(err)
	}
	forms, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
}

func TestReadEmptySourceReturnsEOF(t *testing.T) {
	h := value.NewHeap()
	r, err := New("", "test", h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestReadUnterminatedListIsError(t *testing.T) {
	h := value.NewHeap()
	r, err := New("(1 2", "test", h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(); err == nil {
		t.Error("expected an unterminated-list error")
	}
}

func TestReadStrayCloseParenIsError(t *testing.T) {
	h := value.NewHeap()
	r, err := New(")", "test", h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(); err == nil {
		t.Error("expected a stray-)-is-error result")
	}
}
