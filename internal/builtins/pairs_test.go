package builtins

import (
	"testing"

	"github.com/gophersource/schemer/internal/value"
)

func TestCarCdrOfEmptyListError(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerPairs(r, heap)

	if _, err := callPrim(t, r, "car", value.Empty); err == nil {
		t.Error("car of '() should error")
	}
	if _, err := callPrim(t, r, "cdr", value.Empty); err == nil {
		t.Error("cdr of '() should error")
	}
}

func TestListTailOutOfRange(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerPairs(r, heap)

	list := value.List(heap, value.IntVal(1), value.IntVal(2), value.IntVal(3), value.IntVal(4))
	if _, err := callPrim(t, r, "list-tail", list, value.IntVal(10)); err == nil {
		t.Error("list-tail past the end should error")
	}
}

func TestListTailWithinRange(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerPairs(r, heap)

	list := value.List(heap, value.IntVal(1), value.IntVal(2), value.IntVal(3), value.IntVal(4))
	got, err := callPrim(t, r, "list-tail", list, value.IntVal(2))
	if err != nil {
		t.Fatal(err)
	}
	elems, ok := value.ListToSlice(got)
	if !ok || len(elems) != 2 || elems[0] != value.IntVal(3) {
		t.Errorf("list-tail '(1 2 3 4) 2 = %v, want (3 4)", got)
	}
}

func TestListPredicateRejectsCircularList(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerPairs(r, heap)

	p := heap.NewPair(value.IntVal(1), value.Empty)
	p.Cdr = p // self-referential

	got, err := callPrim(t, r, "list?", p)
	if err != nil {
		t.Fatal(err)
	}
	if got != value.False {
		t.Errorf("list? of a self-referential pair = %v, want #f", got)
	}
}

func TestMemqMemvMemberSearch(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerPairs(r, heap)

	list := value.List(heap, value.IntVal(1), value.IntVal(2), value.IntVal(3))

	got, err := callPrim(t, r, "memq", value.IntVal(2), list)
	if err != nil {
		t.Fatal(err)
	}
	elems, ok := value.ListToSlice(got)
	if !ok || len(elems) != 2 || elems[0] != value.IntVal(2) {
		t.Errorf("memq 2 '(1 2 3) = %v, want (2 3)", got)
	}

	got, err = callPrim(t, r, "memq", value.IntVal(9), list)
	if err != nil {
		t.Fatal(err)
	}
	if got != value.False {
		t.Errorf("memq of an absent element = %v, want #f", got)
	}
}

func TestAssqAssocSearch(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerPairs(r, heap)

	alist := value.List(heap,
		heap.NewPair(value.IntVal(1), heap.Intern("one")),
		heap.NewPair(value.IntVal(2), heap.Intern("two")),
	)

	got, err := callPrim(t, r, "assq", value.IntVal(2), alist)
	if err != nil {
		t.Fatal(err)
	}
	pair, ok := got.(*value.Pair)
	if !ok || pair.Car != value.IntVal(2) {
		t.Errorf("assq 2 = %v, want entry keyed on 2", got)
	}

	got, err = callPrim(t, r, "assq", value.IntVal(3), alist)
	if err != nil {
		t.Fatal(err)
	}
	if got != value.False {
		t.Errorf("assq of an absent key = %v, want #f", got)
	}
}

func TestAppendSharesLastArgument(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerPairs(r, heap)

	a := value.List(heap, value.IntVal(1), value.IntVal(2))
	b := value.List(heap, value.IntVal(3), value.IntVal(4))

	got, err := callPrim(t, r, "append", a, b)
	if err != nil {
		t.Fatal(err)
	}
	elems, ok := value.ListToSlice(got)
	if !ok || len(elems) != 4 {
		t.Fatalf("append '(1 2) '(3 4) = %v", got)
	}
}

func TestReverseAllocatesFreshList(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerPairs(r, heap)

	orig := value.List(heap, value.IntVal(1), value.IntVal(2), value.IntVal(3))
	got, err := callPrim(t, r, "reverse", orig)
	if err != nil {
		t.Fatal(err)
	}
	elems, ok := value.ListToSlice(got)
	if !ok || elems[0] != value.IntVal(3) || elems[2] != value.IntVal(1) {
		t.Errorf("reverse '(1 2 3) = %v, want (3 2 1)", got)
	}
}
