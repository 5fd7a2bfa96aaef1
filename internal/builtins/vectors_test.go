package builtins

import (
	"testing"

	"github.com/gophersource/schemer/internal/value"
)

func TestVectorBasics(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerVectors(r, heap)

	got, err := callPrim(t, r, "vector", value.IntVal(1), value.IntVal(2), value.IntVal(3))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := got.(*value.VectorVal)
	if !ok || v.Len() != 3 {
		t.Fatalf("vector 1 2 3 = %v", got)
	}

	got, err = callPrim(t, r, "vector-ref", v, value.IntVal(1))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.IntVal(2) {
		t.Errorf("vector-ref = %v, want 2", got)
	}
}

func TestMakeVectorFillDefault(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerVectors(r, heap)

	got, err := callPrim(t, r, "make-vector", value.IntVal(3), value.IntVal(9))
	if err != nil {
		t.Fatal(err)
	}
	v := got.(*value.VectorVal)
	for i := 0; i < v.Len(); i++ {
		elem, _ := v.At(i)
		if elem != value.IntVal(9) {
			t.Errorf("make-vector elem %d = %v, want 9", i, elem)
		}
	}
}

func TestMakeVectorRejectsNegativeLength(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerVectors(r, heap)

	if _, err := callPrim(t, r, "make-vector", value.IntVal(-1)); err == nil {
		t.Error("expected a negative-length error")
	}
}

func TestVectorSetOutOfRange(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerVectors(r, heap)

	v := heap.NewVector([]value.Value{value.IntVal(1)})
	if _, err := callPrim(t, r, "vector-set!", v, value.IntVal(5), value.IntVal(0)); err == nil {
		t.Error("expected an out-of-range error")
	}
}

func TestVectorListConversions(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerVectors(r, heap)

	list := value.List(heap, value.IntVal(1), value.IntVal(2))
	got, err := callPrim(t, r, "vector->list", heap.NewVector([]value.Value{value.IntVal(1), value.IntVal(2)}))
	if err != nil {
		t.Fatal(err)
	}
	elems, ok := value.ListToSlice(got)
	if !ok || len(elems) != 2 {
		t.Fatalf("vector->list = %v", got)
	}

	back, err := callPrim(t, r, "list->vector", list)
	if err != nil {
		t.Fatal(err)
	}
	if back.(*value.VectorVal).Len() != 2 {
		t.Errorf("list->vector len = %d, want 2", back.(*value.VectorVal).Len())
	}
}
