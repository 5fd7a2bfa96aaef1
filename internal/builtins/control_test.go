package builtins

import (
	"testing"

	"github.com/gophersource/schemer/internal/value"
)

func doubleProc() *value.Procedure {
	return &value.Procedure{
		Name: "double",
		Prim: func(args []value.Value) (value.Value, error) {
			return value.IntVal(2 * int64(args[0].(value.IntVal))), nil
		},
	}
}

func addProc() *value.Procedure {
	return &value.Procedure{
		Name: "add",
		Prim: func(args []value.Value) (value.Value, error) {
			return value.IntVal(int64(args[0].(value.IntVal)) + int64(args[1].(value.IntVal))), nil
		},
	}
}

func TestProcedurePredicate(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerControl(r, heap)

	got, err := callPrim(t, r, "procedure?", doubleProc())
	if err != nil {
		t.Fatal(err)
	}
	if got != value.True {
		t.Error("procedure? of a Procedure should be #t")
	}

	got, err = callPrim(t, r, "procedure?", value.IntVal(1))
	if err != nil {
		t.Fatal(err)
	}
	if got != value.False {
		t.Error("procedure? of an integer should be #f")
	}
}

func TestApplySplicesLastArgument(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerControl(r, heap)

	rest := value.List(heap, value.IntVal(2), value.IntVal(3))
	got, err := callPrim(t, r, "apply", addProc(), value.IntVal(2), rest)
	if err != nil {
		t.Fatal(err)
	}
	if got != value.IntVal(4) {
		t.Errorf("apply add 2 '(2 3) = %v, want 4 (spliced args are [2 2 3], add reads the first two)", got)
	}
}

func TestMapAppliesAcrossList(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerControl(r, heap)

	list := value.List(heap, value.IntVal(1), value.IntVal(2), value.IntVal(3))
	got, err := callPrim(t, r, "map", doubleProc(), list)
	if err != nil {
		t.Fatal(err)
	}
	elems, ok := value.ListToSlice(got)
	if !ok {
		t.Fatalf("map result is not a proper list: %v", got)
	}
	want := []value.Value{value.IntVal(2), value.IntVal(4), value.IntVal(6)}
	for i := range want {
		if elems[i] != want[i] {
			t.Errorf("elem %d = %v, want %v", i, elems[i], want[i])
		}
	}
}

func TestMapRejectsMismatchedLengths(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerControl(r, heap)

	a := value.List(heap, value.IntVal(1), value.IntVal(2))
	b := value.List(heap, value.IntVal(1))
	if _, err := callPrim(t, r, "map", addProc(), a, b); err == nil {
		t.Error("expected an error for lists of different lengths")
	}
}

func TestForceMemoizesThunkResult(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerControl(r, heap)

	env := heap.NewEnvironment(nil)
	promise := heap.NewPromise(value.IntVal(3), env)

	first, err := callPrim(t, r, "force", promise)
	if err != nil {
		t.Fatal(err)
	}
	if first != value.IntVal(3) {
		t.Errorf("force = %v, want 3", first)
	}
	if !promise.IsForced() {
		t.Error("promise should be marked forced after force")
	}

	second, err := callPrim(t, r, "force", promise)
	if err != nil {
		t.Fatal(err)
	}
	if second != value.IntVal(3) {
		t.Errorf("second force = %v, want memoized 3", second)
	}
}

func TestForEachAppliesForEffect(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerControl(r, heap)

	var seen []int64
	proc := &value.Procedure{Name: "observe", Prim: func(args []value.Value) (value.Value, error) {
		seen = append(seen, int64(args[0].(value.IntVal)))
		return value.Empty, nil
	}}

	list := value.List(heap, value.IntVal(10), value.IntVal(20))
	if _, err := callPrim(t, r, "for-each", proc, list); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || seen[0] != 10 || seen[1] != 20 {
		t.Errorf("for-each visited %v, want [10 20]", seen)
	}
}
