package builtins

import (
	"testing"

	"github.com/gophersource/schemer/internal/value"
)

func TestEvalPrimitiveEvaluatesInGivenEnvironment(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerReflection(r, heap)

	env := heap.NewEnvironment(nil)
	x := heap.Intern("x")
	env.Define(x, value.IntVal(41))

	got, err := callPrim(t, r, "eval", x, env)
	if err != nil {
		t.Fatal(err)
	}
	if got != value.IntVal(41) {
		t.Errorf("eval x = %v, want 41", got)
	}
}

func TestSchemeReportEnvironmentInstallsStandardBindings(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerReflection(r, heap)

	got, err := callPrim(t, r, "scheme-report-environment", value.IntVal(5))
	if err != nil {
		t.Fatal(err)
	}
	env, ok := got.(*value.Environment)
	if !ok {
		t.Fatalf("scheme-report-environment did not return an environment: %v", got)
	}
	if _, found := env.Lookup(heap.Intern("car")); !found {
		t.Error("scheme-report-environment should install the standard primitive library")
	}
}

func TestNullEnvironmentHasNoBindings(t *testing.T) {
	heap := value.NewHeap()
	r := newRegistry()
	registerReflection(r, heap)

	got, err := callPrim(t, r, "null-environment", value.IntVal(5))
	if err != nil {
		t.Fatal(err)
	}
	env := got.(*value.Environment)
	if env.Size() != 0 {
		t.Errorf("null-environment frame size = %d, want 0", env.Size())
	}
}
