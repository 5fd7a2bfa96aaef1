package builtins

import (
	"github.com/gophersource/schemer/internal/evaluator"
	"github.com/gophersource/schemer/internal/value"
)

// registerReflection wires the Reflection group: eval takes a
// datum and an environment value; scheme-report-environment and
// null-environment both accept a version integer (ignored beyond type
// checking, since this implementation has only one report version) and
// return a fresh top-level environment. That environment is an ordinary
// mutable frame, not a frozen one: define and set! can change its bindings.
func registerReflection(r *Registry, heap *value.Heap) {
	r.register("eval", func(args []value.Value) (value.Value, error) {
		if err := wantExact("eval", 2, args); err != nil {
			return nil, err
		}
		env, ok := args[1].(*value.Environment)
		if !ok {
			return nil, wrongType("eval", 1, "environment", args[1])
		}
		return evaluator.Eval(args[0], env)
	}, CategoryReflection, "evaluates a datum in a given environment")

	r.register("scheme-report-environment", func(args []value.Value) (value.Value, error) {
		if err := wantExact("scheme-report-environment", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("scheme-report-environment", 0, args[0]); err != nil {
			return nil, err
		}
		env := heap.NewEnvironment(nil)
		NewStandard(heap).Install(env)
		return env, nil
	}, CategoryReflection, "returns a fresh environment with the standard bindings installed")

	r.register("null-environment", func(args []value.Value) (value.Value, error) {
		if err := wantExact("null-environment", 1, args); err != nil {
			return nil, err
		}
		if err := asNumber("null-environment", 0, args[0]); err != nil {
			return nil, err
		}
		// Special-form keywords are dispatched by the evaluator's own
		// syntax table, not looked up through the environment chain, so a
		// "syntax-only" environment is simply an empty top-level frame.
		return heap.NewEnvironment(nil), nil
	}, CategoryReflection, "returns a fresh environment with no bindings beyond syntactic keywords")
}
