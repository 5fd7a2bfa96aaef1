// Package evaluator implements the environment-threaded tree-walking
// evaluator over datum values produced by internal/reader.
//
// Grounded on internal/interp's tree-walking Eval (switch over ast.Node
// kinds dispatching to per-node eval methods) but restructured as an
// explicit trampoline: a plain recursive walk is not tail-call-safe, and
// tail positions in if/cond/case/and/or/begin/let/let*/letrec/do and a
// procedure's last body form must not grow the host call stack. Eval's for
// loop rebinds (expr, env) in place for those positions instead of
// recursing.
package evaluator

import (
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/value"
)

// tailCall names an (expr, env) pair still to be evaluated in tail
// position; returning one from a special-form handler or from applyTail
// lets Eval's loop continue without growing the Go stack.
type tailCall struct {
	expr value.Value
	env  *value.Environment
}

// Eval walks expr under env: self-evaluating kinds return themselves,
// symbols resolve through the environment chain, and pairs are either a
// recognized special form or a procedure application.
func Eval(expr value.Value, env *value.Environment) (value.Value, error) {
	for {
		switch e := expr.(type) {
		case *value.Symbol:
			v, ok := env.Lookup(e)
			if !ok {
				return nil, schemerr.Unbound(e.Name)
			}
			return v, nil

		case *value.Pair:
			if sym, ok := e.Car.(*value.Symbol); ok {
				if sf, ok := specialForms[sym.Name]; ok {
					val, tail, err := sf(e.Cdr, env)
					if err != nil {
						return nil, err
					}
					if tail == nil {
						return val, nil
					}
					expr, env = tail.expr, tail.env
					continue
				}
			}

			opVal, err := Eval(e.Car, env)
			if err != nil {
				return nil, err
			}
			argVals, err := evalArgs(e.Cdr, env)
			if err != nil {
				return nil, err
			}
			val, tail, err := applyTail(opVal, argVals)
			if err != nil {
				return nil, err
			}
			if tail == nil {
				return val, nil
			}
			expr, env = tail.expr, tail.env
			continue

		default:
			// Bool, Int, Float, Char, String, Vector, EmptyList, Procedure,
			// Environment, Promise: all self-evaluating.
			return expr, nil
		}
	}
}

// evalArgs evaluates every operand in a procedure-application's cdr,
// left-to-right.
func evalArgs(operands value.Value, env *value.Environment) ([]value.Value, error) {
	elems, ok := value.ListToSlice(operands)
	if !ok {
		return nil, schemerr.New(schemerr.ParseError, "improper argument list in procedure application")
	}
	out := make([]value.Value, len(elems))
	for i, e := range elems {
		v, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Apply calls callee (a procedure) on already-evaluated args, running any
// tail position in the body to completion. Exported for internal/builtins'
// apply/map/for-each primitives, which need a concrete result rather than
// a tail continuation.
func Apply(callee value.Value, args []value.Value) (value.Value, error) {
	val, tail, err := applyTail(callee, args)
	if err != nil {
		return nil, err
	}
	if tail == nil {
		return val, nil
	}
	return Eval(tail.expr, tail.env)
}

// applyTail applies callee without growing the Go stack for its last body
// form. For a primitive it calls the Go handler directly. For a user
// procedure it checks arity, extends the captured environment, evaluates
// every body form but the last for effect, and returns the last form as a
// tail call instead of evaluating it here.
func applyTail(callee value.Value, args []value.Value) (value.Value, *tailCall, error) {
	proc, ok := callee.(*value.Procedure)
	if !ok {
		return nil, nil, schemerr.NotApplicable(callee.Kind().String())
	}
	if proc.IsPrimitive() {
		v, err := proc.Prim(args)
		if err != nil {
			return nil, nil, attachFrame(err, proc)
		}
		return v, nil, nil
	}
	if !proc.Formals.Accepts(len(args)) {
		return nil, nil, arityError(proc, len(args))
	}
	newEnv := bindFormals(proc, args)
	if len(proc.Body) == 0 {
		return value.Empty, nil, nil
	}
	for _, form := range proc.Body[:len(proc.Body)-1] {
		if _, err := Eval(form, newEnv); err != nil {
			return nil, nil, attachFrame(err, proc)
		}
	}
	return nil, &tailCall{expr: proc.Body[len(proc.Body)-1], env: newEnv}, nil
}

// attachFrame pushes proc's call frame onto err's stack trace if err is a
// *schemerr.SchemeError, so that the error a caller eventually sees carries
// the chain of procedure applications active when it was raised. A tail
// call (the last body form) is not wrapped here: like a real tail-call
// elimination, it keeps no frame of its own once control passes through it.
func attachFrame(err error, proc *value.Procedure) error {
	se, ok := err.(*schemerr.SchemeError)
	if !ok {
		return err
	}
	return se.WithStack(se.Stack.Push(schemerr.StackFrame{ProcName: procDisplayName(proc)}))
}

func procDisplayName(proc *value.Procedure) string {
	if proc.Name != "" {
		return proc.Name
	}
	return "#[lambda]"
}

func arityError(proc *value.Procedure, got int) error {
	name := procDisplayName(proc)
	if proc.Formals.Rest != nil || proc.Formals.IsSymbol {
		return schemerr.ArityAtLeast(name, len(proc.Formals.Required), got)
	}
	return schemerr.ArityExact(name, len(proc.Formals.Required), got)
}

// bindFormals extends proc's captured environment with args bound per its
// Formals shape.
func bindFormals(proc *value.Procedure, args []value.Value) *value.Environment {
	heap := proc.Env.Heap()
	child := heap.NewEnvironment(proc.Env)
	f := proc.Formals
	if f.IsSymbol {
		child.Define(f.Rest, value.List(heap, args...))
		return child
	}
	for i, p := range f.Required {
		child.Define(p, args[i])
	}
	if f.Rest != nil {
		child.Define(f.Rest, value.List(heap, args[len(f.Required):]...))
	}
	return child
}

// parseFormals recognizes the three lambda-formals shapes: a plain symbol
// (all arguments collected into a list), a proper list of symbols (fixed
// arity), and a dotted list (fixed arguments plus a rest symbol).
func parseFormals(formals value.Value) (value.Formals, error) {
	switch f := formals.(type) {
	case *value.Symbol:
		return value.Formals{IsSymbol: true, Rest: f}, nil
	case *value.EmptyListVal:
		return value.Formals{}, nil
	case *value.Pair:
		var required []*value.Symbol
		var cur value.Value = f
		for {
			pair, ok := cur.(*value.Pair)
			if !ok {
				break
			}
			sym, ok := pair.Car.(*value.Symbol)
			if !ok {
				return value.Formals{}, schemerr.BadClauseShape("lambda", "formal parameters must be symbols")
			}
			required = append(required, sym)
			cur = pair.Cdr
		}
		switch tail := cur.(type) {
		case *value.EmptyListVal:
			return value.Formals{Required: required}, nil
		case *value.Symbol:
			return value.Formals{Required: required, Rest: tail}, nil
		default:
			return value.Formals{}, schemerr.BadClauseShape("lambda", "dotted formals must end in a symbol")
		}
	default:
		return value.Formals{}, schemerr.BadClauseShape("lambda", "formals must be a symbol or a list of symbols")
	}
}
