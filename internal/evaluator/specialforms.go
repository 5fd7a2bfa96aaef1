package evaluator

import (
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/value"
)

// specialFormFunc receives a special form's unevaluated operand list (the
// cdr of the form) and the environment it was invoked in. It returns either
// a final value, or a (expr, env) tail continuation for Eval's loop to pick
// up without recursing, so that tail positions never grow the Go stack.
type specialFormFunc func(operands value.Value, env *value.Environment) (value.Value, *tailCall, error)

// specialForms is the dispatch table of recognized special forms.
// quasiquote/unquote/unquote-splicing are reader abbreviations only and are
// deliberately not present here, so a bare `(quasiquote x)` form falls
// through to ordinary procedure application and raises UnboundVariable,
// exactly as an unrecognized operator would.
var specialForms map[string]specialFormFunc

func init() {
	specialForms = map[string]specialFormFunc{
		"quote":  sfQuote,
		"if":     sfIf,
		"set!":   sfSet,
		"define": sfDefine,
		"lambda": sfLambda,
		"begin":  sfBegin,
		"cond":   sfCond,
		"case":   sfCase,
		"and":    sfAnd,
		"or":     sfOr,
		"let":    sfLet,
		"let*":   sfLetStar,
		"letrec": sfLetrec,
		"do":     sfDo,
		"delay":  sfDelay,
	}
}

func operandSlice(operands value.Value, form string) ([]value.Value, error) {
	elems, ok := value.ListToSlice(operands)
	if !ok {
		return nil, schemerr.BadClauseShape(form, "operands must be a proper list")
	}
	return elems, nil
}

func sfQuote(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "quote")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) != 1 {
		return nil, nil, schemerr.ArityExact("quote", 1, len(ops))
	}
	return ops[0], nil, nil
}

func sfIf(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "if")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) != 2 && len(ops) != 3 {
		return nil, nil, schemerr.BadClauseShape("if", "expected (if test then [else])")
	}
	test, err := Eval(ops[0], env)
	if err != nil {
		return nil, nil, err
	}
	if value.IsTruthy(test) {
		return nil, &tailCall{ops[1], env}, nil
	}
	if len(ops) == 3 {
		return nil, &tailCall{ops[2], env}, nil
	}
	return value.Empty, nil, nil
}

func sfSet(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "set!")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) != 2 {
		return nil, nil, schemerr.ArityExact("set!", 2, len(ops))
	}
	sym, ok := ops[0].(*value.Symbol)
	if !ok {
		return nil, nil, schemerr.WrongType("symbol", ops[0].Kind().String())
	}
	v, err := Eval(ops[1], env)
	if err != nil {
		return nil, nil, err
	}
	if !env.Assign(sym, v) {
		return nil, nil, schemerr.Unbound(sym.Name)
	}
	return value.Empty, nil, nil
}

func sfDefine(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "define")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) < 1 {
		return nil, nil, schemerr.BadClauseShape("define", "expected (define v e) or (define (f args...) body...)")
	}

	switch head := ops[0].(type) {
	case *value.Symbol:
		var v value.Value = value.Empty
		if len(ops) >= 2 {
			v, err = Eval(ops[1], env)
			if err != nil {
				return nil, nil, err
			}
		}
		env.Define(head, v)
		return head, nil, nil

	case *value.Pair:
		nameSym, ok := head.Car.(*value.Symbol)
		if !ok {
			return nil, nil, schemerr.BadClauseShape("define", "procedure name must be a symbol")
		}
		formals, err := parseFormals(head.Cdr)
		if err != nil {
			return nil, nil, err
		}
		if len(ops) < 2 {
			return nil, nil, schemerr.BadClauseShape("define", "procedure definition needs a body")
		}
		proc := &value.Procedure{Name: nameSym.Name, Formals: formals, Body: ops[1:], Env: env}
		env.Define(nameSym, proc)
		return nameSym, nil, nil

	default:
		return nil, nil, schemerr.BadClauseShape("define", "expected a symbol or a procedure-header list")
	}
}

func sfLambda(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "lambda")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) < 2 {
		return nil, nil, schemerr.BadClauseShape("lambda", "expected (lambda formals body...)")
	}
	formals, err := parseFormals(ops[0])
	if err != nil {
		return nil, nil, err
	}
	return &value.Procedure{Formals: formals, Body: ops[1:], Env: env}, nil, nil
}

// evalAllButLast evaluates every form but the last for effect, returning
// the last form unevaluated for the caller to hand back as a tail call.
func evalAllButLast(forms []value.Value, env *value.Environment) (value.Value, error) {
	for _, f := range forms[:len(forms)-1] {
		if _, err := Eval(f, env); err != nil {
			return nil, err
		}
	}
	return forms[len(forms)-1], nil
}

func sfBegin(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "begin")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) == 0 {
		return value.Empty, nil, nil
	}
	last, err := evalAllButLast(ops, env)
	if err != nil {
		return nil, nil, err
	}
	return nil, &tailCall{last, env}, nil
}

func sfCond(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	clauses, err := operandSlice(operands, "cond")
	if err != nil {
		return nil, nil, err
	}
	elseSym := env.Heap().Wellknown.Else
	arrowSym := env.Heap().Wellknown.Arrow

	for _, clause := range clauses {
		parts, ok := value.ListToSlice(clause)
		if !ok || len(parts) == 0 {
			return nil, nil, schemerr.BadClauseShape("cond", "each clause must be a non-empty list")
		}

		if sym, ok := parts[0].(*value.Symbol); ok && sym == elseSym {
			if len(parts) == 1 {
				return value.Empty, nil, nil
			}
			last, err := evalAllButLast(parts[1:], env)
			if err != nil {
				return nil, nil, err
			}
			return nil, &tailCall{last, env}, nil
		}

		test, err := Eval(parts[0], env)
		if err != nil {
			return nil, nil, err
		}
		if !value.IsTruthy(test) {
			continue
		}
		if len(parts) == 1 {
			return test, nil, nil
		}
		if sym, ok := parts[1].(*value.Symbol); ok && sym == arrowSym {
			if len(parts) != 3 {
				return nil, nil, schemerr.BadClauseShape("cond", "(test => proc) clause malformed")
			}
			procVal, err := Eval(parts[2], env)
			if err != nil {
				return nil, nil, err
			}
			val, tail, err := applyTail(procVal, []value.Value{test})
			return val, tail, err
		}
		last, err := evalAllButLast(parts[1:], env)
		if err != nil {
			return nil, nil, err
		}
		return nil, &tailCall{last, env}, nil
	}
	return value.Empty, nil, nil
}

func sfCase(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "case")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) < 1 {
		return nil, nil, schemerr.BadClauseShape("case", "expected (case key clause...)")
	}
	key, err := Eval(ops[0], env)
	if err != nil {
		return nil, nil, err
	}
	elseSym := env.Heap().Wellknown.Else

	for _, clause := range ops[1:] {
		parts, ok := value.ListToSlice(clause)
		if !ok || len(parts) == 0 {
			return nil, nil, schemerr.BadClauseShape("case", "each clause must be a non-empty list")
		}

		matched := false
		if sym, ok := parts[0].(*value.Symbol); ok && sym == elseSym {
			matched = true
		} else {
			datums, ok := value.ListToSlice(parts[0])
			if !ok {
				return nil, nil, schemerr.BadClauseShape("case", "clause datum list must be a proper list")
			}
			for _, d := range datums {
				if value.Eqv(d, key) {
					matched = true
					break
				}
			}
		}
		if !matched {
			continue
		}
		if len(parts) == 1 {
			return value.Empty, nil, nil
		}
		last, err := evalAllButLast(parts[1:], env)
		if err != nil {
			return nil, nil, err
		}
		return nil, &tailCall{last, env}, nil
	}
	return value.Empty, nil, nil
}

func sfAnd(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "and")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) == 0 {
		return value.True, nil, nil
	}
	for _, e := range ops[:len(ops)-1] {
		v, err := Eval(e, env)
		if err != nil {
			return nil, nil, err
		}
		if !value.IsTruthy(v) {
			return v, nil, nil
		}
	}
	return nil, &tailCall{ops[len(ops)-1], env}, nil
}

func sfOr(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "or")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) == 0 {
		return value.False, nil, nil
	}
	for _, e := range ops[:len(ops)-1] {
		v, err := Eval(e, env)
		if err != nil {
			return nil, nil, err
		}
		if value.IsTruthy(v) {
			return v, nil, nil
		}
	}
	return nil, &tailCall{ops[len(ops)-1], env}, nil
}

// bindingSpec parses one `(v e)` entry from let/let*/letrec's binding list.
func bindingSpec(b value.Value, form string) (*value.Symbol, value.Value, error) {
	parts, ok := value.ListToSlice(b)
	if !ok || len(parts) != 2 {
		return nil, nil, schemerr.BadClauseShape(form, "each binding must be (variable init-expr)")
	}
	sym, ok := parts[0].(*value.Symbol)
	if !ok {
		return nil, nil, schemerr.BadClauseShape(form, "binding variable must be a symbol")
	}
	return sym, parts[1], nil
}

func sfLet(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "let")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) < 1 {
		return nil, nil, schemerr.BadClauseShape("let", "expected (let (bindings...) body...)")
	}
	bindings, ok := value.ListToSlice(ops[0])
	if !ok {
		return nil, nil, schemerr.BadClauseShape("let", "bindings must be a proper list")
	}

	syms := make([]*value.Symbol, len(bindings))
	vals := make([]value.Value, len(bindings))
	for i, b := range bindings {
		sym, initExpr, err := bindingSpec(b, "let")
		if err != nil {
			return nil, nil, err
		}
		v, err := Eval(initExpr, env)
		if err != nil {
			return nil, nil, err
		}
		syms[i], vals[i] = sym, v
	}

	child := env.Heap().NewEnvironment(env)
	for i, sym := range syms {
		child.Define(sym, vals[i])
	}

	body := ops[1:]
	if len(body) == 0 {
		return value.Empty, nil, nil
	}
	last, err := evalAllButLast(body, child)
	if err != nil {
		return nil, nil, err
	}
	return nil, &tailCall{last, child}, nil
}

func sfLetStar(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "let*")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) < 1 {
		return nil, nil, schemerr.BadClauseShape("let*", "expected (let* (bindings...) body...)")
	}
	bindings, ok := value.ListToSlice(ops[0])
	if !ok {
		return nil, nil, schemerr.BadClauseShape("let*", "bindings must be a proper list")
	}

	child := env.Heap().NewEnvironment(env)
	for _, b := range bindings {
		sym, initExpr, err := bindingSpec(b, "let*")
		if err != nil {
			return nil, nil, err
		}
		v, err := Eval(initExpr, child)
		if err != nil {
			return nil, nil, err
		}
		child.Define(sym, v)
	}

	body := ops[1:]
	if len(body) == 0 {
		return value.Empty, nil, nil
	}
	last, err := evalAllButLast(body, child)
	if err != nil {
		return nil, nil, err
	}
	return nil, &tailCall{last, child}, nil
}

func sfLetrec(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "letrec")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) < 1 {
		return nil, nil, schemerr.BadClauseShape("letrec", "expected (letrec (bindings...) body...)")
	}
	bindings, ok := value.ListToSlice(ops[0])
	if !ok {
		return nil, nil, schemerr.BadClauseShape("letrec", "bindings must be a proper list")
	}

	syms := make([]*value.Symbol, len(bindings))
	inits := make([]value.Value, len(bindings))
	child := env.Heap().NewEnvironment(env)
	for i, b := range bindings {
		sym, initExpr, err := bindingSpec(b, "letrec")
		if err != nil {
			return nil, nil, err
		}
		syms[i], inits[i] = sym, initExpr
		child.Define(sym, value.Empty)
	}
	for i, sym := range syms {
		v, err := Eval(inits[i], child)
		if err != nil {
			return nil, nil, err
		}
		child.Assign(sym, v)
	}

	body := ops[1:]
	if len(body) == 0 {
		return value.Empty, nil, nil
	}
	last, err := evalAllButLast(body, child)
	if err != nil {
		return nil, nil, err
	}
	return nil, &tailCall{last, child}, nil
}

type doVarSpec struct {
	sym  *value.Symbol
	step value.Value
}

func sfDo(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "do")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) < 2 {
		return nil, nil, schemerr.BadClauseShape("do", "expected (do (bindings...) (test result...) body...)")
	}
	varSpecsData, ok := value.ListToSlice(ops[0])
	if !ok {
		return nil, nil, schemerr.BadClauseShape("do", "variable clause must be a proper list")
	}
	testClause, ok := value.ListToSlice(ops[1])
	if !ok || len(testClause) < 1 {
		return nil, nil, schemerr.BadClauseShape("do", "expected (test result...)")
	}
	bodyForms := ops[2:]

	specs := make([]doVarSpec, len(varSpecsData))
	heap := env.Heap()
	child := heap.NewEnvironment(env)
	for i, raw := range varSpecsData {
		parts, ok := value.ListToSlice(raw)
		if !ok || (len(parts) != 2 && len(parts) != 3) {
			return nil, nil, schemerr.BadClauseShape("do", "each variable clause is (var init [step])")
		}
		sym, ok := parts[0].(*value.Symbol)
		if !ok {
			return nil, nil, schemerr.BadClauseShape("do", "do variable must be a symbol")
		}
		initVal, err := Eval(parts[1], env)
		if err != nil {
			return nil, nil, err
		}
		step := value.Value(sym)
		if len(parts) == 3 {
			step = parts[2]
		}
		specs[i] = doVarSpec{sym: sym, step: step}
		child.Define(sym, initVal)
	}

	for {
		testVal, err := Eval(testClause[0], child)
		if err != nil {
			return nil, nil, err
		}
		if value.IsTruthy(testVal) {
			results := testClause[1:]
			if len(results) == 0 {
				return value.Empty, nil, nil
			}
			last, err := evalAllButLast(results, child)
			if err != nil {
				return nil, nil, err
			}
			return nil, &tailCall{last, child}, nil
		}

		for _, f := range bodyForms {
			if _, err := Eval(f, child); err != nil {
				return nil, nil, err
			}
		}

		nextVals := make([]value.Value, len(specs))
		for i, spec := range specs {
			v, err := Eval(spec.step, child)
			if err != nil {
				return nil, nil, err
			}
			nextVals[i] = v
		}
		next := heap.NewEnvironment(env)
		for i, spec := range specs {
			next.Define(spec.sym, nextVals[i])
		}
		child = next
	}
}

func sfDelay(operands value.Value, env *value.Environment) (value.Value, *tailCall, error) {
	ops, err := operandSlice(operands, "delay")
	if err != nil {
		return nil, nil, err
	}
	if len(ops) != 1 {
		return nil, nil, schemerr.ArityExact("delay", 1, len(ops))
	}
	return env.Heap().NewPromise(ops[0], env), nil, nil
}
