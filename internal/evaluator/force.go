package evaluator

import (
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/value"
)

// Force evaluates a promise's thunk in its captured environment on first
// call and memoizes the result; later calls return the memoized value. A
// force that recursively re-enters the same promise (the R5RS 6.4 counter
// example) lets the first completed value win. EnterForcing/Memoize on
// value.Promise implement the bookkeeping; this function implements the
// control flow that calls back into them.
func Force(v value.Value) (value.Value, error) {
	p, ok := v.(*value.Promise)
	if !ok {
		return nil, schemerr.WrongArgType("force", 1, "promise", v.Kind().String())
	}
	if p.IsForced() {
		return p.Result(), nil
	}
	alreadyForcing := p.EnterForcing()
	result, err := Eval(p.Thunk(), p.Env())
	if !alreadyForcing {
		p.LeaveForcing()
	}
	if err != nil {
		return nil, err
	}
	p.Memoize(result)
	return p.Result(), nil
}
