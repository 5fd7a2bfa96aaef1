package value

// Promise is a memoized deferred computation built by `delay`. The thunk
// expression and its captured environment are the unevaluated payload;
// Result is the memoized value once Forced, and is read/written exclusively
// by the evaluator's `force` implementation (internal/evaluator), which
// also owns the re-entrant-force rule: if forcing a promise recursively
// re-enters force on the same promise, the first completed result wins and
// later ones are discarded.
type Promise struct {
	thunk   Value
	env     *Environment
	forced  bool
	result  Value
	forcing bool
}

func (*Promise) Kind() Kind { return KindPromise }

func (p *Promise) Thunk() Value        { return p.thunk }
func (p *Promise) Env() *Environment   { return p.env }
func (p *Promise) IsForced() bool      { return p.forced }
func (p *Promise) Result() Value       { return p.result }
func (p *Promise) IsForcing() bool     { return p.forcing }
func (p *Promise) EnterForcing() bool  { already := p.forcing; p.forcing = true; return already }
func (p *Promise) LeaveForcing()       { p.forcing = false }

// Memoize stores v as the promise's result the first time it is called;
// later calls (from a recursive force that raced with an outer one) are
// no-ops, preserving the "first terminating value wins" rule.
func (p *Promise) Memoize(v Value) {
	if !p.forced {
		p.forced = true
		p.result = v
	}
}
