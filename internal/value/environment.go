package value

// Environment is a mapping from interned symbols to values, with a
// back-pointer to an enclosing environment (nil for the top level).
//
// Grounded on internal/interp/runtime/environment.go, which keys its
// case-insensitive ident.Map by variable name and walks outward on
// Get/Set, installing only in the current frame on Define. Scheme symbols
// are case-sensitive, so the case-folding ident.Map has no role here; the
// key is simply the interned *Symbol, making lookups a pointer-keyed map
// access instead of a string-normalize-then-map access.
type Environment struct {
	vars  map[*Symbol]Value
	outer *Environment
	heap  *Heap
}

// Outer returns the enclosing environment, or nil at the top level.
func (e *Environment) Outer() *Environment { return e.outer }

// Heap returns the arena this environment (and any child frames created
// from it) allocates from.
func (e *Environment) Heap() *Heap { return e.heap }

func (*Environment) Kind() Kind { return KindEnvironment }

// Lookup walks outward from e, returning the first binding found for sym.
func (e *Environment) Lookup(sym *Symbol) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.vars[sym]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define installs (or replaces) a binding in e's own frame, never walking
// outward.
func (e *Environment) Define(sym *Symbol, v Value) {
	e.vars[sym] = v
}

// Assign walks outward from e and mutates the frame where sym is already
// bound. ok is false if sym is unbound anywhere in the chain.
func (e *Environment) Assign(sym *Symbol, v Value) (ok bool) {
	for env := e; env != nil; env = env.outer {
		if _, found := env.vars[sym]; found {
			env.vars[sym] = v
			return true
		}
	}
	return false
}

// Extend creates a child frame of e with params bound to args (lengths must
// already have been validated by the caller against the formals shape).
func (e *Environment) Extend(params []*Symbol, args []Value) *Environment {
	child := e.heap.NewEnvironment(e)
	for i, p := range params {
		child.vars[p] = args[i]
	}
	return child
}

// Size returns the number of bindings in e's own frame (not outer scopes).
func (e *Environment) Size() int { return len(e.vars) }
