package value

import "sync/atomic"

// Heap is the process-wide arena: the single owner of every heap-allocated
// value and of the symbol-interning table. Go's own garbage collector
// provides tracing collection over the arena; every Value the evaluator or
// reader produces is an ordinary Go heap allocation reachable the normal
// way, so correctness of collection is inherited from the runtime rather
// than hand-rolled.
//
// What Heap adds on top of plain `new`/`make` is a single interning table
// (so eq? identity on symbols holds process-wide), a Root type for
// embedders who want a scoped-handle vocabulary at the API boundary (see
// pkg/schemer), and allocation counters that support a "purge" diagnostic
// without requiring a hand-written sweep.
type Heap struct {
	symbols   *SymbolTable
	Wellknown Wellknown

	allocs  int64
	purges  int64
	roots   int64
}

// NewHeap creates a fresh arena with its own symbol table. Symbols interned
// on different heaps are distinct, so values that are compared with eq?
// need to come from one heap; pkg/schemer's MakeTopLevelEnv creates a new
// heap on each call.
func NewHeap() *Heap {
	st := newSymbolTable()
	return &Heap{
		symbols:   st,
		Wellknown: internWellknown(st),
	}
}

// Intern returns the unique *Symbol for name on this heap.
func (h *Heap) Intern(name string) *Symbol {
	atomic.AddInt64(&h.allocs, 1)
	return h.symbols.Intern(name)
}

func (h *Heap) countAlloc() { atomic.AddInt64(&h.allocs, 1) }

// NewPair allocates a fresh, mutable pair. Two calls never return the same
// pair, even with identical car/cdr: pair allocation is always by reference
// identity.
func (h *Heap) NewPair(car, cdr Value) *Pair {
	h.countAlloc()
	return &Pair{Car: car, Cdr: cdr}
}

// NewString allocates a fresh mutable string from a byte sequence.
func (h *Heap) NewString(s string) *StringVal {
	h.countAlloc()
	return &StringVal{bytes: []byte(s)}
}

// NewReadOnlyString allocates a string flagged read-only; set-car!-style
// mutators on it (string-set!) fail with a ReadOnly error.
func (h *Heap) NewReadOnlyString(s string) *StringVal {
	sv := h.NewString(s)
	sv.readOnly = true
	return sv
}

// NewVector allocates a fresh mutable vector holding elems (not copied).
func (h *Heap) NewVector(elems []Value) *VectorVal {
	h.countAlloc()
	return &VectorVal{Elems: elems}
}

// NewEnvironment allocates a fresh environment frame enclosed by outer (nil
// for a top-level frame).
func (h *Heap) NewEnvironment(outer *Environment) *Environment {
	h.countAlloc()
	return &Environment{vars: make(map[*Symbol]Value), outer: outer, heap: h}
}

// NewPromise allocates a fresh, unforced promise over thunk evaluated in env.
func (h *Heap) NewPromise(thunk Value, env *Environment) *Promise {
	h.countAlloc()
	return &Promise{thunk: thunk, env: env}
}

// NewRoot pins v against the caller's use. Because Go's GC already keeps
// anything reachable from a live variable alive, Root does not perform any
// additional bookkeeping of its own; it exists so embedders have a literal
// scoped-handle type to hold, release, and pass around.
func (h *Heap) NewRoot(v Value) *Root {
	atomic.AddInt64(&h.roots, 1)
	return &Root{v: v, heap: h}
}

// Purge is the bulk-purge hook a driver may call between top-level
// evaluations. Go's GC runs on its own schedule regardless; Purge only
// resets the diagnostic counters so Stats reports per-generation
// allocation activity instead of a lifetime total.
func (h *Heap) Purge() {
	atomic.StoreInt64(&h.allocs, 0)
	atomic.AddInt64(&h.purges, 1)
}

// Stats reports allocation/root/purge counters for diagnostics and tests.
type Stats struct {
	Allocs int64
	Roots  int64
	Purges int64
}

func (h *Heap) Stats() Stats {
	return Stats{
		Allocs: atomic.LoadInt64(&h.allocs),
		Roots:  atomic.LoadInt64(&h.roots),
		Purges: atomic.LoadInt64(&h.purges),
	}
}

// Root is a scoped handle pinning a value graph reachable from itself. See
// the Heap.NewRoot doc comment for why this is a thin wrapper rather than
// a manual mark-sweep participant.
type Root struct {
	v     Value
	heap  *Heap
	freed bool
}

// Value returns the root's pinned value. Calling it after Release is a bug
// in the caller; it still returns the value since Go's GC has no notion of
// "freed" memory to detect the misuse against.
func (r *Root) Value() Value { return r.v }

// Release relinquishes the root. Once every root over a subgraph is
// released, that subgraph is eligible for collection the next time Go's GC
// runs; there is nothing else for this implementation to do.
func (r *Root) Release() {
	if r.freed {
		return
	}
	r.freed = true
	atomic.AddInt64(&r.heap.roots, -1)
}
