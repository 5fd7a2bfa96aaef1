// Package builtins implements the standard primitive library: the fixed
// table of procedures installed into every fresh top-level environment.
//
// Grounded on internal/interp/builtins's registry (Registry.Register(name,
// fn, category, description) keyed by lowercased name, since DWScript
// identifiers are case-insensitive) adapted for Scheme's case-sensitive
// symbols: names are stored and looked up exactly as written.
package builtins

import (
	"sort"

	"github.com/gophersource/schemer/internal/value"
)

// Category groups primitives by the section of the primitive table they
// belong to.
type Category string

const (
	CategoryEquivalence Category = "equivalence"
	CategoryBoolean     Category = "boolean"
	CategoryPair        Category = "pair"
	CategorySymbol      Category = "symbol"
	CategoryNumber      Category = "number"
	CategoryChar        Category = "char"
	CategoryString      Category = "string"
	CategoryVector      Category = "vector"
	CategoryControl     Category = "control"
	CategoryReflection  Category = "reflection"
)

// Entry is one registered primitive.
type Entry struct {
	Name        string
	Fn          value.BuiltinFunc
	Category    Category
	Description string
}

// Registry holds the full primitive table before installation into an
// environment. NewStandard builds one for a given heap, and Install copies
// its entries into a top-level environment's frame.
type Registry struct {
	entries    map[string]*Entry
	categories map[Category][]string
}

func newRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry), categories: make(map[Category][]string)}
}

func (r *Registry) register(name string, fn value.BuiltinFunc, category Category, description string) {
	if _, exists := r.entries[name]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.entries[name] = &Entry{Name: name, Fn: fn, Category: category, Description: description}
}

// Lookup finds a primitive by exact name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// ByCategory returns every entry in category, sorted by name.
func (r *Registry) ByCategory(category Category) []*Entry {
	names := append([]string(nil), r.categories[category]...)
	sort.Strings(names)
	out := make([]*Entry, 0, len(names))
	for _, n := range names {
		out = append(out, r.entries[n])
	}
	return out
}

// Categories lists every category with at least one registered primitive.
func (r *Registry) Categories() []Category {
	out := make([]Category, 0, len(r.categories))
	for c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Install installs every registered primitive into env as a Procedure
// bound to its interned symbol.
func (r *Registry) Install(env *value.Environment) {
	for name, e := range r.entries {
		sym := env.Heap().Intern(name)
		env.Define(sym, &value.Procedure{Name: name, Prim: e.Fn})
	}
}

// NewStandard builds the full standard primitive table, with every entry's
// closures bound to heap (cons, string, and vector allocators all need to
// know which arena to allocate from). One Registry is built per heap
// rather than shared process-wide, since a Heap's symbol table and
// allocation counters are themselves per-instance.
func NewStandard(heap *value.Heap) *Registry {
	r := newRegistry()
	registerEquivalence(r)
	registerBooleans(r)
	registerPairs(r, heap)
	registerSymbols(r, heap)
	registerNumbers(r, heap)
	registerChars(r)
	registerStrings(r, heap)
	registerVectors(r, heap)
	registerControl(r, heap)
	registerReflection(r, heap)
	return r
}
