package value

// Symbol is an interned identifier. Identity is its name: two lookups of the
// same name, whether via the reader or via string->symbol, return the exact
// same *Symbol, so that (eq? 'x 'x) holds regardless of how many times 'x'
// was read.
type Symbol struct {
	Name string
}

func (*Symbol) Kind() Kind { return KindSymbol }

// SymbolTable is a process-wide-by-convention interning table. A Heap owns
// one; library embedders who need isolated symbol spaces (e.g. parallel
// test cases with private environments) construct their own Heap.
type SymbolTable struct {
	byName map[string]*Symbol
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]*Symbol, 256)}
}

// Intern returns the unique *Symbol for name, allocating it on first use.
func (t *SymbolTable) Intern(name string) *Symbol {
	if s, ok := t.byName[name]; ok {
		return s
	}
	s := &Symbol{Name: name}
	t.byName[name] = s
	return s
}

// well-known symbols used by the evaluator to recognize special forms and
// by quote expansion in the reader. Interning these once on Heap creation
// avoids repeated map lookups for the hottest identifiers in any program.
type Wellknown struct {
	Quote, Quasiquote, Unquote, UnquoteSplicing *Symbol
	Else, Arrow                                 *Symbol
}

func internWellknown(t *SymbolTable) Wellknown {
	return Wellknown{
		Quote:            t.Intern("quote"),
		Quasiquote:       t.Intern("quasiquote"),
		Unquote:          t.Intern("unquote"),
		UnquoteSplicing:  t.Intern("unquote-splicing"),
		Else:             t.Intern("else"),
		Arrow:            t.Intern("=>"),
	}
}
