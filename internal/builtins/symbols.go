package builtins

import "github.com/gophersource/schemer/internal/value"

func registerSymbols(r *Registry, heap *value.Heap) {
	r.register("symbol?", func(args []value.Value) (value.Value, error) {
		if err := wantExact("symbol?", 1, args); err != nil {
			return nil, err
		}
		_, ok := args[0].(*value.Symbol)
		return value.Bool(ok), nil
	}, CategorySymbol, "reports whether the argument is a symbol")

	r.register("symbol->string", func(args []value.Value) (value.Value, error) {
		if err := wantExact("symbol->string", 1, args); err != nil {
			return nil, err
		}
		sym, err := asSymbol("symbol->string", 0, args[0])
		if err != nil {
			return nil, err
		}
		return heap.NewReadOnlyString(sym.Name), nil
	}, CategorySymbol, "returns a symbol's name as a string")

	r.register("string->symbol", func(args []value.Value) (value.Value, error) {
		if err := wantExact("string->symbol", 1, args); err != nil {
			return nil, err
		}
		s, err := asString("string->symbol", 0, args[0])
		if err != nil {
			return nil, err
		}
		return heap.Intern(s.String()), nil
	}, CategorySymbol, "interns a string's content as a symbol")
}
