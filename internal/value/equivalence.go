package value

// Eq implements eq?: identity for every heap-allocated kind (pairs,
// vectors, strings, procedures, environments, promises, symbols) and
// singleton identity for the empty list and booleans. For characters and
// numbers, eq? falls back to the same value-equality eqv? uses. R5RS
// leaves eq? on numbers/chars implementation-defined, and since this
// implementation represents them as immediate Go values rather than boxed
// heap cells, there is no separate "different allocation, same value" case
// to distinguish.
func Eq(a, b Value) bool {
	switch av := a.(type) {
	case *EmptyListVal:
		_, ok := b.(*EmptyListVal)
		return ok
	case *BoolVal:
		bv, ok := b.(*BoolVal)
		return ok && av == bv
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av == bv
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && av == bv
	case *VectorVal:
		bv, ok := b.(*VectorVal)
		return ok && av == bv
	case *StringVal:
		bv, ok := b.(*StringVal)
		return ok && av == bv
	case *Procedure:
		bv, ok := b.(*Procedure)
		return ok && av == bv
	case *Environment:
		bv, ok := b.(*Environment)
		return ok && av == bv
	case *Promise:
		bv, ok := b.(*Promise)
		return ok && av == bv
	case CharVal:
		bv, ok := b.(CharVal)
		return ok && av == bv
	case IntVal:
		bv, ok := b.(IntVal)
		return ok && av == bv
	case FloatVal:
		bv, ok := b.(FloatVal)
		return ok && av == bv
	default:
		return false
	}
}

// Eqv implements eqv?: identical to Eq except it additionally requires
// numbers to match in both value and exactness (Eq already gives us that
// since Int and Float are distinct Go types), so Eqv is Eq for every kind
// this implementation represents immediately.
func Eqv(a, b Value) bool {
	return Eq(a, b)
}

// Equal implements equal?: recursive structural comparison for pairs,
// vectors, and strings; Eqv for everything else.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Pair:
		bv, ok := b.(*Pair)
		if !ok {
			return false
		}
		return Equal(av.Car, bv.Car) && Equal(av.Cdr, bv.Cdr)
	case *VectorVal:
		bv, ok := b.(*VectorVal)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *StringVal:
		bv, ok := b.(*StringVal)
		return ok && string(av.bytes) == string(bv.bytes)
	default:
		return Eqv(a, b)
	}
}
