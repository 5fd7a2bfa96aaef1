package value

// Pair is a mutable cons cell. Lists are ordinary chains of pairs
// terminated by Empty; an improper list terminates in a non-empty,
// non-pair value. ReadOnly is set on pairs constructed by the reader from
// quoted literal data in implementations that want to forbid mutating
// quoted constants; this interpreter leaves reader-produced pairs mutable
// (R5RS permits either choice) and only sets ReadOnly on pairs explicitly
// built read-only by an embedder.
type Pair struct {
	Car, Cdr Value
	ReadOnly bool
}

func (*Pair) Kind() Kind { return KindPair }

// List builds a proper list from elems using h to allocate the chain.
func List(h *Heap, elems ...Value) Value {
	var result Value = Empty
	for i := len(elems) - 1; i >= 0; i-- {
		result = h.NewPair(elems[i], result)
	}
	return result
}

// DottedList builds a list from elems whose final cdr is tail instead of
// Empty, producing an improper list when tail is not itself a list.
func DottedList(h *Heap, tail Value, elems ...Value) Value {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = h.NewPair(elems[i], result)
	}
	return result
}

// ListToSlice walks a proper list into a Go slice. ok is false if v is not
// a proper, non-circular list.
func ListToSlice(v Value) (elems []Value, ok bool) {
	seen := make(map[*Pair]bool)
	for {
		switch t := v.(type) {
		case *EmptyListVal:
			return elems, true
		case *Pair:
			if seen[t] {
				return nil, false
			}
			seen[t] = true
			elems = append(elems, t.Car)
			v = t.Cdr
		default:
			return nil, false
		}
	}
}

// IsList reports whether v is a proper list, using a visited-pair set to
// detect and reject circular chains.
func IsList(v Value) bool {
	_, ok := ListToSlice(v)
	return ok
}

// Length returns the length of a proper list, or -1 if v is not one.
func Length(v Value) int {
	n := 0
	for {
		switch t := v.(type) {
		case *EmptyListVal:
			return n
		case *Pair:
			n++
			v = t.Cdr
		default:
			return -1
		}
	}
}
