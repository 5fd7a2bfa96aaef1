package value

// StringVal is a mutable byte-sequence string. Source text is treated as
// byte-oriented ASCII; high bits pass through uninterpreted rather than
// being classified or case-folded.
type StringVal struct {
	bytes    []byte
	readOnly bool
}

func (*StringVal) Kind() Kind { return KindString }

func (s *StringVal) String() string { return string(s.bytes) }

func (s *StringVal) Len() int { return len(s.bytes) }

func (s *StringVal) ByteAt(i int) (byte, bool) {
	if i < 0 || i >= len(s.bytes) {
		return 0, false
	}
	return s.bytes[i], true
}

// SetByteAt mutates the string in place. It fails if the string is flagged
// read-only or the index is out of range.
func (s *StringVal) SetByteAt(i int, b byte) error {
	if s.readOnly {
		return errReadOnlyString
	}
	if i < 0 || i >= len(s.bytes) {
		return errStringIndexRange
	}
	s.bytes[i] = b
	return nil
}

func (s *StringVal) ReadOnly() bool { return s.readOnly }
