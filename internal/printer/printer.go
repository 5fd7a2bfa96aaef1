// Package printer renders a value.Value back to source text, the inverse
// of internal/reader, so that read(print(v)) round-trips and repeated
// quoting stays idempotent.
//
// Grounded on internal/interp/runtime's value-to-DWScript-literal rendering
// (used by its REPL echo and its Inspect builtin), which switches on the
// same runtime-value kind the evaluator itself switches on rather than
// introducing a parallel visitor hierarchy; this package does the same
// over value.Kind.
package printer

import (
	"fmt"
	"strings"

	"github.com/gophersource/schemer/internal/numfmt"
	"github.com/gophersource/schemer/internal/value"
)

// charNames is the inverse of the lexer's charNames table: the two names
// that must come back out of the hash as #\space and #\newline instead of
// a literal #\<byte>.
var charNames = map[byte]string{
	' ':  "space",
	'\n': "newline",
}

// Write renders v the way the `write` half of a printer would: strings
// quoted with escapes, characters as #\c forms. This is the form the
// reader can read back.
func Write(v value.Value) string {
	var sb strings.Builder
	write(&sb, v)
	return sb.String()
}

// Display renders v the way `display` would: strings and characters appear
// as their raw content, with no quoting or #\ prefix, including strings and
// characters nested inside pairs and vectors. Every other kind prints
// identically to Write.
func Display(v value.Value) string {
	var sb strings.Builder
	display(&sb, v)
	return sb.String()
}

func write(sb *strings.Builder, v value.Value) {
	switch t := v.(type) {
	case *value.StringVal:
		writeQuotedString(sb, t.String())
	case value.CharVal:
		writeChar(sb, byte(t))
	default:
		writeShared(sb, v, write)
	}
}

func display(sb *strings.Builder, v value.Value) {
	switch t := v.(type) {
	case *value.StringVal:
		sb.WriteString(t.String())
	case value.CharVal:
		sb.WriteByte(byte(t))
	default:
		writeShared(sb, v, display)
	}
}

// writeShared renders every kind that Write and Display agree on: atoms
// directly, and pairs and vectors by rendering each element with elem
// (write for Write, display for Display).
func writeShared(sb *strings.Builder, v value.Value, elem func(*strings.Builder, value.Value)) {
	switch t := v.(type) {
	case *value.EmptyListVal:
		sb.WriteString("()")
	case *value.BoolVal:
		if t.V {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case value.IntVal:
		sb.WriteString(numfmt.FormatInt(int64(t), 10))
	case value.FloatVal:
		sb.WriteString(numfmt.FormatFloat(float64(t)))
	case *value.Symbol:
		sb.WriteString(t.Name)
	case *value.Pair:
		writePair(sb, t, elem)
	case *value.VectorVal:
		writeVector(sb, t, elem)
	case *value.Procedure:
		writeProcedure(sb, t)
	case *value.Environment:
		sb.WriteString("#<environment>")
	case *value.Promise:
		sb.WriteString("#<promise>")
	default:
		fmt.Fprintf(sb, "#<unknown %v>", v.Kind())
	}
}

func writePair(sb *strings.Builder, p *value.Pair, elem func(*strings.Builder, value.Value)) {
	sb.WriteByte('(')
	elem(sb, p.Car)
	cur := p.Cdr
	for {
		switch t := cur.(type) {
		case *value.EmptyListVal:
			sb.WriteByte(')')
			return
		case *value.Pair:
			sb.WriteByte(' ')
			elem(sb, t.Car)
			cur = t.Cdr
		default:
			sb.WriteString(" . ")
			elem(sb, cur)
			sb.WriteByte(')')
			return
		}
	}
}

func writeVector(sb *strings.Builder, v *value.VectorVal, elem func(*strings.Builder, value.Value)) {
	sb.WriteString("#(")
	for i, e := range v.Elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		elem(sb, e)
	}
	sb.WriteByte(')')
}

func writeProcedure(sb *strings.Builder, p *value.Procedure) {
	name := p.Name
	if name == "" {
		name = "anonymous"
	}
	if p.IsPrimitive() {
		fmt.Fprintf(sb, "#<primitive %s>", name)
		return
	}
	fmt.Fprintf(sb, "#<procedure %s>", name)
}

func writeChar(sb *strings.Builder, b byte) {
	if name, ok := charNames[b]; ok {
		sb.WriteString("#\\" + name)
		return
	}
	sb.WriteString("#\\")
	sb.WriteByte(b)
}

// writeQuotedString re-emits the two escapes the lexer actually
// understands on read-back (backslash and double quote); every other byte,
// including raw newlines, passes through unescaped since the lexer has no
// \n/\t cooked-escape grammar to read it back from.
func writeQuotedString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"':
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		default:
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
}
