// Package reader implements a recursive-descent parser: it consumes the
// lexer's token stream and builds a tree of datum values (pairs, vectors,
// symbols, booleans, numbers, characters, strings, the empty list) on a
// shared heap. Reader abbreviations ('  `  ,  ,@) expand into two-element
// lists headed by the corresponding symbol.
//
// Grounded on internal/parser/parser.go's cursor convention (curToken/
// nextToken, one token of lookahead), simplified because reading
// s-expressions needs no operator precedence climbing.
package reader

import (
	"io"

	"github.com/gophersource/schemer/internal/casefold"
	"github.com/gophersource/schemer/internal/lexer"
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/token"
	"github.com/gophersource/schemer/internal/value"
)

// Reader turns one source text into a sequence of datum values.
type Reader struct {
	lex  *lexer.Lexer
	heap *value.Heap
	cur  token.Token
}

// New creates a Reader over src. filename tags positions on tokens and any
// *schemerr.SchemeError raised while reading. Values are allocated on heap.
func New(src, filename string, heap *value.Heap) (*Reader, error) {
	r := &Reader{lex: lexer.New(src, filename), heap: heap}
	if err := r.advance(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) advance() error {
	tok, err := r.lex.Next()
	if err != nil {
		return err
	}
	r.cur = tok
	return nil
}

// Read parses and returns the next top-level datum. It returns io.EOF (not
// wrapped) once the source is exhausted, matching the convention of
// repeated calls driving a REPL or file-loader loop.
func (r *Reader) Read() (value.Value, error) {
	if r.cur.Type == token.EOF {
		return nil, io.EOF
	}
	return r.readDatum()
}

// ReadAll parses every datum in the source, stopping at EOF.
func (r *Reader) ReadAll() ([]value.Value, error) {
	var out []value.Value
	for {
		v, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

func (r *Reader) readDatum() (value.Value, error) {
	tok := r.cur
	switch tok.Type {
	case token.EOF:
		return nil, io.EOF

	case token.LPAREN:
		if err := r.advance(); err != nil {
			return nil, err
		}
		return r.readListTail(tok.Pos)

	case token.VECTOR_OPEN:
		if err := r.advance(); err != nil {
			return nil, err
		}
		return r.readVectorTail(tok.Pos)

	case token.QUOTE:
		return r.readAbbrev(r.heap.Wellknown.Quote)
	case token.QUASIQUOTE:
		return r.readAbbrev(r.heap.Wellknown.Quasiquote)
	case token.UNQUOTE:
		return r.readAbbrev(r.heap.Wellknown.Unquote)
	case token.UNQUOTE_SPLICING:
		return r.readAbbrev(r.heap.Wellknown.UnquoteSplicing)

	case token.BOOL:
		if err := r.advance(); err != nil {
			return nil, err
		}
		return value.Bool(casefold.Equal(tok.Literal, "#t")), nil

	case token.NUMBER:
		if err := r.advance(); err != nil {
			return nil, err
		}
		if tok.IsFloat {
			return value.FloatVal(tok.FltValue), nil
		}
		return value.IntVal(tok.IntValue), nil

	case token.CHAR:
		if err := r.advance(); err != nil {
			return nil, err
		}
		return value.CharVal(byte(tok.CharRune)), nil

	case token.STRING:
		if err := r.advance(); err != nil {
			return nil, err
		}
		return r.heap.NewString(tok.Literal), nil

	case token.IDENT:
		if err := r.advance(); err != nil {
			return nil, err
		}
		return r.heap.Intern(tok.Literal), nil

	case token.RPAREN:
		return nil, schemerr.ParseErr(tok.Pos, "unexpected )")
	case token.DOT:
		return nil, schemerr.ParseErr(tok.Pos, "unexpected .")
	default:
		return nil, schemerr.ParseErr(tok.Pos, "unexpected token %s", tok.Type)
	}
}

func (r *Reader) readAbbrev(sym *value.Symbol) (value.Value, error) {
	pos := r.cur.Pos
	if err := r.advance(); err != nil {
		return nil, err
	}
	if r.cur.Type == token.EOF {
		return nil, schemerr.ParseErr(pos, "expected a datum after reader abbreviation")
	}
	datum, err := r.readDatum()
	if err != nil {
		return nil, err
	}
	return value.List(r.heap, sym, datum), nil
}

// readListTail parses the contents of a list after its opening LPAREN has
// already been consumed, handling the dotted-pair tail form (a b . c).
func (r *Reader) readListTail(openPos token.Position) (value.Value, error) {
	var elems []value.Value
	for {
		switch r.cur.Type {
		case token.EOF:
			return nil, schemerr.UnterminatedList(openPos)
		case token.RPAREN:
			if err := r.advance(); err != nil {
				return nil, err
			}
			return value.List(r.heap, elems...), nil
		case token.DOT:
			if len(elems) == 0 {
				return nil, schemerr.BadDotted(r.cur.Pos)
			}
			if err := r.advance(); err != nil {
				return nil, err
			}
			tail, err := r.readDatum()
			if err != nil {
				return nil, err
			}
			if r.cur.Type != token.RPAREN {
				return nil, schemerr.BadDotted(openPos)
			}
			if err := r.advance(); err != nil {
				return nil, err
			}
			return value.DottedList(r.heap, tail, elems...), nil
		default:
			datum, err := r.readDatum()
			if err != nil {
				return nil, err
			}
			elems = append(elems, datum)
		}
	}
}

func (r *Reader) readVectorTail(openPos token.Position) (value.Value, error) {
	var elems []value.Value
	for {
		switch r.cur.Type {
		case token.EOF:
			return nil, schemerr.UnterminatedList(openPos)
		case token.RPAREN:
			if err := r.advance(); err != nil {
				return nil, err
			}
			return r.heap.NewVector(elems), nil
		case token.DOT:
			return nil, schemerr.ParseErr(r.cur.Pos, "unexpected . inside vector literal")
		default:
			datum, err := r.readDatum()
			if err != nil {
				return nil, err
			}
			elems = append(elems, datum)
		}
	}
}
