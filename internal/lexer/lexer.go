// Package lexer implements the reader's lexical scanner.
//
// Grounded on internal/lexer.Lexer (readChar/peekChar cursor, line/column
// tracking, LexerState save/restore for backtracking) but operating
// byte-by-byte rather than rune-by-rune: source text is byte-oriented
// (treated as ASCII, with high bits passed through but not classified) and
// is not assumed to be valid UTF-8, unlike DWScript source.
package lexer

import (
	"strings"

	"github.com/gophersource/schemer/internal/casefold"
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/token"
)

// delimiter: whitespace, any paren, '"', or ';'.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v', '(', ')', '"', ';':
		return true
	}
	return false
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// specialInitial: ! $ % & * / : < = > ? ^ _ ~
func isSpecialInitial(b byte) bool {
	return strings.IndexByte("!$%&*/:<=>?^_~", b) >= 0
}

func isInitial(b byte) bool { return isLetter(b) || isSpecialInitial(b) }

// subsequent = initial | digit | + - . @
func isSubsequent(b byte) bool {
	return isInitial(b) || isDigit(b) || strings.IndexByte("+-.@", b) >= 0
}

// Lexer scans a byte-oriented source string into a stream of Tokens.
type Lexer struct {
	input    string
	filename string
	pos      int // current byte offset
	line     int
	col      int // 1-based column, counted in bytes
}

// New creates a Lexer over input, reporting positions tagged with filename.
func New(input, filename string) *Lexer {
	return &Lexer{input: input, filename: filename, line: 1, col: 1}
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.input) }

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *Lexer) advance() byte {
	b := l.input[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

func (l *Lexer) here() token.Position {
	return token.Position{Filename: l.filename, Line: l.line, Column: l.col}
}

func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipAtmosphere() {
	for !l.atEnd() {
		switch {
		case isWhitespace(l.peek()):
			l.advance()
		case l.peek() == ';':
			l.skipLineComment()
		default:
			return
		}
	}
}

// Next scans and returns the next token, or a *schemerr.SchemeError of kind
// LexicalError on malformed input. At end of input it returns a single EOF
// token repeatedly.
func (l *Lexer) Next() (token.Token, error) {
	l.skipAtmosphere()
	pos := l.here()

	if l.atEnd() {
		return token.Token{Type: token.EOF, Pos: pos}, nil
	}

	b := l.peek()
	switch {
	case b == '(':
		l.advance()
		return token.Token{Type: token.LPAREN, Literal: "(", Pos: pos}, nil
	case b == ')':
		l.advance()
		return token.Token{Type: token.RPAREN, Literal: ")", Pos: pos}, nil
	case b == '\'':
		l.advance()
		return token.Token{Type: token.QUOTE, Literal: "'", Pos: pos}, nil
	case b == '`':
		l.advance()
		return token.Token{Type: token.QUASIQUOTE, Literal: "`", Pos: pos}, nil
	case b == ',':
		l.advance()
		if l.peek() == '@' {
			l.advance()
			return token.Token{Type: token.UNQUOTE_SPLICING, Literal: ",@", Pos: pos}, nil
		}
		return token.Token{Type: token.UNQUOTE, Literal: ",", Pos: pos}, nil
	case b == '"':
		return l.lexString(pos)
	case b == '#':
		return l.lexHash(pos)
	case b == '.' && l.peekAt(1) == '.' && l.peekAt(2) == '.':
		return l.lexIdentOrPeculiar(pos)
	case b == '.' && (isDelimiter(l.peekAt(1)) || l.peekAt(1) == 0):
		l.advance()
		return token.Token{Type: token.DOT, Literal: ".", Pos: pos}, nil
	case isDigit(b) || ((b == '+' || b == '-') && isDigit(l.peekAt(1))) || (b == '.' && isDigit(l.peekAt(1))):
		return l.lexNumber(pos)
	case isInitial(b) || b == '+' || b == '-':
		return l.lexIdentOrPeculiar(pos)
	default:
		lit := l.readAtomText()
		return token.Token{}, schemerr.LexErr(pos, "unexpected character %q", lit)
	}
}

// readAtomText consumes up to the next delimiter, for error reporting.
func (l *Lexer) readAtomText() string {
	start := l.pos
	for !l.atEnd() && !isDelimiter(l.peek()) {
		l.advance()
	}
	if l.pos == start && !l.atEnd() {
		l.advance()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) lexIdentOrPeculiar(pos token.Position) (token.Token, error) {
	start := l.pos
	l.advance() // initial char, '+' or '-'
	for !l.atEnd() && isSubsequent(l.peek()) {
		l.advance()
	}
	lit := l.input[start:l.pos]
	return token.Token{Type: token.IDENT, Literal: lit, Pos: pos}, nil
}

func (l *Lexer) lexString(pos token.Position) (token.Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.atEnd() {
			return token.Token{}, schemerr.UnterminatedString(pos)
		}
		b := l.advance()
		if b == '"' {
			break
		}
		if b == '\\' {
			if l.atEnd() {
				return token.Token{}, schemerr.UnterminatedString(pos)
			}
			esc := l.advance()
			switch esc {
			case '\\', '"':
				sb.WriteByte(esc)
			default:
				// Any other backslash is silently dropped; the
				// character after it is kept.
				sb.WriteByte(esc)
			}
			continue
		}
		sb.WriteByte(b)
	}
	return token.Token{Type: token.STRING, Literal: sb.String(), Pos: pos}, nil
}

var charNames = map[string]byte{
	"space":   ' ',
	"newline": '\n',
}

func (l *Lexer) lexHash(pos token.Position) (token.Token, error) {
	after := l.peekAt(1)
	switch after {
	case '(':
		l.advance()
		l.advance()
		return token.Token{Type: token.VECTOR_OPEN, Literal: "#(", Pos: pos}, nil
	case '\\':
		l.advance() // '#'
		return l.lexChar(pos)
	case 't', 'T':
		l.advance()
		l.advance()
		return token.Token{Type: token.BOOL, Literal: "#t", Pos: pos}, nil
	case 'f', 'F':
		l.advance()
		l.advance()
		return token.Token{Type: token.BOOL, Literal: "#f", Pos: pos}, nil
	case 'b', 'B', 'o', 'O', 'd', 'D', 'x', 'X', 'e', 'E', 'i', 'I':
		return l.lexNumber(pos)
	default:
		lit := l.readAtomText()
		return token.Token{}, schemerr.UnknownHashPrefix(pos, lit)
	}
}

func (l *Lexer) lexChar(pos token.Position) (token.Token, error) {
	l.advance() // backslash
	if l.atEnd() {
		return token.Token{}, schemerr.LexErr(pos, "unterminated character literal")
	}
	start := l.pos
	// Always consume at least one character, even if it is itself a delimiter
	// (e.g. #\( or #\space's leading 's').
	l.advance()
	for !l.atEnd() && !isDelimiter(l.peek()) {
		l.advance()
	}
	text := l.input[start:l.pos]
	if len(text) == 1 {
		return token.Token{Type: token.CHAR, Literal: text, Pos: pos, CharRune: rune(text[0])}, nil
	}
	folded := casefold.String(text)
	if b, ok := charNames[folded]; ok {
		return token.Token{Type: token.CHAR, Literal: text, Pos: pos, CharRune: rune(b)}, nil
	}
	return token.Token{}, schemerr.LexErr(pos, "unknown character name: %q", text)
}
