package lexer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/internal/token"
)

// numLit is the parsed shape of a numeric literal before it is handed back
// as a token.Token or converted to a value.Value by the reader/builtins.
type numLit struct {
	isFloat  bool
	exact    exactness
	intVal   int64
	fltVal   float64
}

type exactness int

const (
	exactnessDefault exactness = iota
	exactnessExact
	exactnessInexact
)

func digitValue(b byte, radix int) (int, bool) {
	var v int
	switch {
	case b >= '0' && b <= '9':
		v = int(b - '0')
	case b >= 'a' && b <= 'z':
		v = int(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		v = int(b-'A') + 10
	default:
		return 0, false
	}
	if v >= radix {
		return 0, false
	}
	return v, true
}

func isExponentMarker(b byte) bool {
	switch b {
	case 'e', 'E', 's', 'S', 'f', 'F', 'd', 'D', 'l', 'L':
		return true
	}
	return false
}

// scanNumberBody parses the numeric literal grammar starting at s[i],
// returning the literal and the index just past it. It is shared by
// the lexer (which stops at the next delimiter within a larger source) and
// by string->number (which additionally requires the whole string to be
// consumed).
func scanNumberBody(s string, i int, defaultRadix int) (lit numLit, next int, err error) {
	start := i
	radix := defaultRadix
	exact := exactnessDefault
	radixSeen, exactSeen := false, false

	for i+1 < len(s) && s[i] == '#' {
		switch s[i+1] {
		case 'b', 'B':
			if radixSeen {
				return numLit{}, start, fmt.Errorf("duplicate radix prefix")
			}
			radix, radixSeen = 2, true
		case 'o', 'O':
			if radixSeen {
				return numLit{}, start, fmt.Errorf("duplicate radix prefix")
			}
			radix, radixSeen = 8, true
		case 'd', 'D':
			if radixSeen {
				return numLit{}, start, fmt.Errorf("duplicate radix prefix")
			}
			radix, radixSeen = 10, true
		case 'x', 'X':
			if radixSeen {
				return numLit{}, start, fmt.Errorf("duplicate radix prefix")
			}
			radix, radixSeen = 16, true
		case 'e', 'E':
			if exactSeen {
				return numLit{}, start, fmt.Errorf("duplicate exactness prefix")
			}
			exact, exactSeen = exactnessExact, true
		case 'i', 'I':
			if exactSeen {
				return numLit{}, start, fmt.Errorf("duplicate exactness prefix")
			}
			exact, exactSeen = exactnessInexact, true
		default:
			return numLit{}, start, fmt.Errorf("unknown number prefix")
		}
		i += 2
	}

	sign := int64(1)
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	hasHash := false
	var intDigits strings.Builder
	for i < len(s) {
		if s[i] == '#' {
			hasHash = true
			intDigits.WriteByte('0')
			i++
			continue
		}
		if _, ok := digitValue(s[i], radix); !ok {
			break
		}
		intDigits.WriteByte(s[i])
		i++
	}

	isFloat := false
	var fracDigits strings.Builder
	if i < len(s) && s[i] == '.' {
		isFloat = true
		i++
		for i < len(s) {
			if s[i] == '#' {
				hasHash = true
				fracDigits.WriteByte('0')
				i++
				continue
			}
			if _, ok := digitValue(s[i], 10); !ok {
				break
			}
			fracDigits.WriteByte(s[i])
			i++
		}
	}

	if intDigits.Len() == 0 && fracDigits.Len() == 0 {
		return numLit{}, start, fmt.Errorf("no digits in numeric literal")
	}

	exp := 0
	if radix == 10 && i < len(s) && isExponentMarker(s[i]) {
		isFloat = true
		i++
		expSign := 1
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				expSign = -1
			}
			i++
		}
		expStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == expStart {
			return numLit{}, start, fmt.Errorf("malformed exponent")
		}
		e, _ := strconv.Atoi(s[expStart:i])
		exp = e * expSign
	}

	if hasHash {
		isFloat = true
	}

	if isFloat || exact == exactnessInexact {
		mantissa := intDigits.String()
		if mantissa == "" {
			mantissa = "0"
		}
		frac := fracDigits.String()
		var fval float64
		var perr error
		if frac != "" {
			fval, perr = strconv.ParseFloat(mantissa+"."+frac, 64)
		} else {
			fval, perr = strconv.ParseFloat(mantissa, 64)
		}
		if perr != nil {
			return numLit{}, start, perr
		}
		fval *= float64(sign)
		if exp != 0 {
			fval *= math.Pow(10, float64(exp))
		}
		if exact == exactnessExact {
			return numLit{isFloat: false, intVal: int64(fval)}, i, nil
		}
		return numLit{isFloat: true, fltVal: fval}, i, nil
	}

	n, perr := strconv.ParseInt(intDigits.String(), radix, 64)
	if perr != nil {
		return numLit{}, start, perr
	}
	n *= sign
	return numLit{isFloat: false, intVal: n}, i, nil
}

func (l *Lexer) lexNumber(pos token.Position) (token.Token, error) {
	lit, next, err := scanNumberBody(l.input, l.pos, 10)
	if err != nil || next == l.pos {
		text := l.readAtomText()
		return token.Token{}, schemerr.MalformedNumber(pos, text)
	}
	text := l.input[l.pos:next]
	for l.pos < next {
		l.advance()
	}
	if !l.atEnd() && !isDelimiter(l.peek()) {
		// trailing garbage glued onto the literal, e.g. "3foo"
		text += l.readAtomText()
		return token.Token{}, schemerr.MalformedNumber(pos, text)
	}
	return token.Token{
		Type:     token.NUMBER,
		Literal:  text,
		Pos:      pos,
		IsFloat:  lit.isFloat,
		IntValue: lit.intVal,
		FltValue: lit.fltVal,
	}, nil
}

// ParseFullNumber implements the numeric grammar for string->number: the
// entire string s must be consumed by a single numeric literal using
// defaultRadix as the radix when no #b/#o/#d/#x prefix is present.
func ParseFullNumber(s string, defaultRadix int) (intVal int64, fltVal float64, isFloat bool, ok bool) {
	if s == "" {
		return 0, 0, false, false
	}
	lit, next, err := scanNumberBody(s, 0, defaultRadix)
	if err != nil || next != len(s) {
		return 0, 0, false, false
	}
	return lit.intVal, lit.fltVal, lit.isFloat, true
}
