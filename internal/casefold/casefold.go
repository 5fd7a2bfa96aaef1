// Package casefold centralizes the two genuinely case-insensitive lexical
// classes in R5RS-style Scheme source: the #t/#T/#f/#F boolean tokens and
// #\space/#\newline character names, plus the char-ci?/char-upcase/
// char-downcase primitive family that needs the same fold.
//
// golang.org/x/text/cases.Fold is the ecosystem tool for this rather than a
// hand-rolled strings.ToLower/EqualFold.
package casefold

import "golang.org/x/text/cases"

var folder = cases.Fold()

// String returns s case-folded for comparison purposes (used on short
// ASCII tokens like "space", "NEWLINE", "#T").
func String(s string) string {
	return folder.String(s)
}

// Equal reports whether a and b are equal up to case folding.
func Equal(a, b string) bool {
	return folder.String(a) == folder.String(b)
}

// Byte folds a single ASCII byte to lowercase, used by the char-downcase
// primitive and the char-ci? comparison family.
func Byte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// UpperByte folds a single ASCII byte to uppercase, used by char-upcase.
func UpperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
