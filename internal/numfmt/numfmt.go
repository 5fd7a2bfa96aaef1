// Package numfmt renders numbers the way the printer and number->string
// must agree on: integers without a decimal point, floats always with one,
// so that read(print(v)) round-trips.
package numfmt

import "strconv"

// FormatInt renders an exact integer in the given radix (2, 8, 10, or 16).
func FormatInt(n int64, radix int) string {
	return strconv.FormatInt(n, radix)
}

// FormatFloat renders an inexact number with a decimal point always
// present, even for integral values (3.0, not 3).
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E', 'n', 'N': // n/N catches Inf/NaN spellings
			return s
		}
	}
	return s + ".0"
}
