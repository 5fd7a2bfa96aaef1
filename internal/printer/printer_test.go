package printer

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/gophersource/schemer/internal/reader"
	"github.com/gophersource/schemer/internal/value"
)

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	heap := value.NewHeap()
	rd, err := reader.New(src, "test", heap)
	if err != nil {
		t.Fatalf("reader.New(%q): %v", src, err)
	}
	d, err := rd.Read()
	if err != nil {
		t.Fatalf("Read(%q): %v", src, err)
	}
	return d
}

func TestWriteRoundTrip(t *testing.T) {
	cases := []string{
		`42`,
		`3.0`,
		`#t`,
		`#f`,
		`"hello"`,
		`"with \"quotes\" and \\backslash"`,
		`#\a`,
		`#\space`,
		`#\newline`,
		`foo`,
		`()`,
		`(1 2 3)`,
		`(1 . 2)`,
		`(1 2 . 3)`,
		`#(1 2 3)`,
		`(quote (a b c))`,
	}
	for _, src := range cases {
		d := mustRead(t, src)
		got := Write(d)
		again := mustRead(t, got)
		if gotTwice := Write(again); gotTwice != got {
			t.Errorf("round-trip mismatch for %q: first print %q, second print %q", src, got, gotTwice)
		}
	}
}

func TestWriteSnapshots(t *testing.T) {
	cases := map[string]string{
		"integer":        `42`,
		"float":          `3.5`,
		"bool_true":      `#t`,
		"bool_false":     `#f`,
		"string":         `"hi there"`,
		"string_escapes": `"a\"b\\c"`,
		"char_letter":    `#\Q`,
		"char_space":     `#\space`,
		"char_newline":   `#\newline`,
		"symbol":         `abc->def`,
		"empty_list":     `()`,
		"proper_list":    `(1 2 3)`,
		"dotted_pair":    `(1 . 2)`,
		"improper_list":  `(1 2 . 3)`,
		"vector":         `#(1 2 3)`,
		"nested_quote":   `(quote (a b))`,
	}
	for name, src := range cases {
		d := mustRead(t, src)
		snaps.MatchSnapshot(t, name, Write(d))
	}
}

func TestDisplayUnquotesStringsAndChars(t *testing.T) {
	if got := Display(mustRead(t, `"hi"`)); got != "hi" {
		t.Errorf("Display(string) = %q, want %q", got, "hi")
	}
	if got := Display(mustRead(t, `#\a`)); got != "a" {
		t.Errorf("Display(char) = %q, want %q", got, "a")
	}
	if got := Display(mustRead(t, `(1 "x" #\y)`)); got != `(1 x y)` {
		t.Errorf("Display(list) = %q, want %q", got, `(1 x y)`)
	}
}
