package introspect

import (
	"testing"

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

func TestDatumToJSONScalars(t *testing.T) {
	cases := []struct {
		src, path, want string
	}{
		{"42", "kind", "integer"},
		{"42", "value", "42"},
		{`"hi"`, "value", "hi"},
		{"foo", "kind", "symbol"},
		{"foo", "value", "foo"},
		{"#t", "value", "true"},
	}
	for _, c := range cases {
		j, err := DatumToJSON(mustRead(t, c.src))
		if err != nil {
			t.Fatalf("DatumToJSON(%q): %v", c.src, err)
		}
		if got := Query(j, c.path); got != c.want {
			t.Errorf("Query(DatumToJSON(%q), %q) = %q, want %q", c.src, c.path, got, c.want)
		}
	}
}

func TestDatumToJSONPair(t *testing.T) {
	j, err := DatumToJSON(mustRead(t, "(1 2)"))
	if err != nil {
		t.Fatalf("DatumToJSON: %v", err)
	}
	if got := Query(j, "kind"); got != "pair" {
		t.Fatalf("kind = %q, want pair", got)
	}
	if got := Query(j, "car.value"); got != "1" {
		t.Errorf("car.value = %q, want 1", got)
	}
	if got := Query(j, "cdr.car.value"); got != "2" {
		t.Errorf("cdr.car.value = %q, want 2", got)
	}
	if got := Query(j, "cdr.cdr.kind"); got != "empty-list" {
		t.Errorf("cdr.cdr.kind = %q, want empty-list", got)
	}
}

func TestDatumToJSONVector(t *testing.T) {
	j, err := DatumToJSON(mustRead(t, "#(1 2 3)"))
	if err != nil {
		t.Fatalf("DatumToJSON: %v", err)
	}
	if got := Query(j, "elements.#"); got != "3" {
		t.Errorf("elements.# = %q, want 3", got)
	}
	if got := Query(j, "elements.1.value"); got != "2" {
		t.Errorf("elements.1.value = %q, want 2", got)
	}
}
