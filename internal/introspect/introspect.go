// Package introspect serializes a parsed datum tree to JSON for the CLI's
// --dump-ast-json debugging workflow, and lets tests and tooling query a
// subtree of a large dump without hand-building the whole expected JSON
// document.
//
// Grounded on the JSON builtins in internal/interp/evaluator/
// json_helpers.go and context_json.go, which build a JSON-shaped value
// through explicit Kind()-switch walks of the tagged value union rather
// than a generic struct marshal, since the source value is a closed sum
// type. This package keeps that walk but emits through tidwall/sjson's
// path-set builder instead of constructing an intermediate map, and
// queries back through tidwall/gjson instead of unmarshalling into structs.
package introspect

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/gophersource/schemer/internal/numfmt"
	"github.com/gophersource/schemer/internal/value"
)

// DatumToJSON renders d as a JSON document describing its kind and
// structure. Every node carries a "kind" field (value.Kind's String form);
// compound kinds additionally carry "car"/"cdr" (pairs) or "elements"
// (vectors), each itself a nested datum document.
func DatumToJSON(d value.Value) (string, error) {
	return datumToJSON("", d)
}

func datumToJSON(json string, d value.Value) (string, error) {
	var err error
	switch t := d.(type) {
	case *value.EmptyListVal:
		return sjson.Set(json, "kind", "empty-list")
	case *value.BoolVal:
		if json, err = sjson.Set(json, "kind", "boolean"); err != nil {
			return "", err
		}
		return sjson.Set(json, "value", t.V)
	case value.CharVal:
		if json, err = sjson.Set(json, "kind", "char"); err != nil {
			return "", err
		}
		return sjson.Set(json, "value", string(rune(t)))
	case value.IntVal:
		if json, err = sjson.Set(json, "kind", "integer"); err != nil {
			return "", err
		}
		return sjson.Set(json, "value", int64(t))
	case value.FloatVal:
		if json, err = sjson.Set(json, "kind", "float"); err != nil {
			return "", err
		}
		return sjson.Set(json, "value", numfmt.FormatFloat(float64(t)))
	case *value.StringVal:
		if json, err = sjson.Set(json, "kind", "string"); err != nil {
			return "", err
		}
		return sjson.Set(json, "value", t.String())
	case *value.Symbol:
		if json, err = sjson.Set(json, "kind", "symbol"); err != nil {
			return "", err
		}
		return sjson.Set(json, "value", t.Name)
	case *value.Pair:
		return pairToJSON(json, t)
	case *value.VectorVal:
		return vectorToJSON(json, t)
	default:
		return "", fmt.Errorf("introspect: datum kind %v has no JSON form", d.Kind())
	}
}

func pairToJSON(json string, p *value.Pair) (string, error) {
	var err error
	if json, err = sjson.Set(json, "kind", "pair"); err != nil {
		return "", err
	}
	carJSON, err := datumToJSON("", p.Car)
	if err != nil {
		return "", err
	}
	if json, err = sjson.SetRaw(json, "car", carJSON); err != nil {
		return "", err
	}
	cdrJSON, err := datumToJSON("", p.Cdr)
	if err != nil {
		return "", err
	}
	return sjson.SetRaw(json, "cdr", cdrJSON)
}

func vectorToJSON(json string, v *value.VectorVal) (string, error) {
	var err error
	if json, err = sjson.Set(json, "kind", "vector"); err != nil {
		return "", err
	}
	if json, err = sjson.SetRaw(json, "elements", "[]"); err != nil {
		return "", err
	}
	for i, e := range v.Elems {
		elemJSON, err := datumToJSON("", e)
		if err != nil {
			return "", err
		}
		path := fmt.Sprintf("elements.%d", i)
		if json, err = sjson.SetRaw(json, path, elemJSON); err != nil {
			return "", err
		}
	}
	return json, nil
}

// Query evaluates a gjson path against a JSON document produced by
// DatumToJSON (or any JSON text) and returns the matched value rendered as
// a string, or "" if path does not match.
func Query(json, path string) string {
	return gjson.Get(json, path).String()
}
