package repair_test

import (
	"encoding/json"
	"testing"

	"github.com/jsonmend/jsonmend/pkg/internal/repair"
)

func TestRepairCommasMissingInline(t *testing.T) {
	got, diags := repair.RepairCommas(`{"a":"1" "b":"2"}`)
	if got != `{"a":"1","b":"2"}` {
		t.Errorf("got %q", got)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Kind != repair.KindMissingComma {
		t.Errorf("kind = %v", diags[0].Kind)
	}
}

func TestRepairCommasMissingAcrossLines(t *testing.T) {
	in := "{\n  \"name\": \"pkg\"\n  \"version\": \"1.0.0\"\n}"
	got, diags := repair.RepairCommas(in)
	want := "{\n  \"name\": \"pkg\",\n  \"version\": \"1.0.0\"\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if len(diags) != 1 || diags[0].Kind != repair.KindMissingComma || diags[0].Line != 2 {
		t.Errorf("diags = %+v", diags)
	}
}

func TestRepairCommasAfterNestedCloser(t *testing.T) {
	in := "{\n  \"scripts\": {\n    \"build\": \"x\"\n  }\n  \"version\": \"1.0.0\"\n}"
	got, diags := repair.RepairCommas(in)
	if !json.Valid([]byte(got)) {
		t.Fatalf("result is not valid JSON: %q", got)
	}
	if len(diags) != 1 || diags[0].Kind != repair.KindMissingComma || diags[0].Line != 4 {
		t.Errorf("diags = %+v", diags)
	}
}

func TestRepairCommasArrayElements(t *testing.T) {
	in := "{\n  \"keywords\": [\n    \"a\"\n    \"b\"\n  ],\n  \"version\": \"1.0.0\"\n}"
	got, diags := repair.RepairCommas(in)
	if !json.Valid([]byte(got)) {
		t.Fatalf("result is not valid JSON: %q", got)
	}
	if len(diags) != 1 || diags[0].Line != 3 {
		t.Errorf("diags = %+v", diags)
	}
}

func TestRepairCommasDoesNotTreatChildAsSibling(t *testing.T) {
	// The next non-empty line is indented deeper, so it is a nested child
	// and no comma belongs after the opener's line.
	in := "{\n  \"a\": {\n    \"b\": 1\n  }\n}"
	got, diags := repair.RepairCommas(in)
	if got != in {
		t.Errorf("valid input was rewritten: %q", got)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %+v", diags)
	}
}

func TestRepairCommasTrailingInline(t *testing.T) {
	got, diags := repair.RepairCommas(`{"a":"1","b":"2",}`)
	if got != `{"a":"1","b":"2"}` {
		t.Errorf("got %q", got)
	}
	if len(diags) != 1 || diags[0].Kind != repair.KindTrailingComma {
		t.Errorf("diags = %+v", diags)
	}
}

func TestRepairCommasTrailingBeforeCloserLine(t *testing.T) {
	in := "{\n  \"a\": 1,\n}"
	got, diags := repair.RepairCommas(in)
	want := "{\n  \"a\": 1\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if len(diags) != 1 || diags[0].Kind != repair.KindTrailingComma || diags[0].Line != 2 {
		t.Errorf("diags = %+v", diags)
	}
}

func TestRepairCommasTrailingInArray(t *testing.T) {
	got, diags := repair.RepairCommas(`[1, 2, 3,]`)
	if got != `[1, 2, 3]` {
		t.Errorf("got %q", got)
	}
	if len(diags) != 1 {
		t.Errorf("expected 1 diagnostic, got %d", len(diags))
	}
}

func TestRepairCommasNoOpOnValid(t *testing.T) {
	cases := []string{
		`{"a":"1","b":"2"}`,
		`[1, 2, 3]`,
		"{\n  \"a\": 1,\n  \"b\": [\n    \"x\",\n    \"y\"\n  ]\n}",
		`{"nested": {"a": [true, false, null]}}`,
		`"just a string"`,
	}
	for _, in := range cases {
		got, diags := repair.RepairCommas(in)
		if got != in {
			t.Errorf("valid input rewritten: %q -> %q", in, got)
		}
		if len(diags) != 0 {
			t.Errorf("valid input %q produced diagnostics: %+v", in, diags)
		}
	}
}

func TestRepairCommasMixedValueTypes(t *testing.T) {
	got, diags := repair.RepairCommas(`{"a": 1 "b": true "c": null "d": "s"}`)
	if !json.Valid([]byte(got)) {
		t.Fatalf("result is not valid JSON: %q", got)
	}
	if len(diags) != 3 {
		t.Errorf("expected 3 diagnostics, got %d: %+v", len(diags), diags)
	}
}

func TestRepairCommasSiblingObjectsInArray(t *testing.T) {
	got, _ := repair.RepairCommas(`[{"a":1} {"b":2}]`)
	if got != `[{"a":1},{"b":2}]` {
		t.Errorf("got %q", got)
	}
}

func TestRepairCommasIdempotent(t *testing.T) {
	once, _ := repair.RepairCommas("{\n  \"a\": 1\n  \"b\": 2,\n}")
	twice, diags := repair.RepairCommas(once)
	if twice != once {
		t.Errorf("second run changed text: %q vs %q", once, twice)
	}
	if len(diags) != 0 {
		t.Errorf("second run produced diagnostics: %+v", diags)
	}
}
