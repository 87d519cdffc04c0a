// Package jsonmend repairs syntactically invalid JSON text, most commonly
// corrupted package.json manifests, using a bounded sequence of heuristic
// repair passes that converge to a fixed point. It has no grammar-aware
// parser: each pass applies one narrow class of fix (quoting bare keys,
// inserting or stripping commas, escaping stray backslashes, balancing
// containers), and the pipeline re-runs until the text stabilizes. The
// result is always reported as a value; malformed input never panics.
package jsonmend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jsonmend/jsonmend/pkg/internal/repair"
)

// DiagnosticKind identifies the category of an applied fix.
type DiagnosticKind string

const (
	MissingComma    DiagnosticKind = "MissingComma"
	TrailingComma   DiagnosticKind = "TrailingComma"
	MissingQuote    DiagnosticKind = "MissingQuote"
	InvalidEscape   DiagnosticKind = "InvalidEscape"
	MalformedObject DiagnosticKind = "MalformedObject"
	MalformedArray  DiagnosticKind = "MalformedArray"
)

// Diagnostic records one syntax correction applied during remediation.
// Line and Column are 1-based and best-effort; 0 means the position could
// not be derived.
type Diagnostic struct {
	Kind           DiagnosticKind `json:"kind"`
	Line           int            `json:"line"`
	Column         int            `json:"column"`
	Description    string         `json:"description"`
	FixDescription string         `json:"fixDescription"`
}

// Outcome is the terminal artifact of one remediation call.
//
// Succeeded reports whether RepairedText is valid JSON. UnfixableReasons can
// be non-empty even when Succeeded is true: manifest checks report semantic
// problems (missing name, bad version) that remediation never auto-corrects.
type Outcome struct {
	Succeeded        bool         `json:"succeeded"`
	RepairedText     string       `json:"repairedText"`
	Diagnostics      []Diagnostic `json:"diagnostics"`
	UnfixableReasons []string     `json:"unfixableReasons"`
}

// Remediate attempts to repair text into valid JSON. Valid input passes
// through byte-identical with no diagnostics. Invalid input runs through the
// ordered pass pipeline (quotes, commas, escapes, structure) until the text
// stops changing or the iteration cap is hit, then a strict parse decides
// success. The call is a pure function: no I/O, no state shared between
// calls, safe to run from concurrent batch workers.
func Remediate(text string, opts ...Option) Outcome {
	return remediate(text, newConfig(opts...))
}

// RemediateManifest behaves like Remediate and, when the repaired text
// parses, additionally applies the package-manifest rules (required fields,
// version format). Semantic failures are appended to UnfixableReasons and
// never change Succeeded.
func RemediateManifest(text string, opts ...Option) Outcome {
	cfg := newConfig(opts...)
	out := remediate(text, cfg)
	if !out.Succeeded {
		return out
	}
	var value any
	if err := json.Unmarshal([]byte(out.RepairedText), &value); err != nil {
		// remediate just proved this text parses
		out.Succeeded = false
		out.UnfixableReasons = append(out.UnfixableReasons, "internal error: repaired text failed to re-parse: "+err.Error())
		return out
	}
	out.UnfixableReasons = append(out.UnfixableReasons, checkManifest(value, cfg.constraint)...)
	return out
}

type pass func(string) (string, []repair.Diagnostic)

func remediate(text string, cfg config) Outcome {
	out := Outcome{
		RepairedText:     text,
		Diagnostics:      []Diagnostic{},
		UnfixableReasons: []string{},
	}
	if json.Valid([]byte(text)) {
		out.Succeeded = true
		return out
	}

	passes := []pass{
		repair.NormalizeQuotes,
		repair.RepairCommas,
		repair.NormalizeEscapes,
		repair.CloseContainers,
	}
	working := text
	for i := 0; i < cfg.maxIterations; i++ {
		before := working
		for _, p := range passes {
			next, diags := p(working)
			for _, d := range diags {
				out.Diagnostics = append(out.Diagnostics, convertDiagnostic(d))
			}
			working = next
		}
		if working == before {
			break
		}
	}

	out.RepairedText = working
	if err := strictParse(working); err != nil {
		out.UnfixableReasons = append(out.UnfixableReasons, describeParseError(working, err))
		return out
	}
	out.Succeeded = true
	return out
}

func strictParse(text string) error {
	var v any
	return json.Unmarshal([]byte(text), &v)
}

// describeParseError turns the final parse failure into a human-readable
// reason, qualified with a line number when the parser reports an offset.
func describeParseError(text string, err error) string {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		offset := int(syn.Offset)
		if offset > len(text) {
			offset = len(text)
		}
		line := 1 + strings.Count(text[:offset], "\n")
		return fmt.Sprintf("still invalid after repair: %s (line %d)", syn.Error(), line)
	}
	return "still invalid after repair: " + err.Error()
}

func convertDiagnostic(d repair.Diagnostic) Diagnostic {
	return Diagnostic{
		Kind:           DiagnosticKind(d.Kind.String()),
		Line:           d.Line,
		Column:         d.Column,
		Description:    d.Description,
		FixDescription: d.FixDescription,
	}
}
