package main

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"

	"github.com/jsonmend/jsonmend/pkg/jsonmend"
)

var (
	okColor     = color.New(color.FgGreen)
	fixColor    = color.New(color.FgYellow)
	failColor   = color.New(color.FgRed)
	mutedColor  = color.New(color.Faint)
	headerColor = color.New(color.Bold)
)

// fileResult pairs a path with its remediation outcome for --json output.
type fileResult struct {
	Path    string           `json:"path"`
	Outcome jsonmend.Outcome `json:"outcome"`
}

// renderOutcome prints one file's outcome in human-readable form.
func renderOutcome(w io.Writer, path string, out jsonmend.Outcome) {
	switch {
	case out.Succeeded && len(out.Diagnostics) == 0 && len(out.UnfixableReasons) == 0:
		okColor.Fprintf(w, "%s: ok\n", path)
	case out.Succeeded:
		headerColor.Fprintf(w, "%s:\n", path)
	default:
		failColor.Fprintf(w, "%s: unfixable\n", path)
	}
	for _, d := range out.Diagnostics {
		fixColor.Fprintf(w, "  fixed %s", d.Kind)
		if d.Line > 0 {
			mutedColor.Fprintf(w, " at %d:%d", d.Line, d.Column)
		}
		fixColor.Fprintf(w, ": %s (%s)\n", d.Description, d.FixDescription)
	}
	for _, reason := range out.UnfixableReasons {
		failColor.Fprintf(w, "  %s\n", reason)
	}
}

// renderJSON prints results as one JSON document per line.
func renderJSON(w io.Writer, results []fileResult) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
