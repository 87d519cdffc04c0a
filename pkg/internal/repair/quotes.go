package repair

import (
	"fmt"
	"strings"
)

// NormalizeQuotes wraps bare object keys in double quotes. A bare key is an
// identifier of the form [a-zA-Z_$][a-zA-Z0-9_$]* that is preceded by '{',
// ',' or only indentation, and followed (ignoring whitespace) by ':'.
// Already-quoted keys never match, so the pass is idempotent.
func NormalizeQuotes(text string) (string, []Diagnostic) {
	lines := splitLines(text)
	var diags []Diagnostic
	changed := false
	for li := range lines {
		line := lines[li]
		toks, _ := tokenizeLine(line)
		var bare []token
		for ti, tok := range toks {
			if tok.kind != tokWord && tok.kind != tokLiteral {
				continue
			}
			if ti+1 >= len(toks) || toks[ti+1].kind != tokColon {
				continue
			}
			if ti > 0 {
				prev := toks[ti-1]
				opensObject := prev.kind == tokOpen && line[prev.start] == '{'
				if !opensObject && prev.kind != tokComma {
					continue
				}
			}
			bare = append(bare, tok)
		}
		for _, tok := range bare {
			diags = append(diags, Diagnostic{
				Kind:           KindMissingQuote,
				Line:           li + 1,
				Column:         tok.start + 1,
				Description:    fmt.Sprintf("unquoted object key %q", line[tok.start:tok.end]),
				FixDescription: "wrapped key in double quotes",
			})
		}
		for i := len(bare) - 1; i >= 0; i-- {
			tok := bare[i]
			line = line[:tok.start] + `"` + line[tok.start:tok.end] + `"` + line[tok.end:]
			changed = true
		}
		lines[li] = line
	}
	if !changed {
		return text, nil
	}
	return strings.Join(lines, "\n"), diags
}
