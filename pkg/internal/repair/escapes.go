package repair

import (
	"fmt"
	"strings"
)

// validEscapes are the bytes that may legally follow a backslash inside a
// JSON string literal.
const validEscapes = `"\/bfnrtu`

// NormalizeEscapes doubles any backslash inside a string literal that does
// not begin a valid JSON escape sequence, so the offending backslash becomes
// a literal one. Valid escapes are never touched, which makes the pass
// idempotent: a doubled backslash reads as the valid sequence `\\` on the
// next run.
func NormalizeEscapes(text string) (string, []Diagnostic) {
	lines := splitLines(text)
	var diags []Diagnostic
	changed := false
	for li := range lines {
		line := lines[li]
		toks, _ := tokenizeLine(line)
		var bad []int
		for _, tok := range toks {
			if tok.kind != tokString {
				continue
			}
			i := tok.start + 1
			for i < tok.end && i < len(line) {
				if line[i] != '\\' {
					i++
					continue
				}
				if i+1 >= tok.end || i+1 >= len(line) || strings.IndexByte(validEscapes, line[i+1]) < 0 {
					bad = append(bad, i)
					i++
					continue
				}
				i += 2
			}
		}
		for _, p := range bad {
			desc := "backslash at end of line"
			if p+1 < len(line) {
				desc = fmt.Sprintf("invalid escape sequence \\%c", line[p+1])
			}
			diags = append(diags, Diagnostic{
				Kind:           KindInvalidEscape,
				Line:           li + 1,
				Column:         p + 1,
				Description:    desc,
				FixDescription: "doubled the backslash",
			})
		}
		for i := len(bad) - 1; i >= 0; i-- {
			p := bad[i]
			line = line[:p] + `\` + line[p:]
			changed = true
		}
		lines[li] = line
	}
	if !changed {
		return text, nil
	}
	return strings.Join(lines, "\n"), diags
}
