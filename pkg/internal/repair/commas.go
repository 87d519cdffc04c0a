package repair

import "strings"

// RepairCommas inserts commas missing between sibling values and then
// removes commas left dangling before a container closer. Insertion runs
// first within each call: an inserted comma can itself turn out to be
// trailing once the closer on a following line is considered, and removal
// cleans that up in the same iteration.
func RepairCommas(text string) (string, []Diagnostic) {
	lines := splitLines(text)
	var diags []Diagnostic
	changed := false

	// Missing commas inside a single line: a value immediately followed by
	// the start of another member with nothing but whitespace between them.
	// The whitespace gap becomes the comma.
	type gap struct{ start, end int }
	for li := range lines {
		line := lines[li]
		toks, _ := tokenizeLine(line)
		var gaps []gap
		for ti := 0; ti+1 < len(toks); ti++ {
			if !endsValueToken(toks[ti].kind) || !startsMemberToken(toks[ti+1].kind) {
				continue
			}
			gaps = append(gaps, gap{toks[ti].end, toks[ti+1].start})
		}
		for _, g := range gaps {
			diags = append(diags, Diagnostic{
				Kind:           KindMissingComma,
				Line:           li + 1,
				Column:         g.start + 1,
				Description:    "missing comma between sibling values",
				FixDescription: "inserted ','",
			})
		}
		for i := len(gaps) - 1; i >= 0; i-- {
			g := gaps[i]
			line = line[:g.start] + "," + line[g.end:]
			changed = true
		}
		lines[li] = line
	}

	// Missing commas across lines: a line ending in a value whose next
	// non-empty line starts a sibling member at the same or shallower
	// indentation. A deeper next line is a nested child; a closer means the
	// value was the final sibling. Neither takes a comma.
	for li := range lines {
		end, ok := EndsValue(lines[li])
		if !ok {
			continue
		}
		ni, found := nextNonEmpty(lines, li)
		if !found || !Sibling(lines[li], lines[ni]) {
			continue
		}
		diags = append(diags, Diagnostic{
			Kind:           KindMissingComma,
			Line:           li + 1,
			Column:         end + 1,
			Description:    "missing comma before sibling on next line",
			FixDescription: "inserted ','",
		})
		lines[li] = lines[li][:end] + "," + lines[li][end:]
		changed = true
	}

	// Trailing commas: a comma whose next significant token, on this line or
	// a following one, is a container closer.
	for li := range lines {
		line := lines[li]
		toks, _ := tokenizeLine(line)
		var removes []int
		for ti, tok := range toks {
			if tok.kind != tokComma {
				continue
			}
			if ti+1 < len(toks) {
				if toks[ti+1].kind == tokClose {
					removes = append(removes, tok.start)
				}
				continue
			}
			if nextBeginsCloser(lines, li) {
				removes = append(removes, tok.start)
			}
		}
		for _, p := range removes {
			diags = append(diags, Diagnostic{
				Kind:           KindTrailingComma,
				Line:           li + 1,
				Column:         p + 1,
				Description:    "trailing comma before container closer",
				FixDescription: "removed ','",
			})
		}
		for i := len(removes) - 1; i >= 0; i-- {
			p := removes[i]
			line = line[:p] + line[p+1:]
			changed = true
		}
		lines[li] = line
	}

	if !changed {
		return text, nil
	}
	return strings.Join(lines, "\n"), diags
}

func endsValueToken(k tokenKind) bool {
	switch k {
	case tokString, tokNumber, tokLiteral, tokClose:
		return true
	}
	return false
}

func startsMemberToken(k tokenKind) bool {
	switch k {
	case tokString, tokNumber, tokLiteral, tokOpen:
		return true
	}
	return false
}

// nextNonEmpty returns the index of the first line after li with significant
// content.
func nextNonEmpty(lines []string, li int) (int, bool) {
	for i := li + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i, true
		}
	}
	return 0, false
}

// nextBeginsCloser reports whether the first significant token after line li
// is a container closer.
func nextBeginsCloser(lines []string, li int) bool {
	ni, found := nextNonEmpty(lines, li)
	if !found {
		return false
	}
	toks, _ := tokenizeLine(lines[ni])
	return len(toks) > 0 && toks[0].kind == tokClose
}
