package repair

import "strings"

// CloseContainers appends the closers needed to balance unmatched '{' and
// '[' across the whole text. The open-container stack is unwound innermost
// first, so an array left open inside an object gains its ']' before the
// object gains its '}'. The pass only ever appends; stray closers with no
// matching opener are left for the strict parse to reject.
func CloseContainers(text string) (string, []Diagnostic) {
	var stack []byte
	lines := splitLines(text)
	for _, line := range lines {
		toks, _ := tokenizeLine(line)
		for _, tok := range toks {
			switch tok.kind {
			case tokOpen:
				stack = append(stack, line[tok.start])
			case tokClose:
				if len(stack) == 0 {
					continue
				}
				top := stack[len(stack)-1]
				if (line[tok.start] == '}' && top == '{') || (line[tok.start] == ']' && top == '[') {
					stack = stack[:len(stack)-1]
				}
			}
		}
	}
	if len(stack) == 0 {
		return text, nil
	}

	var diags []Diagnostic
	var b strings.Builder
	b.WriteString(text)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '[' {
			b.WriteByte(']')
			diags = append(diags, Diagnostic{
				Kind:           KindMalformedArray,
				Line:           len(lines),
				Description:    "unclosed array",
				FixDescription: "appended ']'",
			})
			continue
		}
		b.WriteByte('}')
		diags = append(diags, Diagnostic{
			Kind:           KindMalformedObject,
			Line:           len(lines),
			Description:    "unclosed object",
			FixDescription: "appended '}'",
		})
	}
	return b.String(), diags
}
