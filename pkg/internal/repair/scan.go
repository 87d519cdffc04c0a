package repair

import "strings"

type tokenKind int

const (
	tokString  tokenKind = iota // "..." (possibly unterminated)
	tokNumber                   // 123, -4.5e6
	tokLiteral                  // true, false, null
	tokWord                     // bare identifier
	tokOpen                     // { or [
	tokClose                    // } or ]
	tokComma
	tokColon
	tokOther // any other single byte
)

type token struct {
	kind       tokenKind
	start, end int // byte offsets into the line, end exclusive
}

// tokenizeLine splits one line into significant tokens, skipping whitespace.
// A string literal is a single token; a string with no closing quote consumes
// the rest of the line and openString reports true. String state never
// carries across lines: raw newlines are not legal inside JSON strings, and
// resetting at each line keeps one unbalanced quote from poisoning the
// heuristics for the rest of the text.
func tokenizeLine(line string) (toks []token, openString bool) {
	i := 0
	n := len(line)
	for i < n {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '"':
			start := i
			i++
			closed := false
			for i < n {
				if line[i] == '\\' {
					i += 2
					continue
				}
				if line[i] == '"' {
					i++
					closed = true
					break
				}
				i++
			}
			if i > n {
				i = n
			}
			toks = append(toks, token{tokString, start, i})
			if !closed {
				openString = true
			}
		case c == '{' || c == '[':
			toks = append(toks, token{tokOpen, i, i + 1})
			i++
		case c == '}' || c == ']':
			toks = append(toks, token{tokClose, i, i + 1})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, i, i + 1})
			i++
		case c == ':':
			toks = append(toks, token{tokColon, i, i + 1})
			i++
		case c == '-' || isDigit(c):
			start := i
			i++
			for i < n && isNumberByte(line[i]) {
				i++
			}
			toks = append(toks, token{tokNumber, start, i})
		case isWordStart(c):
			start := i
			i++
			for i < n && isWordByte(line[i]) {
				i++
			}
			kind := tokWord
			switch line[start:i] {
			case "true", "false", "null":
				kind = tokLiteral
			}
			toks = append(toks, token{kind, start, i})
		default:
			toks = append(toks, token{tokOther, i, i + 1})
			i++
		}
	}
	return toks, openString
}

// LineClass is the structural role of one line of text.
type LineClass int

const (
	ClassBlank    LineClass = iota
	ClassCloser             // begins with } or ]
	ClassOpener             // ends with { or [
	ClassProperty           // contains a key/value colon outside strings
	ClassElement            // a bare value: string, number, bool, null
	ClassOther
)

// Classify determines the structural role of a line. Container closers win
// over everything else, openers over properties, so a line like `"deps": {`
// classifies as an opener rather than a property.
func Classify(line string) LineClass {
	toks, _ := tokenizeLine(line)
	if len(toks) == 0 {
		return ClassBlank
	}
	if toks[0].kind == tokClose {
		return ClassCloser
	}
	if toks[len(toks)-1].kind == tokOpen {
		return ClassOpener
	}
	for _, t := range toks {
		if t.kind == tokColon {
			return ClassProperty
		}
	}
	switch toks[0].kind {
	case tokString, tokNumber, tokLiteral, tokOpen:
		// tokOpen here means the container both opens and closes on this
		// line, so the line as a whole is an element.
		return ClassElement
	}
	return ClassOther
}

// Indent returns the leading whitespace width of a line, counting tabs and
// spaces one column each.
func Indent(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

// StartsMember reports whether the line begins a new property or array
// element rather than closing an enclosing container or continuing one with
// a leading separator.
func StartsMember(line string) bool {
	toks, _ := tokenizeLine(line)
	if len(toks) > 0 && (toks[0].kind == tokComma || toks[0].kind == tokColon) {
		return false
	}
	switch Classify(line) {
	case ClassOpener, ClassProperty, ClassElement:
		return true
	}
	return false
}

// Sibling reports whether next begins a sibling member of the structure cur
// belongs to. Indentation is the tie-break: a deeper next line is a nested
// child, not a sibling in need of a separator.
func Sibling(cur, next string) bool {
	return StartsMember(next) && Indent(next) <= Indent(cur)
}

// EndsValue reports whether the line's final significant token terminates a
// value (a closed string, a number, true/false/null, or a container closer)
// and returns the byte offset just past that token. Lines ending inside an
// unterminated string report false.
func EndsValue(line string) (end int, ok bool) {
	toks, open := tokenizeLine(line)
	if open || len(toks) == 0 {
		return 0, false
	}
	last := toks[len(toks)-1]
	switch last.kind {
	case tokString, tokNumber, tokLiteral, tokClose:
		return last.end, true
	}
	return 0, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

func isWordStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordByte(c byte) bool {
	return isWordStart(c) || isDigit(c)
}

// splitLines breaks text on newlines without dropping any bytes; joining the
// result with "\n" reproduces the input.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
