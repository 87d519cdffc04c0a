package repair

// Kind labels the category of one applied fix.
type Kind int

const (
	KindMissingComma Kind = iota
	KindTrailingComma
	KindMissingQuote
	KindInvalidEscape
	KindMalformedObject
	KindMalformedArray
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissingComma:
		return "MissingComma"
	case KindTrailingComma:
		return "TrailingComma"
	case KindMissingQuote:
		return "MissingQuote"
	case KindInvalidEscape:
		return "InvalidEscape"
	case KindMalformedObject:
		return "MalformedObject"
	case KindMalformedArray:
		return "MalformedArray"
	}
	return "Unknown"
}

// Diagnostic records one syntax correction applied by a pass.
// Line and Column are 1-based; 0 means the position could not be derived.
// Positions refer to the text as it was before the fix was applied.
type Diagnostic struct {
	Kind           Kind
	Line           int
	Column         int
	Description    string
	FixDescription string
}
