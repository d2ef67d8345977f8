package catalog

// CasingPolicy controls how a non-literal element's rendered text is
// re-cased by the formatter. Literal elements always use PreserveCase.
type CasingPolicy int

const (
	PreserveCase CasingPolicy = iota
	AllUpper
	AllLower
	OnlyFirstLetterUpper
)

// Element is one atomic unit produced by the tokenizer: either a literal
// or a semantic directive. Once appended to an element list it is never
// mutated.
type Element struct {
	Type              Type
	Category          Category
	LengthInSource    int
	LiteralValue      string
	SubsecondDigits   int
	CasingPolicy      CasingPolicy
	SourceOffset      int // byte offset in the original format string
}

// DebugName renders the element the way diagnostics do:
// literal elements as '<literal>', FFn as 'FFn', everything else as
// '<TYPE_NAME>'.
func (e Element) DebugName() string {
	switch e.Type {
	case TypeSimpleLiteral, TypeDoubleQuotedLit, TypeWhitespace:
		return "'" + e.LiteralValue + "'"
	case TypeFF1, TypeFF2, TypeFF3, TypeFF4, TypeFF5, TypeFF6, TypeFF7, TypeFF8, TypeFF9:
		return "'FFn'"
	default:
		return "'" + string(e.Type) + "'"
	}
}
