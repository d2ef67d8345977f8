// Package token implements the format-string tokenizer and the
// per-element casing inferrer. Tokenize is the only
// entry point; everything else is an implementation detail.
package token

import (
	"github.com/sqldef/dtcast/cast/casterr"
	"github.com/sqldef/dtcast/catalog"
)

// Tokenize segments format into an ordered element list. format must
// already be validated as well-formed UTF-8 by the caller; Tokenize
// itself does not re-validate.
func Tokenize(format string) ([]catalog.Element, error) {
	upper := toUpperASCII(format)
	var elements []catalog.Element
	pos := 0
	for pos < len(format) {
		el, consumed, err := scanOne(format, upper, pos)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		pos += consumed
	}
	return elements, nil
}

// toUpperASCII uppercases only ASCII letters, leaving every other byte
// (including UTF-8 continuation bytes of multi-byte runes) untouched, so
// the result has exactly the same length and offsets as the input. This
// is what lets the trie store only upper-case keys while the casing
// inferrer still reads the original bytes.
func toUpperASCII(s string) []byte {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b[i] = c
	}
	return b
}

func scanOne(format string, upper []byte, pos int) (catalog.Element, int, error) {
	if t, length, ok := longestMatch(upper, pos); ok {
		return buildCatalogElement(format, pos, t, length), length, nil
	}

	b := format[pos]
	switch {
	case b == '"':
		return scanQuotedLiteral(format, pos)
	case b == ' ':
		return scanWhitespace(format, pos), scanWhitespaceLen(format, pos), nil
	case isSimpleLiteralByte(b):
		return catalog.Element{
			Type:           catalog.TypeSimpleLiteral,
			Category:       catalog.CategoryLiteral,
			LengthInSource: 1,
			LiteralValue:   string(b),
			CasingPolicy:   catalog.PreserveCase,
			SourceOffset:   pos,
		}, 1, nil
	default:
		return catalog.Element{}, 0, casterr.NewAnalysisAt(pos, "Cannot find matched format element at offset %d", pos)
	}
}

func buildCatalogElement(format string, pos int, t catalog.Type, length int) catalog.Element {
	cat := catalog.CategoryOf(t)
	original := format[pos : pos+length]
	el := catalog.Element{
		Type:            t,
		Category:        cat,
		LengthInSource:  length,
		SubsecondDigits: catalog.FFDigits(t),
		CasingPolicy:    inferCasing(original, cat, string(t)),
		SourceOffset:    pos,
	}
	return el
}

func scanWhitespaceLen(format string, pos int) int {
	i := pos
	for i < len(format) && format[i] == ' ' {
		i++
	}
	return i - pos
}

func scanWhitespace(format string, pos int) catalog.Element {
	length := scanWhitespaceLen(format, pos)
	return catalog.Element{
		Type:           catalog.TypeWhitespace,
		Category:       catalog.CategoryLiteral,
		LengthInSource: length,
		LiteralValue:   format[pos : pos+length],
		CasingPolicy:   catalog.PreserveCase,
		SourceOffset:   pos,
	}
}

// scanQuotedLiteral implements the quoted-literal escape state machine,
// grounded on the explicit {normal, escaped} state-variable technique in
// other_examples' pasela-go-vanatime strftime scanner, adapted here from
// strftime-directive scanning to quote/escape scanning.
func scanQuotedLiteral(format string, pos int) (catalog.Element, int, error) {
	const (
		stateNormal = iota
		stateEscaped
	)
	state := stateNormal
	var value []byte
	i := pos + 1 // skip opening quote
	for i < len(format) {
		c := format[i]
		switch state {
		case stateEscaped:
			switch c {
			case '\\':
				value = append(value, '\\')
			case '"':
				value = append(value, '"')
			default:
				return catalog.Element{}, 0, casterr.NewAnalysisAt(pos, "Unsupported escape sequence \\%c in text", c)
			}
			state = stateNormal
			i++
		default: // stateNormal
			switch c {
			case '\\':
				state = stateEscaped
				i++
			case '"':
				i++ // consume closing quote
				length := i - pos
				return catalog.Element{
					Type:           catalog.TypeDoubleQuotedLit,
					Category:       catalog.CategoryLiteral,
					LengthInSource: length,
					LiteralValue:   string(value),
					CasingPolicy:   catalog.PreserveCase,
					SourceOffset:   pos,
				}, length, nil
			default:
				value = append(value, c)
				i++
			}
		}
	}
	return catalog.Element{}, 0, casterr.NewAnalysisAt(pos, `Cannot find matching " for quoted literal`)
}
