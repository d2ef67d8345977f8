package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqldef/dtcast/cast/casterr"
	"github.com/sqldef/dtcast/catalog"
)

func TestTokenizeMaximalMunch(t *testing.T) {
	elements, err := Tokenize("YYYY-MM-DD")
	require.NoError(t, err)
	require.Len(t, elements, 5)
	assert.Equal(t, catalog.TypeYYYY, elements[0].Type)
	assert.Equal(t, catalog.TypeSimpleLiteral, elements[1].Type)
	assert.Equal(t, "-", elements[1].LiteralValue)
	assert.Equal(t, catalog.TypeMM, elements[2].Type)
	assert.Equal(t, catalog.TypeSimpleLiteral, elements[3].Type)
	assert.Equal(t, catalog.TypeDD, elements[4].Type)
}

func TestTokenizeDoesNotSplitLongerMatch(t *testing.T) {
	// HH24 must win over HH, and SSSSS over SS.
	elements, err := Tokenize("HH24:MI:SS")
	require.NoError(t, err)
	require.Len(t, elements, 5)
	assert.Equal(t, catalog.TypeHH24, elements[0].Type)
	assert.Equal(t, catalog.TypeSS, elements[4].Type)

	elements, err = Tokenize("SSSSS")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, catalog.TypeSSSSS, elements[0].Type)
}

func TestTokenizeQuotedLiteral(t *testing.T) {
	elements, err := Tokenize(`YYYY"T"MM`)
	require.NoError(t, err)
	require.Len(t, elements, 3)
	assert.Equal(t, catalog.TypeDoubleQuotedLit, elements[1].Type)
	assert.Equal(t, "T", elements[1].LiteralValue)
}

func TestTokenizeQuotedLiteralEscapes(t *testing.T) {
	elements, err := Tokenize(`"a\"b\\c"`)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, `a"b\c`, elements[0].LiteralValue)
}

func TestTokenizeUnterminatedQuoteIsAnalysisError(t *testing.T) {
	_, err := Tokenize(`YYYY"MM`)
	require.Error(t, err)
	var analysisErr *casterr.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}

func TestTokenizeUnsupportedEscapeIsAnalysisError(t *testing.T) {
	_, err := Tokenize(`"a\qb"`)
	require.Error(t, err)
	var analysisErr *casterr.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}

func TestTokenizeWhitespaceRun(t *testing.T) {
	elements, err := Tokenize("YYYY   MM")
	require.NoError(t, err)
	require.Len(t, elements, 3)
	assert.Equal(t, catalog.TypeWhitespace, elements[1].Type)
	assert.Equal(t, 3, elements[1].LengthInSource)
}

func TestTokenizeSimpleLiteralBytes(t *testing.T) {
	elements, err := Tokenize("YYYY/MM-DD,DD;DD:DD")
	require.NoError(t, err)
	for _, e := range elements {
		if e.Type == catalog.TypeSimpleLiteral {
			assert.Len(t, e.LiteralValue, 1)
		}
	}
}

func TestTokenizeUnrecognizedByteIsAnalysisError(t *testing.T) {
	_, err := Tokenize("YYYY#MM")
	require.Error(t, err)
	var analysisErr *casterr.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}

func TestTokenizeUnicodeLiteralByteFails(t *testing.T) {
	// A lone non-ASCII rune has no trie match and isn't one of the seven
	// simple-literal bytes, so it must be rejected rather than silently
	// dropped or mis-split.
	_, err := Tokenize("YYYYé")
	require.Error(t, err)
}

func TestCasingPolicyInference(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		index    int
		expected catalog.CasingPolicy
	}{
		{"all upper surface", "MONTH", 0, catalog.AllUpper},
		{"all lower surface", "month", 0, catalog.AllLower},
		{"first letter upper surface", "Month", 0, catalog.OnlyFirstLetterUpper},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements, err := Tokenize(tt.format)
			require.NoError(t, err)
			require.Len(t, elements, 1)
			assert.Equal(t, tt.expected, elements[0].CasingPolicy)
		})
	}
}
