package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqldef/dtcast/catalog"
	"github.com/sqldef/dtcast/token"
)

func tokenize(t *testing.T, format string) []catalog.Element {
	t.Helper()
	elements, err := token.Tokenize(format)
	require.NoError(t, err)
	return elements
}

func TestForParsingAcceptsWellFormed(t *testing.T) {
	err := ForParsing(tokenize(t, "YYYY-MM-DD HH24:MI:SS"), catalog.TargetTimestamp)
	assert.NoError(t, err)
}

func TestForParsingRequiresMeridianWithHH12(t *testing.T) {
	err := ForParsing(tokenize(t, "HH12:MI"), catalog.TargetTimestamp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Format element in category MERIDIAN_INDICATOR is required when format element 'HH12' exists")
}

func TestForParsingRejectsHH24WithMeridian(t *testing.T) {
	err := ForParsing(tokenize(t, "HH24 AM"), catalog.TargetTimestamp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'HH24'")
	assert.Contains(t, err.Error(), "MERIDIAN_INDICATOR")
}

func TestForParsingRejectsDuplicateType(t *testing.T) {
	err := ForParsing(tokenize(t, "YYYY YYYY"), catalog.TargetTimestamp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicated")
}

func TestForParsingRejectsDuplicateCategory(t *testing.T) {
	err := ForParsing(tokenize(t, "YYYY RRRR"), catalog.TargetTimestamp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestForParsingRejectsDDDWithMonth(t *testing.T) {
	err := ForParsing(tokenize(t, "DDD MM"), catalog.TargetTimestamp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'DDD'")
}

func TestForParsingRejectsSSSSSWithSS(t *testing.T) {
	err := ForParsing(tokenize(t, "SSSSS SS"), catalog.TargetTimestamp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'SSSSS'")
}

func TestForParsingRejectsNonParseableElement(t *testing.T) {
	err := ForParsing(tokenize(t, "MONTH CC"), catalog.TargetTimestamp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported for parsing")
}

func TestForParsingRejectsTargetRestriction(t *testing.T) {
	err := ForParsing(tokenize(t, "HH24:MI"), catalog.TargetDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATE")
}

func TestForFormattingAllowsNonParseableElement(t *testing.T) {
	err := ForFormatting(tokenize(t, "MONTH CC"), catalog.TargetTimestamp)
	assert.NoError(t, err)
}

func TestForFormattingAcceptsMeridianWithHH(t *testing.T) {
	err := ForFormatting(tokenize(t, "HH:MI AM"), catalog.TargetTimestamp)
	assert.NoError(t, err)
}
