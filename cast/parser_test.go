package cast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqldef/dtcast/token"
)

// parse tokenizes format (skipping structural validation, which has its
// own dedicated tests) and parses input directly through parseInstant.
func parse(t *testing.T, format, input string, now time.Time) (time.Time, error) {
	t.Helper()
	elements, err := token.Tokenize(format)
	require.NoError(t, err)
	return parseInstant(elements, input, time.UTC, now, 0)
}

func TestParseRRPivotRule(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		wantYear int
	}{
		{"low two-digit with current-century-year below 50 stays same century", "05", 2005},
		{"high two-digit with current-century-year below 50 borrows prior century", "60", 1960},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(t, "RR", tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, got.Year())
		})
	}
}

func TestParseTruncatingYear(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	got, err := parse(t, "YY", "99", now)
	require.NoError(t, err)
	assert.Equal(t, 2099, got.Year())
}

func TestParseYCommaYYY(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	got, err := parse(t, `Y,YYY-MM-DD`, "2,024-03-05", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestParseSSSSS(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	got, err := parse(t, "SSSSS", "3661", now)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Hour())
	assert.Equal(t, 1, got.Minute())
	assert.Equal(t, 1, got.Second())
}

func TestParseFractionalSeconds(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	got, err := parse(t, "SS.FF3", "01.250", now)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Second())
	assert.Equal(t, 250_000_000, got.Nanosecond())
}

func TestParseTimeZoneOffset(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	elements, err := token.Tokenize("HH24:MITZH:TZM")
	require.NoError(t, err)
	got, err := parseInstant(elements, "14:30-05:30", time.UTC, now, 0)
	require.NoError(t, err)
	// Wall clock reads 14:30 at the explicit -05:30 offset parsed from
	// the input itself, which must win over the UTC default zone: as an
	// absolute instant that's 20:00 UTC, not 14:30 UTC.
	assert.Equal(t, 20, got.UTC().Hour())
	assert.Equal(t, 0, got.UTC().Minute())
}

func TestParseMonthNameAbbrevAndFull(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	got, err := parse(t, "DD MON YYYY", "04 jul 2021", now)
	require.NoError(t, err)
	assert.Equal(t, time.July, got.Month())

	got, err = parse(t, "DD MONTH YYYY", "04 July 2021", now)
	require.NoError(t, err)
	assert.Equal(t, time.July, got.Month())
}
