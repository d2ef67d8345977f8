package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFieldsSeedsYearMonthOnly(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	f := DefaultFields(now, time.UTC)
	assert.Equal(t, 2024, f.Year)
	assert.Equal(t, 3, f.Month)
	assert.Equal(t, 1, f.Day)
	assert.Equal(t, 0, f.Hour)
}

func TestRoundTripsRejectsInvalidCalendarDate(t *testing.T) {
	f := Fields{Year: 2021, Month: 2, Day: 29}
	assert.False(t, f.RoundTrips())
}

func TestRoundTripsAcceptsLeapDay(t *testing.T) {
	f := Fields{Year: 2020, Month: 2, Day: 29}
	assert.True(t, f.RoundTrips())
}

func TestRoundTripsRejectsOutOfRangeSecond(t *testing.T) {
	f := Fields{Year: 2020, Month: 1, Day: 1, Second: 61}
	assert.False(t, f.RoundTrips())
}

func TestInstantConstructsExpectedTime(t *testing.T) {
	f := Fields{Year: 2021, Month: 7, Day: 4, Hour: 1, Minute: 2, Second: 3}
	got := f.Instant(time.UTC)
	assert.Equal(t, time.Date(2021, time.July, 4, 1, 2, 3, 0, time.UTC), got)
}

func TestInstantPrefersExplicitTZOverLoc(t *testing.T) {
	f := Fields{Year: 2024, Month: 3, Day: 5, Hour: 14, Minute: 30, TZHour: -5, TZMinute: 30, HasTZ: true}
	got := f.Instant(time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 5, 20, 0, 0, 0, time.UTC), got.UTC())
}

func TestLoadZoneEmptyIsUTC(t *testing.T) {
	loc, err := LoadZone("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadZoneUnrecognizedIsError(t *testing.T) {
	_, err := LoadZone("Not/A_Real_Zone")
	assert.Error(t, err)
}

func TestIsValidInstantRange(t *testing.T) {
	assert.True(t, IsValidInstant(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsValidInstant(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsValidInstant(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDayOfWeekSundayIsOne(t *testing.T) {
	sunday := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DayOfWeek(sunday))
	monday := sunday.AddDate(0, 0, 1)
	assert.Equal(t, 2, DayOfWeek(monday))
}

func TestMakeTimeAndToUnixMicrosRoundTrip(t *testing.T) {
	want := int64(1_600_000_000_123_456)
	got := MakeTime(want, Micros)
	assert.Equal(t, want, ToUnixMicros(got))
}
