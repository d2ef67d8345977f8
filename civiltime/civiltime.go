// Package civiltime is a thin adapter over civil-time and time-zone
// values. It is built directly on github.com/golang-sql/civil for the
// wall-clock value types, and stdlib time for zone arithmetic, instant
// construction, and the pre-disambiguation rule the parser needs.
package civiltime

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"
)

// Scale selects the subsecond resolution a caller wants out of
// MakeTime/ToUnixMicros-family conversions.
type Scale int

const (
	Micros Scale = iota
	Nanos
)

// Supported absolute instant range, matching the conservative bound
// common to SQL TIMESTAMP types (proleptic Gregorian year 1 through
// 9999).
const (
	MinYear = 1
	MaxYear = 9999
)

// Fields is the engine's mutable "derived civil fields" state while a
// parse is in progress. Meridian is nil until
// some element sets it.
type Fields struct {
	Year       int
	Month      int // 1-12
	Day        int // 1-31
	Hour       int // 0-23, always stored in 24h form
	Minute     int
	Second     int
	Nanosecond int
	TZHour     int
	TZMinute   int
	HasTZ      bool
	Meridian   *bool // true = PM, false = AM, nil = unset
}

// DefaultFields seeds Fields from the supplied current instant in loc:
// year and month come from now, day is 1, and the rest are zero.
func DefaultFields(now time.Time, loc *time.Location) Fields {
	civ := civil.DateTimeOf(now.In(loc))
	return Fields{
		Year:  civ.Date.Year,
		Month: int(civ.Date.Month),
		Day:   1,
	}
}

// CivilDateTime renders f as a civil.DateTime, the value golang-sql/civil
// uses to represent a zone-less wall clock reading.
func (f Fields) CivilDateTime() civil.DateTime {
	return civil.DateTime{
		Date: civil.Date{Year: f.Year, Month: time.Month(f.Month), Day: f.Day},
		Time: civil.Time{Hour: f.Hour, Minute: f.Minute, Second: f.Second, Nanosecond: f.Nanosecond},
	}
}

// RoundTrips reports whether f's (year, month, day, hour, min, sec)
// survive calendar normalization unchanged. A false result means e.g.
// February 29 in a non-leap year, or an hour/minute/second out of its
// natural range.
func (f Fields) RoundTrips() bool {
	civ := f.CivilDateTime()
	if !civ.Date.IsValid() {
		return false
	}
	if f.Hour < 0 || f.Hour > 23 || f.Minute < 0 || f.Minute > 59 || f.Second < 0 || f.Second > 59 {
		return false
	}
	return true
}

// Instant converts f to an absolute instant, using the "pre"
// (earlier-of-two) disambiguation for wall-clock readings that fall in a
// DST fold. time.Date alone can return the later reading (it does for
// zones east of UTC), so Instant steps back to the earlier instant
// whenever that one shows the same wall clock. When f
// carries an explicit TZH/TZM offset (parsed from the input string
// itself), that offset wins over loc, the same way an ISO 8601 string
// with a trailing "+05:30" is interpreted at that offset regardless of
// the caller's default zone; loc is used only when the input string had
// no zone element of its own.
func (f Fields) Instant(loc *time.Location) time.Time {
	if f.HasTZ {
		return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, f.Nanosecond, f.tzLocation())
	}
	t := time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, f.Nanosecond, loc)
	_, off := t.Zone()
	if _, before := t.Add(-3 * time.Hour).Zone(); before > off {
		pre := t.Add(-time.Duration(before-off) * time.Second)
		if pre.Year() == t.Year() && pre.YearDay() == t.YearDay() && pre.Hour() == t.Hour() &&
			pre.Minute() == t.Minute() && pre.Second() == t.Second() {
			return pre
		}
	}
	return t
}

// tzLocation builds a fixed-offset *time.Location from f.TZHour/TZMinute.
// TZHour already carries the sign parsed from the input (e.g. -5 for
// "-05:30"); TZMinute is always non-negative and takes that same sign.
func (f Fields) tzLocation() *time.Location {
	sign := 1
	if f.TZHour < 0 {
		sign = -1
	}
	offset := f.TZHour*3600 + sign*f.TZMinute*60
	return time.FixedZone("", offset)
}

// LoadZone wraps time.LoadLocation as the engine's zone-lookup
// collaborator.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unrecognized time zone %q: %w", name, err)
	}
	return loc, nil
}

// IsValidInstant reports whether t lies inside the engine's supported
// absolute range.
func IsValidInstant(t time.Time) bool {
	y := t.Year()
	return y >= MinYear && y <= MaxYear
}

// DayOfWeek returns the day-of-week numbering used by the D format
// element: Sunday=1 .. Saturday=7.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday()) + 1
}

// MakeTime builds an instant from a Unix-epoch count at the given scale.
func MakeTime(count int64, scale Scale) time.Time {
	switch scale {
	case Nanos:
		return time.Unix(0, count).UTC()
	default:
		return time.UnixMicro(count).UTC()
	}
}

// ToUnixMicros converts an instant to microseconds since the Unix epoch.
func ToUnixMicros(t time.Time) int64 {
	return t.UnixMicro()
}
