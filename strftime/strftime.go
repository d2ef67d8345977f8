// Package strftime is a deliberately small strftime-like directive
// renderer: exactly the fixed conversion set %m %b %B %d %j %A %a %I
// %H %M %S %E<n>f. It is invoked once per format element — never
// handed more than one directive's worth of pattern at a time —
// because per-element casing policy has to be applied independently by
// the caller.
//
// Grounded on the directive-table technique (padding-by-verb,
// width-by-verb maps) in other_examples' pasela-go-vanatime strftime
// implementation, rewritten against stdlib time.Time rather than a
// custom calendar.
package strftime

import (
	"fmt"
	"strings"
	"time"
)

var monthAbbrev = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthFull = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var dayAbbrev = [...]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}

var dayFull = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Conversion identifies one of the fixed directives this package
// supports.
type Conversion byte

const (
	Month12       Conversion = 'm' // %m, 01-12
	MonthAbbrev   Conversion = 'b' // %b, Jan
	MonthFull     Conversion = 'B' // %B, January
	DayOfMonth    Conversion = 'd' // %d, 01-31
	DayOfYear     Conversion = 'j' // %j, 001-366
	WeekdayFull   Conversion = 'A' // %A, Monday
	WeekdayAbbrev Conversion = 'a' // %a, Mon
	Hour12        Conversion = 'I' // %I, 01-12
	Hour24        Conversion = 'H' // %H, 00-23
	MinuteOfHour  Conversion = 'M' // %M, 00-59
	SecondOfMin   Conversion = 'S' // %S, 00-60
)

// Render renders a single fixed-set conversion for t.
func Render(t time.Time, c Conversion) (string, error) {
	switch c {
	case Month12:
		return fmt.Sprintf("%02d", int(t.Month())), nil
	case MonthAbbrev:
		return monthAbbrev[t.Month()-1], nil
	case MonthFull:
		return monthFull[t.Month()-1], nil
	case DayOfMonth:
		return fmt.Sprintf("%02d", t.Day()), nil
	case DayOfYear:
		return fmt.Sprintf("%03d", t.YearDay()), nil
	case WeekdayFull:
		return dayFull[int(t.Weekday())], nil
	case WeekdayAbbrev:
		return dayAbbrev[int(t.Weekday())], nil
	case Hour12:
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return fmt.Sprintf("%02d", h), nil
	case Hour24:
		return fmt.Sprintf("%02d", t.Hour()), nil
	case MinuteOfHour:
		return fmt.Sprintf("%02d", t.Minute()), nil
	case SecondOfMin:
		return fmt.Sprintf("%02d", t.Second()), nil
	default:
		return "", fmt.Errorf("strftime: unsupported conversion %q", string(rune(c)))
	}
}

// RenderFractionalSeconds implements %E<n>f: n fractional-second digits,
// truncated, never rounded.
func RenderFractionalSeconds(t time.Time, digits int) string {
	if digits < 1 {
		digits = 1
	}
	if digits > 9 {
		digits = 9
	}
	nanos := t.Nanosecond()
	full := fmt.Sprintf("%09d", nanos)
	truncated := full[:digits]
	return truncated
}

// ParseDirective splits a single "%X" or "%E<n>f" directive string,
// returning the Conversion (with ok=true) or, for the fractional-second
// form, digits>0 and ok=false (caller should use
// RenderFractionalSeconds instead).
func ParseDirective(directive string) (c Conversion, digits int, ok bool) {
	d := strings.TrimPrefix(directive, "%")
	if strings.HasPrefix(d, "E") && strings.HasSuffix(d, "f") && len(d) == 3 {
		n := int(d[1] - '0')
		return 0, n, false
	}
	if len(d) == 1 {
		return Conversion(d[0]), 0, true
	}
	return 0, 0, false
}
