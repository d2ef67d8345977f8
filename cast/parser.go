package cast

import (
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sqldef/dtcast/cast/casterr"
	"github.com/sqldef/dtcast/catalog"
	"github.com/sqldef/dtcast/civiltime"
)

// parseState tracks the civil fields being derived plus the raw
// hour-before-meridian-combination value.
type parseState struct {
	civiltime.Fields
	rawHour12    int
	sawHour12    bool
	sawHour24    bool
}

// parseInstant parses input against an already-validated
// element list.
func parseInstant(elements []catalog.Element, input string, loc *time.Location, now time.Time, scale civiltime.Scale) (time.Time, error) {
	st := &parseState{Fields: civiltime.DefaultFields(now, loc)}

	cursor := skipUnicodeWhitespace(input, 0)

	for _, e := range elements {
		if cursor >= len(input) && !isSkippableAtEOF(e) {
			return time.Time{}, casterr.NewEvaluation(
				"Entire timestamp string has been parsed before dealing with format element %s", e.DebugName())
		}
		next, err := consumeElement(st, e, input, cursor)
		if err != nil {
			return time.Time{}, err
		}
		cursor = next
	}

	cursor = skipUnicodeWhitespace(input, cursor)
	if cursor < len(input) {
		return time.Time{}, casterr.NewEvaluation(
			"Illegal non-space trailing data '%s' in timestamp string", input[cursor:])
	}

	st.finalizeHour()

	if !st.Fields.RoundTrips() {
		return time.Time{}, casterr.NewEvaluation("Invalid result from year, month, day values after parsing")
	}

	instant := st.Fields.Instant(loc)
	if !civiltime.IsValidInstant(instant) {
		return time.Time{}, casterr.NewEvaluation("Result instant is outside the supported range")
	}
	return instant, nil
}

func isSkippableAtEOF(e catalog.Element) bool {
	return (e.Type == catalog.TypeDoubleQuotedLit) && e.LiteralValue == ""
}

func (st *parseState) finalizeHour() {
	if st.sawHour24 {
		return
	}
	if !st.sawHour12 {
		return
	}
	pm := st.Fields.Meridian != nil && *st.Fields.Meridian
	h := st.rawHour12 % 12
	if pm {
		h += 12
	}
	st.Fields.Hour = h
}

func skipUnicodeWhitespace(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

func consumeElement(st *parseState, e catalog.Element, input string, pos int) (int, error) {
	fail := func() (int, error) {
		return 0, casterr.NewEvaluationAt(pos, e.DebugName(),
			"Failed to parse input timestamp string at %d with format element %s", pos, e.DebugName())
	}

	switch e.Type {
	case catalog.TypeSimpleLiteral, catalog.TypeDoubleQuotedLit:
		if len(input)-pos < len(e.LiteralValue) || input[pos:pos+len(e.LiteralValue)] != e.LiteralValue {
			return fail()
		}
		return pos + len(e.LiteralValue), nil

	case catalog.TypeWhitespace:
		next := skipUnicodeWhitespace(input, pos)
		if next == pos {
			return fail()
		}
		return next, nil

	case catalog.TypeYYYY, catalog.TypeRRRR:
		v, next, ok := parseBoundedInt(input, pos, 1, 5, 0, 10000)
		if !ok {
			// Five digits above 10000 (e.g. "20200229" under "YYYYMMDD"):
			// take four and leave the fifth to the next element.
			v, next, ok = parseBoundedInt(input, pos, 1, 4, 0, 10000)
		}
		if !ok {
			return fail()
		}
		st.Fields.Year = v
		return next, nil

	case catalog.TypeYYY:
		return st.parseTruncatingYear(input, pos, 3, fail)
	case catalog.TypeYY:
		return st.parseTruncatingYear(input, pos, 2, fail)
	case catalog.TypeY:
		return st.parseTruncatingYear(input, pos, 1, fail)

	case catalog.TypeRR:
		v, next, ok := parseBoundedInt(input, pos, 1, 2, 0, 99)
		if !ok {
			return fail()
		}
		cc := st.Fields.Year / 100
		ccy := st.Fields.Year % 100
		if v < 50 && ccy >= 50 {
			cc++
		} else if v >= 50 && ccy < 50 {
			cc--
		}
		st.Fields.Year = cc*100 + v
		return next, nil

	case catalog.TypeYCommaYYY:
		high, next, ok := parseBoundedInt(input, pos, 1, 2, 0, 10)
		if !ok {
			return fail()
		}
		if next >= len(input) || input[next] != ',' {
			return fail()
		}
		next++
		low, next2, ok := parseBoundedInt(input, next, 3, 3, 0, 999)
		if !ok {
			return fail()
		}
		st.Fields.Year = high*1000 + low
		return next2, nil

	case catalog.TypeMM:
		v, next, ok := parseBoundedInt(input, pos, 1, 2, 1, 12)
		if !ok {
			return fail()
		}
		st.Fields.Month = v
		return next, nil

	case catalog.TypeMON:
		for i, name := range monthAbbrevNames {
			if len(input)-pos >= len(name) && equalFoldASCII(input[pos:pos+len(name)], name) {
				st.Fields.Month = i + 1
				return pos + len(name), nil
			}
		}
		return fail()

	case catalog.TypeMONTH:
		for i, name := range monthFullNames {
			if len(input)-pos >= len(name) && equalFoldASCII(input[pos:pos+len(name)], name) {
				st.Fields.Month = i + 1
				return pos + len(name), nil
			}
		}
		return fail()

	case catalog.TypeDD:
		v, next, ok := parseBoundedInt(input, pos, 1, 2, 1, 31)
		if !ok {
			return fail()
		}
		st.Fields.Day = v
		return next, nil

	case catalog.TypeDDD:
		v, next, ok := parseBoundedInt(input, pos, 1, 3, 1, 366)
		if !ok {
			return fail()
		}
		t := time.Date(st.Fields.Year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, v-1)
		st.Fields.Month = int(t.Month())
		st.Fields.Day = t.Day()
		return next, nil

	case catalog.TypeHH, catalog.TypeHH12:
		v, next, ok := parseBoundedInt(input, pos, 1, 2, 1, 12)
		if !ok {
			return fail()
		}
		st.rawHour12 = v
		st.sawHour12 = true
		return next, nil

	case catalog.TypeHH24:
		v, next, ok := parseBoundedInt(input, pos, 1, 2, 0, 23)
		if !ok {
			return fail()
		}
		st.Fields.Hour = v
		st.sawHour24 = true
		return next, nil

	case catalog.TypeMI:
		v, next, ok := parseBoundedInt(input, pos, 1, 2, 0, 59)
		if !ok {
			return fail()
		}
		st.Fields.Minute = v
		return next, nil

	case catalog.TypeSS:
		v, next, ok := parseBoundedInt(input, pos, 1, 2, 0, 60)
		if !ok {
			return fail()
		}
		st.Fields.Second = v
		return next, nil

	case catalog.TypeSSSSS:
		v, next, ok := parseBoundedInt(input, pos, 1, 5, 0, 86399)
		if !ok {
			return fail()
		}
		st.Fields.Hour = v / 3600
		st.Fields.Minute = (v % 3600) / 60
		st.Fields.Second = v % 60
		st.sawHour24 = true
		return next, nil

	case catalog.TypeFF1, catalog.TypeFF2, catalog.TypeFF3, catalog.TypeFF4, catalog.TypeFF5,
		catalog.TypeFF6, catalog.TypeFF7, catalog.TypeFF8, catalog.TypeFF9:
		n := e.SubsecondDigits
		v, next, ok := parseBoundedInt(input, pos, n, n, 0, pow10(n)-1)
		if !ok {
			return fail()
		}
		st.Fields.Nanosecond = v * pow10(9-n)
		return next, nil

	case catalog.TypeAM, catalog.TypePM, catalog.TypeAMDot, catalog.TypePMDot:
		canonical := string(e.Type)
		if len(input)-pos < len(canonical) || !equalFoldASCII(input[pos:pos+len(canonical)], canonical) {
			return fail()
		}
		pm := e.Type == catalog.TypePM || e.Type == catalog.TypePMDot
		st.Fields.Meridian = &pm
		return pos + len(canonical), nil

	case catalog.TypeTZH:
		sign := 1
		p := pos
		if p < len(input) && (input[p] == '+' || input[p] == '-') {
			if input[p] == '-' {
				sign = -1
			}
			p++
		}
		v, next, ok := parseBoundedInt(input, p, 1, 2, 0, 14)
		if !ok {
			return fail()
		}
		st.Fields.TZHour = sign * v
		st.Fields.HasTZ = true
		return next, nil

	case catalog.TypeTZM:
		v, next, ok := parseBoundedInt(input, pos, 1, 2, 0, 59)
		if !ok {
			return fail()
		}
		st.Fields.TZMinute = v
		return next, nil

	default:
		return fail()
	}
}

// parseTruncatingYear parses 1..L digits in 0..10^L-1, then replaces the
// low L digits of the current (now-seeded) year with the parsed value.
func (st *parseState) parseTruncatingYear(input string, pos int, l int, fail func() (int, error)) (int, error) {
	v, next, ok := parseBoundedInt(input, pos, 1, l, 0, pow10(l)-1)
	if !ok {
		return fail()
	}
	mod := pow10(l)
	st.Fields.Year = st.Fields.Year - (st.Fields.Year % mod) + v
	return next, nil
}

// monthAbbrevNames/monthFullNames are the canonical spellings TypeMON
// and TypeMONTH match against case-insensitively, mirroring the tables
// strftime uses for the formatting direction.
var monthAbbrevNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthFullNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// parseBoundedInt greedily consumes up to maxWidth ASCII digits (at
// least minWidth), parses them as a non-negative integer, and checks it
// falls within [minVal, maxVal].
func parseBoundedInt(s string, pos, minWidth, maxWidth, minVal, maxVal int) (value int, next int, ok bool) {
	i := pos
	for i < len(s) && i-pos < maxWidth && isDigit(s[i]) {
		i++
	}
	width := i - pos
	if width < minWidth {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[pos:i])
	if err != nil {
		return 0, 0, false
	}
	if n < minVal || n > maxVal {
		return 0, 0, false
	}
	return n, i, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'a' && ca <= 'z' {
			ca -= 'a' - 'A'
		}
		if cb >= 'a' && cb <= 'z' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
