package cast

import (
	"strconv"
	"strings"
	"time"

	"github.com/sqldef/dtcast/catalog"
	"github.com/sqldef/dtcast/civiltime"
	"github.com/sqldef/dtcast/strftime"
)

// formatInstant renders t through an already-validated element list.
func formatInstant(elements []catalog.Element, t time.Time) (string, error) {
	rendered := make([]string, len(elements))
	fmMode := false // one-shot flag set by FM, consumed by the very next element of any kind

	for i, e := range elements {
		s, err := renderPrimitive(e, t, fmMode)
		if err != nil {
			return "", err
		}
		if e.Type == catalog.TypeFM {
			fmMode = true
			rendered[i] = ""
			continue
		}
		fmMode = false
		if !catalog.IsLiteral(e.Type) {
			s = applyCasing(s, e.CasingPolicy)
		}
		rendered[i] = s
	}

	applySuffixModifiers(elements, rendered)

	var b strings.Builder
	for _, s := range rendered {
		b.WriteString(s)
	}
	return b.String(), nil
}

// renderPrimitive renders element e's raw text, before casing and
// before the TH/SP suffix post-processing pass.
func renderPrimitive(e catalog.Element, t time.Time, fmMode bool) (string, error) {
	switch e.Type {
	case catalog.TypeSimpleLiteral, catalog.TypeDoubleQuotedLit:
		return e.LiteralValue, nil
	case catalog.TypeWhitespace:
		return strings.Repeat(" ", e.LengthInSource), nil

	case catalog.TypeYYYY:
		return strconv.Itoa(t.Year()), nil
	case catalog.TypeYYY:
		return lastDigitsPadded(t.Year(), 3, fmMode), nil
	case catalog.TypeYY:
		return lastDigitsPadded(t.Year(), 2, fmMode), nil
	case catalog.TypeY:
		return lastDigitsPadded(t.Year(), 1, fmMode), nil
	case catalog.TypeRRRR:
		return strconv.Itoa(t.Year()), nil
	case catalog.TypeRR:
		return lastDigitsPadded(t.Year(), 2, fmMode), nil
	case catalog.TypeYCommaYYY:
		y := t.Year()
		return strconv.Itoa(y/1000) + "," + zeroPad(y%1000, 3), nil
	case catalog.TypeSYYYY:
		return strconv.Itoa(t.Year()), nil
	case catalog.TypeIYYY:
		isoYear, _ := t.ISOWeek()
		return strconv.Itoa(isoYear), nil
	case catalog.TypeIYY:
		isoYear, _ := t.ISOWeek()
		return lastDigitsPadded(isoYear, 3, fmMode), nil
	case catalog.TypeIY:
		isoYear, _ := t.ISOWeek()
		return lastDigitsPadded(isoYear, 2, fmMode), nil
	case catalog.TypeI:
		isoYear, _ := t.ISOWeek()
		return lastDigitsPadded(isoYear, 1, fmMode), nil

	case catalog.TypeMM:
		return numericOrPadded(int(t.Month()), 2, fmMode), nil
	case catalog.TypeMON:
		s, err := strftime.Render(t, strftime.MonthAbbrev)
		return s, err
	case catalog.TypeMONTH:
		s, err := strftime.Render(t, strftime.MonthFull)
		return s, err
	case catalog.TypeRM:
		return romanMonth(int(t.Month())), nil

	case catalog.TypeDD:
		s, err := strftime.Render(t, strftime.DayOfMonth)
		if fmMode {
			return strconv.Itoa(t.Day()), err
		}
		return s, err
	case catalog.TypeDDD:
		s, err := strftime.Render(t, strftime.DayOfYear)
		return s, err
	case catalog.TypeD:
		return strconv.Itoa(civiltime.DayOfWeek(t)), nil
	case catalog.TypeDAY:
		s, err := strftime.Render(t, strftime.WeekdayFull)
		return s, err
	case catalog.TypeDY:
		s, err := strftime.Render(t, strftime.WeekdayAbbrev)
		return s, err
	case catalog.TypeJ:
		return strconv.Itoa(julianDayNumber(t)), nil

	case catalog.TypeHH, catalog.TypeHH12:
		s, err := strftime.Render(t, strftime.Hour12)
		if fmMode {
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			return strconv.Itoa(h), err
		}
		return s, err
	case catalog.TypeHH24:
		s, err := strftime.Render(t, strftime.Hour24)
		if fmMode {
			return strconv.Itoa(t.Hour()), err
		}
		return s, err
	case catalog.TypeMI:
		s, err := strftime.Render(t, strftime.MinuteOfHour)
		if fmMode {
			return strconv.Itoa(t.Minute()), err
		}
		return s, err
	case catalog.TypeSS:
		s, err := strftime.Render(t, strftime.SecondOfMin)
		if fmMode {
			return strconv.Itoa(t.Second()), err
		}
		return s, err
	case catalog.TypeSSSSS:
		secs := t.Hour()*3600 + t.Minute()*60 + t.Second()
		return zeroPad(secs, 5), nil
	case catalog.TypeFF1, catalog.TypeFF2, catalog.TypeFF3, catalog.TypeFF4, catalog.TypeFF5,
		catalog.TypeFF6, catalog.TypeFF7, catalog.TypeFF8, catalog.TypeFF9:
		return strftime.RenderFractionalSeconds(t, e.SubsecondDigits), nil

	case catalog.TypeAM, catalog.TypePM:
		return meridianWord(t, false), nil
	case catalog.TypeAMDot, catalog.TypePMDot:
		return meridianWord(t, true), nil

	case catalog.TypeTZH:
		_, offset := t.Zone()
		h := offset / 3600
		sign := "+"
		if h < 0 {
			sign = "-"
			h = -h
		}
		return sign + zeroPad(h, 2), nil
	case catalog.TypeTZM:
		_, offset := t.Zone()
		m := (abs(offset) % 3600) / 60
		return zeroPad(m, 2), nil

	case catalog.TypeCC, catalog.TypeSCC:
		cc := (t.Year() + 99) / 100
		return strconv.Itoa(cc), nil
	case catalog.TypeQ:
		q := 1 + (int(t.Month())-1)/3
		return strconv.Itoa(q), nil
	case catalog.TypeIW:
		_, week := t.ISOWeek()
		return zeroPad(week, 2), nil
	case catalog.TypeWW:
		ww := 1 + (t.YearDay()-1)/7
		return zeroPad(ww, 2), nil
	case catalog.TypeW:
		w := 1 + (t.Day()-1)/7
		return strconv.Itoa(w), nil
	case catalog.TypeAD:
		return eraWord(t.Year(), false), nil
	case catalog.TypeBC:
		return eraWord(t.Year(), false), nil
	case catalog.TypeADDot:
		return eraWord(t.Year(), true), nil
	case catalog.TypeBCDot:
		return eraWord(t.Year(), true), nil

	case catalog.TypeFM:
		return "", nil
	case catalog.TypeSP, catalog.TypeTH, catalog.TypeSPTH, catalog.TypeTHSP:
		// These modify the preceding element's rendering in
		// applySuffixModifiers; they render nothing themselves.
		return "", nil

	case catalog.TypeYEAR, catalog.TypeSYEAR:
		// English cardinal spellout of the year (e.g. "TWO THOUSAND
		// TWENTY FOUR") is not implemented: no example in the pack
		// carries a number-to-words table to ground it on.
		return "", nil

	default:
		return "", nil
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func numericOrPadded(v, width int, fmMode bool) string {
	if fmMode {
		return strconv.Itoa(v)
	}
	return zeroPad(v, width)
}

func lastDigitsPadded(year, l int, fmMode bool) string {
	mod := pow10(l)
	v := year % mod
	if v < 0 {
		v += mod
	}
	if fmMode {
		return strconv.Itoa(v)
	}
	return zeroPad(v, l)
}

func zeroPad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// meridianWord renders the AM/PM indicator. Wall-clock noon renders PM
// and wall-clock midnight renders AM (the Open Question 9.2 resolution
// in DESIGN.md/SPEC_FULL.md: standard hour>=12 semantics).
func meridianWord(t time.Time, dotted bool) string {
	pm := t.Hour() >= 12
	switch {
	case dotted && pm:
		return "P.M."
	case dotted && !pm:
		return "A.M."
	case !dotted && pm:
		return "PM"
	default:
		return "AM"
	}
}

func eraWord(year int, dotted bool) string {
	if year >= 1 {
		if dotted {
			return "A.D."
		}
		return "AD"
	}
	if dotted {
		return "B.C."
	}
	return "BC"
}

var romanMonths = [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

func romanMonth(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return romanMonths[m-1]
}

func julianDayNumber(t time.Time) int {
	y, m, d := t.Date()
	a := (14 - int(m)) / 12
	y2 := y + 4800 - a
	m2 := int(m) + 12*a - 3
	return d + (153*m2+2)/5 + 365*y2 + y2/4 - y2/100 + y2/400 - 32045
}

// applySuffixModifiers is the TH/SPTH/THSP/SP post-pass:
// these elements modify the immediately preceding numeric element's
// already-rendered text rather than rendering anything of their own.
func applySuffixModifiers(elements []catalog.Element, rendered []string) {
	for i, e := range elements {
		switch e.Type {
		case catalog.TypeTH, catalog.TypeSPTH, catalog.TypeTHSP, catalog.TypeSP:
			if i == 0 {
				continue
			}
			prev := rendered[i-1]
			switch e.Type {
			case catalog.TypeTH:
				rendered[i-1] = prev + ordinalSuffix(prev)
			case catalog.TypeSPTH:
				rendered[i-1] = prev + ordinalSuffix(prev)
			case catalog.TypeTHSP:
				rendered[i-1] = prev + ordinalSuffix(prev)
			case catalog.TypeSP:
				// spellout form left as the numeral; full cardinal
				// spellout is not implemented (no pack example
				// provides an English-number spellout table).
			}
		}
	}
}

func ordinalSuffix(numeral string) string {
	n, err := strconv.Atoi(numeral)
	if err != nil {
		return ""
	}
	if n%100 >= 11 && n%100 <= 13 {
		return "TH"
	}
	switch n % 10 {
	case 1:
		return "ST"
	case 2:
		return "ND"
	case 3:
		return "RD"
	default:
		return "TH"
	}
}

func applyCasing(s string, policy catalog.CasingPolicy) string {
	switch policy {
	case catalog.AllUpper:
		return strings.ToUpper(s)
	case catalog.AllLower:
		return strings.ToLower(s)
	case catalog.OnlyFirstLetterUpper:
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	default:
		return s
	}
}
