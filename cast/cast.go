// Package cast implements the seven public SQL cast entry points
// and the two error types they raise through. Each entry
// point is a pure function of its arguments: UTF-8 validate, tokenize,
// validate against a target type, then parse or format.
package cast

import (
	"time"
	"unicode/utf8"

	"github.com/sqldef/dtcast/cast/casterr"
	"github.com/sqldef/dtcast/catalog"
	"github.com/sqldef/dtcast/civiltime"
	"github.com/sqldef/dtcast/token"
	"github.com/sqldef/dtcast/validate"
)

// AnalysisError and EvaluationError are re-exported from the leaf
// package cast/casterr so callers never import that package directly.
type (
	AnalysisError   = casterr.AnalysisError
	EvaluationError = casterr.EvaluationError
)

func checkFormatUTF8(format string) error {
	if !utf8.ValidString(format) {
		return casterr.NewAnalysis("Format string is not valid UTF-8")
	}
	return nil
}

func checkUTF8(format, input string) error {
	if err := checkFormatUTF8(format); err != nil {
		return err
	}
	if !utf8.ValidString(input) {
		return casterr.NewEvaluation("Input string is not valid UTF-8")
	}
	return nil
}

// CastStringToTimestamp parses input against format in zone loc, with
// now supplying the default year/month for partial results, and
// returns the resulting instant.
func CastStringToTimestamp(format, input string, loc *time.Location, now time.Time) (time.Time, error) {
	if err := checkUTF8(format, input); err != nil {
		return time.Time{}, err
	}
	elements, err := token.Tokenize(format)
	if err != nil {
		return time.Time{}, err
	}
	if err := validate.ForParsing(elements, catalog.TargetTimestamp); err != nil {
		return time.Time{}, err
	}
	return parseInstant(elements, input, loc, now, civiltime.Nanos)
}

// CastFormatDateToString renders date (only its year/month/day fields
// are meaningful) through format.
func CastFormatDateToString(format string, date time.Time) (string, error) {
	return castFormatToString(format, date, catalog.TargetDate)
}

// CastFormatDatetimeToString renders dt (a zone-less civil instant)
// through format.
func CastFormatDatetimeToString(format string, dt time.Time) (string, error) {
	return castFormatToString(format, dt, catalog.TargetDatetime)
}

// CastFormatTimeToString renders t (only its hour/minute/second/nanos
// fields are meaningful) through format.
func CastFormatTimeToString(format string, t time.Time) (string, error) {
	return castFormatToString(format, t, catalog.TargetTime)
}

// CastFormatTimestampToString renders instant, interpreted in loc,
// through format.
func CastFormatTimestampToString(format string, instant time.Time, loc *time.Location) (string, error) {
	return castFormatToString(format, instant.In(loc), catalog.TargetTimestamp)
}

func castFormatToString(format string, t time.Time, target catalog.TargetType) (string, error) {
	if err := checkFormatUTF8(format); err != nil {
		return "", err
	}
	elements, err := token.Tokenize(format)
	if err != nil {
		return "", err
	}
	if err := validate.ForFormatting(elements, target); err != nil {
		return "", err
	}
	return formatInstant(elements, t)
}

// ValidateFormatStringForParsing reports whether format is structurally
// valid for parsing an input string into a value of target, without
// requiring an actual input string.
func ValidateFormatStringForParsing(format string, target catalog.TargetType) error {
	if err := checkFormatUTF8(format); err != nil {
		return err
	}
	elements, err := token.Tokenize(format)
	if err != nil {
		return err
	}
	return validate.ForParsing(elements, target)
}

// ValidateFormatStringForFormatting reports whether format is
// structurally valid for rendering a value of target as a string.
func ValidateFormatStringForFormatting(format string, target catalog.TargetType) error {
	if err := checkFormatUTF8(format); err != nil {
		return err
	}
	elements, err := token.Tokenize(format)
	if err != nil {
		return err
	}
	return validate.ForFormatting(elements, target)
}
