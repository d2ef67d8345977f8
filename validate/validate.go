// Package validate implements the format string's structural rules over
// an already-tokenized element list.
package validate

import (
	"strings"

	"github.com/sqldef/dtcast/cast/casterr"
	"github.com/sqldef/dtcast/catalog"
)

// Mode selects whether the validated format string will be used to
// parse an input string or to format a value.
type Mode int

const (
	ModeParseOnly Mode = iota
	ModeFormat
)

// parseableTypes is the subset of non-literal types allowed for
// parsing (the rest render only; see catalog.AllowedCategories for the
// separate target-type restriction).
var parseableTypes = map[catalog.Type]bool{
	catalog.TypeY: true, catalog.TypeYY: true, catalog.TypeYYY: true, catalog.TypeYYYY: true,
	catalog.TypeRR: true, catalog.TypeRRRR: true,
	catalog.TypeYCommaYYY: true,
	catalog.TypeMM:        true, catalog.TypeMON: true, catalog.TypeMONTH: true,
	catalog.TypeDD: true, catalog.TypeDDD: true,
	catalog.TypeHH: true, catalog.TypeHH12: true, catalog.TypeHH24: true,
	catalog.TypeMI: true,
	catalog.TypeSS: true, catalog.TypeSSSSS: true,
	catalog.TypeFF1: true, catalog.TypeFF2: true, catalog.TypeFF3: true, catalog.TypeFF4: true,
	catalog.TypeFF5: true, catalog.TypeFF6: true, catalog.TypeFF7: true, catalog.TypeFF8: true, catalog.TypeFF9: true,
	catalog.TypeAM: true, catalog.TypePM: true, catalog.TypeAMDot: true, catalog.TypePMDot: true,
	catalog.TypeTZH: true, catalog.TypeTZM: true,
}

// ForParsing validates elements for use with the parser against target.
func ForParsing(elements []catalog.Element, target catalog.TargetType) error {
	return run(elements, target, ModeParseOnly)
}

// ForFormatting validates elements for use with the formatter against
// target.
func ForFormatting(elements []catalog.Element, target catalog.TargetType) error {
	return run(elements, target, ModeFormat)
}

func run(elements []catalog.Element, target catalog.TargetType, mode Mode) error {
	if mode == ModeParseOnly {
		if err := checkParseable(elements); err != nil {
			return err
		}
	}
	if err := checkNoDuplicateType(elements); err != nil {
		return err
	}
	if err := checkNoDuplicateCategory(elements); err != nil {
		return err
	}
	if err := checkMutualExclusions(elements); err != nil {
		return err
	}
	if err := checkCoexistence(elements); err != nil {
		return err
	}
	if err := checkTargetTypeRestrictions(elements, target); err != nil {
		return err
	}
	return nil
}

func checkParseable(elements []catalog.Element) error {
	for _, e := range elements {
		if catalog.IsLiteral(e.Type) {
			continue
		}
		if !parseableTypes[e.Type] {
			return casterr.NewAnalysis("Format element %s is not supported for parsing", e.DebugName())
		}
	}
	return nil
}

func checkNoDuplicateType(elements []catalog.Element) error {
	seen := map[catalog.Type]catalog.Element{}
	for _, e := range elements {
		if catalog.IsLiteral(e.Type) {
			continue
		}
		canonical := catalog.Type(strings.ToUpper(string(e.Type)))
		if _, ok := seen[canonical]; ok {
			return casterr.NewAnalysis("Format element %s is duplicated", e.DebugName())
		}
		seen[canonical] = e
	}
	return nil
}

var categoriesRequiringUniqueness = map[catalog.Category]bool{
	catalog.CategoryMeridian: true,
	catalog.CategoryYear:     true,
	catalog.CategoryMonth:    true,
	catalog.CategoryDay:      true,
	catalog.CategoryHour:     true,
	catalog.CategoryMinute:   true,
}

func checkNoDuplicateCategory(elements []catalog.Element) error {
	seen := map[catalog.Category]catalog.Element{}
	for _, e := range elements {
		if !categoriesRequiringUniqueness[e.Category] {
			continue
		}
		if prior, ok := seen[e.Category]; ok {
			return casterr.NewAnalysis(
				"Format element %s conflicts with format element %s: both belong to category %s",
				e.DebugName(), prior.DebugName(), catalog.CategoryName(e.Category))
		}
		seen[e.Category] = e
	}
	return nil
}

func checkMutualExclusions(elements []catalog.Element) error {
	hasType := map[catalog.Type]bool{}
	hasCategory := map[catalog.Category]bool{}
	for _, e := range elements {
		hasType[e.Type] = true
		hasCategory[e.Category] = true
	}

	if hasType[catalog.TypeDDD] && hasCategory[catalog.CategoryMonth] {
		return casterr.NewAnalysis("Format element 'DDD' excludes category %s", catalog.CategoryName(catalog.CategoryMonth))
	}
	if hasType[catalog.TypeHH24] && hasCategory[catalog.CategoryMeridian] {
		return casterr.NewAnalysis("Format element 'HH24' excludes category %s", catalog.CategoryName(catalog.CategoryMeridian))
	}
	if hasType[catalog.TypeSSSSS] {
		if hasCategory[catalog.CategoryHour] {
			return casterr.NewAnalysis("Format element 'SSSSS' excludes category %s", catalog.CategoryName(catalog.CategoryHour))
		}
		if hasCategory[catalog.CategoryMinute] {
			return casterr.NewAnalysis("Format element 'SSSSS' excludes category %s", catalog.CategoryName(catalog.CategoryMinute))
		}
		if hasType[catalog.TypeSS] {
			return casterr.NewAnalysis("Format element 'SSSSS' excludes format element 'SS'")
		}
	}
	return nil
}

func checkCoexistence(elements []catalog.Element) error {
	hasType := map[catalog.Type]bool{}
	hasCategory := map[catalog.Category]bool{}
	for _, e := range elements {
		hasType[e.Type] = true
		hasCategory[e.Category] = true
	}
	needsMeridian := hasType[catalog.TypeHH] || hasType[catalog.TypeHH12]
	hasMeridian := hasCategory[catalog.CategoryMeridian]
	if needsMeridian && !hasMeridian {
		var culprit string
		if hasType[catalog.TypeHH12] {
			culprit = "'HH12'"
		} else {
			culprit = "'HH'"
		}
		return casterr.NewAnalysis(
			"Format element in category %s is required when format element %s exists",
			catalog.CategoryName(catalog.CategoryMeridian), culprit)
	}
	if hasMeridian && !needsMeridian {
		return casterr.NewAnalysis(
			"Format element %s is required when a format element in category %s exists",
			"'HH' or 'HH12'", catalog.CategoryName(catalog.CategoryMeridian))
	}
	return nil
}

func checkTargetTypeRestrictions(elements []catalog.Element, target catalog.TargetType) error {
	allowed := catalog.AllowedCategories(target)
	for _, e := range elements {
		if !allowed[e.Category] {
			return casterr.NewAnalysis(
				"Format element %s (category %s) is not allowed when casting to %s",
				e.DebugName(), catalog.CategoryName(e.Category), target.String())
		}
	}
	return nil
}
