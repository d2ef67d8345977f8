package token

import "github.com/sqldef/dtcast/catalog"

// inferCasing derives a non-literal element's casing policy from the
// first two bytes of its *original* (pre-uppercasing) surface form.
func inferCasing(original string, cat catalog.Category, canonical string) catalog.CasingPolicy {
	if len(original) == 0 {
		return catalog.AllUpper
	}
	first := original[0]
	if isLowerASCII(first) {
		return catalog.AllLower
	}
	// first is upper (or non-alphabetic, which we treat as upper by the
	// same "otherwise -> AllUpper" default below).
	if cat == catalog.CategoryMeridian || cat == catalog.CategoryEra {
		return catalog.AllUpper
	}
	if len(canonical) == 1 {
		return catalog.AllUpper
	}
	if canonical == string(catalog.TypeYCommaYYY) {
		return catalog.AllUpper
	}
	if len(original) >= 2 && isLowerASCII(original[1]) {
		return catalog.OnlyFirstLetterUpper
	}
	return catalog.AllUpper
}

func isLowerASCII(b byte) bool {
	return b >= 'a' && b <= 'z'
}
