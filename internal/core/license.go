package core

import (
	"sort"
	"strings"

	"curated-packages/internal/types"
)

// spdxOperators are expression keywords that can never stand alone as
// a license id.
var spdxOperators = map[string]struct{}{
	"AND":  {},
	"OR":   {},
	"WITH": {},
}

// ProcessDeclaredLicenses combines a package's raw declared licenses
// with a declared-license-to-SPDX mapping.
//
// Mapping entries whose key is not among the declared licenses are
// ignored. Declared licenses not covered by the mapping are kept
// verbatim when they already are parseable SPDX ids and wrapped as
// license references otherwise; they are never dropped. The resulting
// expression conjoins every mapped value and every unmapped original
// with AND, deduplicated and in lexicographic order, so repeated calls
// over the same inputs are byte-identical regardless of input
// iteration order.
func ProcessDeclaredLicenses(declared []string, mapping map[string]string) types.DeclaredLicenseProcessing {
	declaredSet := map[string]struct{}{}
	for _, license := range declared {
		license = strings.TrimSpace(license)
		if license == "" {
			continue
		}
		declaredSet[license] = struct{}{}
	}
	if len(declaredSet) == 0 {
		return types.DeclaredLicenseProcessing{}
	}

	mapped := map[string]string{}
	for key, value := range mapping {
		key = strings.TrimSpace(key)
		if _, ok := declaredSet[key]; !ok {
			continue
		}
		mapped[key] = strings.TrimSpace(value)
	}

	var unmapped []string
	for license := range declaredSet {
		if _, ok := mapped[license]; ok {
			continue
		}
		unmapped = append(unmapped, license)
	}
	sort.Strings(unmapped)

	termSet := map[string]struct{}{}
	for _, value := range mapped {
		termSet[wrapCompoundExpression(value)] = struct{}{}
	}
	for _, license := range unmapped {
		termSet[licenseTerm(license)] = struct{}{}
	}
	terms := make([]string, 0, len(termSet))
	for term := range termSet {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	result := types.DeclaredLicenseProcessing{
		SPDXExpression:   strings.Join(terms, " AND "),
		UnmappedLicenses: unmapped,
	}
	if len(mapped) > 0 {
		result.MappedLicenses = mapped
	}
	return result
}

// licenseTerm returns the declared license verbatim when it is a
// parseable SPDX license id and a LicenseRef wrapper otherwise.
func licenseTerm(license string) string {
	if IsSPDXLicenseID(license) {
		return license
	}
	return "LicenseRef-declared-" + sanitizeLicenseRef(license)
}

// wrapCompoundExpression parenthesizes a mapped SPDX fragment that
// contains inner operators so it stays a single AND conjunct.
func wrapCompoundExpression(expression string) string {
	if !strings.ContainsRune(expression, ' ') {
		return expression
	}
	if strings.HasPrefix(expression, "(") && strings.HasSuffix(expression, ")") {
		return expression
	}
	return "(" + expression + ")"
}

// IsSPDXLicenseID reports whether value matches the SPDX idstring
// grammar: letters, digits, "-" and ".", optionally followed by "+",
// and not an expression operator keyword.
func IsSPDXLicenseID(value string) bool {
	if value == "" {
		return false
	}
	if _, ok := spdxOperators[value]; ok {
		return false
	}
	body := strings.TrimSuffix(value, "+")
	if body == "" {
		return false
	}
	for _, r := range body {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '.':
		default:
			return false
		}
	}
	return true
}

// sanitizeLicenseRef maps an arbitrary declared-license string onto the
// idstring alphabet, collapsing runs of invalid characters to a single
// dash.
func sanitizeLicenseRef(value string) string {
	var builder strings.Builder
	lastDash := false
	for _, r := range value {
		valid := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.'
		if valid {
			builder.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			builder.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(builder.String(), "-")
}
