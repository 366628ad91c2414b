// Package shared provides common utility functions used across multiple
// packages in the curated-packages codebase.
package shared

import "strings"

// TrimmedNonEmpty trims every value and drops the ones that end up
// empty, preserving order.
func TrimmedNonEmpty(values []string) []string {
	var out []string
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	return out
}

// SplitSet splits a comma-separated set into trimmed, non-empty
// members.
func SplitSet(value string) []string {
	return TrimmedNonEmpty(strings.Split(value, ","))
}
