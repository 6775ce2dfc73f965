// Package strings holds small helpers for cleaning user-supplied string
// lists.
package strings

import (
	"strings"
)

// Dedupe applies normalize to each value, drops empty results and keeps
// the first occurrence of each. Order is preserved and nil stays nil.
func Dedupe(values []string, normalize func(string) string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		n := normalize(v)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// DedupeAndTrim trims whitespace, then dedupes.
func DedupeAndTrim(values []string) []string {
	return Dedupe(values, strings.TrimSpace)
}

// DedupeAndTrimLower trims and lowercases, then dedupes.
func DedupeAndTrimLower(values []string) []string {
	return Dedupe(values, func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
}
