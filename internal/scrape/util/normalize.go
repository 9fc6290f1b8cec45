package util

import "strings"

// CleanText collapses runs of whitespace (nbsp included) into single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// SameLabel compares visible link labels the way a reader would.
func SameLabel(a, b string) bool {
	return strings.EqualFold(CleanText(a), CleanText(b))
}
