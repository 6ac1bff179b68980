package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal whitespace runs.
// It is used for destination and activity name normalization.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeCategory lower-cases a free-form category tag and joins words with underscores,
// so "Art Gallery" and "art_gallery" compare equal.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "_"))
}
