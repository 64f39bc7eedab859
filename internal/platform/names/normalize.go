// Package names holds the identity key used for every player and club comparison.
package names

import "strings"

// Normalize lower-cases s, trims it and collapses internal whitespace runs to one space.
// Two names with the same normalized form are the same entity downstream.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// LastName returns the final whitespace-delimited token of the normalized name.
func LastName(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Equal reports whether a and b share a normalized form.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
