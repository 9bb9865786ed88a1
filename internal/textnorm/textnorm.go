// Package textnorm canonicalizes free-text fields so keyword matching is
// insensitive to case and whitespace differences between exports.
package textnorm

import "strings"

// Normalize upper-cases s, collapses every run of whitespace to a single
// space, and trims leading/trailing whitespace. It is total and idempotent.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}
