// Package table resolves logical column names against real export headers,
// which vary in spacing and casing between source systems.
package table

import (
	"fmt"
	"strings"
)

// MissingColumnError reports a required logical column that could not be
// resolved, along with every column actually present.
type MissingColumnError struct {
	Key     string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found; columns present: %s",
		e.Key, strings.Join(e.Columns, ", "))
}

// ResolveIndex finds the first column whose name contains key, comparing
// with spaces stripped and case folded. Returns -1 and false if no column
// matches.
func ResolveIndex(columns []string, key string) (int, bool) {
	k := fold(key)
	for i, c := range columns {
		if strings.Contains(fold(c), k) {
			return i, true
		}
	}
	return -1, false
}

// Resolve is ResolveIndex returning the matched column name.
func Resolve(columns []string, key string) (string, bool) {
	i, ok := ResolveIndex(columns, key)
	if !ok {
		return "", false
	}
	return columns[i], true
}

func fold(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}
