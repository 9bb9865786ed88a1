package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value parsed from a source cell. A cell that is
// empty or not numeric yields a zero Value with Missing set, so bad data
// is counted in totals as 0 but never silently lost.
type Amount struct {
	Value   decimal.Decimal
	Missing bool
	Raw     string // original cell text, kept for warning output
}

// ParseAmount converts a source cell to an Amount.
func ParseAmount(cell string) Amount {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return Amount{Missing: true, Raw: cell}
	}

	// Exports sometimes format amounts with thousands separators.
	cleaned := strings.ReplaceAll(trimmed, ",", "")
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Amount{Missing: true, Raw: cell}
	}
	return Amount{Value: v, Raw: cell}
}
