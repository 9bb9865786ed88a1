// Package summary builds the per-category GL vs bank comparison table.
package summary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/glrecon-dev/glrecon/internal/model"
)

// AmountWarning records a row whose amount cell was absent or not numeric.
// The row still contributes 0 to its category total.
type AmountWarning struct {
	Table    string // "gl" or "bank"
	Row      int    // 1-based data row number
	Category model.Category
	Raw      string // offending cell text
}

func (w AmountWarning) String() string {
	return fmt.Sprintf("%s row %d (%s): amount %q is not numeric, counted as 0",
		w.Table, w.Row, w.Category, w.Raw)
}

// Summarize groups both labeled tables by category and sums amounts per
// side. Every category seen in either table appears exactly once, with 0
// on the side where it is absent; rows are ordered by the fixed category
// enumeration so output is deterministic.
func Summarize(gl *model.GLTable, bank *model.BankTable) ([]model.SummaryRow, []AmountWarning) {
	glTotals := make(map[model.Category]decimal.Decimal)
	bankTotals := make(map[model.Category]decimal.Decimal)
	var warnings []AmountWarning

	for i, row := range gl.Rows {
		if row.Amount.Missing {
			warnings = append(warnings, AmountWarning{Table: "gl", Row: i + 1, Category: row.Remark, Raw: row.Amount.Raw})
		}
		glTotals[row.Remark] = glTotals[row.Remark].Add(row.Amount.Value)
	}
	for i, row := range bank.Rows {
		if row.Amount.Missing {
			warnings = append(warnings, AmountWarning{Table: "bank", Row: i + 1, Category: row.Remark, Raw: row.Amount.Raw})
		}
		bankTotals[row.Remark] = bankTotals[row.Remark].Add(row.Amount.Value)
	}

	var rows []model.SummaryRow
	for _, cat := range model.Categories() {
		_, inGL := glTotals[cat]
		_, inBank := bankTotals[cat]
		if !inGL && !inBank {
			continue
		}
		rows = append(rows, model.SummaryRow{
			Category: cat,
			GL:       glTotals[cat],
			Bank:     bankTotals[cat],
		})
	}
	return rows, warnings
}
