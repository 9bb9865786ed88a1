// Package export writes the labeled tables and the comparison summary as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/glrecon-dev/glrecon/internal/model"
)

// SummaryHeader is the CSV header for the comparison summary.
var SummaryHeader = []string{"Category", "GL", "Bank Statement"}

// remarkColumn is appended to each labeled table.
const remarkColumn = "Remark"

// WriteLabeledGL writes the GL table with its category column appended.
func WriteLabeledGL(w io.Writer, t *model.GLTable) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(append(append([]string{}, t.Header...), remarkColumn)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	width := len(t.Header)
	for i, row := range t.Rows {
		if err := cw.Write(labeledRecord(row.Record, width, row.Remark)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteLabeledBank writes the bank table with its category column appended.
func WriteLabeledBank(w io.Writer, t *model.BankTable) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(append(append([]string{}, t.Header...), remarkColumn)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	width := len(t.Header)
	for i, row := range t.Rows {
		if err := cw.Write(labeledRecord(row.Record, width, row.Remark)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteSummary writes the Category,GL,Bank Statement table with totals
// fixed to 2 decimal places.
func WriteSummary(w io.Writer, rows []model.SummaryRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(SummaryHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		rec := []string{string(r.Category), r.GL.StringFixed(2), r.Bank.StringFixed(2)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// labeledRecord pads rec to width so the appended category lands in the
// Remark column even for ragged source rows.
func labeledRecord(rec []string, width int, remark model.Category) []string {
	out := make([]string, width+1)
	copy(out, rec)
	out[width] = string(remark)
	return out
}
