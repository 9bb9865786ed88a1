// Package ingest reads GL and bank statement exports into typed tables,
// resolving columns by fuzzy name match so spacing and casing drift between
// source systems does not break the pipeline.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/glrecon-dev/glrecon/internal/model"
	"github.com/glrecon-dev/glrecon/internal/table"
)

// Logical GL column keys.
const (
	glKeySource = "Source"
	glKeyDesc   = "Journal Line Description"
	glKeyAmount = "Foreign Amount"
)

// ReadGL parses a GL detail CSV export. The first row is the header;
// required columns are resolved by fuzzy match and a miss is fatal.
func ReadGL(r io.Reader) (*model.GLTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports pad trailing columns inconsistently

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading GL CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("GL CSV is empty")
	}

	header := records[0]
	srcIdx, err := requireColumn(header, glKeySource)
	if err != nil {
		return nil, err
	}
	descIdx, err := requireColumn(header, glKeyDesc)
	if err != nil {
		return nil, err
	}
	amtIdx, err := requireColumn(header, glKeyAmount)
	if err != nil {
		return nil, err
	}

	t := &model.GLTable{Header: header}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, model.GLRow{
			Record:      rec,
			Source:      cell(rec, srcIdx),
			Description: cell(rec, descIdx),
			Amount:      model.ParseAmount(cell(rec, amtIdx)),
		})
	}
	return t, nil
}

func requireColumn(header []string, key string) (int, error) {
	idx, ok := table.ResolveIndex(header, key)
	if !ok {
		return -1, &table.MissingColumnError{Key: key, Columns: header}
	}
	return idx, nil
}

// cell returns the i-th field, or "" when the record is too short.
func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
