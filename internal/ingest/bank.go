package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/glrecon-dev/glrecon/internal/model"
)

// Logical bank column keys.
const (
	bankKeyText   = "Text"
	bankKeyType   = "Data Type"
	bankKeyAmount = "Revsd amt"
)

// DefaultHeaderSkip is the number of preamble rows before the bank header.
// Statements put the real header on the 6th physical row.
const DefaultHeaderSkip = 5

// BankOptions controls bank statement ingestion.
type BankOptions struct {
	HeaderSkip int    // preamble rows discarded before the header
	Sheet      string // sheet name; empty selects the first sheet
}

// ReadBankFile reads a bank statement workbook, dispatching on extension.
func ReadBankFile(path string, opts BankOptions) (*model.BankTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening bank statement: %w", err)
		}
		defer f.Close()
		return ReadBankXLSX(f, opts)
	case ".xls":
		return ReadBankXLS(path, opts)
	default:
		return nil, fmt.Errorf("unsupported bank statement format %q (want .xls or .xlsx)", filepath.Ext(path))
	}
}

// ReadBankXLSX reads a bank statement from an .xlsx workbook.
func ReadBankXLSX(r io.Reader, opts BankOptions) (*model.BankTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening xlsx workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("xlsx workbook has no sheets")
		}
		sheet = sheets[0]
	}

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return parseBankGrid(grid, opts)
}

// ReadBankXLS reads a bank statement from a legacy .xls workbook.
func ReadBankXLS(path string, opts BankOptions) (*model.BankTable, error) {
	workbook, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening xls workbook: %w", err)
	}

	sheetIdx := 0
	if opts.Sheet != "" {
		found := false
		for i := 0; i < workbook.GetNumberSheets(); i++ {
			if s, err := workbook.GetSheet(i); err == nil && s != nil && s.GetName() == opts.Sheet {
				sheetIdx = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("sheet %q not found in xls workbook", opts.Sheet)
		}
	}

	sheet, err := workbook.GetSheet(sheetIdx)
	if err != nil {
		return nil, fmt.Errorf("reading xls sheet: %w", err)
	}

	var grid [][]string
	for i := 0; i < int(sheet.GetNumberRows()); i++ {
		row, err := sheet.GetRow(i)
		if err != nil || row == nil {
			grid = append(grid, nil)
			continue
		}
		var cells []string
		for _, col := range row.GetCols() {
			if col != nil {
				cells = append(cells, col.GetString())
			} else {
				cells = append(cells, "")
			}
		}
		grid = append(grid, cells)
	}
	return parseBankGrid(grid, opts)
}

// parseBankGrid turns raw sheet rows into a BankTable. The header is the
// row after opts.HeaderSkip preamble rows; Text, Data Type and Revsd amt
// columns are resolved by fuzzy match and any miss is fatal before any row
// is classified.
func parseBankGrid(grid [][]string, opts BankOptions) (*model.BankTable, error) {
	skip := opts.HeaderSkip
	if skip < 0 {
		skip = 0
	}
	if len(grid) <= skip {
		return nil, fmt.Errorf("bank statement has %d rows, header expected on row %d", len(grid), skip+1)
	}

	header := grid[skip]
	textIdx, err := requireColumn(header, bankKeyText)
	if err != nil {
		return nil, err
	}
	typeIdx, err := requireColumn(header, bankKeyType)
	if err != nil {
		return nil, err
	}
	amtIdx, err := requireColumn(header, bankKeyAmount)
	if err != nil {
		return nil, err
	}

	t := &model.BankTable{Header: header}
	for _, rec := range grid[skip+1:] {
		if emptyRow(rec) {
			continue // spacer lines between statement sections
		}
		t.Rows = append(t.Rows, model.BankRow{
			Record:   rec,
			Text:     cell(rec, textIdx),
			DataType: cell(rec, typeIdx),
			Amount:   model.ParseAmount(cell(rec, amtIdx)),
		})
	}
	return t, nil
}

func emptyRow(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
