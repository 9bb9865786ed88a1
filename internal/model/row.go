package model

import "github.com/shopspring/decimal"

// GLRow represents one general-ledger detail row after ingestion.
type GLRow struct {
	Record      []string // original CSV fields, preserved for export
	Source      string   // issuing system code
	Description string   // journal line description
	Amount      Amount   // foreign amount
	Remark      Category // assigned by the GL classifier
}

// BankRow represents one bank statement row after ingestion.
type BankRow struct {
	Record   []string // original sheet cells, preserved for export
	Text     string   // free-text narrative
	DataType string   // bank transaction direction (DETAIL DEBITS, etc.)
	Amount   Amount   // revised amount
	Remark   Category // assigned by the bank classifier
}

// GLTable is an ingested GL extract.
type GLTable struct {
	Header []string
	Rows   []GLRow
}

// BankTable is an ingested bank statement.
type BankTable struct {
	Header []string
	Rows   []BankRow
}

// SummaryRow compares GL and bank totals for one category.
type SummaryRow struct {
	Category Category
	GL       decimal.Decimal
	Bank     decimal.Decimal
}
