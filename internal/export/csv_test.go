package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glrecon-dev/glrecon/internal/model"
)

func TestWriteSummary(t *testing.T) {
	rows := []model.SummaryRow{
		{Category: model.Category117, GL: decimal.RequireFromString("1500"), Bank: decimal.RequireFromString("-100.5")},
		{Category: model.CategoryUnmatched, GL: decimal.Zero, Bank: decimal.RequireFromString("12")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, rows))

	want := "Category,GL,Bank Statement\n" +
		"117,1500.00,-100.50\n" +
		"UNMATCHED,0.00,12.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, nil))
	assert.Equal(t, "Category,GL,Bank Statement\n", buf.String())
}

func TestWriteLabeledGL(t *testing.T) {
	tbl := &model.GLTable{
		Header: []string{"Source", "Journal Line Description", "Foreign Amount"},
		Rows: []model.GLRow{
			{Record: []string{"AP-SYS", "inv 4471", "10.00"}, Remark: model.CategoryAP},
			{Record: []string{"GLX"}, Remark: model.CategoryUnmatched}, // ragged row
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLabeledGL(&buf, tbl))

	want := "Source,Journal Line Description,Foreign Amount,Remark\n" +
		"AP-SYS,inv 4471,10.00,AP\n" +
		"GLX,,,UNMATCHED\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteLabeledBank(t *testing.T) {
	tbl := &model.BankTable{
		Header: []string{"Date", "Text", "Data Type", "Revsd amt"},
		Rows: []model.BankRow{
			{Record: []string{"07/01/2025", "TRSF TO OPERATING", "DETAIL DEBITS", "-100.00"}, Remark: model.Category117},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLabeledBank(&buf, tbl))

	want := "Date,Text,Data Type,Revsd amt,Remark\n" +
		"07/01/2025,TRSF TO OPERATING,DETAIL DEBITS,-100.00,117\n"
	assert.Equal(t, want, buf.String())
}
