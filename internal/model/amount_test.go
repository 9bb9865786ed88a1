package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	a := ParseAmount("1500.00")
	assert.False(t, a.Missing)
	assert.Equal(t, "1500.00", a.Value.StringFixed(2))

	a = ParseAmount(" -250.75 ")
	assert.False(t, a.Missing)
	assert.Equal(t, "-250.75", a.Value.StringFixed(2))

	a = ParseAmount("1,234.56")
	assert.False(t, a.Missing)
	assert.Equal(t, "1234.56", a.Value.StringFixed(2))
}

func TestParseAmount_BadInput(t *testing.T) {
	for _, cell := range []string{"", "   ", "n/a", "12.3.4", "USD 10"} {
		a := ParseAmount(cell)
		assert.True(t, a.Missing, "cell %q", cell)
		assert.True(t, a.Value.IsZero(), "cell %q", cell)
		assert.Equal(t, cell, a.Raw)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 7)
	assert.Equal(t, Category117, cats[0])
	assert.Equal(t, CategoryUnmatched, cats[6])

	for _, c := range cats {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("bogus").Valid())
}
