package model

// Category is a reconciliation category assigned to a transaction row.
type Category string

const (
	Category117       Category = "117"
	Category119       Category = "119"
	Category153       Category = "153"
	CategoryNCBank    Category = "NC Bank"
	CategoryAP        Category = "AP"
	CategoryTax       Category = "TAX"
	CategoryUnmatched Category = "UNMATCHED"
)

// Categories returns every category in summary output order.
func Categories() []Category {
	return []Category{
		Category117,
		Category119,
		Category153,
		CategoryNCBank,
		CategoryAP,
		CategoryTax,
		CategoryUnmatched,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
