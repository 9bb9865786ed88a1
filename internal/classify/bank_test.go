package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glrecon-dev/glrecon/internal/model"
)

func TestBank_NCBankNeedsAllKeywords(t *testing.T) {
	// Lowercase, messy whitespace: normalization makes all 4 keywords match.
	got := Bank("indn:sett-batch  co id:3351637714 ccd misc 3351637714", "Detail Credits")
	assert.Equal(t, model.CategoryNCBank, got)

	// One keyword missing (no CCD) drops through the chain.
	got = Bank("INDN:SETT-BATCH CO ID:3351637714", "DETAIL CREDITS")
	assert.NotEqual(t, model.CategoryNCBank, got)
}

func TestBank_NCBankOutranksAP(t *testing.T) {
	// Row matches both the NC Bank keyword set and the AP word list ("GOODS");
	// the earlier rule must win.
	text := "INDN:SETT-BATCH CO ID:3351637714 CCD GOODS 3351637714"
	assert.Equal(t, model.CategoryNCBank, Bank(text, "DETAIL DEBITS"))
}

func TestBank_119Identifiers(t *testing.T) {
	cases := []string{
		"BNF:HERFF JONES LLC 4501 WEST 62ND STREET INDIANAPOLIS",
		"bnf bk:pnc bank national assn",
		"ref 24295001305 incoming",
		"HERFF JONES LLC OPERATING ACCOUNT 4501",
		"via jpmorgan chase bank na",
		"SND BK:WELLS FARGO BANK",
		"wells  fargo  sweep",
		"ref 24354001505",
	}
	for _, text := range cases {
		assert.Equal(t, model.Category119, Bank(text, "DETAIL CREDITS"), "text %q", text)
	}
}

func TestBank_117Transfers(t *testing.T) {
	assert.Equal(t, model.Category117, Bank("TRSF TO OPERATING", "DETAIL DEBITS"))
	assert.Equal(t, model.Category117, Bank("FX CUR SETTLEMENT", "DETAIL CREDITS"))
}

func TestBank_153(t *testing.T) {
	assert.Equal(t, model.Category153, Bank("BNF:LSC COMMUNICATIONS US LLC", "DETAIL DEBITS"))
}

func TestBank_AP(t *testing.T) {
	// Debit with an AP word.
	assert.Equal(t, model.CategoryAP, Bank("CORP PMT VENDOR 4471", "Detail Debits"))
	assert.Equal(t, model.CategoryAP, Bank("payment balboa capital", "DETAIL DEBITS"))

	// Wire prefix plus INV matches regardless of type.
	assert.Equal(t, model.CategoryAP, Bank("WIRE TYPE INTL INV#4471", "Detail Debits"))
	assert.Equal(t, model.CategoryAP, Bank("wire type book inv 0091", "DETAIL CREDITS"))

	// ACH return on the credit side only.
	ret := "ACH DETAIL RETURN CO ID:5351637714 CCD"
	assert.Equal(t, model.CategoryAP, Bank(ret, "DETAIL CREDITS"))
	assert.Equal(t, model.CategoryUnmatched, Bank(ret, "DETAIL DEBITS"))

	// AP words on the credit side do not match.
	assert.Equal(t, model.CategoryUnmatched, Bank("CORP PMT VENDOR", "DETAIL CREDITS"))
}

func TestBank_TaxNeedsDebitType(t *testing.T) {
	assert.Equal(t, model.CategoryTax, Bank("TAXPAY Q3 ESTIMATE", "Detail Debits"))
	assert.Equal(t, model.CategoryUnmatched, Bank("TAXPAY Q3 ESTIMATE", "Detail Credits"))

	// "TAX " needs the trailing space; a bare suffix is not enough but
	// normalization supplies the separator between words.
	assert.Equal(t, model.CategoryTax, Bank("FED TAX   PAYMENT", "DETAIL DEBITS"))
}

func TestBank_RuleOrder119Before117(t *testing.T) {
	// Contains both a 119 identifier and TRSF; 119 is the earlier rule.
	got := Bank("TRSF VIA JPMORGAN CHASE", "DETAIL DEBITS")
	assert.Equal(t, model.Category119, got)
}

func TestBank_Total(t *testing.T) {
	got := Bank("", "")
	assert.Equal(t, model.CategoryUnmatched, got)
	assert.True(t, got.Valid())
}
