package classify

import (
	"strings"

	"github.com/glrecon-dev/glrecon/internal/model"
	"github.com/glrecon-dev/glrecon/internal/textnorm"
)

// Bank-provided transaction direction values, post-normalization.
const (
	typeDetailDebits  = "DETAIL DEBITS"
	typeDetailCredits = "DETAIL CREDITS"
)

// ncBankKeywords must ALL be present for the NC Bank settlement batch rule.
var ncBankKeywords = []string{
	"INDN:SETT-BATCH",
	"3351637714",
	"CO ID:3351637714",
	"CCD",
}

// keywords119 are bank/beneficiary identifiers; ANY one marks a 119 row.
var keywords119 = []string{
	"BNF:HERFF JONES LLC 4501 WEST 62ND STREET INDIANAPOLIS",
	"BNF BK:PNC BANK NATIONAL",
	"24295001305",
	"HERFF JONES LLC OPERATING ACCOUNT 4501",
	"JPMORGAN CHASE",
	"SND BK:WELLS FARGO BANK",
	"WELLS FARGO SWEEP",
	"24354001505",
	"JPMORGAN CHASE BANK",
}

// apWords mark payables activity on the debit side.
var apWords = []string{
	"CORP PMT",
	"VARSITY",
	"GOODS",
	"INV",
	"INTL OUT DATE:",
	"POP",
	"BALBOA",
	"VISION GEMS",
}

const achReturnKeyword = "ACH DETAIL RETURN CO ID:5351637714 CCD"

// Bank categorizes a bank statement row from its narrative text and
// transaction-type field. Both inputs are normalized before matching, so
// callers may pass raw cell values.
func Bank(text, dataType string) model.Category {
	t := textnorm.Normalize(text)
	i := textnorm.Normalize(dataType)

	if containsAll(t, ncBankKeywords) {
		return model.CategoryNCBank
	}
	if containsAny(t, keywords119) {
		return model.Category119
	}
	if strings.Contains(t, "TRSF") || strings.Contains(t, "CUR") {
		return model.Category117
	}
	if strings.Contains(t, "BNF:LSC COMMUNICATIONS") {
		return model.Category153
	}
	if (i == typeDetailDebits && containsAny(t, apWords)) ||
		(strings.HasPrefix(t, "WIRE TYPE") && strings.Contains(t, "INV")) ||
		(strings.Contains(t, achReturnKeyword) && i == typeDetailCredits) {
		return model.CategoryAP
	}
	if (strings.Contains(t, "TAX ") || strings.Contains(t, "TAXPAY")) && i == typeDetailDebits {
		return model.CategoryTax
	}

	return model.CategoryUnmatched
}

func containsAll(s string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(s, k) {
			return false
		}
	}
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
