// Package classify assigns reconciliation categories to GL and bank rows
// using ordered keyword rule chains. Rules are evaluated top to bottom and
// the first match wins; every row gets exactly one category.
package classify

import (
	"strings"

	"github.com/glrecon-dev/glrecon/internal/model"
)

// DefaultTaxSources is the default source-code trigger set for the GL TAX
// rule. Some extracts mark tax journals with the H11 system code only;
// others also carry a literal TAX code, so the set is configurable.
var DefaultTaxSources = []string{"H11", "TAX"}

// GL categorizes a GL row from its source system code and journal line
// description. Matching is substring-based on uppercased text. taxSources
// holds the source keywords that trigger the TAX category; nil selects
// DefaultTaxSources.
func GL(source, description string, taxSources []string) model.Category {
	src := strings.ToUpper(source)
	desc := strings.ToUpper(description)

	switch {
	case strings.Contains(desc, "117"):
		return model.Category117
	case strings.Contains(desc, "153"):
		return model.Category153
	case strings.Contains(desc, "119"):
		return model.Category119
	case strings.Contains(desc, "NC BANK"):
		return model.CategoryNCBank
	case strings.Contains(src, "AP"):
		return model.CategoryAP
	}

	if taxSources == nil {
		taxSources = DefaultTaxSources
	}
	for _, k := range taxSources {
		if strings.Contains(src, strings.ToUpper(k)) {
			return model.CategoryTax
		}
	}

	return model.CategoryUnmatched
}
