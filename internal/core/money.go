package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmountBRL renders a stored amount string as report text: "R$ 50,00"
// for parseable values, "-" when unset. Decimal commas are accepted on input
// and used on output. Unparseable non-empty values are shown verbatim behind
// the currency prefix rather than dropped.
func FormatAmountBRL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return "R$ " + s
	}
	return "R$ " + strings.ReplaceAll(d.StringFixed(2), ".", ",")
}
