package coinmarket

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// NormalizeCurrency returns the canonical form of a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsCurrency reports whether code is a known ISO 4217 currency code.
func IsCurrency(code string) bool {
	return code != "" && money.GetCurrency(code) != nil
}

// Grapheme returns the currency symbol, or the code itself when the currency
// has none.
func Grapheme(code string) string {
	c := money.GetCurrency(code)
	if c == nil || c.Grapheme == "" {
		return code
	}
	return c.Grapheme
}
