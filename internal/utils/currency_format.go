package utils

import (
	"github.com/shopspring/decimal"
)

// displayPrecision is the number of fractional digits shown for currency
// amounts. Amounts stay unrounded decimals throughout every computation and
// are rounded here, at formatting time only.
const displayPrecision = 2

// FormatAmount formats an amount for display.
// Example: amount 12.3456 returns "12.35"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(displayPrecision)
}

// FormatWithSymbol formats an amount followed by its currency symbol.
// Example: amount 12.3456 with symbol "€" returns "12.35 €"
func FormatWithSymbol(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		return FormatAmount(amount)
	}
	return FormatAmount(amount) + " " + symbol
}
