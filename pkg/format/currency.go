// Package format renders numeric results for presentation. The calculator
// packages themselves operate on plain decimals; only this layer knows about
// currency symbols.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the symbol used for all currency rendering.
const CurrencySymbol = "₹"

// Currency returns a currency string with a rupee sign and thousands
// separators (e.g., "-₹1,234.56").
func Currency(amount decimal.Decimal) string {
	formatted := groupThousands(amount.Abs().StringFixed(2))
	if amount.IsNegative() {
		return "-" + CurrencySymbol + formatted
	}
	return CurrencySymbol + formatted
}

// Percent returns a percentage string with two decimal places (e.g., "33.33%").
func Percent(value decimal.Decimal) string {
	return value.StringFixed(2) + "%"
}

func groupThousands(fixed string) string {
	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
