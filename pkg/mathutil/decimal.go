// Package mathutil provides common monetary math helpers on top of
// shopspring/decimal.
package mathutil

import (
	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds a value to two decimals, i.e. to represent real currency.
func RoundMoney(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.DecimalPlaces)
}

// FromFloat converts a float64 amount (the configuration boundary type) into
// a decimal.
func FromFloat(val float64) decimal.Decimal {
	return decimal.NewFromFloat(val)
}

// Percentage calculates what percentage value is of total. The caller is
// responsible for guarding against a zero total; Percentage panics on
// division by zero the same way decimal.Div does.
func Percentage(value, total decimal.Decimal) decimal.Decimal {
	return value.Mul(hundred).Div(total)
}

// ApplyPercentage applies a percentage to a value.
func ApplyPercentage(value, percentage decimal.Decimal) decimal.Decimal {
	return value.Mul(percentage).Div(hundred)
}

// ClampNonNegative floors a value at zero.
func ClampNonNegative(val decimal.Decimal) decimal.Decimal {
	if val.IsNegative() {
		return decimal.Zero
	}
	return val
}

// Min returns the minimum of two decimal values.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two decimal values.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
