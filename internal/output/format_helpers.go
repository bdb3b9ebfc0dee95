package output

import (
	shopspring "github.com/shopspring/decimal"

	"github.com/joybvictor/retirement-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested
// in isolation.
func FormatCurrency(amount shopspring.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Round().Format()
}

// FormatPercentage formats a fractional rate as a percentage with 1
// decimal.
func FormatPercentage(rate shopspring.Decimal) string {
	return rate.Mul(shopspring.NewFromInt(100)).StringFixed(1) + "%"
}
