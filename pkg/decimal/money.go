package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string.
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// IsZero checks if the amount is zero.
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Zero returns a zero Money amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation fixed to cents.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with a currency prefix.
func (m Money) Format() string {
	return "$" + m.String()
}
