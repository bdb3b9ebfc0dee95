package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyConstructors(t *testing.T) {
	m := NewMoney(1234.56)
	assert.Equal(t, "1234.56", m.String())

	m = NewMoneyFromDecimal(decimal.NewFromInt(42))
	assert.Equal(t, "42.00", m.String())

	m, err := NewMoneyFromString("99.99")
	require.NoError(t, err)
	assert.Equal(t, "99.99", m.String())

	_, err = NewMoneyFromString("not money")
	require.Error(t, err)
}

func TestMoneyRound(t *testing.T) {
	m := NewMoney(10.005)
	assert.Equal(t, "10.01", m.Round().String())

	m = NewMoney(10.004)
	assert.Equal(t, "10.00", m.Round().String())
}

func TestMoneyAnnualMonthly(t *testing.T) {
	monthly := NewMoney(2500)
	assert.Equal(t, "30000.00", monthly.Annual().String())

	annual := NewMoney(30000)
	assert.Equal(t, "2500.00", annual.Monthly().String())
}

func TestMoneyPredicates(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.False(t, Zero().IsNegative())
	assert.True(t, NewMoney(-5).IsNegative())
	assert.False(t, NewMoney(5).IsZero())
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "$1234.50", NewMoney(1234.5).Format())
	assert.Equal(t, "$0.00", Zero().Format())
}
