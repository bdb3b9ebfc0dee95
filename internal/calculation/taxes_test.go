package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTaxEngineCalculate(t *testing.T) {
	rules := NewRuleTables2025()
	stateRate := decimal.NewFromFloat(0.05)
	engine := NewTaxEngine(rules, stateRate, decimal.Zero)

	tests := []struct {
		name            string
		grossIncome     decimal.Decimal
		ssIncome        decimal.Decimal
		age             int
		expectedFederal decimal.Decimal
		expectedState   decimal.Decimal
	}{
		{
			name:            "no tax below standard deduction",
			grossIncome:     decimal.NewFromInt(14000),
			ssIncome:        decimal.Zero,
			age:             60,
			expectedFederal: decimal.Zero,
			expectedState:   decimal.Zero,
		},
		{
			name:        "two brackets, no social security",
			grossIncome: decimal.NewFromInt(50000),
			ssIncome:    decimal.Zero,
			age:         60,
			// Taxable 35400: 11600*0.10 + 23800*0.12
			expectedFederal: decimal.NewFromInt(4016),
			expectedState:   decimal.NewFromInt(1770), // 35400 * 0.05
		},
		{
			name:        "senior gets the additional deduction",
			grossIncome: decimal.NewFromInt(50000),
			ssIncome:    decimal.Zero,
			age:         67,
			// Taxable 33450: 11600*0.10 + 21850*0.12
			expectedFederal: decimal.NewFromInt(3782),
			expectedState:   decimal.NewFromFloat(1672.50), // 33450 * 0.05
		},
		{
			name:        "untaxed social security leaves the federal base",
			grossIncome: decimal.NewFromInt(40000),
			ssIncome:    decimal.NewFromInt(30000),
			age:         67,
			// Combined income 10000 + 15000 = 25000 -> no taxable SS.
			// Federal base: 10000 - 16550 deduction -> 0.
			expectedFederal: decimal.Zero,
			// State taxes gross above the deduction: (40000-16550)*0.05
			expectedState: decimal.NewFromFloat(1172.50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Calculate(tt.grossIncome, tt.ssIncome, tt.age)
			assert.True(t, result.FederalTax.Equal(tt.expectedFederal),
				"federal: expected %s, got %s", tt.expectedFederal, result.FederalTax)
			assert.True(t, result.StateTax.Equal(tt.expectedState),
				"state: expected %s, got %s", tt.expectedState, result.StateTax)
		})
	}
}

func TestTaxEngineFlatRateOverride(t *testing.T) {
	rules := NewRuleTables2025()
	engine := NewTaxEngine(rules, decimal.Zero, decimal.NewFromFloat(0.22))

	result := engine.Calculate(decimal.NewFromInt(50000), decimal.Zero, 60)
	// Taxable 35400 at a flat 22%.
	assert.True(t, result.FederalTax.Equal(decimal.NewFromInt(7788)),
		"expected 7788, got %s", result.FederalTax)
}

func TestTaxEngineTaxableSSNeverExceeds85Percent(t *testing.T) {
	engine := NewTaxEngine(NewRuleTables2025(), decimal.Zero, decimal.Zero)
	cap := decimal.NewFromFloat(0.85)

	for _, gross := range []int64{20000, 60000, 120000, 400000} {
		ss := decimal.NewFromInt(30000)
		result := engine.Calculate(decimal.NewFromInt(gross).Add(ss), ss, 70)
		assert.True(t, result.TaxableSocialSecurity.LessThanOrEqual(ss.Mul(cap)),
			"gross %d: taxable SS %s exceeds 85%% of benefit", gross, result.TaxableSocialSecurity)
	}
}

func TestStandardDeduction(t *testing.T) {
	engine := NewTaxEngine(NewRuleTables2025(), decimal.Zero, decimal.Zero)
	assert.True(t, engine.StandardDeduction(64).Equal(decimal.NewFromInt(14600)))
	assert.True(t, engine.StandardDeduction(65).Equal(decimal.NewFromInt(16550)))
}
