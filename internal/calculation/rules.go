package calculation

import (
	"github.com/shopspring/decimal"
)

// TaxBracket represents one federal tax bracket.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// IRMAATier represents one IRMAA income threshold and the monthly
// surcharges that apply once MAGI exceeds it.
type IRMAATier struct {
	IncomeThreshold decimal.Decimal
	PartBSurcharge  decimal.Decimal // monthly
	PartDSurcharge  decimal.Decimal // monthly
}

// RuleTables is the immutable lookup data every calculation reads:
// claiming-age adjustments, federal brackets, Medicare premiums and the
// IRS Uniform Lifetime Table. Construct once, pass by value, never
// mutate at runtime.
type RuleTables struct {
	Year int

	FullRetirementAge int

	// Pension early-retirement anchors; linear between, clamped outside.
	PensionAnchorAges        []int
	PensionAnchorMultipliers []decimal.Decimal

	// Federal tax, single filer.
	Brackets           []TaxBracket
	StandardDeduction  decimal.Decimal
	AdditionalStdDed65 decimal.Decimal

	// Social Security taxation thresholds (combined income, single filer).
	SSTaxLowerThreshold decimal.Decimal
	SSTaxUpperThreshold decimal.Decimal

	// Medicare.
	PartBBaseMonthly  decimal.Decimal
	PartDBaseMonthly  decimal.Decimal
	IRMAATiers        []IRMAATier
	OutOfPocketAnnual decimal.Decimal

	// IRS Uniform Lifetime Table divisors by age.
	RMDStartAge int
	RMDDivisors map[int]decimal.Decimal
}

// NewRuleTables2025 creates the rule tables for the 2025 tax year,
// single filer.
func NewRuleTables2025() RuleTables {
	return RuleTables{
		Year:              2025,
		FullRetirementAge: 67,

		PensionAnchorAges: []int{62, 65, 67},
		PensionAnchorMultipliers: []decimal.Decimal{
			decimal.NewFromFloat(0.80),
			decimal.NewFromFloat(0.93),
			decimal.NewFromFloat(1.00),
		},

		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(11600), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(11600), decimal.NewFromInt(47150), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(47150), decimal.NewFromInt(100525), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(100525), decimal.NewFromInt(191950), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(191950), decimal.NewFromInt(243725), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(243725), decimal.NewFromInt(609350), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(609350), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
		},
		StandardDeduction:  decimal.NewFromInt(14600),
		AdditionalStdDed65: decimal.NewFromInt(1950),

		SSTaxLowerThreshold: decimal.NewFromInt(25000),
		SSTaxUpperThreshold: decimal.NewFromInt(34000),

		PartBBaseMonthly: decimal.NewFromFloat(174.70),
		PartDBaseMonthly: decimal.NewFromFloat(55.00),
		IRMAATiers: []IRMAATier{
			{decimal.NewFromInt(103000), decimal.NewFromFloat(69.90), decimal.NewFromFloat(12.90)},
			{decimal.NewFromInt(197000), decimal.NewFromFloat(209.90), decimal.NewFromFloat(33.30)},
			{decimal.NewFromInt(296000), decimal.NewFromFloat(280.50), decimal.NewFromFloat(53.80)},
			{decimal.NewFromInt(395000), decimal.NewFromFloat(349.90), decimal.NewFromFloat(74.20)},
			{decimal.NewFromInt(500000), decimal.NewFromFloat(419.30), decimal.NewFromFloat(81.00)},
		},
		OutOfPocketAnnual: decimal.NewFromInt(2000),

		RMDStartAge: 73,
		RMDDivisors: map[int]decimal.Decimal{
			73: decimal.NewFromFloat(26.5), 74: decimal.NewFromFloat(25.5),
			75: decimal.NewFromFloat(24.6), 76: decimal.NewFromFloat(23.7),
			77: decimal.NewFromFloat(22.9), 78: decimal.NewFromFloat(22.0),
			79: decimal.NewFromFloat(21.1), 80: decimal.NewFromFloat(20.2),
			81: decimal.NewFromFloat(19.4), 82: decimal.NewFromFloat(18.5),
			83: decimal.NewFromFloat(17.7), 84: decimal.NewFromFloat(16.8),
			85: decimal.NewFromFloat(16.0), 86: decimal.NewFromFloat(15.2),
			87: decimal.NewFromFloat(14.4), 88: decimal.NewFromFloat(13.7),
			89: decimal.NewFromFloat(12.9), 90: decimal.NewFromFloat(12.2),
			91: decimal.NewFromFloat(11.5), 92: decimal.NewFromFloat(10.8),
			93: decimal.NewFromFloat(10.1), 94: decimal.NewFromFloat(9.5),
			95: decimal.NewFromFloat(8.9), 96: decimal.NewFromFloat(8.4),
			97: decimal.NewFromFloat(7.8), 98: decimal.NewFromFloat(7.3),
			99: decimal.NewFromFloat(6.8), 100: decimal.NewFromFloat(6.4),
		},
	}
}

// PensionMultiplier returns the pension adjustment for a given start
// age: 62->0.80, 65->0.93, 67+->1.00, linear between anchors and clamped
// outside them. Any age resolves to a value.
func (rt RuleTables) PensionMultiplier(startAge int) decimal.Decimal {
	anchors := rt.PensionAnchorAges
	mults := rt.PensionAnchorMultipliers
	if startAge <= anchors[0] {
		return mults[0]
	}
	last := len(anchors) - 1
	if startAge >= anchors[last] {
		return mults[last]
	}
	for i := 0; i < last; i++ {
		if startAge >= anchors[i] && startAge <= anchors[i+1] {
			span := decimal.NewFromInt(int64(anchors[i+1] - anchors[i]))
			offset := decimal.NewFromInt(int64(startAge - anchors[i]))
			return mults[i].Add(mults[i+1].Sub(mults[i]).Mul(offset.Div(span)))
		}
	}
	return mults[last]
}

// RMDDivisor returns the Uniform Lifetime Table divisor for an age at or
// past the RMD start age. Ages beyond the table use the oldest entry.
// The boolean is false below the start age (no RMD required).
func (rt RuleTables) RMDDivisor(age int) (decimal.Decimal, bool) {
	if age < rt.RMDStartAge {
		return decimal.Zero, false
	}
	if d, ok := rt.RMDDivisors[age]; ok {
		return d, true
	}
	return rt.RMDDivisors[100], true
}
