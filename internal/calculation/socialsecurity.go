package calculation

import (
	"github.com/shopspring/decimal"
)

// SSClaimMultiplier returns the Social Security benefit adjustment for a
// claiming age relative to FRA, using the SSA month-based rule:
// 5/9 of 1% per month for the first 36 months claimed early, 5/12 of 1%
// per month beyond that, and 2/3 of 1% per month of delay (capped at 70).
// This is piecewise-linear between the anchor ages and reproduces them
// exactly: 62->0.70, 65->0.8667, 67->1.00, 70->1.24 for FRA 67. Ages
// below 62 clamp to the age-62 reduction; ages above 70 earn no further
// credit.
func SSClaimMultiplier(claimAge, fra int) decimal.Decimal {
	one := decimal.NewFromInt(1)

	if claimAge < 62 {
		claimAge = 62
	}

	if claimAge < fra {
		monthsEarly := (fra - claimAge) * 12
		var reduction decimal.Decimal
		if monthsEarly <= 36 {
			reduction = decimal.NewFromFloat(5.0 / 9.0 / 100.0).Mul(decimal.NewFromInt(int64(monthsEarly)))
		} else {
			first := decimal.NewFromFloat(5.0 / 9.0 / 100.0).Mul(decimal.NewFromInt(36))
			extra := decimal.NewFromFloat(5.0 / 12.0 / 100.0).Mul(decimal.NewFromInt(int64(monthsEarly - 36)))
			reduction = first.Add(extra)
		}
		return one.Sub(reduction)
	}

	if claimAge > fra {
		monthsDelayed := (claimAge - fra) * 12
		if maxDelay := (70 - fra) * 12; monthsDelayed > maxDelay {
			monthsDelayed = maxDelay
		}
		credit := decimal.NewFromFloat(2.0 / 3.0 / 100.0).Mul(decimal.NewFromInt(int64(monthsDelayed)))
		return one.Add(credit)
	}

	return one
}

// SSTaxCalculator determines the federally taxable portion of Social
// Security benefits for a single filer.
type SSTaxCalculator struct {
	LowerThreshold decimal.Decimal
	UpperThreshold decimal.Decimal
}

// NewSSTaxCalculator creates an SS tax calculator from the rule tables.
func NewSSTaxCalculator(rules RuleTables) *SSTaxCalculator {
	return &SSTaxCalculator{
		LowerThreshold: rules.SSTaxLowerThreshold,
		UpperThreshold: rules.SSTaxUpperThreshold,
	}
}

// CombinedIncome computes the IRS combined-income figure used to decide
// how much of the benefit is taxable: other income plus half of the
// Social Security benefit.
func (sstc *SSTaxCalculator) CombinedIncome(otherIncome, ssBenefits decimal.Decimal) decimal.Decimal {
	return otherIncome.Add(ssBenefits.Mul(decimal.NewFromFloat(0.5)))
}

// TaxableBenefits returns the taxable portion of annual SS benefits:
// zero at or below the lower threshold, up to 50% between the
// thresholds, up to 85% above the upper threshold. The result never
// exceeds 85% of the benefit.
func (sstc *SSTaxCalculator) TaxableBenefits(ssBenefits, combinedIncome decimal.Decimal) decimal.Decimal {
	if combinedIncome.LessThanOrEqual(sstc.LowerThreshold) {
		return decimal.Zero
	}

	if combinedIncome.LessThanOrEqual(sstc.UpperThreshold) {
		// Lesser of 50% of the excess over the lower threshold and 50%
		// of the benefit.
		half := decimal.NewFromFloat(0.5)
		excess := combinedIncome.Sub(sstc.LowerThreshold).Mul(half)
		cap := ssBenefits.Mul(half)
		return decimal.Min(excess, cap)
	}

	// Above the upper threshold: lesser of 85% of the excess plus the
	// 50%-band amount, and 85% of the benefit.
	rate85 := decimal.NewFromFloat(0.85)
	bandAmount := sstc.UpperThreshold.Sub(sstc.LowerThreshold).Mul(decimal.NewFromFloat(0.5))
	excess := combinedIncome.Sub(sstc.UpperThreshold).Mul(rate85).Add(bandAmount)
	cap := ssBenefits.Mul(rate85)
	return decimal.Min(excess, cap)
}
