package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

// WithdrawalStrategy sizes the desired savings withdrawal for a year,
// before the RMD floor and balance cap are applied by the projector.
type WithdrawalStrategy interface {
	// DesiredWithdrawal returns the amount the retiree wants to draw in
	// year n (0-indexed from retirement), given the balance after growth
	// and the benefit income (SS + pension) already arriving that year.
	DesiredWithdrawal(balance decimal.Decimal, yearIndex int, benefitIncome decimal.Decimal) decimal.Decimal
	Name() string
}

// NeedBasedWithdrawal draws enough to cover the gap between an
// inflation-adjusted annual spending target and benefit income.
type NeedBasedWithdrawal struct {
	TargetAnnual  decimal.Decimal
	InflationRate decimal.Decimal
}

// NewNeedBasedWithdrawal creates a need-based strategy from a monthly
// spending target.
func NewNeedBasedWithdrawal(targetMonthly, inflationRate decimal.Decimal) *NeedBasedWithdrawal {
	return &NeedBasedWithdrawal{
		TargetAnnual:  targetMonthly.Mul(decimal.NewFromInt(12)),
		InflationRate: inflationRate,
	}
}

// DesiredWithdrawal returns the funding gap for the year, floored at
// zero when benefits alone cover the target.
func (nbw *NeedBasedWithdrawal) DesiredWithdrawal(balance decimal.Decimal, yearIndex int, benefitIncome decimal.Decimal) decimal.Decimal {
	inflated := nbw.TargetAnnual.Mul(compound(nbw.InflationRate, yearIndex))
	gap := inflated.Sub(benefitIncome)
	if gap.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return gap
}

func (nbw *NeedBasedWithdrawal) Name() string { return domain.StrategyNeedBased }

// FourPercentRule draws 4% of the balance at retirement in the first
// year, then inflates that amount each year.
type FourPercentRule struct {
	FirstWithdrawal decimal.Decimal
	InflationRate   decimal.Decimal
}

// NewFourPercentRule creates a 4% rule strategy from the balance at
// retirement.
func NewFourPercentRule(balanceAtRetirement, inflationRate decimal.Decimal) *FourPercentRule {
	return &FourPercentRule{
		FirstWithdrawal: balanceAtRetirement.Mul(decimal.NewFromFloat(0.04)),
		InflationRate:   inflationRate,
	}
}

// DesiredWithdrawal returns the inflated first-year amount for year n.
func (fpr *FourPercentRule) DesiredWithdrawal(balance decimal.Decimal, yearIndex int, benefitIncome decimal.Decimal) decimal.Decimal {
	return fpr.FirstWithdrawal.Mul(compound(fpr.InflationRate, yearIndex))
}

func (fpr *FourPercentRule) Name() string { return domain.StrategyFourPercentRule }

// VariablePercentageWithdrawal draws a fixed percentage of the current
// balance each year.
type VariablePercentageWithdrawal struct {
	Rate decimal.Decimal
}

// NewVariablePercentageWithdrawal creates a variable-percentage
// strategy.
func NewVariablePercentageWithdrawal(rate decimal.Decimal) *VariablePercentageWithdrawal {
	return &VariablePercentageWithdrawal{Rate: rate}
}

// DesiredWithdrawal returns the configured share of the grown balance.
func (vpw *VariablePercentageWithdrawal) DesiredWithdrawal(balance decimal.Decimal, yearIndex int, benefitIncome decimal.Decimal) decimal.Decimal {
	return balance.Mul(vpw.Rate)
}

func (vpw *VariablePercentageWithdrawal) Name() string { return domain.StrategyVariablePercentage }

// newWithdrawalStrategy builds the strategy a scenario asked for,
// defaulting to need-based at the plan's benefit-replacement level and
// falling back to the 4% rule when a need-based target is missing.
func newWithdrawalStrategy(policy domain.WithdrawalPolicy, balanceAtRetirement, inflationRate decimal.Decimal) WithdrawalStrategy {
	switch policy.Strategy {
	case domain.StrategyNeedBased:
		if policy.TargetMonthly != nil {
			return NewNeedBasedWithdrawal(*policy.TargetMonthly, inflationRate)
		}
		return NewFourPercentRule(balanceAtRetirement, inflationRate)
	case domain.StrategyVariablePercentage:
		if policy.Rate != nil {
			return NewVariablePercentageWithdrawal(*policy.Rate)
		}
		return NewFourPercentRule(balanceAtRetirement, inflationRate)
	case domain.StrategyFourPercentRule, "":
		return NewFourPercentRule(balanceAtRetirement, inflationRate)
	default:
		return NewFourPercentRule(balanceAtRetirement, inflationRate)
	}
}

// compound returns (1+rate)^n.
func compound(rate decimal.Decimal, n int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(n)))
}
