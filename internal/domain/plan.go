package domain

import (
	"github.com/shopspring/decimal"
)

// Plan holds every input for a projection run. One record per run; the
// engine never mutates it.
type Plan struct {
	CurrentAge     int `yaml:"current_age" json:"current_age"`
	LifeExpectancy int `yaml:"life_expectancy" json:"life_expectancy"`

	Balance            decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualContribution decimal.Decimal `yaml:"annual_contribution" json:"annual_contribution"`
	ExpectedReturn     decimal.Decimal `yaml:"expected_return" json:"expected_return"`
	InflationRate      decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`

	PensionFRAMonthly        decimal.Decimal `yaml:"pension_fra_monthly" json:"pension_fra_monthly"`
	SocialSecurityFRAMonthly decimal.Decimal `yaml:"social_security_fra_monthly" json:"social_security_fra_monthly"`

	// FederalMarginalRateHint, when positive, replaces the progressive
	// bracket walk with a flat rate on the same taxable base.
	FederalMarginalRateHint decimal.Decimal `yaml:"federal_marginal_rate_hint,omitempty" json:"federal_marginal_rate_hint,omitempty"`
	StateTaxRate            decimal.Decimal `yaml:"state_tax_rate" json:"state_tax_rate"`

	Medicare MedicarePolicy `yaml:"medicare" json:"medicare"`
}

// MAGI basis choices for IRMAA tier lookup.
const (
	MAGIBasisCurrentYear     = "current_year"
	MAGIBasisTwoYearLookback = "two_year_lookback"
)

// MedicarePolicy controls whether Medicare costs are projected and which
// year's income feeds the IRMAA lookup.
type MedicarePolicy struct {
	Include   bool   `yaml:"include" json:"include"`
	MAGIBasis string `yaml:"magi_basis,omitempty" json:"magi_basis,omitempty"`
}

// Withdrawal strategy names accepted in scenario configuration.
const (
	StrategyNeedBased          = "need_based"
	StrategyFourPercentRule    = "four_percent_rule"
	StrategyVariablePercentage = "variable_percentage"
)

// WithdrawalPolicy selects how the savings drawdown for a scenario is
// sized each year, before the RMD floor and balance cap apply.
type WithdrawalPolicy struct {
	Strategy      string           `yaml:"strategy,omitempty" json:"strategy,omitempty"`
	TargetMonthly *decimal.Decimal `yaml:"target_monthly,omitempty" json:"target_monthly,omitempty"`
	Rate          *decimal.Decimal `yaml:"rate,omitempty" json:"rate,omitempty"`
}

// Scenario is one retirement-age / claiming-age combination to project.
type Scenario struct {
	Name            string           `yaml:"name" json:"name"`
	RetirementAge   int              `yaml:"retirement_age" json:"retirement_age"`
	SSClaimAge      int              `yaml:"ss_claim_age" json:"ss_claim_age"`
	PensionStartAge int              `yaml:"pension_start_age,omitempty" json:"pension_start_age,omitempty"`
	Withdrawal      WithdrawalPolicy `yaml:"withdrawal,omitempty" json:"withdrawal,omitempty"`
}

// EffectivePensionStartAge returns the pension claiming age, defaulting
// to the retirement age when unset.
func (s *Scenario) EffectivePensionStartAge() int {
	if s.PensionStartAge > 0 {
		return s.PensionStartAge
	}
	return s.RetirementAge
}

// Configuration is the top-level structure of a plan file: the input
// record plus the ordered scenario set to compare.
type Configuration struct {
	Plan      Plan       `yaml:"plan" json:"plan"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Basis returns the configured IRMAA income basis, defaulting to
// current-year income.
func (mp MedicarePolicy) Basis() string {
	if mp.MAGIBasis == "" {
		return MAGIBasisCurrentYear
	}
	return mp.MAGIBasis
}
