package domain

import (
	"github.com/shopspring/decimal"
)

// YearRow represents the complete cash flow for a single projection year.
// Rows are immutable once produced by the projector.
type YearRow struct {
	Age       int `json:"age"`
	YearIndex int `json:"year_index"`

	// Savings balance
	BalanceStart decimal.Decimal `json:"savings_balance_start"`
	Withdrawal   decimal.Decimal `json:"savings_withdrawal"`
	BalanceEnd   decimal.Decimal `json:"savings_balance_end"`
	RMDRequired  decimal.Decimal `json:"rmd_required_amount"`
	Depleted     bool            `json:"depleted"`

	// Income sources
	SocialSecurityIncome decimal.Decimal `json:"social_security_income"`
	PensionIncome        decimal.Decimal `json:"pension_income"`
	GrossIncome          decimal.Decimal `json:"gross_income"`

	// Taxes
	TaxableSocialSecurity decimal.Decimal `json:"taxable_social_security"`
	FederalTax            decimal.Decimal `json:"federal_tax"`
	StateTax              decimal.Decimal `json:"state_tax"`

	// Medicare
	MedicarePartB         decimal.Decimal `json:"medicare_part_b"`
	MedicarePartD         decimal.Decimal `json:"medicare_part_d"`
	IRMAASurcharge        decimal.Decimal `json:"irmaa_surcharge"`
	HealthcareOutOfPocket decimal.Decimal `json:"healthcare_out_of_pocket"` // informational, not in net
	NetAnnualIncome       decimal.Decimal `json:"net_annual_income"`
	NetMonthlyIncome      decimal.Decimal `json:"net_monthly_income"`
}

// TotalDeductions sums everything subtracted from gross income for the
// year. The out-of-pocket healthcare estimate is reported but not
// deducted.
func (yr *YearRow) TotalDeductions() decimal.Decimal {
	return yr.FederalTax.Add(yr.StateTax).
		Add(yr.MedicarePartB).Add(yr.MedicarePartD).Add(yr.IRMAASurcharge)
}

// ScenarioSummary provides the key metrics for one projected scenario.
type ScenarioSummary struct {
	Name                string          `json:"name"`
	RetirementAge       int             `json:"retirement_age"`
	SSClaimAge          int             `json:"ss_claim_age"`
	BalanceAtRetirement decimal.Decimal `json:"balance_at_retirement"`
	FirstYearNetIncome  decimal.Decimal `json:"first_year_net_income"`
	FinalYearNetIncome  decimal.Decimal `json:"final_year_net_income"`
	FinalYearNetMonthly decimal.Decimal `json:"final_year_net_monthly"`
	TotalLifetimeNet    decimal.Decimal `json:"total_lifetime_net_income"`
	DepletionAge        int             `json:"depletion_age"` // 0 when savings last the full horizon
	Projection          []YearRow       `json:"projection"`
}

// IsDepleted reports whether savings ran out before the end of the
// projection.
func (ss *ScenarioSummary) IsDepleted() bool {
	return ss.DepletionAge > 0
}

// ScenarioComparison holds the per-scenario summaries in the order the
// scenarios were supplied (stable; never re-sorted by value).
type ScenarioComparison struct {
	Scenarios   []ScenarioSummary `json:"scenarios"`
	Assumptions []string          `json:"assumptions"`
}
