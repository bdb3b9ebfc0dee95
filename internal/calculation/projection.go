package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

// AccumulateSavings grows a balance with annual contributions for the
// pre-retirement years: balance = balance*(1+rate) + contribution per
// year. Contributions stop at retirement.
func AccumulateSavings(balance, contribution, rate decimal.Decimal, years int) decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(rate)
	for i := 0; i < years; i++ {
		balance = balance.Mul(growth).Add(contribution)
	}
	return balance
}

// Projector produces the ordered year-by-year rows for one scenario.
// It is pure: identical inputs always yield identical row sequences.
type Projector struct {
	Rules    RuleTables
	Tax      *TaxEngine
	Medicare *MedicareEngine
	Policy   domain.MedicarePolicy
}

// NewProjector wires a projector from the rule tables and the plan's
// tax/Medicare settings.
func NewProjector(rules RuleTables, plan *domain.Plan) *Projector {
	return &Projector{
		Rules:    rules,
		Tax:      NewTaxEngine(rules, plan.StateTaxRate, plan.FederalMarginalRateHint),
		Medicare: NewMedicareEngine(rules),
		Policy:   plan.Medicare,
	}
}

// Project generates rows from retirement age through life expectancy
// inclusive, so retirement_age == life_expectancy yields exactly one
// row. A retirement age past life expectancy yields an empty sequence,
// not an error.
func (p *Projector) Project(plan *domain.Plan, scenario *domain.Scenario) []domain.YearRow {
	if scenario.RetirementAge > plan.LifeExpectancy {
		return []domain.YearRow{}
	}

	yearsUntilRetirement := scenario.RetirementAge - plan.CurrentAge
	balance := AccumulateSavings(plan.Balance, plan.AnnualContribution, plan.ExpectedReturn, yearsUntilRetirement)

	ssAnnualBase := plan.SocialSecurityFRAMonthly.Mul(decimal.NewFromInt(12)).
		Mul(SSClaimMultiplier(scenario.SSClaimAge, p.Rules.FullRetirementAge))
	pensionAnnualBase := plan.PensionFRAMonthly.Mul(decimal.NewFromInt(12)).
		Mul(p.Rules.PensionMultiplier(scenario.EffectivePensionStartAge()))

	strategy := newWithdrawalStrategy(scenario.Withdrawal, balance, plan.InflationRate)
	growth := decimal.NewFromInt(1).Add(plan.ExpectedReturn)
	twelve := decimal.NewFromInt(12)

	years := plan.LifeExpectancy - scenario.RetirementAge + 1
	rows := make([]domain.YearRow, 0, years)
	magiHistory := make([]decimal.Decimal, 0, years)

	for n := 0; n < years; n++ {
		age := scenario.RetirementAge + n
		inflation := compound(plan.InflationRate, n)

		var ssIncome, pensionIncome decimal.Decimal
		if age >= scenario.SSClaimAge {
			ssIncome = ssAnnualBase.Mul(inflation)
		}
		if age >= scenario.EffectivePensionStartAge() {
			pensionIncome = pensionAnnualBase.Mul(inflation)
		}
		benefitIncome := ssIncome.Add(pensionIncome)

		balanceStart := balance
		grown := balanceStart.Mul(growth)

		var rmdRequired decimal.Decimal
		if divisor, required := p.Rules.RMDDivisor(age); required {
			rmdRequired = grown.Div(divisor)
		}

		desired := strategy.DesiredWithdrawal(grown, n, benefitIncome)
		if desired.LessThan(rmdRequired) {
			desired = rmdRequired
		}
		withdrawal := desired
		depleted := false
		if withdrawal.GreaterThan(grown) {
			withdrawal = grown
			depleted = true
		}
		balance = grown.Sub(withdrawal)

		gross := benefitIncome.Add(withdrawal)
		taxes := p.Tax.Calculate(gross, ssIncome, age)

		// MAGI approximation: AGI before the standard deduction, i.e.
		// gross income less the non-taxable part of the benefit.
		magi := gross.Sub(ssIncome.Sub(taxes.TaxableSocialSecurity))
		magiHistory = append(magiHistory, magi)

		var medicare MedicareResult
		if p.Policy.Include {
			medicare = p.Medicare.Calculate(age, p.irmaaMAGI(magiHistory, n))
		}

		net := gross.Sub(taxes.FederalTax).Sub(taxes.StateTax).
			Sub(medicare.PartB).Sub(medicare.PartD).Sub(medicare.IRMAASurcharge)

		rows = append(rows, domain.YearRow{
			Age:                   age,
			YearIndex:             n,
			BalanceStart:          balanceStart,
			Withdrawal:            withdrawal,
			BalanceEnd:            balance,
			RMDRequired:           rmdRequired,
			Depleted:              depleted,
			SocialSecurityIncome:  ssIncome,
			PensionIncome:         pensionIncome,
			GrossIncome:           gross,
			TaxableSocialSecurity: taxes.TaxableSocialSecurity,
			FederalTax:            taxes.FederalTax,
			StateTax:              taxes.StateTax,
			MedicarePartB:         medicare.PartB,
			MedicarePartD:         medicare.PartD,
			IRMAASurcharge:        medicare.IRMAASurcharge,
			HealthcareOutOfPocket: medicare.OutOfPocket,
			NetAnnualIncome:       net,
			NetMonthlyIncome:      net.Div(twelve),
		})
	}

	return rows
}

// irmaaMAGI selects the income that feeds the IRMAA lookup for year n
// according to the configured basis. The two-year lookback falls back to
// the current year when the projection is too young to have history.
func (p *Projector) irmaaMAGI(history []decimal.Decimal, n int) decimal.Decimal {
	if p.Policy.Basis() == domain.MAGIBasisTwoYearLookback && n >= 2 {
		return history[n-2]
	}
	return history[n]
}
