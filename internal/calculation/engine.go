package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

// CalculationEngine orchestrates all retirement projections: it
// validates the input record, runs the projector per scenario and
// assembles the comparison.
type CalculationEngine struct {
	Rules  RuleTables
	Logger Logger
}

// NewCalculationEngine creates an engine with the 2025 rule tables.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Rules:  NewRuleTables2025(),
		Logger: NopLogger{},
	}
}

// NewCalculationEngineWithRules creates an engine with caller-supplied
// rule tables (e.g. a different tax year).
func NewCalculationEngineWithRules(rules RuleTables) *CalculationEngine {
	return &CalculationEngine{
		Rules:  rules,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the engine. Nil installs the no-op
// logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ValidatePlan checks the input record before any projection runs. A
// non-nil error names the offending field; no partial output follows.
func (ce *CalculationEngine) ValidatePlan(plan *domain.Plan) error {
	if plan.CurrentAge >= plan.LifeExpectancy {
		return fmt.Errorf("current_age (%d) must be less than life_expectancy (%d)", plan.CurrentAge, plan.LifeExpectancy)
	}
	if plan.Balance.LessThan(decimal.Zero) {
		return fmt.Errorf("balance cannot be negative, got %s", plan.Balance)
	}
	if plan.AnnualContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("annual_contribution cannot be negative, got %s", plan.AnnualContribution)
	}
	if plan.PensionFRAMonthly.LessThan(decimal.Zero) {
		return fmt.Errorf("pension_fra_monthly cannot be negative, got %s", plan.PensionFRAMonthly)
	}
	if plan.SocialSecurityFRAMonthly.LessThan(decimal.Zero) {
		return fmt.Errorf("social_security_fra_monthly cannot be negative, got %s", plan.SocialSecurityFRAMonthly)
	}
	if plan.ExpectedReturn.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("expected_return cannot be less than -100%%, got %s", plan.ExpectedReturn)
	}
	if plan.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || plan.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation_rate must be between -10%% and 20%%, got %s", plan.InflationRate)
	}
	if plan.StateTaxRate.LessThan(decimal.Zero) {
		return fmt.Errorf("state_tax_rate cannot be negative, got %s", plan.StateTaxRate)
	}
	if plan.FederalMarginalRateHint.LessThan(decimal.Zero) {
		return fmt.Errorf("federal_marginal_rate_hint cannot be negative, got %s", plan.FederalMarginalRateHint)
	}
	basis := plan.Medicare.Basis()
	if basis != domain.MAGIBasisCurrentYear && basis != domain.MAGIBasisTwoYearLookback {
		return fmt.Errorf("medicare.magi_basis must be %q or %q, got %q", domain.MAGIBasisCurrentYear, domain.MAGIBasisTwoYearLookback, basis)
	}
	return nil
}

// validateScenario checks a scenario against the plan's horizon.
func (ce *CalculationEngine) validateScenario(plan *domain.Plan, scenario *domain.Scenario) error {
	if scenario.RetirementAge < plan.CurrentAge || scenario.RetirementAge > plan.LifeExpectancy {
		return fmt.Errorf("retirement_age (%d) must be within [current_age, life_expectancy] = [%d, %d]",
			scenario.RetirementAge, plan.CurrentAge, plan.LifeExpectancy)
	}
	if scenario.SSClaimAge < 62 || scenario.SSClaimAge > 70 {
		return fmt.Errorf("ss_claim_age (%d) must be between 62 and 70", scenario.SSClaimAge)
	}
	if policy := scenario.Withdrawal; policy.Strategy == domain.StrategyNeedBased && policy.TargetMonthly != nil && policy.TargetMonthly.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("withdrawal.target_monthly must be positive, got %s", policy.TargetMonthly)
	}
	if policy := scenario.Withdrawal; policy.Rate != nil && (policy.Rate.LessThan(decimal.Zero) || policy.Rate.GreaterThan(decimal.NewFromFloat(0.2))) {
		return fmt.Errorf("withdrawal.rate must be between 0 and 20%%, got %s", policy.Rate)
	}
	return nil
}

// RunScenario projects one scenario and summarizes it.
func (ce *CalculationEngine) RunScenario(ctx context.Context, plan *domain.Plan, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ce.ValidatePlan(plan); err != nil {
		return nil, err
	}
	if err := ce.validateScenario(plan, scenario); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	ce.Logger.Debugf("projecting scenario %q (retire %d, claim %d)", scenario.Name, scenario.RetirementAge, scenario.SSClaimAge)

	projector := NewProjector(ce.Rules, plan)
	projection := projector.Project(plan, scenario)

	summary := &domain.ScenarioSummary{
		Name:          scenario.Name,
		RetirementAge: scenario.RetirementAge,
		SSClaimAge:    scenario.SSClaimAge,
		Projection:    projection,
	}

	if len(projection) == 0 {
		return summary, nil
	}

	first := projection[0]
	final := projection[len(projection)-1]
	summary.BalanceAtRetirement = first.BalanceStart
	summary.FirstYearNetIncome = first.NetAnnualIncome
	summary.FinalYearNetIncome = final.NetAnnualIncome
	summary.FinalYearNetMonthly = final.NetMonthlyIncome

	var total decimal.Decimal
	for _, row := range projection {
		total = total.Add(row.NetAnnualIncome)
		if row.Depleted && summary.DepletionAge == 0 {
			summary.DepletionAge = row.Age
		}
	}
	summary.TotalLifetimeNet = total

	if summary.DepletionAge > 0 {
		ce.Logger.Warnf("scenario %q: savings depleted at age %d", scenario.Name, summary.DepletionAge)
	}

	return summary, nil
}

// RunScenarios projects every scenario in the configuration and returns
// the comparison. Output order follows the input order; no re-sorting.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, &config.Plan, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		scenarios[i] = *summary
	}

	return &domain.ScenarioComparison{
		Scenarios:   scenarios,
		Assumptions: ce.describeAssumptions(&config.Plan),
	}, nil
}

// describeAssumptions renders the plan's global assumptions for report
// headers.
func (ce *CalculationEngine) describeAssumptions(plan *domain.Plan) []string {
	hundred := decimal.NewFromInt(100)
	assumptions := []string{
		fmt.Sprintf("Expected annual return: %s%%", plan.ExpectedReturn.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Inflation rate: %s%%", plan.InflationRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("State tax rate: %s%%", plan.StateTaxRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Life expectancy: %d", plan.LifeExpectancy),
		fmt.Sprintf("Tax rules: %d, single filer", ce.Rules.Year),
	}
	if plan.Medicare.Include {
		assumptions = append(assumptions, fmt.Sprintf("Medicare included (IRMAA basis: %s)", plan.Medicare.Basis()))
	} else {
		assumptions = append(assumptions, "Medicare excluded")
	}
	return assumptions
}
