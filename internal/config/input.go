package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan configuration from a YAML file, applies
// defaults and validates it. On error, nothing usable is returned.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills unset plan fields with the documented defaults
// and supplies the standard comparison set when no scenarios are given.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.Plan.ExpectedReturn.IsZero() {
		config.Plan.ExpectedReturn = decimal.NewFromFloat(0.07)
	}
	if config.Plan.InflationRate.IsZero() {
		config.Plan.InflationRate = decimal.NewFromFloat(0.03)
	}
	if len(config.Scenarios) == 0 {
		for _, age := range []int{62, 65, 67, 70} {
			if age < config.Plan.CurrentAge {
				continue
			}
			config.Scenarios = append(config.Scenarios, domain.Scenario{
				Name:          fmt.Sprintf("Retire at %d", age),
				RetirementAge: age,
				SSClaimAge:    age,
			})
		}
	}
}

// ValidateConfiguration validates the loaded configuration. Errors name
// the offending field so the caller can pinpoint it.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validatePlan(&config.Plan); err != nil {
		return fmt.Errorf("plan validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	for i := range config.Scenarios {
		if err := ip.validateScenario(&config.Plan, &config.Scenarios[i]); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validatePlan validates the input record.
func (ip *InputParser) validatePlan(plan *domain.Plan) error {
	if plan.CurrentAge <= 0 {
		return fmt.Errorf("current_age must be positive")
	}
	if plan.LifeExpectancy <= plan.CurrentAge {
		return fmt.Errorf("life_expectancy (%d) must be greater than current_age (%d)", plan.LifeExpectancy, plan.CurrentAge)
	}
	if plan.Balance.LessThan(decimal.Zero) {
		return fmt.Errorf("balance cannot be negative")
	}
	if plan.AnnualContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("annual_contribution cannot be negative")
	}
	if plan.PensionFRAMonthly.LessThan(decimal.Zero) {
		return fmt.Errorf("pension_fra_monthly cannot be negative")
	}
	if plan.SocialSecurityFRAMonthly.LessThan(decimal.Zero) {
		return fmt.Errorf("social_security_fra_monthly cannot be negative")
	}
	if plan.StateTaxRate.LessThan(decimal.Zero) || plan.StateTaxRate.GreaterThan(decimal.NewFromFloat(0.15)) {
		return fmt.Errorf("state_tax_rate must be between 0 and 15%%")
	}
	if plan.FederalMarginalRateHint.LessThan(decimal.Zero) || plan.FederalMarginalRateHint.GreaterThan(decimal.NewFromFloat(0.37)) {
		return fmt.Errorf("federal_marginal_rate_hint must be between 0 and 37%%")
	}
	if basis := plan.Medicare.Basis(); basis != domain.MAGIBasisCurrentYear && basis != domain.MAGIBasisTwoYearLookback {
		return fmt.Errorf("medicare.magi_basis must be %q or %q", domain.MAGIBasisCurrentYear, domain.MAGIBasisTwoYearLookback)
	}
	return nil
}

// validateScenario validates a single scenario against the plan.
func (ip *InputParser) validateScenario(plan *domain.Plan, scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.RetirementAge < plan.CurrentAge {
		return fmt.Errorf("retirement_age (%d) cannot be before current_age (%d)", scenario.RetirementAge, plan.CurrentAge)
	}
	if scenario.RetirementAge > plan.LifeExpectancy {
		return fmt.Errorf("retirement_age (%d) cannot be past life_expectancy (%d)", scenario.RetirementAge, plan.LifeExpectancy)
	}
	if scenario.SSClaimAge < 62 || scenario.SSClaimAge > 70 {
		return fmt.Errorf("ss_claim_age must be between 62 and 70")
	}
	if scenario.PensionStartAge != 0 && scenario.PensionStartAge < scenario.RetirementAge {
		return fmt.Errorf("pension_start_age (%d) cannot be before retirement_age (%d)", scenario.PensionStartAge, scenario.RetirementAge)
	}

	policy := scenario.Withdrawal
	switch policy.Strategy {
	case "", domain.StrategyFourPercentRule:
	case domain.StrategyNeedBased:
		if policy.TargetMonthly == nil {
			return fmt.Errorf("withdrawal.target_monthly is required for need_based strategy")
		}
		if policy.TargetMonthly.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("withdrawal.target_monthly must be positive")
		}
	case domain.StrategyVariablePercentage:
		if policy.Rate == nil {
			return fmt.Errorf("withdrawal.rate is required for variable_percentage strategy")
		}
		if policy.Rate.LessThan(decimal.Zero) || policy.Rate.GreaterThan(decimal.NewFromFloat(0.2)) {
			return fmt.Errorf("withdrawal.rate must be between 0 and 20%%")
		}
	default:
		return fmt.Errorf("withdrawal.strategy must be %q, %q, or %q",
			domain.StrategyFourPercentRule, domain.StrategyNeedBased, domain.StrategyVariablePercentage)
	}

	return nil
}

// CreateExampleConfiguration creates an example plan matching the
// documented defaults.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	targetMonthly := decimal.NewFromInt(4000)
	config := &domain.Configuration{
		Plan: domain.Plan{
			CurrentAge:               45,
			LifeExpectancy:           90,
			Balance:                  decimal.NewFromInt(250000),
			AnnualContribution:       decimal.NewFromInt(20000),
			ExpectedReturn:           decimal.NewFromFloat(0.07),
			InflationRate:            decimal.NewFromFloat(0.03),
			PensionFRAMonthly:        decimal.NewFromInt(2000),
			SocialSecurityFRAMonthly: decimal.NewFromInt(2500),
			StateTaxRate:             decimal.NewFromFloat(0.05),
			Medicare: domain.MedicarePolicy{
				Include:   true,
				MAGIBasis: domain.MAGIBasisCurrentYear,
			},
		},
		Scenarios: []domain.Scenario{
			{Name: "Retire at 62", RetirementAge: 62, SSClaimAge: 62},
			{Name: "Retire at 65", RetirementAge: 65, SSClaimAge: 65},
			{Name: "Retire at 67", RetirementAge: 67, SSClaimAge: 67},
			{
				Name:          "Retire at 67, claim at 70",
				RetirementAge: 67,
				SSClaimAge:    70,
				Withdrawal: domain.WithdrawalPolicy{
					Strategy:      domain.StrategyNeedBased,
					TargetMonthly: &targetMonthly,
				},
			},
		},
	}
	return config
}
