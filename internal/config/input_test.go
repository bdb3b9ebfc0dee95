package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writePlanFile(t, `
plan:
  current_age: 45
  life_expectancy: 90
  balance: 250000
  annual_contribution: 20000
  expected_return: 0.07
  inflation_rate: 0.03
  pension_fra_monthly: 2000
  social_security_fra_monthly: 2500
  state_tax_rate: 0.05
  medicare:
    include: true
    magi_basis: current_year
scenarios:
  - name: "Retire at 62"
    retirement_age: 62
    ss_claim_age: 62
  - name: "Retire at 67, claim at 70"
    retirement_age: 67
    ss_claim_age: 70
    withdrawal:
      strategy: need_based
      target_monthly: 4000
`)

	cfg, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.Plan.CurrentAge)
	assert.Equal(t, 90, cfg.Plan.LifeExpectancy)
	assert.True(t, cfg.Plan.Balance.Equal(decimal.NewFromInt(250000)))
	assert.True(t, cfg.Plan.StateTaxRate.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, cfg.Plan.Medicare.Include)
	assert.Equal(t, domain.MAGIBasisCurrentYear, cfg.Plan.Medicare.Basis())

	require.Len(t, cfg.Scenarios, 2)
	assert.Equal(t, "Retire at 62", cfg.Scenarios[0].Name)

	second := cfg.Scenarios[1]
	assert.Equal(t, 70, second.SSClaimAge)
	assert.Equal(t, domain.StrategyNeedBased, second.Withdrawal.Strategy)
	require.NotNil(t, second.Withdrawal.TargetMonthly)
	assert.True(t, second.Withdrawal.TargetMonthly.Equal(decimal.NewFromInt(4000)))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileBadYAML(t *testing.T) {
	path := writePlanFile(t, "plan: [not a map")
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &domain.Configuration{
		Plan: domain.Plan{CurrentAge: 64, LifeExpectancy: 90},
	}

	NewInputParser().ApplyDefaults(cfg)

	assert.True(t, cfg.Plan.ExpectedReturn.Equal(decimal.NewFromFloat(0.07)))
	assert.True(t, cfg.Plan.InflationRate.Equal(decimal.NewFromFloat(0.03)))

	// Default scenario ages below the current age are dropped.
	require.Len(t, cfg.Scenarios, 3)
	assert.Equal(t, "Retire at 65", cfg.Scenarios[0].Name)
	assert.Equal(t, 65, cfg.Scenarios[0].SSClaimAge)
	assert.Equal(t, "Retire at 67", cfg.Scenarios[1].Name)
	assert.Equal(t, "Retire at 70", cfg.Scenarios[2].Name)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &domain.Configuration{
		Plan: domain.Plan{
			CurrentAge:     45,
			LifeExpectancy: 90,
			ExpectedReturn: decimal.NewFromFloat(0.05),
			InflationRate:  decimal.NewFromFloat(0.02),
		},
		Scenarios: []domain.Scenario{
			{Name: "mine", RetirementAge: 60, SSClaimAge: 62},
		},
	}

	NewInputParser().ApplyDefaults(cfg)

	assert.True(t, cfg.Plan.ExpectedReturn.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, cfg.Plan.InflationRate.Equal(decimal.NewFromFloat(0.02)))
	require.Len(t, cfg.Scenarios, 1)
	assert.Equal(t, "mine", cfg.Scenarios[0].Name)
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()
	rate := decimal.NewFromFloat(0.5)

	base := func() *domain.Configuration {
		cfg := parser.CreateExampleConfiguration()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		errPart string
	}{
		{
			name:   "example configuration is valid",
			mutate: func(c *domain.Configuration) {},
		},
		{
			name:    "zero current age",
			mutate:  func(c *domain.Configuration) { c.Plan.CurrentAge = 0 },
			errPart: "current_age",
		},
		{
			name:    "life expectancy not past current age",
			mutate:  func(c *domain.Configuration) { c.Plan.LifeExpectancy = 45 },
			errPart: "life_expectancy",
		},
		{
			name:    "state tax rate too high",
			mutate:  func(c *domain.Configuration) { c.Plan.StateTaxRate = decimal.NewFromFloat(0.30) },
			errPart: "state_tax_rate",
		},
		{
			name:    "bad magi basis",
			mutate:  func(c *domain.Configuration) { c.Plan.Medicare.MAGIBasis = "last_year" },
			errPart: "magi_basis",
		},
		{
			name:    "no scenarios",
			mutate:  func(c *domain.Configuration) { c.Scenarios = nil },
			errPart: "no scenarios",
		},
		{
			name:    "scenario without a name",
			mutate:  func(c *domain.Configuration) { c.Scenarios[0].Name = "" },
			errPart: "name is required",
		},
		{
			name:    "retirement before current age",
			mutate:  func(c *domain.Configuration) { c.Scenarios[0].RetirementAge = 40 },
			errPart: "retirement_age",
		},
		{
			name:    "claim age out of range",
			mutate:  func(c *domain.Configuration) { c.Scenarios[0].SSClaimAge = 75 },
			errPart: "ss_claim_age",
		},
		{
			name:    "pension before retirement",
			mutate:  func(c *domain.Configuration) { c.Scenarios[0].PensionStartAge = 60 },
			errPart: "pension_start_age",
		},
		{
			name: "need based without a target",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].Withdrawal = domain.WithdrawalPolicy{Strategy: domain.StrategyNeedBased}
			},
			errPart: "target_monthly is required",
		},
		{
			name: "variable percentage rate out of range",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].Withdrawal = domain.WithdrawalPolicy{Strategy: domain.StrategyVariablePercentage, Rate: &rate}
			},
			errPart: "withdrawal.rate",
		},
		{
			name: "unknown strategy",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].Withdrawal = domain.WithdrawalPolicy{Strategy: "guess"}
			},
			errPart: "withdrawal.strategy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := parser.ValidateConfiguration(cfg)
			if tt.errPart == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestCreateExampleConfigurationRoundTrips(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(cfg))
	require.Len(t, cfg.Scenarios, 4)

	last := cfg.Scenarios[len(cfg.Scenarios)-1]
	assert.Equal(t, domain.StrategyNeedBased, last.Withdrawal.Strategy)
	require.NotNil(t, last.Withdrawal.TargetMonthly)
}
