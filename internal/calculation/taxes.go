package calculation

import (
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal brackets: single-filer 2024/2025 thresholds for all
//    projection years, no inflation indexing of brackets.
// 2. Standard deduction: $14,600 single, plus $1,950 once age 65+.
// 3. State tax: flat rate on gross income above the standard deduction.
// 4. Social Security: taxable portion via the single-filer
//    combined-income tiers ($25,000 / $34,000).

// TaxResult holds the per-year output of the tax engine.
type TaxResult struct {
	TaxableSocialSecurity decimal.Decimal
	FederalTax            decimal.Decimal
	StateTax              decimal.Decimal
}

// TaxEngine computes federal and state liability for one projection
// year from gross income components.
type TaxEngine struct {
	Rules    RuleTables
	SSTax    *SSTaxCalculator
	FlatRate decimal.Decimal // optional federal override; zero = use brackets
	StateTax decimal.Decimal
}

// NewTaxEngine creates a tax engine. flatFederalRate is an optional
// marginal-rate override; pass decimal.Zero to use the progressive
// brackets.
func NewTaxEngine(rules RuleTables, stateRate, flatFederalRate decimal.Decimal) *TaxEngine {
	return &TaxEngine{
		Rules:    rules,
		SSTax:    NewSSTaxCalculator(rules),
		FlatRate: flatFederalRate,
		StateTax: stateRate,
	}
}

// StandardDeduction returns the single-filer standard deduction for the
// given age.
func (te *TaxEngine) StandardDeduction(age int) decimal.Decimal {
	ded := te.Rules.StandardDeduction
	if age >= 65 {
		ded = ded.Add(te.Rules.AdditionalStdDed65)
	}
	return ded
}

// Calculate computes the taxable SS portion and federal/state tax for a
// year. grossIncome includes ssIncome; the non-taxable part of the
// benefit is excluded from the federal base.
func (te *TaxEngine) Calculate(grossIncome, ssIncome decimal.Decimal, age int) TaxResult {
	otherIncome := grossIncome.Sub(ssIncome)
	combined := te.SSTax.CombinedIncome(otherIncome, ssIncome)
	taxableSS := te.SSTax.TaxableBenefits(ssIncome, combined)

	standardDed := te.StandardDeduction(age)

	federalBase := otherIncome.Add(taxableSS).Sub(standardDed)
	if federalBase.LessThan(decimal.Zero) {
		federalBase = decimal.Zero
	}

	var federalTax decimal.Decimal
	if te.FlatRate.GreaterThan(decimal.Zero) {
		federalTax = federalBase.Mul(te.FlatRate)
	} else {
		federalTax = te.bracketTax(federalBase)
	}

	stateBase := grossIncome.Sub(standardDed)
	if stateBase.LessThan(decimal.Zero) {
		stateBase = decimal.Zero
	}
	stateTax := stateBase.Mul(te.StateTax)

	return TaxResult{
		TaxableSocialSecurity: taxableSS,
		FederalTax:            federalTax,
		StateTax:              stateTax,
	}
}

// bracketTax applies the progressive brackets to already-deducted
// taxable income. Income within each band is taxed at that band's rate
// only.
func (te *TaxEngine) bracketTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var totalTax decimal.Decimal
	for _, bracket := range te.Rules.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxableIncome, bracket.Max).Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}

	return totalTax
}
