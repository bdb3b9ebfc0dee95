package calculation

import (
	"github.com/shopspring/decimal"
)

// MedicareResult holds the annual Medicare costs for one projection
// year. OutOfPocket is informational and not part of the net-income
// deduction.
type MedicareResult struct {
	PartB          decimal.Decimal
	PartD          decimal.Decimal
	IRMAASurcharge decimal.Decimal
	OutOfPocket    decimal.Decimal
}

// MedicareEngine computes Part B and Part D premiums including the
// IRMAA surcharge tier. Inactive below age 65.
type MedicareEngine struct {
	Rules RuleTables
}

// NewMedicareEngine creates a Medicare engine from the rule tables.
func NewMedicareEngine(rules RuleTables) *MedicareEngine {
	return &MedicareEngine{Rules: rules}
}

// Calculate returns the annual Medicare costs for the given age and
// MAGI. Tiers are not cumulative: the highest threshold the income
// exceeds selects the surcharge; below the lowest threshold only the
// base premiums apply.
func (me *MedicareEngine) Calculate(age int, magi decimal.Decimal) MedicareResult {
	if age < 65 {
		return MedicareResult{
			PartB:          decimal.Zero,
			PartD:          decimal.Zero,
			IRMAASurcharge: decimal.Zero,
			OutOfPocket:    decimal.Zero,
		}
	}

	twelve := decimal.NewFromInt(12)
	partB := me.Rules.PartBBaseMonthly.Mul(twelve)
	partD := me.Rules.PartDBaseMonthly.Mul(twelve)

	var surchargeB, surchargeD decimal.Decimal
	for _, tier := range me.Rules.IRMAATiers {
		if magi.GreaterThan(tier.IncomeThreshold) {
			surchargeB = tier.PartBSurcharge
			surchargeD = tier.PartDSurcharge
		} else {
			break // thresholds ascend; first one not exceeded ends the scan
		}
	}

	return MedicareResult{
		PartB:          partB,
		PartD:          partD,
		IRMAASurcharge: surchargeB.Add(surchargeD).Mul(twelve),
		OutOfPocket:    me.Rules.OutOfPocketAnnual,
	}
}
