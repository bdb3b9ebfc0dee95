package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

// CSVDetailedExporter writes one row per projection year per scenario,
// with named columns matching the per-year record. This is the flat
// tabular export contract.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"scenario", "age", "year_index",
		"savings_balance_start", "savings_withdrawal", "savings_balance_end",
		"social_security_income", "pension_income", "rmd_required_amount",
		"gross_income", "taxable_social_security", "federal_tax", "state_tax",
		"medicare_part_b", "medicare_part_d", "irmaa_surcharge",
		"net_annual_income", "net_monthly_income", "depleted",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, yr := range sc.Projection {
			row := []string{
				sc.Name,
				strconv.Itoa(yr.Age),
				strconv.Itoa(yr.YearIndex),
				yr.BalanceStart.StringFixed(2),
				yr.Withdrawal.StringFixed(2),
				yr.BalanceEnd.StringFixed(2),
				yr.SocialSecurityIncome.StringFixed(2),
				yr.PensionIncome.StringFixed(2),
				yr.RMDRequired.StringFixed(2),
				yr.GrossIncome.StringFixed(2),
				yr.TaxableSocialSecurity.StringFixed(2),
				yr.FederalTax.StringFixed(2),
				yr.StateTax.StringFixed(2),
				yr.MedicarePartB.StringFixed(2),
				yr.MedicarePartD.StringFixed(2),
				yr.IRMAASurcharge.StringFixed(2),
				yr.NetAnnualIncome.StringFixed(2),
				yr.NetMonthlyIncome.StringFixed(2),
				strconv.FormatBool(yr.Depleted),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
