package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

// CSVSummarizer writes one row per scenario with the headline metrics.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "summary-csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"scenario", "retirement_age", "ss_claim_age", "balance_at_retirement",
		"first_year_net_income", "final_year_net_income", "final_year_net_monthly",
		"total_lifetime_net_income", "depletion_age",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		row := []string{
			sc.Name,
			strconv.Itoa(sc.RetirementAge),
			strconv.Itoa(sc.SSClaimAge),
			sc.BalanceAtRetirement.StringFixed(2),
			sc.FirstYearNetIncome.StringFixed(2),
			sc.FinalYearNetIncome.StringFixed(2),
			sc.FinalYearNetMonthly.StringFixed(2),
			sc.TotalLifetimeNet.StringFixed(2),
			strconv.Itoa(sc.DepletionAge),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
