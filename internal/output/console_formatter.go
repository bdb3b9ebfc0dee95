package output

import (
	"bytes"
	"fmt"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console summary of the scenario
// comparison plus the primary scenario's year-by-year table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT SCENARIO COMPARISON")
	fmt.Fprintln(&buf, "==============================")
	for _, a := range results.Assumptions {
		fmt.Fprintf(&buf, "  %s\n", a)
	}
	fmt.Fprintln(&buf)

	for _, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "%s (retire %d, claim SS %d)\n", sc.Name, sc.RetirementAge, sc.SSClaimAge)
		fmt.Fprintf(&buf, "  Balance at retirement:  %s\n", FormatCurrency(sc.BalanceAtRetirement))
		fmt.Fprintf(&buf, "  First-year net income:  %s\n", FormatCurrency(sc.FirstYearNetIncome))
		fmt.Fprintf(&buf, "  Final-year net monthly: %s\n", FormatCurrency(sc.FinalYearNetMonthly))
		fmt.Fprintf(&buf, "  Lifetime net income:    %s\n", FormatCurrency(sc.TotalLifetimeNet))
		if sc.IsDepleted() {
			fmt.Fprintf(&buf, "  Savings depleted at age %d\n", sc.DepletionAge)
		} else {
			fmt.Fprintln(&buf, "  Savings last the full horizon")
		}
		fmt.Fprintln(&buf)
	}

	if len(results.Scenarios) > 0 {
		primary := results.Scenarios[0]
		fmt.Fprintf(&buf, "YEAR-BY-YEAR: %s\n", primary.Name)
		fmt.Fprintf(&buf, "%-4s %-14s %-12s %-12s %-12s %-12s %-12s\n",
			"Age", "BalanceStart", "Withdrawal", "SocSec", "Pension", "Taxes", "NetAnnual")
		for _, yr := range primary.Projection {
			depleted := ""
			if yr.Depleted {
				depleted = " *depleted*"
			}
			fmt.Fprintf(&buf, "%-4d %-14s %-12s %-12s %-12s %-12s %-12s%s\n",
				yr.Age,
				FormatCurrency(yr.BalanceStart),
				FormatCurrency(yr.Withdrawal),
				FormatCurrency(yr.SocialSecurityIncome),
				FormatCurrency(yr.PensionIncome),
				FormatCurrency(yr.FederalTax.Add(yr.StateTax)),
				FormatCurrency(yr.NetAnnualIncome),
				depleted,
			)
		}
	}

	return buf.Bytes(), nil
}
