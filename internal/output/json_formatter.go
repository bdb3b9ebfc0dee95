package output

import (
	"encoding/json"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

// JSONFormatter dumps the full comparison, projections included.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
