package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/joybvictor/retirement-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte
// slice. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVDetailedExporter{},
	CSVSummarizer{},
	JSONFormatter{},
}

// NormalizeFormatName maps user-facing aliases to formatter names.
func NormalizeFormatName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "console", "text", "":
		return "console"
	case "csv", "csv-detailed", "detailed-csv":
		return "detailed-csv"
	case "csv-summary", "summary-csv":
		return "summary-csv"
	case "json":
		return "json"
	default:
		return strings.ToLower(strings.TrimSpace(name))
	}
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) (Formatter, error) {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}

// WriteFormatted runs a formatter and writes its output to the given
// file, or stdout when filename is empty.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, filename string) error {
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("formatting with %s failed: %w", f.Name(), err)
	}
	if filename == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
