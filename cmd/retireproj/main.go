package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joybvictor/retirement-calculator/internal/calculation"
	"github.com/joybvictor/retirement-calculator/internal/config"
	"github.com/joybvictor/retirement-calculator/internal/output"
)

// stderrLogger implements calculation.Logger on top of stderr for
// --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...) }

func main() {
	var (
		inputFile  string
		format     string
		outputFile string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "retireproj",
		Short: "Deterministic year-by-year retirement income projections",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run the projection and scenario comparison from a plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			if verbose {
				engine.SetLogger(stderrLogger{})
			}

			comparison, err := engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			formatter, err := output.GetFormatterByName(format)
			if err != nil {
				return err
			}
			return output.WriteFormatted(formatter, comparison, outputFile)
		},
	}
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "plan YAML file (required)")
	calculateCmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, csv, csv-summary, json")
	calculateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	calculateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine progress to stderr")
	_ = calculateCmd.MarkFlagRequired("input")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Print a starter plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	rootCmd.AddCommand(calculateCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
