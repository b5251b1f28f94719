package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncount/internal/calc"
	"github.com/rshade/carboncount/internal/equivalency"
	"github.com/rshade/carboncount/internal/factors"
	"github.com/rshade/carboncount/internal/tips"
)

// estimateParams holds the flag values for the estimate command.
type estimateParams struct {
	inputPath   string
	setPairs    []string
	factorsPath string
	output      string
	showTips    bool
	showEquiv   bool
}

// NewEstimateCmd creates the "estimate" subcommand.
//
// Registered flags:
//   - --input: path to a JSON/YAML file mapping activity keys to quantities
//   - --set: repeatable key=quantity pair, overrides file entries
//   - --factors: path to a custom factor dataset (JSON or YAML)
//   - --output: output format, one of table, json, or ndjson
//   - --tips: include carbon-reduction tips
//   - --equivalencies: include EPA real-world equivalencies
func NewEstimateCmd() *cobra.Command {
	var params estimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Compute a carbon footprint estimate from activity inputs",
		Long: `Compute the CO2-equivalent emissions for a set of activity inputs.

Activities are supplied as a JSON or YAML file mapping activity keys to
quantities, or inline with repeatable --set flags. Run
"carboncount categories" to list the available activity keys.`,
		Example: estimateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.inputPath, "input", "",
		"Path to activity input file (JSON or YAML map of key to quantity)")
	cmd.Flags().StringArrayVar(&params.setPairs, "set", nil,
		"Activity quantity as key=value (repeatable, overrides --input entries)")
	cmd.Flags().StringVar(&params.factorsPath, "factors", "",
		"Path to a custom emission factor dataset (JSON or YAML)")
	cmd.Flags().StringVar(&params.output, "output", outputTable,
		"Output format: table, json, or ndjson")
	cmd.Flags().BoolVar(&params.showTips, "tips", false,
		"Include personalized carbon-reduction tips")
	cmd.Flags().BoolVar(&params.showEquiv, "equivalencies", false,
		"Include EPA real-world equivalencies")

	return cmd
}

const estimateExample = `  # Inline activities
  carboncount estimate --set gasoline_car=12.5 --set lighting=6

  # From a daily log file
  carboncount estimate --input today.json --tips --equivalencies

  # Custom factor table, machine-readable output
  carboncount estimate --input today.yaml --factors regional.yaml --output json`

// runEstimate loads the factor registry, assembles the activity input,
// computes the estimate, and renders it in the requested format.
func runEstimate(cmd *cobra.Command, params estimateParams) error {
	if err := validateOutputFormat(params.output); err != nil {
		return err
	}

	registry, err := loadRegistry(params.factorsPath)
	if err != nil {
		return err
	}

	input, err := readActivityInput(params.inputPath, params.setPairs)
	if err != nil {
		return err
	}

	calculator := calc.NewCalculator(registry, logger)
	result, err := calculator.Compute(input)
	if err != nil {
		// User-input errors surface as-is; the process never crashes on
		// an invalid submission.
		return fmt.Errorf("invalid activity input: %w", err)
	}

	report := &report{
		DatasetVersion: registry.Version(),
		Result:         result,
	}

	if params.showEquiv {
		output, equivErr := equivalency.Calculate(result.TotalKgCO2e)
		if equivErr != nil {
			logger.Warn().Err(equivErr).Msg("equivalency calculation failed")
		} else if !output.IsEmpty {
			report.Equivalencies = &output
		}
	}

	if params.showTips {
		report.Tips = tips.Generate(result)
	}

	return renderReport(cmd.OutOrStdout(), report, params.output)
}

// loadRegistry returns the embedded factor registry, or one loaded from a
// user-supplied dataset file when path is non-empty.
func loadRegistry(path string) (*factors.Registry, error) {
	if path == "" {
		return factors.Load()
	}
	return factors.LoadFile(path, logger)
}
