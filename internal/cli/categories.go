package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// NewCategoriesCmd creates the "categories" subcommand, which prints the
// emission factor table so users can discover activity keys.
func NewCategoriesCmd() *cobra.Command {
	var (
		output      string
		factorsPath string
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the activity categories and their emission factors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutputFormat(output); err != nil {
				return err
			}
			if output == outputNDJSON {
				return fmt.Errorf("ndjson output is not supported for categories")
			}

			registry, err := loadRegistry(factorsPath)
			if err != nil {
				return err
			}

			if output == outputJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(registry.Categories())
			}

			w := cmd.OutOrStdout()
			for _, category := range registry.Categories() {
				fmt.Fprintln(w, titleStyle.Render(category.Name))
				fmt.Fprintln(w, subtleStyle.Render(category.Unit))
				for _, factor := range category.Activities {
					fmt.Fprintf(w, "  %-24s %-28s %12g\n",
						factor.Key, factor.Label, factor.KgCO2ePerUnit)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", outputTable, "Output format: table or json")
	cmd.Flags().StringVar(&factorsPath, "factors", "",
		"Path to a custom emission factor dataset (JSON or YAML)")

	return cmd
}
