package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncount/internal/factors"
)

// Version is the CLI version, overridden at build time with
// -ldflags "-X github.com/rshade/carboncount/internal/cli.Version=...".
//
//nolint:gochecknoglobals // Set by the linker.
var Version = "dev"

// NewVersionCmd creates the "version" subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the carboncount version and factor dataset version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := factors.Load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "carboncount %s (factor dataset %s)\n",
				Version, registry.Version())
			return nil
		},
	}
}
