// Package cli implements the carboncount command-line interface: the
// data-entry and display layer sitting in front of the pure emissions
// calculator.
package cli

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the process-wide structured logger, configured by the root
// command before any subcommand runs.
//
//nolint:gochecknoglobals // Intentionally global for application-wide structured logging.
var logger = zerolog.Nop()

// NewRootCmd creates the carboncount root command.
//
// Persistent flags:
//   - --log-level: zerolog level (trace, debug, info, warn, error; default from
//     CARBONCOUNT_LOG_LEVEL, falling back to "warn")
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "carboncount",
		Short: "Estimate your daily carbon footprint from activity inputs",
		Long: `carboncount converts everyday activity quantities (miles driven,
hours of home energy use, meals eaten) into an estimated carbon footprint
in kg CO2-equivalent, using a published per-activity emission factor table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// Each invocation carries a trace ID for log correlation.
			logger = newLogger(logLevel).With().
				Str("trace_id", uuid.New().String()).
				Logger()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel(),
		"Log level: trace, debug, info, warn, or error")

	cmd.AddCommand(NewEstimateCmd())
	cmd.AddCommand(NewCategoriesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and returns its error, logging failures.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		logger.Debug().Err(err).Msg("command failed")
		return err
	}
	return nil
}
