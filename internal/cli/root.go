// Package cli wires the carboncomply commands: emissions calculation,
// compliance analysis, regulation queries, and configuration management.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carboncomply CLI. It
// wires up logging, tracing, and the subcommands (emissions, compliance,
// regulations, config).
func NewRootCmd(ver string) *cobra.Command {
	var logResult *loggingResult

	cmd := &cobra.Command{
		Use:     "carboncomply",
		Short:   "Emissions and substance compliance analysis",
		Long:    "carboncomply: calculate CO2 emissions from activity data and analyze material compliance against international substance regulations",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newEmissionsCmd(), newComplianceCmd(), newRegulationsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Calculate emissions from activity data
  carboncomply emissions calculate --input activity.csv

  # Combine several input files, machine-readable output
  carboncomply emissions calculate --input q1.csv --input q2.xlsx --output json

  # Analyze material compliance for a business context
  carboncomply compliance analyze --materials bom.csv --location Germany --market "United States" --category "Computing & Telecommunications"

  # List the regulation database
  carboncomply regulations list --region "European Union"

  # Which regulations apply to a business context
  carboncomply regulations applicable --location China --market "European Union"

  # Browse regulations interactively
  carboncomply regulations browse

  # Initialize configuration
  carboncomply config init`
