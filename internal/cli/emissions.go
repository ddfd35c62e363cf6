package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncomply/internal/engine"
	"github.com/rshade/carboncomply/internal/ingest"
	"github.com/rshade/carboncomply/internal/refdata"
	"github.com/rshade/carboncomply/internal/report"
)

func newEmissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emissions",
		Short: "Calculate CO2 emissions from activity data",
	}
	cmd.AddCommand(newEmissionsCalculateCmd())
	return cmd
}

// emissionsCalculateParams holds the parameters for the calculate command.
type emissionsCalculateParams struct {
	inputs []string
	output string
}

// newEmissionsCalculateCmd creates the "emissions calculate" subcommand.
//
// Registered flags:
//   - --input: repeatable path to an activity data file (CSV or Excel)
//   - --output: output format, one of table, json, or ndjson
func newEmissionsCalculateCmd() *cobra.Command {
	var params emissionsCalculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate emissions from one or more activity data files",
		Long: `Calculate CO2 emissions by resolving each activity row against the
embedded emission-factor table and aggregating by activity, category, month,
and GHG Protocol scope.`,
		Example: emissionsCalculateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEmissionsCalculate(cmd, params)
		},
	}

	cmd.Flags().StringArrayVar(&params.inputs, "input", []string{},
		"Path to an activity data file (CSV or Excel); repeat for multiple files")
	cmd.Flags().StringVar(&params.output, "output", outputTable,
		"Output format: table, json, or ndjson")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runEmissionsCalculate(cmd *cobra.Command, params emissionsCalculateParams) error {
	ctx := cmd.Context()

	format, err := resolveOutputFormat(params.output, cmd.Flags().Changed("output"))
	if err != nil {
		return err
	}

	dataset, err := refdata.Load()
	if err != nil {
		return fmt.Errorf("loading reference data: %w", err)
	}

	rows, issues, err := ingest.LoadActivityFiles(ctx, params.inputs)
	if err != nil {
		return fmt.Errorf("loading activity data: %w", err)
	}
	printRowIssues(cmd, issues)

	result, err := engine.New(dataset).CalculateEmissions(ctx, rows)
	if err != nil {
		return fmt.Errorf("calculating emissions: %w", err)
	}

	switch format {
	case outputJSON:
		return report.RenderEmissionsJSON(cmd.OutOrStdout(), result)
	case outputNDJSON:
		return report.RenderEmissionsNDJSON(cmd.OutOrStdout(), result)
	default:
		return report.RenderEmissionsTable(cmd.OutOrStdout(), result)
	}
}

// printRowIssues surfaces ingest warnings on stderr, leaving stdout for the
// rendered result.
func printRowIssues(cmd *cobra.Command, issues []ingest.RowIssue) {
	for _, issue := range issues {
		cmd.PrintErrf("Warning: %s\n", issue)
	}
}

const emissionsCalculateExample = `  # Single CSV file, table output
  carboncomply emissions calculate --input activity.csv

  # Several files merged in order, JSON output
  carboncomply emissions calculate --input q1.csv --input q2.xlsx --output json

  # One JSON line per activity row, for downstream pipelines
  carboncomply emissions calculate --input activity.csv --output ndjson`
