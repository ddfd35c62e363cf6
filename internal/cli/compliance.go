package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncomply/internal/config"
	"github.com/rshade/carboncomply/internal/engine"
	"github.com/rshade/carboncomply/internal/ingest"
	"github.com/rshade/carboncomply/internal/refdata"
	"github.com/rshade/carboncomply/internal/report"
)

func newComplianceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compliance",
		Short: "Analyze material compliance against substance regulations",
	}
	cmd.AddCommand(newComplianceAnalyzeCmd())
	return cmd
}

// complianceAnalyzeParams holds the parameters for the analyze command.
type complianceAnalyzeParams struct {
	materialsPath string
	role          string
	location      string
	markets       []string
	category      string
	regulations   []string
	output        string
}

// newComplianceAnalyzeCmd creates the "compliance analyze" subcommand.
//
// Registered flags:
//   - --materials: path to a material declaration file (CSV or Excel)
//   - --role: business role in the supply chain (e.g. Producer)
//   - --location: manufacturing location
//   - --market: repeatable target market
//   - --category: product category
//   - --regulation: repeatable explicit regulation name, bypassing
//     applicability resolution
//   - --output: output format, one of table, json, or ndjson
//
// Business-context flags default to the analysis section of the
// configuration file.
func newComplianceAnalyzeCmd() *cobra.Command {
	var params complianceAnalyzeParams
	analysisDefaults := config.GetGlobalConfig().Analysis

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze materials against the applicable regulatory framework",
		Long: `Analyze material declarations against substance limits. The applicable
regulations are derived from the business context (manufacturing location,
target markets, product category) unless overridden with --regulation; the
most restrictive limit wins when a substance appears in several regulations.`,
		Example: complianceAnalyzeExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runComplianceAnalyze(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.materialsPath, "materials", "",
		"Path to a material declaration file (CSV or Excel)")
	cmd.Flags().StringVar(&params.role, "role", analysisDefaults.Role,
		"Business role in the supply chain")
	cmd.Flags().StringVar(&params.location, "location", analysisDefaults.Location,
		"Manufacturing location")
	cmd.Flags().StringArrayVar(&params.markets, "market", analysisDefaults.TargetMarkets,
		"Target market; repeat for multiple markets")
	cmd.Flags().StringVar(&params.category, "category", analysisDefaults.Category,
		"Product category")
	cmd.Flags().StringArrayVar(&params.regulations, "regulation", []string{},
		"Explicit regulation name; repeat to set the framework directly")
	cmd.Flags().StringVar(&params.output, "output", outputTable,
		"Output format: table, json, or ndjson")

	return cmd
}

func runComplianceAnalyze(cmd *cobra.Command, params complianceAnalyzeParams) error {
	ctx := cmd.Context()

	format, err := resolveOutputFormat(params.output, cmd.Flags().Changed("output"))
	if err != nil {
		return err
	}

	dataset, err := refdata.Load()
	if err != nil {
		return fmt.Errorf("loading reference data: %w", err)
	}
	eng := engine.New(dataset)

	var materials []engine.MaterialRecord
	if params.materialsPath != "" {
		var issues []ingest.RowIssue
		materials, issues, err = ingest.LoadMaterialsFile(ctx, params.materialsPath)
		if err != nil {
			return fmt.Errorf("loading materials: %w", err)
		}
		printRowIssues(cmd, issues)
	}

	regulations := params.regulations
	if len(regulations) == 0 {
		regulations = eng.ApplicableRegulations(params.role, params.location, params.markets, params.category)
	}

	result, err := eng.AnalyzeCompliance(ctx, materials, regulations)
	if err != nil {
		return fmt.Errorf("analyzing compliance: %w", err)
	}

	if result.DemonstrationData && format != outputTable {
		// The table renderer prints its own banner; machine-readable
		// formats carry the flag in the document, but an operator piping
		// output still deserves a visible warning.
		cmd.PrintErrln("Warning: no valid material rows found; result is demonstration data")
	}

	switch format {
	case outputJSON:
		return report.RenderComplianceJSON(cmd.OutOrStdout(), result)
	case outputNDJSON:
		return report.RenderComplianceNDJSON(cmd.OutOrStdout(), result)
	default:
		return report.RenderComplianceTable(cmd.OutOrStdout(), result)
	}
}

const complianceAnalyzeExample = `  # Derive the framework from the business context
  carboncomply compliance analyze --materials bom.csv --location Germany \
    --market "United States" --category "Computing & Telecommunications"

  # Pin the framework explicitly
  carboncomply compliance analyze --materials bom.csv \
    --regulation "RoHS Directive" --regulation CPSIA

  # JSON output for downstream processing
  carboncomply compliance analyze --materials bom.xlsx --location China \
    --market "European Union" --output json`
