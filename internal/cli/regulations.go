package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncomply/internal/engine"
	"github.com/rshade/carboncomply/internal/refdata"
	"github.com/rshade/carboncomply/internal/report"
	"github.com/rshade/carboncomply/internal/tui"
)

// regionDisplayOrder fixes the region ordering for statistics output.
var regionDisplayOrder = []string{ //nolint:gochecknoglobals // Static display order
	"European Union", "Asia-Pacific", "Other Regions",
}

func newRegulationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regulations",
		Short: "Query the regulation database",
	}
	cmd.AddCommand(newRegulationsListCmd(), newRegulationsApplicableCmd(), newRegulationsBrowseCmd())
	return cmd
}

// regulationsListParams holds the parameters for the list command.
type regulationsListParams struct {
	region       string
	status       string
	verifiedOnly bool
	stats        bool
	output       string
}

// newRegulationsListCmd creates the "regulations list" subcommand.
func newRegulationsListCmd() *cobra.Command {
	var params regulationsListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List regulations, optionally filtered by region and status",
		Example: `  # The whole database
  carboncomply regulations list

  # Only verified EU entries
  carboncomply regulations list --region "European Union" --verified-only

  # Per-region statistics
  carboncomply regulations list --stats`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRegulationsList(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.region, "region", "",
		"Filter by region (European Union, Asia-Pacific, Other Regions)")
	cmd.Flags().StringVar(&params.status, "status", "",
		"Filter by status (Active, Upcoming, Under Review)")
	cmd.Flags().BoolVar(&params.verifiedOnly, "verified-only", false,
		"Show only entries verified against their official source")
	cmd.Flags().BoolVar(&params.stats, "stats", false,
		"Show per-region statistics instead of the entry list")
	cmd.Flags().StringVar(&params.output, "output", outputTable,
		"Output format: table or json")

	return cmd
}

func runRegulationsList(cmd *cobra.Command, params regulationsListParams) error {
	format, err := resolveOutputFormat(params.output, cmd.Flags().Changed("output"))
	if err != nil {
		return err
	}

	dataset, err := refdata.Load()
	if err != nil {
		return fmt.Errorf("loading reference data: %w", err)
	}

	if params.stats {
		return report.RenderRegionalStats(cmd.OutOrStdout(), dataset.RegionalStats(), regionDisplayOrder)
	}

	regulations := dataset.RegulationsByRegion(params.region)
	if params.status != "" {
		filtered := regulations[:0]
		for _, reg := range regulations {
			if reg.Status == params.status {
				filtered = append(filtered, reg)
			}
		}
		regulations = filtered
	}
	if params.verifiedOnly {
		filtered := regulations[:0]
		for _, reg := range regulations {
			if reg.Verified() {
				filtered = append(filtered, reg)
			}
		}
		regulations = filtered
	}

	if format == outputJSON {
		return report.RenderRegulationsJSON(cmd.OutOrStdout(), regulations)
	}
	return report.RenderRegulationsTable(cmd.OutOrStdout(), regulations)
}

// regulationsApplicableParams holds the parameters for the applicable
// command.
type regulationsApplicableParams struct {
	role     string
	location string
	markets  []string
	category string
}

// newRegulationsApplicableCmd creates the "regulations applicable"
// subcommand.
func newRegulationsApplicableCmd() *cobra.Command {
	var params regulationsApplicableParams

	cmd := &cobra.Command{
		Use:   "applicable",
		Short: "Resolve which regulations apply to a business context",
		Example: `  # EU manufacturing, US market entry
  carboncomply regulations applicable --location Germany --market "United States"

  # Category-specific additions
  carboncomply regulations applicable --location China --market India \
    --category "Medical Devices"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRegulationsApplicable(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.role, "role", "", "Business role in the supply chain")
	cmd.Flags().StringVar(&params.location, "location", "", "Manufacturing location")
	cmd.Flags().StringArrayVar(&params.markets, "market", []string{},
		"Target market; repeat for multiple markets")
	cmd.Flags().StringVar(&params.category, "category", "", "Product category")

	return cmd
}

func runRegulationsApplicable(cmd *cobra.Command, params regulationsApplicableParams) error {
	dataset, err := refdata.Load()
	if err != nil {
		return fmt.Errorf("loading reference data: %w", err)
	}

	names := engine.New(dataset).ApplicableRegulations(
		params.role, params.location, params.markets, params.category)
	for _, name := range names {
		cmd.Println(name)
	}
	return nil
}

// newRegulationsBrowseCmd creates the "regulations browse" subcommand.
func newRegulationsBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the regulation database interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			dataset, err := refdata.Load()
			if err != nil {
				return fmt.Errorf("loading reference data: %w", err)
			}
			return tui.RunBrowser(dataset.Regulations)
		},
	}
}
