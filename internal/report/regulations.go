package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/carboncomply/internal/refdata"
)

// regulationNameWidth truncates long regulation names in table output.
const regulationNameWidth = 44

// RenderRegulationsTable writes the regulation list as an ASCII table.
func RenderRegulationsTable(w io.Writer, regulations []refdata.Regulation) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "ID\tNAME\tREGION\tCOUNTRY\tSTATUS\tVERIFICATION\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--\t----\t------\t-------\t------\t------------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, reg := range regulations {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			reg.ID, truncateName(reg.Name, regulationNameWidth),
			reg.Region, reg.Country, reg.Status, reg.VerificationStatus,
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if _, err := fmt.Fprintf(tw, "\t\t\t\t\t\n"); err != nil {
		return fmt.Errorf("writing spacer: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "TOTAL\t%d regulations\t\t\t\t\n", len(regulations)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

// RenderRegulationsJSON writes the regulation list as one indented JSON
// document.
func RenderRegulationsJSON(w io.Writer, regulations []refdata.Regulation) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(regulations); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderRegionalStats writes the per-region regulation statistics.
func RenderRegionalStats(w io.Writer, stats map[string]refdata.RegionStats, order []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "REGION\tTOTAL\tACTIVE\tVERIFIED\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, region := range order {
		counts, ok := stats[region]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n",
			region, counts.Count, counts.Active, counts.Verified); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

func truncateName(name string, maxLen int) string {
	if len(name) <= maxLen {
		return name
	}
	return name[:maxLen-3] + "..."
}
