package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/rshade/carboncomply/internal/engine"
)

// RenderComplianceTable writes the compliance report as an ASCII table with
// per-material rows, aggregate statistics, and the action list.
func RenderComplianceTable(w io.Writer, report *engine.ComplianceReport) error {
	if report.DemonstrationData {
		if _, err := fmt.Fprintf(w, "WARNING: no valid material rows found; showing demonstration data\n\n"); err != nil {
			return fmt.Errorf("writing demonstration warning: %w", err)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "COMPONENT\tSUBSTANCE\tCAS\tCONC.\tLIMIT\tSTATUS\tRISK\tNOTES\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---------\t---------\t---\t-----\t-----\t------\t----\t-----\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, m := range report.Materials {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Component, m.Substance, m.CASNumber,
			FormatPPM(m.Concentration), FormatPPM(m.LegalLimit),
			m.Status, m.RiskLevel, m.Notes,
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\t\t\t\t\t\t\t\n"); err != nil {
		return fmt.Errorf("writing spacer: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "SUMMARY\t%d components\t%d compliant\t%d non-compliant\t%s\t%s\t\t\n",
		report.Stats.TotalComponents,
		report.Stats.CompliantComponents,
		report.Stats.NonCompliantComponents,
		FormatPercent(report.Stats.ComplianceRate),
		report.Stats.OverallStatus,
	); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", report.FrameworkMessage); err != nil {
		return fmt.Errorf("writing framework message: %w", err)
	}

	if len(report.RegionalBreakdown) > 0 {
		if _, err := fmt.Fprintf(w, "\nRegulation coverage by region:\n"); err != nil {
			return fmt.Errorf("writing regional header: %w", err)
		}
		regions := make([]string, 0, len(report.RegionalBreakdown))
		for region := range report.RegionalBreakdown {
			regions = append(regions, region)
		}
		sort.Strings(regions)
		for _, region := range regions {
			counts := report.RegionalBreakdown[region]
			if _, err := fmt.Fprintf(w, "  %s: %d regulations (%d active, %d verified)\n",
				region, counts.Count, counts.Active, counts.Verified); err != nil {
				return fmt.Errorf("writing regional row: %w", err)
			}
		}
	}

	if len(report.Recommendations) > 0 {
		if _, err := fmt.Fprintf(w, "\nRecommended actions:\n"); err != nil {
			return fmt.Errorf("writing actions header: %w", err)
		}
		for _, rec := range report.Recommendations {
			if _, err := fmt.Fprintf(w, "  - %s\n", rec); err != nil {
				return fmt.Errorf("writing action: %w", err)
			}
		}
	}
	return nil
}

// RenderComplianceJSON writes the compliance report as one indented JSON
// document.
func RenderComplianceJSON(w io.Writer, report *engine.ComplianceReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderComplianceNDJSON writes one JSON line per material analysis.
func RenderComplianceNDJSON(w io.Writer, report *engine.ComplianceReport) error {
	for _, m := range report.Materials {
		data, marshalErr := json.Marshal(m)
		if marshalErr != nil {
			return fmt.Errorf("marshaling material: %w", marshalErr)
		}
		if _, writeErr := fmt.Fprintf(w, "%s\n", data); writeErr != nil {
			return fmt.Errorf("writing NDJSON line: %w", writeErr)
		}
	}
	return nil
}
