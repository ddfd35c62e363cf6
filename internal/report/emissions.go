package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/carboncomply/internal/engine"
)

// scopeLabels give the table a readable name per GHG Protocol scope.
var scopeLabels = map[engine.Scope]string{ //nolint:gochecknoglobals // Static lookup table
	engine.Scope1: "Scope 1 (direct)",
	engine.Scope2: "Scope 2 (purchased energy)",
	engine.Scope3: "Scope 3 (value chain)",
}

// RenderEmissionsTable writes the emissions result as an ASCII report:
// per-row detail, scope breakdown, monthly trend, and summary.
func RenderEmissionsTable(w io.Writer, result *engine.EmissionsResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "ACTIVITY\tCATEGORY\tAMOUNT\tUNIT\tFACTOR\tCO2\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t--------\t------\t----\t------\t---\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, row := range result.Detailed {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%g\t%s\t%g\t%s\n",
			row.ActivityType, row.Category, row.Amount, row.Unit,
			row.EmissionFactor, FormatKg(row.CO2Kg),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\t\t\t\t\t\n"); err != nil {
		return fmt.Errorf("writing spacer: %w", err)
	}
	for _, scope := range engine.Scopes() {
		breakdown := result.ByScope[scope]
		if _, err := fmt.Fprintf(tw, "%s\t%s\t\t\t\t%d activities\n",
			scopeLabels[scope], FormatKg(breakdown.TotalKg), len(breakdown.Activities),
		); err != nil {
			return fmt.Errorf("writing scope row: %w", err)
		}
	}

	if result.Monthly.Len() > 0 {
		if _, err := fmt.Fprintf(tw, "\t\t\t\t\t\n"); err != nil {
			return fmt.Errorf("writing spacer: %w", err)
		}
		for _, month := range result.Monthly.Keys() {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t\t\t\t\n",
				month, FormatKg(result.Monthly.Get(month)),
			); err != nil {
				return fmt.Errorf("writing monthly row: %w", err)
			}
		}
	}

	if _, err := fmt.Fprintf(tw, "\t\t\t\t\t\n"); err != nil {
		return fmt.Errorf("writing spacer: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "TOTAL\t%s\t(%s)\t%d activities\t%d types\t\n",
		FormatKg(result.Summary.TotalCO2Kg),
		FormatTonnes(result.Summary.TotalCO2Tonnes),
		result.Summary.TotalActivities,
		result.Summary.UniqueActivityTypes,
	); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if result.UnmatchedRows > 0 {
		if _, err := fmt.Fprintf(tw, "\t%d rows had no matching emission factor\t\t\t\t\n",
			result.UnmatchedRows); err != nil {
			return fmt.Errorf("writing unmatched note: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	if len(result.Recommendations) > 0 {
		if _, err := fmt.Fprintf(w, "\nRecommendations:\n"); err != nil {
			return fmt.Errorf("writing recommendations header: %w", err)
		}
		for _, rec := range result.Recommendations {
			if _, err := fmt.Fprintf(w, "  - %s\n", rec); err != nil {
				return fmt.Errorf("writing recommendation: %w", err)
			}
		}
	}
	return nil
}

// RenderEmissionsJSON writes the emissions result as one indented JSON
// document.
func RenderEmissionsJSON(w io.Writer, result *engine.EmissionsResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderEmissionsNDJSON writes one JSON line per detailed emission row, with
// no wrapper or summary.
func RenderEmissionsNDJSON(w io.Writer, result *engine.EmissionsResult) error {
	for _, row := range result.Detailed {
		data, marshalErr := json.Marshal(row)
		if marshalErr != nil {
			return fmt.Errorf("marshaling row: %w", marshalErr)
		}
		if _, writeErr := fmt.Fprintf(w, "%s\n", data); writeErr != nil {
			return fmt.Errorf("writing NDJSON line: %w", writeErr)
		}
	}
	return nil
}
