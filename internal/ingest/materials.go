package ingest

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/rshade/carboncomply/internal/engine"
	"github.com/rshade/carboncomply/internal/logging"
)

// materialHeaderAliases maps normalized column headers to canonical material
// fields. The long forms are the headers produced by supplier declaration
// templates; the short forms cover plain exports.
var materialHeaderAliases = map[string]string{ //nolint:gochecknoglobals // Static lookup table
	"material/component_name": "component",
	"material_name":           "component",
	"component":               "component",
	"component_name":          "component",
	"substance_data":          "substance",
	"substance":               "substance",
	"substance_name":          "substance",
	"concentration_values":    "concentration",
	"concentration":           "concentration",
	"concentration_ppm":       "concentration",
	"supplier_information":    "supplier",
	"supplier":                "supplier",
	"supplier_name":           "supplier",
}

var materialRequiredColumns = []string{ //nolint:gochecknoglobals // Static lookup table
	"component", "substance", "concentration",
}

// numericToken extracts the first numeric token from free-text
// concentration values like "850 ppm" or "0.5% (5000 ppm)".
var numericToken = regexp.MustCompile(`\d+(?:\.\d+)?`) //nolint:gochecknoglobals // Compiled once

// ParseMaterialsCSV parses material declaration rows from CSV input.
//
// Declaration files carry annotation rows; rows whose component is blank or
// contains the literal "Note:" are skipped without comment. Rows missing
// substance or concentration data are skipped with a RowIssue. A
// concentration cell without any numeric token parses as 0 ppm and is
// flagged. An empty supplier cell becomes "Unknown".
func ParseMaterialsCSV(ctx context.Context, r io.Reader, source string) ([]engine.MaterialRecord, []RowIssue, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return parseMaterialRows(ctx, source, rows)
}

func parseMaterialRows(ctx context.Context, source string, rows [][]string) ([]engine.MaterialRecord, []RowIssue, error) {
	log := logging.FromContext(ctx)

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", source, ErrNoRows)
	}
	cols, err := indexColumns(rows[0], materialHeaderAliases, materialRequiredColumns)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", source, err)
	}

	var (
		records []engine.MaterialRecord
		issues  []RowIssue
	)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blankRow(row) {
			continue
		}

		component := cols.cell(row, "component")
		if component == "" || strings.Contains(component, "Note:") {
			continue
		}

		substance := cols.cell(row, "substance")
		rawConcentration := cols.cell(row, "concentration")
		if substance == "" || rawConcentration == "" {
			issues = append(issues, RowIssue{
				Source: source, Row: rowNum,
				Message: "missing substance or concentration, row skipped",
			})
			continue
		}

		concentration := 0.0
		if token := numericToken.FindString(rawConcentration); token != "" {
			// The token is the regexp's own match, so ParseFloat cannot
			// fail on it.
			concentration = mustParseFloat(token)
		} else {
			issues = append(issues, RowIssue{
				Source: source, Row: rowNum, Field: "concentration",
				Message: fmt.Sprintf("no numeric value in %q, treated as 0 ppm", rawConcentration),
			})
		}

		supplier := cols.cell(row, "supplier")
		if supplier == "" {
			supplier = "Unknown"
		}

		records = append(records, engine.MaterialRecord{
			Component:        component,
			Substance:        substance,
			ConcentrationPPM: concentration,
			Supplier:         supplier,
		})
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "parse_materials").
		Str("source", source).
		Int("rows", len(records)).
		Int("issues", len(issues)).
		Msg("material rows parsed")

	return records, issues, nil
}

func mustParseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
