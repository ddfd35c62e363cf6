package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/rshade/carboncomply/internal/engine"
	"github.com/rshade/carboncomply/internal/logging"
)

// activityHeaderAliases maps normalized column headers to canonical activity
// fields.
var activityHeaderAliases = map[string]string{ //nolint:gochecknoglobals // Static lookup table
	"activity_type": "activity_type",
	"activity":      "activity_type",
	"category":      "category",
	"subcategory":   "category",
	"amount":        "amount",
	"quantity":      "amount",
	"value":         "amount",
	"unit":          "unit",
	"units":         "unit",
	"date":          "date",
	"period":        "date",
}

var activityRequiredColumns = []string{ //nolint:gochecknoglobals // Static lookup table
	"activity_type", "category", "amount", "unit",
}

// dateLayouts are tried in order when parsing the optional date column.
var dateLayouts = []string{ //nolint:gochecknoglobals // Static lookup table
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"Jan 2, 2006",
}

// ParseActivityCSV parses activity rows from CSV input. The source name is
// used in row issues and error messages only.
//
// A malformed or negative amount invalidates the whole input set and returns
// an error wrapping ErrInvalidRow. Zero amounts and unparseable dates are
// kept, each annotated with a RowIssue; a row whose date fails to parse
// keeps the raw text so the calculator can exclude it from monthly
// aggregation without losing it from the totals.
func ParseActivityCSV(ctx context.Context, r io.Reader, source string) ([]engine.ActivityRecord, []RowIssue, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return parseActivityRows(ctx, source, rows)
}

func parseActivityRows(ctx context.Context, source string, rows [][]string) ([]engine.ActivityRecord, []RowIssue, error) {
	log := logging.FromContext(ctx)

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", source, ErrNoRows)
	}
	cols, err := indexColumns(rows[0], activityHeaderAliases, activityRequiredColumns)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", source, err)
	}

	var (
		records []engine.ActivityRecord
		issues  []RowIssue
	)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		if blankRow(row) {
			continue
		}

		rawAmount := cols.cell(row, "amount")
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: amount %q is not a number: %w",
				source, rowNum, rawAmount, ErrInvalidRow)
		}
		if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return nil, nil, fmt.Errorf("%s row %d: amount %g must be a non-negative number: %w",
				source, rowNum, amount, ErrInvalidRow)
		}
		if amount == 0 {
			issues = append(issues, RowIssue{
				Source: source, Row: rowNum, Field: "amount",
				Message: "zero amount contributes no emissions",
			})
		}

		record := engine.ActivityRecord{
			ActivityType: cols.cell(row, "activity_type"),
			Category:     cols.cell(row, "category"),
			Amount:       amount,
			Unit:         cols.cell(row, "unit"),
		}

		if rawDate := cols.cell(row, "date"); rawDate != "" {
			if parsed, ok := parseDate(rawDate); ok {
				record.Date = &parsed
			} else {
				record.RawDate = rawDate
				issues = append(issues, RowIssue{
					Source: source, Row: rowNum, Field: "date",
					Message: fmt.Sprintf("unparseable date %q excluded from monthly aggregation", rawDate),
				})
			}
		}

		records = append(records, record)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "parse_activity").
		Str("source", source).
		Int("rows", len(records)).
		Int("issues", len(issues)).
		Msg("activity rows parsed")

	return records, issues, nil
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// readCSV slurps a CSV stream into rows, tolerating ragged records.
func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return rows, nil
}
