package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rshade/carboncomply/internal/engine"
)

// ParseActivityWorkbook parses activity rows from the first sheet of an
// Excel workbook. Row semantics match ParseActivityCSV.
func ParseActivityWorkbook(ctx context.Context, r io.Reader, source string) ([]engine.ActivityRecord, []RowIssue, error) {
	rows, err := readWorkbook(r, source)
	if err != nil {
		return nil, nil, err
	}
	return parseActivityRows(ctx, source, rows)
}

// ParseMaterialsWorkbook parses material declaration rows from the first
// sheet of an Excel workbook. Row semantics match ParseMaterialsCSV.
func ParseMaterialsWorkbook(ctx context.Context, r io.Reader, source string) ([]engine.MaterialRecord, []RowIssue, error) {
	rows, err := readWorkbook(r, source)
	if err != nil {
		return nil, nil, err
	}
	return parseMaterialRows(ctx, source, rows)
}

// readWorkbook extracts the first sheet of a workbook as string rows.
func readWorkbook(r io.Reader, source string) ([][]string, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", source, err)
	}
	defer book.Close() //nolint:errcheck // Read-only handle

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoRows)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheets[0], source, err)
	}
	return rows, nil
}
