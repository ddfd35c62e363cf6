package ingest

import (
	"fmt"
	"sort"
	"strings"
)

// normalizeHeader canonicalizes a column header for alias lookup: lowercase,
// trimmed, inner whitespace collapsed to single underscores.
func normalizeHeader(header string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(header))), "_")
}

// columnIndex maps canonical field names to their column position in the
// header row.
type columnIndex map[string]int

// indexColumns resolves a header row against an alias table
// (normalized header -> canonical field name) and verifies the required
// fields are all present.
func indexColumns(header []string, aliases map[string]string, required []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))
	for i, cell := range header {
		field, ok := aliases[normalizeHeader(cell)]
		if !ok {
			continue
		}
		// First occurrence wins when a field appears twice.
		if _, seen := cols[field]; !seen {
			cols[field] = i
		}
	}

	var missing []string
	for _, field := range required {
		if _, ok := cols[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return cols, nil
}

// cell returns the trimmed value of a field in a row, or "" when the row is
// shorter than the column position.
func (c columnIndex) cell(row []string, field string) string {
	idx, ok := c[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// blankRow reports whether every cell in the row is empty after trimming.
func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
