// Package ingest parses raw tabular input (CSV and Excel workbooks) into
// typed activity and material records. Parsing is explicit: every column is
// mapped by name, every value is converted with validation, and anything
// questionable is either a fatal error or a collected RowIssue. Nothing is
// silently defaulted.
package ingest

import "fmt"

// RowIssue is a non-fatal observation about one input row, collected during
// parsing and surfaced alongside the parsed records.
type RowIssue struct {
	Source  string `json:"source"`
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (i RowIssue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("%s row %d: %s", i.Source, i.Row, i.Message)
	}
	return fmt.Sprintf("%s row %d (%s): %s", i.Source, i.Row, i.Field, i.Message)
}
