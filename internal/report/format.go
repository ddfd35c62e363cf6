// Package report renders emissions and compliance results as text tables,
// JSON documents, and NDJSON streams.
package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// FormatKg formats a kilogram quantity with thousands separators.
func FormatKg(kg float64) string {
	return printer.Sprintf("%.2f kg", kg)
}

// FormatTonnes formats a tonne quantity with thousands separators.
func FormatTonnes(tonnes float64) string {
	return printer.Sprintf("%.3f t", tonnes)
}

// FormatPPM formats a parts-per-million concentration. Concentrations stay
// unlocalized so they can be pasted back into declaration sheets.
func FormatPPM(ppm float64) string {
	return fmt.Sprintf("%g ppm", ppm)
}

// FormatPercent formats a percentage with one decimal place.
func FormatPercent(pct float64) string {
	return printer.Sprintf("%.1f%%", pct)
}
