package cli

import (
	"fmt"
	"os"

	"github.com/rshade/carboncomply/internal/config"
)

// Output formats supported by the rendering commands.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

// resolveOutputFormat decides the effective output format. An explicit flag
// value wins; otherwise the configured default applies, downgraded to JSON
// when stdout is not a terminal so piped output stays machine-readable.
func resolveOutputFormat(flagValue string, flagChanged bool) (string, error) {
	format := flagValue
	if !flagChanged {
		format = config.GetDefaultOutputFormat()
		if format == outputTable && !isTerminal(os.Stdout) {
			format = outputJSON
		}
	}

	switch format {
	case outputTable, outputJSON, outputNDJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be table, json, or ndjson", format)
	}
}
