package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/carboncomply/internal/engine"
	"github.com/rshade/carboncomply/internal/logging"
)

// workbookExtensions are dispatched to the Excel parser; everything else is
// read as CSV.
var workbookExtensions = map[string]bool{ //nolint:gochecknoglobals // Static lookup table
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xls":  true,
}

// LoadActivityFile parses one activity data file, choosing the CSV or Excel
// parser by file extension.
func LoadActivityFile(ctx context.Context, path string) ([]engine.ActivityRecord, []RowIssue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening activity file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	source := filepath.Base(path)
	if isWorkbook(path) {
		return ParseActivityWorkbook(ctx, f, source)
	}
	return ParseActivityCSV(ctx, f, source)
}

// LoadMaterialsFile parses one material declaration file, choosing the CSV
// or Excel parser by file extension.
func LoadMaterialsFile(ctx context.Context, path string) ([]engine.MaterialRecord, []RowIssue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening materials file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	source := filepath.Base(path)
	if isWorkbook(path) {
		return ParseMaterialsWorkbook(ctx, f, source)
	}
	return ParseMaterialsCSV(ctx, f, source)
}

// LoadActivityFiles parses several activity files concurrently and merges
// the records and issues in the order the paths were given, so repeated
// runs over the same file list produce identically ordered input for the
// calculator. The first file that fails to parse fails the whole load.
func LoadActivityFiles(ctx context.Context, paths []string) ([]engine.ActivityRecord, []RowIssue, error) {
	log := logging.FromContext(ctx)

	type fileResult struct {
		records []engine.ActivityRecord
		issues  []RowIssue
	}
	results := make([]fileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			records, issues, err := LoadActivityFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = fileResult{records: records, issues: issues}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var (
		records []engine.ActivityRecord
		issues  []RowIssue
	)
	for _, result := range results {
		records = append(records, result.records...)
		issues = append(issues, result.issues...)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_activity_files").
		Int("files", len(paths)).
		Int("rows", len(records)).
		Int("issues", len(issues)).
		Msg("activity files loaded")

	return records, issues, nil
}

func isWorkbook(path string) bool {
	return workbookExtensions[strings.ToLower(filepath.Ext(path))]
}
