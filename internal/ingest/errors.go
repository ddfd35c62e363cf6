package ingest

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the ingest layer. Compare with errors.Is().
var (
	// ErrNoRows indicates an input with no rows at all, not even a header.
	ErrNoRows = constError("input contains no rows")

	// ErrMissingColumns indicates a header row that lacks one or more
	// required columns.
	ErrMissingColumns = constError("missing required columns")

	// ErrInvalidRow indicates a data row that invalidates the whole input
	// set, such as a non-numeric or negative amount. There is no per-row
	// error isolation for these.
	ErrInvalidRow = constError("invalid input row")
)
