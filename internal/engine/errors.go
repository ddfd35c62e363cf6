package engine

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the engine. Compare with errors.Is().
var (
	// ErrInvalidAmount indicates an activity row whose amount is not a
	// usable non-negative number. One invalid amount aborts the whole
	// calculation; there is no per-row error isolation.
	ErrInvalidAmount = constError("invalid activity amount")

	// ErrNoApplicableLimits indicates that material analysis was requested
	// with an empty limit map, i.e. no applicable regulatory framework.
	// Callers decide how to surface the "no applicable framework" case.
	ErrNoApplicableLimits = constError("no applicable substance limits")
)
