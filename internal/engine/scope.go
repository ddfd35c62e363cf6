package engine

// Scope is a GHG Protocol scope bucket.
type Scope string

// The three GHG Protocol scopes: direct emissions (1), purchased energy
// (2), and other value-chain indirect emissions (3).
const (
	Scope1 Scope = "scope_1"
	Scope2 Scope = "scope_2"
	Scope3 Scope = "scope_3"
)

// Scopes lists the scope keys in reporting order.
func Scopes() []Scope {
	return []Scope{Scope1, Scope2, Scope3}
}

// scope1Activities and scope2Activities are the static membership sets of
// the classifier. Everything else is scope 3.
var (
	scope1Activities = map[string]bool{ //nolint:gochecknoglobals // Static decision table
		"fuel":          true,
		"heating":       true,
		"refrigerants":  true,
		"manufacturing": true,
	}
	scope2Activities = map[string]bool{ //nolint:gochecknoglobals // Static decision table
		"electricity": true,
		"cooling":     true,
	}
)

// ClassifyScope maps an activity type to its GHG Protocol scope. It is a
// total function: unknown activity types classify as scope 3.
func ClassifyScope(activityType string) Scope {
	key := NormalizeKey(activityType)
	switch {
	case scope1Activities[key]:
		return Scope1
	case scope2Activities[key]:
		return Scope2
	default:
		return Scope3
	}
}
