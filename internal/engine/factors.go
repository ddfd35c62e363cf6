package engine

import (
	"strings"

	"github.com/rshade/carboncomply/internal/refdata"
)

// FactorMatch identifies which level of the fallback chain produced a
// factor. "Not found" is a first-class branch, not an error.
type FactorMatch int

const (
	// FactorMatchNone means no factor exists for the activity type; the
	// resolved factor is 0 and the row contributes no emissions.
	FactorMatchNone FactorMatch = iota
	// FactorMatchUnit means the exact (activity, category, unit) entry
	// matched.
	FactorMatchUnit
	// FactorMatchCategoryDefault means the category's default factor was
	// used because the unit had no entry.
	FactorMatchCategoryDefault
	// FactorMatchActivityDefault means the activity-level default was used
	// because the category had no entry.
	FactorMatchActivityDefault
)

// String returns a short label for logging.
func (m FactorMatch) String() string {
	switch m {
	case FactorMatchUnit:
		return "unit"
	case FactorMatchCategoryDefault:
		return "category_default"
	case FactorMatchActivityDefault:
		return "activity_default"
	default:
		return "none"
	}
}

// FactorResolver answers emission-factor lookups against the static factor
// table. It is a pure function over the table: no side effects, safe for
// concurrent use.
type FactorResolver struct {
	table refdata.FactorTable
}

// NewFactorResolver wraps the dataset's factor table.
func NewFactorResolver(ds *refdata.Dataset) *FactorResolver {
	return &FactorResolver{table: ds.Factors}
}

// Resolve returns the emission factor in kg CO2e per unit for the given
// activity type, category, and unit, together with the fallback level that
// produced it.
//
// Lookup order: exact unit entry, category default, activity default. An
// unknown activity type resolves to (0, FactorMatchNone); the caller treats
// such rows as contributing zero emissions.
func (r *FactorResolver) Resolve(activityType, category, unit string) (float64, FactorMatch) {
	activityType = NormalizeKey(activityType)
	category = NormalizeKey(category)
	unit = strings.ToLower(strings.TrimSpace(unit))

	activity, ok := r.table[activityType]
	if !ok {
		return 0, FactorMatchNone
	}

	if cat, ok := activity.Categories[category]; ok {
		if factor, ok := cat.Units[unit]; ok {
			return factor, FactorMatchUnit
		}
		if cat.Default != nil {
			return *cat.Default, FactorMatchCategoryDefault
		}
	}

	if activity.Default != nil {
		return *activity.Default, FactorMatchActivityDefault
	}
	return 0, FactorMatchNone
}

// NormalizeKey lowercases a table key and replaces spaces with underscores,
// matching how the factor and scope tables are keyed.
func NormalizeKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
