package engine

import (
	"strings"

	"github.com/rshade/carboncomply/internal/refdata"
)

// LimitResolver merges per-regulation substance limits into an effective
// limit map for one analysis run.
type LimitResolver struct {
	table           map[string]map[string]float64
	defaultLimitPPM float64
}

// NewLimitResolver wraps the dataset's per-regulation substance limits.
func NewLimitResolver(ds *refdata.Dataset) *LimitResolver {
	return &LimitResolver{
		table:           ds.SubstanceLimits,
		defaultLimitPPM: ds.DefaultLimitPPM,
	}
}

// Resolve merges the substance limits of every matched regulation into one
// LimitMap, keeping the minimum (most restrictive) limit when a substance
// is limited by more than one regulation. When at least one regulation
// matched, the map also carries the DefaultLimitKey entry for substances
// no regulation names explicitly.
//
// An empty input list returns an empty map: no substances are evaluated at
// all, and the material analyzer reports ErrNoApplicableLimits.
func (r *LimitResolver) Resolve(regulationNames []string) LimitMap {
	limits := make(LimitMap)
	if len(regulationNames) == 0 {
		return limits
	}

	for _, name := range regulationNames {
		key, ok := r.matchRegulation(name)
		if !ok {
			continue
		}
		for substance, limit := range r.table[key] {
			if existing, ok := limits[substance]; !ok || limit < existing {
				limits[substance] = limit
			}
		}
	}

	if len(limits) > 0 {
		limits[DefaultLimitKey] = r.defaultLimitPPM
	}
	return limits
}

// matchRegulation maps a caller-provided regulation name onto a key of the
// internal limit table.
//
// Matching is exact-match-first (case-insensitive), then substring
// containment in either direction. When several table keys substring-match,
// the longest key wins; a remaining tie breaks to the lexicographically
// smaller key so the result never depends on map iteration order.
func (r *LimitResolver) matchRegulation(name string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if lowered == "" {
		return "", false
	}

	for key := range r.table {
		if strings.ToLower(key) == lowered {
			return key, true
		}
	}

	var best string
	for key := range r.table {
		keyLower := strings.ToLower(key)
		if !strings.Contains(lowered, keyLower) && !strings.Contains(keyLower, lowered) {
			continue
		}
		if len(key) > len(best) || (len(key) == len(best) && key < best) {
			best = key
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// LimitFor returns the effective limit for a substance: the explicit entry
// when present, otherwise the default entry. The boolean is false when the
// map carries neither, which only happens for an empty LimitMap.
func (limits LimitMap) LimitFor(substance string) (float64, bool) {
	if limit, ok := limits[substance]; ok {
		return limit, true
	}
	if limit, ok := limits[DefaultLimitKey]; ok {
		return limit, true
	}
	return 0, false
}
