package engine

import (
	"fmt"
	"strings"

	"github.com/rshade/carboncomply/internal/refdata"
)

// ApplicabilityResolver derives which regulations apply to a business
// context from the static rule tables. It is independent of any uploaded
// data: the same (role, location, markets, category) always yields the
// same ordered list.
type ApplicabilityResolver struct {
	rules refdata.ApplicabilityRules
}

// NewApplicabilityResolver wraps the dataset's applicability rule tables.
func NewApplicabilityResolver(ds *refdata.Dataset) *ApplicabilityResolver {
	return &ApplicabilityResolver{rules: ds.Applicability}
}

// Applicable returns the deduplicated, first-seen-ordered list of
// regulation names for the given business context: the manufacturing
// location's base set first, then one rule evaluation per target market
// with category-conditioned additions. Unrecognized markets synthesize
// placeholder names rather than failing, so the resolver always produces
// something.
//
// The role parameter is accepted for interface completeness; the current
// rule tables condition only on location, markets, and category.
func (r *ApplicabilityResolver) Applicable(
	role, location string,
	targetMarkets []string,
	category string,
) []string {
	_ = role

	var names []string
	names = append(names, r.locationRegulations(location)...)

	euLocation := r.isEUCountry(location)
	for _, market := range targetMarkets {
		names = append(names, r.marketRegulations(market, category, euLocation)...)
	}

	return dedupePreservingOrder(names)
}

// isEUCountry reports whether the location is an EU member state in the
// rule table.
func (r *ApplicabilityResolver) isEUCountry(location string) bool {
	for _, country := range r.rules.EUCountries {
		if country == location {
			return true
		}
	}
	return false
}

func (r *ApplicabilityResolver) locationRegulations(location string) []string {
	if r.isEUCountry(location) {
		return r.rules.LocationRules["eu"].Regulations
	}
	for key, rule := range r.rules.LocationRules {
		if key == "eu" {
			continue
		}
		if key == location {
			return rule.Regulations
		}
		for _, alias := range rule.Aliases {
			if alias == location {
				return rule.Regulations
			}
		}
	}
	return r.rules.LocationFallback
}

func (r *ApplicabilityResolver) marketRegulations(market, category string, euLocation bool) []string {
	rule, ok := r.matchMarketRule(market)
	if !ok {
		placeholders := make([]string, 0, len(r.rules.MarketPlaceholders))
		for _, tmpl := range r.rules.MarketPlaceholders {
			placeholders = append(placeholders, fmt.Sprintf(tmpl, market))
		}
		return placeholders
	}

	// EU target-market rules are redundant when manufacturing already
	// happens inside the EU; the location rule covered them.
	if rule.SkipForEULocations && euLocation {
		return nil
	}

	names := append([]string{}, rule.Regulations...)
	names = append(names, rule.CategoryAdditions[category]...)
	return names
}

// matchMarketRule finds the rule for a market string. Rules are evaluated
// in table order; a rule matches when the market equals or contains the
// rule's match key or one of its aliases.
func (r *ApplicabilityResolver) matchMarketRule(market string) (refdata.MarketRule, bool) {
	for _, rule := range r.rules.MarketRules {
		if marketMatches(market, rule.Match) {
			return rule, true
		}
		for _, alias := range rule.Aliases {
			if marketMatches(market, alias) {
				return rule, true
			}
		}
	}
	return refdata.MarketRule{}, false
}

func marketMatches(market, key string) bool {
	return market == key || strings.Contains(market, key)
}

func dedupePreservingOrder(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
