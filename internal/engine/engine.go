package engine

import (
	"context"
	"fmt"

	"github.com/rshade/carboncomply/internal/refdata"
)

// Engine bundles the calculation components over one reference dataset.
// The dataset is read-shared; an Engine is safe for concurrent use.
type Engine struct {
	dataset       *refdata.Dataset
	calculator    *Calculator
	limits        *LimitResolver
	materials     *MaterialAnalyzer
	applicability *ApplicabilityResolver
}

// New builds an Engine over the reference dataset.
func New(ds *refdata.Dataset) *Engine {
	return &Engine{
		dataset:       ds,
		calculator:    NewCalculator(ds),
		limits:        NewLimitResolver(ds),
		materials:     NewMaterialAnalyzer(ds),
		applicability: NewApplicabilityResolver(ds),
	}
}

// Dataset exposes the reference dataset for read-only queries.
func (e *Engine) Dataset() *refdata.Dataset { return e.dataset }

// CalculateEmissions aggregates activity rows into an EmissionsResult.
func (e *Engine) CalculateEmissions(ctx context.Context, rows []ActivityRecord) (*EmissionsResult, error) {
	return e.calculator.Calculate(ctx, rows)
}

// ResolveLimits merges substance limits for the named regulations.
func (e *Engine) ResolveLimits(regulationNames []string) LimitMap {
	return e.limits.Resolve(regulationNames)
}

// ApplicableRegulations derives the regulation list for a business context.
func (e *Engine) ApplicableRegulations(role, location string, targetMarkets []string, category string) []string {
	return e.applicability.Applicable(role, location, targetMarkets, category)
}

// AnalyzeCompliance runs the full compliance pipeline: resolve the
// effective limits for the applicable regulations, analyze the materials,
// and enrich the report with the regulatory context (regional breakdown,
// verified sources, jurisdiction summary).
//
// Returns ErrNoApplicableLimits when no named regulation matches the
// substance limit table.
func (e *Engine) AnalyzeCompliance(
	ctx context.Context,
	materials []MaterialRecord,
	regulationNames []string,
) (*ComplianceReport, error) {
	limits := e.limits.Resolve(regulationNames)

	report, err := e.materials.Analyze(ctx, materials, limits)
	if err != nil {
		return nil, err
	}

	report.ApplicableRegulations = regulationNames

	report.RegionalBreakdown = make(map[string]RegionCounts)
	for region, stats := range e.dataset.RegionalStats() {
		report.RegionalBreakdown[region] = RegionCounts(stats)
	}
	report.VerifiedSources = e.dataset.VerifiedSourceURLs()

	euCount, usaCount := e.jurisdictionCounts(regulationNames)
	report.DualJurisdiction = euCount > 0 && usaCount > 0

	rate := report.Stats.ComplianceRate
	status := report.Stats.OverallStatus
	if report.DualJurisdiction {
		report.FrameworkMessage = fmt.Sprintf("Dual Compliance (EU + USA): %.0f%% - %s", rate, status)
	} else {
		report.FrameworkMessage = fmt.Sprintf("Compliance rate: %.0f%% - %s", rate, status)
	}

	return report, nil
}

// jurisdictionCounts tallies how many of the applicable regulations are EU
// and USA entries of the regulation database. Placeholder names that do
// not exist in the database count for neither.
func (e *Engine) jurisdictionCounts(regulationNames []string) (euCount, usaCount int) {
	for _, name := range regulationNames {
		reg, ok := e.dataset.RegulationByName(name)
		if !ok {
			continue
		}
		if reg.Region == "European Union" {
			euCount++
		}
		if reg.Country == "USA" {
			usaCount++
		}
	}
	return euCount, usaCount
}
