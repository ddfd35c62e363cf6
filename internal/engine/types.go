// Package engine implements the emissions and compliance aggregation core:
// factor resolution, row aggregation, GHG scope classification, substance
// limit resolution, material compliance analysis, and regulation
// applicability. Every component is a pure function of its inputs and the
// static reference dataset, so results are safe to compute concurrently for
// independent requests.
package engine

import (
	"encoding/json"
	"time"
)

// ActivityRecord is one normalized input row of activity data. Records are
// created by the ingest layer, consumed once by the calculator, and never
// mutated.
type ActivityRecord struct {
	ActivityType string     `json:"activity_type"`
	Category     string     `json:"category"`
	Amount       float64    `json:"amount"`
	Unit         string     `json:"unit"`
	Date         *time.Time `json:"date,omitempty"`
	// RawDate preserves the original date text for diagnostics when
	// parsing failed and Date is nil.
	RawDate string `json:"-"`
}

// MaterialRecord is one parsed material declaration row.
type MaterialRecord struct {
	Component        string  `json:"component"`
	Substance        string  `json:"substance"`
	ConcentrationPPM float64 `json:"concentration_ppm"`
	Supplier         string  `json:"supplier"`
}

// ActivityEmission is the per-row detail record of an emissions
// calculation.
type ActivityEmission struct {
	ActivityType   string     `json:"activity_type"`
	Category       string     `json:"category"`
	Amount         float64    `json:"amount"`
	Unit           string     `json:"unit"`
	EmissionFactor float64    `json:"emission_factor"`
	CO2Kg          float64    `json:"co2_emissions_kg"`
	Date           *time.Time `json:"date,omitempty"`
}

// ScopeBreakdown accumulates emissions for one GHG Protocol scope.
// Activities and Categories behave as insertion-ordered sets.
type ScopeBreakdown struct {
	TotalKg    float64  `json:"total_kg"`
	Activities []string `json:"activities"`
	Categories []string `json:"categories"`
}

func (b *ScopeBreakdown) add(co2Kg float64, activityType, category string) {
	b.TotalKg += co2Kg
	b.Activities = appendUnique(b.Activities, activityType)
	b.Categories = appendUnique(b.Categories, category)
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// Totals accumulates float64 values by key while preserving first-seen key
// order, matching the insertion-order semantics of the aggregation maps.
type Totals struct {
	keys   []string
	values map[string]float64
}

// NewTotals returns an empty accumulator.
func NewTotals() *Totals {
	return &Totals{values: make(map[string]float64)}
}

// Add accumulates v under key, creating the key on first sight.
func (t *Totals) Add(key string, v float64) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] += v
}

// Get returns the accumulated value for key (zero when absent).
func (t *Totals) Get(key string) float64 { return t.values[key] }

// Keys returns the keys in first-seen order.
func (t *Totals) Keys() []string { return t.keys }

// Len returns the number of distinct keys.
func (t *Totals) Len() int { return len(t.keys) }

// Sum returns the sum of all accumulated values.
func (t *Totals) Sum() float64 {
	var sum float64
	for _, v := range t.values {
		sum += v
	}
	return sum
}

// Max returns the key with the largest total and its value. Ties break to
// the earlier-seen key. The second value is false for an empty accumulator.
func (t *Totals) Max() (string, float64, bool) {
	if len(t.keys) == 0 {
		return "", 0, false
	}
	maxKey := t.keys[0]
	maxVal := t.values[maxKey]
	for _, k := range t.keys[1:] {
		if t.values[k] > maxVal {
			maxKey = k
			maxVal = t.values[k]
		}
	}
	return maxKey, maxVal, true
}

// AsMap returns a copy of the accumulated values.
func (t *Totals) AsMap() map[string]float64 {
	out := make(map[string]float64, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// MarshalJSON serializes the accumulated values as a plain JSON object.
func (t *Totals) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.values)
}

// Summary holds the headline statistics of an emissions calculation.
type Summary struct {
	TotalCO2Kg          float64   `json:"total_co2_kg"`
	TotalCO2Tonnes      float64   `json:"total_co2_tonnes"`
	TotalActivities     int       `json:"total_activities"`
	UniqueActivityTypes int       `json:"unique_activity_types"`
	CalculationDate     time.Time `json:"calculation_date"`
	RunID               string    `json:"run_id"`
}

// EmissionsResult is the complete output of one emissions calculation.
// It is built once per invocation and immutable thereafter.
type EmissionsResult struct {
	Detailed   []ActivityEmission        `json:"detailed_results"`
	ByActivity *Totals                   `json:"by_activity"`
	ByCategory *Totals                   `json:"by_category"`
	Monthly    *Totals                   `json:"monthly_emissions"`
	ByScope    map[Scope]*ScopeBreakdown `json:"by_scope"`
	Summary    Summary                   `json:"summary"`
	// UnmatchedRows counts rows that resolved to a zero factor and were
	// excluded from aggregation. Exposed as a diagnostic; the reference
	// behavior drops these silently.
	UnmatchedRows   int      `json:"unmatched_rows"`
	Recommendations []string `json:"recommendations"`
}

// MaterialAnalysis is the derived compliance record for one material.
type MaterialAnalysis struct {
	Component     string  `json:"component"`
	Substance     string  `json:"substance"`
	Concentration float64 `json:"concentration"`
	LegalLimit    float64 `json:"legal_limit"`
	// Status is StatusCompliant or StatusNonCompliant.
	Status string `json:"status"`
	// RiskLevel is RiskLow, RiskMedium, or RiskHigh.
	RiskLevel string `json:"risk_level"`
	Notes     string `json:"notes"`
	CASNumber string `json:"cas_number"`
	Supplier  string `json:"supplier"`
}

// Compliance status and risk tier vocabulary.
const (
	StatusCompliant    = "COMPLIANT"
	StatusNonCompliant = "NON-COMPLIANT"

	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"

	// OverallActionRequired flags a compliance rate below 100%.
	OverallActionRequired = "ACTION REQUIRED"
	// OverallComplete flags a fully compliant analysis.
	OverallComplete = "COMPLETE"
)

// ComplianceStats aggregates one material analysis run.
type ComplianceStats struct {
	TotalComponents        int     `json:"total_components"`
	CompliantComponents    int     `json:"compliant_components"`
	NonCompliantComponents int     `json:"non_compliant_components"`
	ComplianceRate         float64 `json:"compliance_rate"`
	OverallStatus          string  `json:"overall_status"`
}

// ComplianceReport is the full output of a material compliance analysis.
type ComplianceReport struct {
	Materials       []MaterialAnalysis `json:"material_analysis"`
	Stats           ComplianceStats    `json:"stats"`
	Recommendations []string           `json:"recommendations"`
	// DemonstrationData is true when the analysis ran on the built-in
	// sample material set because no valid rows were uploaded.
	DemonstrationData bool `json:"demonstration_data"`
	// ApplicableRegulations echoes the regulation names whose limits were
	// merged for this run, in resolution order.
	ApplicableRegulations []string `json:"applicable_regulations,omitempty"`
	// RegionalBreakdown summarizes the verified regulation database by
	// region for report rendering.
	RegionalBreakdown map[string]RegionCounts `json:"regional_breakdown,omitempty"`
	// VerifiedSources lists the official URLs backing the analysis.
	VerifiedSources []string `json:"verified_sources_used,omitempty"`
	// FrameworkMessage is a one-line status suitable for report headers.
	FrameworkMessage string `json:"framework_message,omitempty"`
	// DualJurisdiction is true when both EU and USA regulations were in
	// force for this analysis.
	DualJurisdiction bool      `json:"dual_jurisdiction"`
	GeneratedAt      time.Time `json:"generated_at"`
	RunID            string    `json:"run_id"`
}

// RegionCounts mirrors refdata.RegionStats for report serialization.
type RegionCounts struct {
	Count    int `json:"count"`
	Active   int `json:"active"`
	Verified int `json:"verified"`
}

// LimitMap maps substance name to its effective limit in ppm. The map also
// carries the DefaultLimitKey entry when any regulation matched.
type LimitMap map[string]float64

// DefaultLimitKey is the LimitMap entry applied to substances that no
// merged regulation names explicitly.
const DefaultLimitKey = "default"
