// Package refdata embeds the static reference datasets: emission factors,
// unit conversions, the regulation database, per-regulation substance
// limits, and the applicability rule tables.
//
// The dataset is loaded once at process start and treated as read-only for
// the lifetime of the process, so it is safe to share across goroutines.
package refdata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/factors.yaml
var factorsYAML []byte

//go:embed data/conversions.yaml
var conversionsYAML []byte

//go:embed data/limits.yaml
var limitsYAML []byte

//go:embed data/regulations.yaml
var regulationsYAML []byte

//go:embed data/applicability.yaml
var applicabilityYAML []byte

// CategoryFactors holds the per-unit emission factors for one category of
// an activity, plus the category-level default.
type CategoryFactors struct {
	Default *float64           `yaml:"default"`
	Units   map[string]float64 `yaml:"units"`
}

// ActivityFactors holds the categories of one activity type plus the
// activity-level default factor.
type ActivityFactors struct {
	Default    *float64                   `yaml:"default"`
	Categories map[string]CategoryFactors `yaml:"categories"`
}

// FactorTable maps activity type to its factors. All keys are normalized
// (lowercase, underscores for spaces).
type FactorTable map[string]ActivityFactors

// SampleMaterial is one row of the demonstration material set.
type SampleMaterial struct {
	Component        string  `yaml:"component"`
	Substance        string  `yaml:"substance"`
	ConcentrationPPM float64 `yaml:"concentration_ppm"`
	Supplier         string  `yaml:"supplier"`
}

// LocationRule maps a manufacturing location (or location group) to its
// base regulation set.
type LocationRule struct {
	Aliases     []string `yaml:"aliases"`
	Regulations []string `yaml:"regulations"`
}

// MarketRule maps a target market to its regulation set with optional
// category-conditioned additions.
type MarketRule struct {
	Match              string              `yaml:"match"`
	Aliases            []string            `yaml:"aliases"`
	SkipForEULocations bool                `yaml:"skip_for_eu_locations"`
	Regulations        []string            `yaml:"regulations"`
	CategoryAdditions  map[string][]string `yaml:"category_additions"`
}

// ApplicabilityRules is the static decision table behind the regulation
// applicability resolver.
type ApplicabilityRules struct {
	EUCountries        []string                `yaml:"eu_countries"`
	LocationRules      map[string]LocationRule `yaml:"location_rules"`
	LocationFallback   []string                `yaml:"location_fallback"`
	MarketRules        []MarketRule            `yaml:"market_rules"`
	MarketPlaceholders []string                `yaml:"market_placeholders"`
}

// Dataset is the full read-only reference dataset.
type Dataset struct {
	Factors         FactorTable
	UnitConversions map[string]float64
	Regulations     []Regulation
	SubstanceLimits map[string]map[string]float64
	DefaultLimitPPM float64
	CASNumbers      map[string]string
	SampleMaterials []SampleMaterial
	Applicability   ApplicabilityRules
}

type limitsDocument struct {
	RegulationLimits map[string]map[string]float64 `yaml:"regulation_limits"`
	DefaultLimitPPM  float64                       `yaml:"default_limit_ppm"`
	CASNumbers       map[string]string             `yaml:"cas_numbers"`
	SampleMaterials  []SampleMaterial              `yaml:"sample_materials"`
}

type regulationsDocument struct {
	Regulations []Regulation `yaml:"regulations"`
}

// Load parses the embedded datasets and validates their invariants.
func Load() (*Dataset, error) {
	ds := &Dataset{}

	if err := yaml.Unmarshal(factorsYAML, &ds.Factors); err != nil {
		return nil, fmt.Errorf("parsing emission factors: %w", err)
	}
	if err := yaml.Unmarshal(conversionsYAML, &ds.UnitConversions); err != nil {
		return nil, fmt.Errorf("parsing unit conversions: %w", err)
	}

	var limits limitsDocument
	if err := yaml.Unmarshal(limitsYAML, &limits); err != nil {
		return nil, fmt.Errorf("parsing substance limits: %w", err)
	}
	ds.SubstanceLimits = limits.RegulationLimits
	ds.DefaultLimitPPM = limits.DefaultLimitPPM
	ds.CASNumbers = limits.CASNumbers
	ds.SampleMaterials = limits.SampleMaterials

	var regs regulationsDocument
	if err := yaml.Unmarshal(regulationsYAML, &regs); err != nil {
		return nil, fmt.Errorf("parsing regulation database: %w", err)
	}
	ds.Regulations = regs.Regulations

	if err := yaml.Unmarshal(applicabilityYAML, &ds.Applicability); err != nil {
		return nil, fmt.Errorf("parsing applicability rules: %w", err)
	}

	if err := ds.validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// validate enforces the dataset invariants the engine depends on.
func (ds *Dataset) validate() error {
	for activity, factors := range ds.Factors {
		// Every activity type must carry a default so the resolver's
		// final fallback level is always present.
		if factors.Default == nil {
			return fmt.Errorf("emission factor table: activity %q has no default factor", activity)
		}
	}
	if ds.DefaultLimitPPM <= 0 {
		return fmt.Errorf("substance limits: default_limit_ppm must be positive, got %v", ds.DefaultLimitPPM)
	}
	if len(ds.SampleMaterials) == 0 {
		return fmt.Errorf("substance limits: sample material set is empty")
	}
	seen := make(map[string]bool, len(ds.Regulations))
	for _, reg := range ds.Regulations {
		if reg.ID == "" || reg.Name == "" {
			return fmt.Errorf("regulation database: entry with empty id or name")
		}
		if seen[reg.ID] {
			return fmt.Errorf("regulation database: duplicate id %q", reg.ID)
		}
		seen[reg.ID] = true
	}
	if len(ds.Applicability.MarketPlaceholders) == 0 {
		return fmt.Errorf("applicability rules: market placeholder templates missing")
	}
	return nil
}
