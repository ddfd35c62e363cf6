package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	t.Run("factor table invariants", func(t *testing.T) {
		require.NotEmpty(t, ds.Factors)
		for activity, factors := range ds.Factors {
			assert.NotNil(t, factors.Default, "activity %q must have a default", activity)
		}

		electricity, ok := ds.Factors["electricity"]
		require.True(t, ok)
		assert.InDelta(t, 0.233, *electricity.Default, 1e-9)
		grid, ok := electricity.Categories["grid_electricity"]
		require.True(t, ok)
		assert.InDelta(t, 0.233, grid.Units["kwh"], 1e-9)
		assert.InDelta(t, 233.0, grid.Units["mwh"], 1e-9)
	})

	t.Run("unit conversions", func(t *testing.T) {
		assert.InDelta(t, 1000.0, ds.UnitConversions["tonnes"], 1e-9)
		assert.InDelta(t, 1.60934, ds.UnitConversions["miles"], 1e-9)
		assert.InDelta(t, 3.78541, ds.UnitConversions["gallons"], 1e-9)
	})

	t.Run("substance limits", func(t *testing.T) {
		rohs, ok := ds.SubstanceLimits["RoHS Directive"]
		require.True(t, ok)
		assert.InDelta(t, 1000, rohs["Lead"], 1e-9)
		assert.InDelta(t, 100, rohs["Cadmium"], 1e-9)

		cpsia, ok := ds.SubstanceLimits["CPSIA"]
		require.True(t, ok)
		assert.InDelta(t, 100, cpsia["Lead"], 1e-9)

		assert.InDelta(t, 1000, ds.DefaultLimitPPM, 1e-9)
	})

	t.Run("cas numbers", func(t *testing.T) {
		assert.Equal(t, "7439-92-1", ds.CASNumbers["Lead"])
		assert.Equal(t, "7439-92-1", ds.CASNumbers["Pb"])
		assert.Equal(t, "7440-48-4", ds.CASNumbers["Cobalt"])
	})

	t.Run("sample materials", func(t *testing.T) {
		require.Len(t, ds.SampleMaterials, 4)
		assert.Equal(t, "Cobalt", ds.SampleMaterials[0].Substance)
		assert.InDelta(t, 12000, ds.SampleMaterials[0].ConcentrationPPM, 1e-9)
	})

	t.Run("applicability rules", func(t *testing.T) {
		assert.Contains(t, ds.Applicability.EUCountries, "Germany")
		assert.Contains(t, ds.Applicability.EUCountries, "Greece")
		require.NotEmpty(t, ds.Applicability.MarketRules)
		assert.Equal(t, "United States", ds.Applicability.MarketRules[0].Match)
		assert.Len(t, ds.Applicability.MarketPlaceholders, 3)
	})
}

func TestRegulationQueries(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	t.Run("by region", func(t *testing.T) {
		eu := ds.RegulationsByRegion("European Union")
		require.NotEmpty(t, eu)
		for _, reg := range eu {
			assert.Equal(t, "European Union", reg.Region)
		}

		all := ds.RegulationsByRegion("")
		assert.Len(t, all, len(ds.Regulations))
	})

	t.Run("by name", func(t *testing.T) {
		reg, ok := ds.RegulationByName("RoHS Directive")
		require.True(t, ok)
		assert.Equal(t, "EU_001", reg.ID)
		assert.True(t, reg.Verified())

		_, ok = ds.RegulationByName("Nonexistent Act")
		assert.False(t, ok)
	})

	t.Run("regional stats", func(t *testing.T) {
		stats := ds.RegionalStats()
		require.Contains(t, stats, "European Union")
		require.Contains(t, stats, "Other Regions")

		eu := stats["European Union"]
		assert.Positive(t, eu.Count)
		assert.LessOrEqual(t, eu.Verified, eu.Count)
		assert.LessOrEqual(t, eu.Active, eu.Count)
	})

	t.Run("verified sources", func(t *testing.T) {
		urls := ds.VerifiedSourceURLs()
		require.NotEmpty(t, urls)
		for _, u := range urls {
			assert.NotEqual(t, "TBD", u)
		}
	})

	t.Run("unverified entries excluded", func(t *testing.T) {
		verified := ds.VerifiedRegulations()
		assert.Less(t, len(verified), len(ds.Regulations))
	})
}
