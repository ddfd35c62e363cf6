package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncomply/internal/refdata"
)

func newTestResolver(t *testing.T) *FactorResolver {
	t.Helper()
	ds, err := refdata.Load()
	require.NoError(t, err)
	return NewFactorResolver(ds)
}

func TestFactorResolverFallbackChain(t *testing.T) {
	resolver := newTestResolver(t)

	tests := []struct {
		name         string
		activityType string
		category     string
		unit         string
		wantFactor   float64
		wantMatch    FactorMatch
	}{
		{
			name:         "exact unit match",
			activityType: "electricity",
			category:     "grid_electricity",
			unit:         "kwh",
			wantFactor:   0.233,
			wantMatch:    FactorMatchUnit,
		},
		{
			name:         "unknown unit falls back to category default",
			activityType: "heating",
			category:     "heating_oil",
			unit:         "barrels",
			wantFactor:   0.245,
			wantMatch:    FactorMatchCategoryDefault,
		},
		{
			name:         "unknown category falls back to activity default",
			activityType: "electricity",
			category:     "unknown_category",
			unit:         "kwh",
			wantFactor:   0.233,
			wantMatch:    FactorMatchActivityDefault,
		},
		{
			name:         "unknown activity resolves to zero",
			activityType: "nonexistent_activity",
			category:     "anything",
			unit:         "kwh",
			wantFactor:   0,
			wantMatch:    FactorMatchNone,
		},
		{
			name:         "inputs are normalized",
			activityType: "  Grid Electricity  ",
			category:     "grid electricity",
			unit:         "KWH",
			wantFactor:   0,
			wantMatch:    FactorMatchNone,
		},
		{
			name:         "activity normalization with spaces",
			activityType: "Purchased Goods",
			category:     "office supplies",
			unit:         "EUR",
			wantFactor:   0.45,
			wantMatch:    FactorMatchUnit,
		},
		{
			name:         "renewable electricity is genuinely zero",
			activityType: "electricity",
			category:     "renewable_electricity",
			unit:         "kwh",
			wantFactor:   0,
			wantMatch:    FactorMatchUnit,
		},
		{
			name:         "refrigerant GWP factor",
			activityType: "refrigerants",
			category:     "r410a",
			unit:         "kg",
			wantFactor:   2088.0,
			wantMatch:    FactorMatchUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, match := resolver.Resolve(tt.activityType, tt.category, tt.unit)
			assert.InDelta(t, tt.wantFactor, factor, 1e-9)
			assert.Equal(t, tt.wantMatch, match)
		})
	}
}

func TestFactorResolverIsPure(t *testing.T) {
	resolver := newTestResolver(t)

	first, firstMatch := resolver.Resolve("fuel", "diesel", "liters")
	second, secondMatch := resolver.Resolve("fuel", "diesel", "liters")

	assert.Equal(t, first, second)
	assert.Equal(t, firstMatch, secondMatch)
	assert.InDelta(t, 2.68, first, 1e-9)
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Electricity", "electricity"},
		{"  Business Travel ", "business_travel"},
		{"grid electricity", "grid_electricity"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.in))
	}
}

func TestFactorMatchString(t *testing.T) {
	assert.Equal(t, "unit", FactorMatchUnit.String())
	assert.Equal(t, "category_default", FactorMatchCategoryDefault.String())
	assert.Equal(t, "activity_default", FactorMatchActivityDefault.String())
	assert.Equal(t, "none", FactorMatchNone.String())
}
