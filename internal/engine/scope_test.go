package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScope(t *testing.T) {
	tests := []struct {
		activityType string
		want         Scope
	}{
		{"fuel", Scope1},
		{"heating", Scope1},
		{"refrigerants", Scope1},
		{"manufacturing", Scope1},
		{"electricity", Scope2},
		{"cooling", Scope2},
		{"purchased_goods", Scope3},
		{"business_travel", Scope3},
		{"employee_commuting", Scope3},
		{"waste", Scope3},
		{"water", Scope3},
		{"paper", Scope3},
		{"travel", Scope3},
		{"shipping", Scope3},
		{"digital", Scope3},
		{"leased_assets", Scope3},
		{"investments", Scope3},
		{"transportation", Scope3},
		// Total function: anything unknown is scope 3.
		{"interpretive_dance", Scope3},
		{"", Scope3},
		// Classification normalizes its input.
		{"Fuel", Scope1},
		{"  ELECTRICITY ", Scope2},
	}

	for _, tt := range tests {
		t.Run(tt.activityType, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyScope(tt.activityType))
		})
	}
}

func TestScopes(t *testing.T) {
	assert.Equal(t, []Scope{Scope1, Scope2, Scope3}, Scopes())
}
