package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rshade/carboncomply/internal/logging"
	"github.com/rshade/carboncomply/internal/refdata"
)

const kgPerTonne = 1000.0

// Calculator computes an EmissionsResult from normalized activity records.
// It carries no state between calls; Calculate is idempotent over its
// inputs.
type Calculator struct {
	factors *FactorResolver
	now     func() time.Time
	newID   func() string
}

// NewCalculator builds a Calculator over the reference dataset.
func NewCalculator(ds *refdata.Dataset) *Calculator {
	return &Calculator{
		factors: NewFactorResolver(ds),
		now:     time.Now,
		newID:   logging.NewTraceID,
	}
}

// Calculate aggregates rows into an EmissionsResult.
//
// Rows whose (activity, category, unit) resolve to a zero factor contribute
// nothing; they are tallied in UnmatchedRows and logged at debug rather
// than reported as errors. Rows without a parseable date are excluded from
// monthly aggregation only. An amount that is NaN, infinite, or negative
// aborts the whole calculation with ErrInvalidAmount: no partial result is
// returned.
func (c *Calculator) Calculate(ctx context.Context, rows []ActivityRecord) (*EmissionsResult, error) {
	log := logging.FromContext(ctx)
	start := c.now()

	result := &EmissionsResult{
		ByActivity: NewTotals(),
		ByCategory: NewTotals(),
		Monthly:    NewTotals(),
		ByScope: map[Scope]*ScopeBreakdown{
			Scope1: {},
			Scope2: {},
			Scope3: {},
		},
	}

	var totalKg float64
	for i, row := range rows {
		if math.IsNaN(row.Amount) || math.IsInf(row.Amount, 0) || row.Amount < 0 {
			log.Error().
				Str("component", "engine").
				Str("operation", "calculate_emissions").
				Int("row", i+1).
				Float64("amount", row.Amount).
				Msg("invalid amount aborts calculation")
			return nil, fmt.Errorf("row %d: amount %v: %w", i+1, row.Amount, ErrInvalidAmount)
		}

		activityType := NormalizeKey(row.ActivityType)
		category := NormalizeKey(row.Category)

		factor, match := c.factors.Resolve(row.ActivityType, row.Category, row.Unit)
		if factor <= 0 {
			// Unrecognized combinations are excluded, not errors.
			result.UnmatchedRows++
			log.Debug().
				Str("component", "engine").
				Str("activity_type", activityType).
				Str("category", category).
				Str("unit", row.Unit).
				Str("match", match.String()).
				Msg("no emission factor, row excluded")
			continue
		}

		co2Kg := row.Amount * factor
		totalKg += co2Kg

		result.Detailed = append(result.Detailed, ActivityEmission{
			ActivityType:   activityType,
			Category:       category,
			Amount:         row.Amount,
			Unit:           row.Unit,
			EmissionFactor: factor,
			CO2Kg:          co2Kg,
			Date:           row.Date,
		})

		scope := ClassifyScope(activityType)
		result.ByScope[scope].add(co2Kg, activityType, category)

		result.ByActivity.Add(activityType, co2Kg)
		result.ByCategory.Add(category, co2Kg)

		if row.Date != nil {
			result.Monthly.Add(row.Date.Format("2006-01"), co2Kg)
		}
	}

	result.Summary = Summary{
		TotalCO2Kg:          totalKg,
		TotalCO2Tonnes:      totalKg / kgPerTonne,
		TotalActivities:     len(result.Detailed),
		UniqueActivityTypes: result.ByActivity.Len(),
		CalculationDate:     start,
		RunID:               c.newID(),
	}
	result.Recommendations = reductionRecommendations(result.ByActivity)

	log.Info().
		Str("component", "engine").
		Str("operation", "calculate_emissions").
		Int("rows", len(rows)).
		Int("aggregated", len(result.Detailed)).
		Int("unmatched", result.UnmatchedRows).
		Float64("total_co2_kg", totalKg).
		Msg("emissions calculation complete")

	return result, nil
}
