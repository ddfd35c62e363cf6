package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivityCSV(t *testing.T) {
	input := strings.Join([]string{
		"activity_type,category,amount,unit,date",
		"electricity,grid_electricity,1000,kwh,2026-01-15",
		"fuel,diesel,250.5,liters,",
		"heating,natural_gas,0,kwh,2026-02-01",
	}, "\n")

	records, issues, err := ParseActivityCSV(context.Background(), strings.NewReader(input), "activity.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "electricity", records[0].ActivityType)
	assert.Equal(t, "grid_electricity", records[0].Category)
	assert.InDelta(t, 1000, records[0].Amount, 1e-9)
	assert.Equal(t, "kwh", records[0].Unit)
	require.NotNil(t, records[0].Date)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *records[0].Date)

	assert.Nil(t, records[1].Date)

	// The zero-amount row is kept but annotated.
	require.Len(t, issues, 1)
	assert.Equal(t, 4, issues[0].Row)
	assert.Equal(t, "amount", issues[0].Field)
}

func TestParseActivityCSVHeaderAliases(t *testing.T) {
	input := strings.Join([]string{
		"Activity Type,Category,Quantity,Units",
		"electricity,grid_electricity,500,kwh",
	}, "\n")

	records, issues, err := ParseActivityCSV(context.Background(), strings.NewReader(input), "aliased.csv")
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, records, 1)
	assert.InDelta(t, 500, records[0].Amount, 1e-9)
}

func TestParseActivityCSVMissingColumns(t *testing.T) {
	input := "activity_type,amount\nelectricity,100"

	_, _, err := ParseActivityCSV(context.Background(), strings.NewReader(input), "partial.csv")
	require.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "category")
	assert.Contains(t, err.Error(), "unit")
}

func TestParseActivityCSVInvalidAmountIsFatal(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"non-numeric", "lots"},
		{"negative", "-5"},
		{"not a finite number", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "activity_type,category,amount,unit\nelectricity,grid_electricity," + tt.amount + ",kwh"

			records, issues, err := ParseActivityCSV(context.Background(), strings.NewReader(input), "bad.csv")
			// One bad amount invalidates the whole set.
			assert.Nil(t, records)
			assert.Nil(t, issues)
			require.ErrorIs(t, err, ErrInvalidRow)
		})
	}
}

func TestParseActivityCSVUnparseableDate(t *testing.T) {
	input := strings.Join([]string{
		"activity_type,category,amount,unit,date",
		"electricity,grid_electricity,100,kwh,sometime last week",
	}, "\n")

	records, issues, err := ParseActivityCSV(context.Background(), strings.NewReader(input), "dates.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Row survives; only monthly aggregation loses it.
	assert.Nil(t, records[0].Date)
	assert.Equal(t, "sometime last week", records[0].RawDate)
	require.Len(t, issues, 1)
	assert.Equal(t, "date", issues[0].Field)
}

func TestParseActivityCSVEdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, _, err := ParseActivityCSV(context.Background(), strings.NewReader(""), "empty.csv")
		require.ErrorIs(t, err, ErrNoRows)
	})

	t.Run("header only", func(t *testing.T) {
		records, issues, err := ParseActivityCSV(context.Background(),
			strings.NewReader("activity_type,category,amount,unit"), "header.csv")
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Empty(t, issues)
	})

	t.Run("blank rows skipped", func(t *testing.T) {
		input := "activity_type,category,amount,unit\n,,,\nelectricity,grid_electricity,10,kwh"
		records, _, err := ParseActivityCSV(context.Background(), strings.NewReader(input), "blanks.csv")
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2026-01-15", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2026/01/15", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"01/15/2026", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"Jan 15, 2026", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := parseDate(tt.value)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := parseDate("yesterday")
	assert.False(t, ok)
}
