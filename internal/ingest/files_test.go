package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeActivityWorkbook(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()
	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, book.SaveAs(path))
	return path
}

func TestLoadActivityFileCSV(t *testing.T) {
	path := writeTempFile(t, "activity.csv",
		"activity_type,category,amount,unit\nelectricity,grid_electricity,1000,kwh\n")

	records, issues, err := LoadActivityFile(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, records, 1)
	assert.Equal(t, "electricity", records[0].ActivityType)
}

func TestLoadActivityFileWorkbook(t *testing.T) {
	path := writeActivityWorkbook(t, "activity.xlsx", [][]interface{}{
		{"activity_type", "category", "amount", "unit"},
		{"fuel", "diesel", 250, "liters"},
	})

	records, issues, err := LoadActivityFile(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, records, 1)
	assert.Equal(t, "fuel", records[0].ActivityType)
	assert.InDelta(t, 250, records[0].Amount, 1e-9)
}

func TestLoadActivityFilesMergesInInputOrder(t *testing.T) {
	first := writeTempFile(t, "first.csv",
		"activity_type,category,amount,unit\nelectricity,grid_electricity,100,kwh\n")
	second := writeTempFile(t, "second.csv",
		"activity_type,category,amount,unit\nfuel,diesel,50,liters\nheating,natural_gas,0,kwh\n")

	records, issues, err := LoadActivityFiles(context.Background(), []string{first, second})
	require.NoError(t, err)

	// Concurrent parsing, deterministic merge order.
	require.Len(t, records, 3)
	assert.Equal(t, "electricity", records[0].ActivityType)
	assert.Equal(t, "fuel", records[1].ActivityType)
	assert.Equal(t, "heating", records[2].ActivityType)

	require.Len(t, issues, 1)
	assert.Equal(t, "second.csv", issues[0].Source)
}

func TestLoadActivityFilesFirstErrorWins(t *testing.T) {
	good := writeTempFile(t, "good.csv",
		"activity_type,category,amount,unit\nelectricity,grid_electricity,100,kwh\n")
	bad := writeTempFile(t, "bad.csv",
		"activity_type,category,amount,unit\nelectricity,grid_electricity,not-a-number,kwh\n")

	records, issues, err := LoadActivityFiles(context.Background(), []string{good, bad})
	assert.Nil(t, records)
	assert.Nil(t, issues)
	require.ErrorIs(t, err, ErrInvalidRow)
}

func TestLoadMaterialsFile(t *testing.T) {
	path := writeTempFile(t, "materials.csv",
		"component,substance,concentration,supplier\nSolder Joint,Lead,850 ppm,General Components\n")

	records, issues, err := LoadMaterialsFile(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, records, 1)
	assert.InDelta(t, 850, records[0].ConcentrationPPM, 1e-9)
}

func TestLoadActivityFileMissing(t *testing.T) {
	_, _, err := LoadActivityFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestIsWorkbook(t *testing.T) {
	assert.True(t, isWorkbook("data.xlsx"))
	assert.True(t, isWorkbook("DATA.XLSX"))
	assert.False(t, isWorkbook("data.csv"))
	assert.False(t, isWorkbook("data"))
}
