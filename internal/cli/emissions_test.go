package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeActivityCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEmissionsCalculateTable(t *testing.T) {
	path := writeActivityCSV(t,
		"activity_type,category,amount,unit\nelectricity,grid_electricity,1000,kwh\n")

	out, _, err := executeCommand(t,
		"emissions", "calculate", "--input", path, "--output", "table")
	require.NoError(t, err)

	assert.Contains(t, out, "electricity")
	assert.Contains(t, out, "233.00 kg")
	assert.Contains(t, out, "TOTAL")
}

func TestEmissionsCalculateJSON(t *testing.T) {
	path := writeActivityCSV(t,
		"activity_type,category,amount,unit\nelectricity,grid_electricity,1000,kwh\n")

	out, _, err := executeCommand(t,
		"emissions", "calculate", "--input", path, "--output", "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	summary, ok := decoded["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 233.0, summary["total_co2_kg"], 1e-9)
}

func TestEmissionsCalculateMultipleInputs(t *testing.T) {
	first := writeActivityCSV(t,
		"activity_type,category,amount,unit\nelectricity,grid_electricity,1000,kwh\n")
	second := filepath.Join(t.TempDir(), "more.csv")
	require.NoError(t, os.WriteFile(second,
		[]byte("activity_type,category,amount,unit\nfuel,diesel,100,liters\n"), 0o600))

	out, _, err := executeCommand(t,
		"emissions", "calculate", "--input", first, "--input", second, "--output", "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	summary, ok := decoded["summary"].(map[string]interface{})
	require.True(t, ok)
	// 233 + 268 kg
	assert.InDelta(t, 501.0, summary["total_co2_kg"], 1e-9)
}

func TestEmissionsCalculateZeroAmountWarning(t *testing.T) {
	path := writeActivityCSV(t,
		"activity_type,category,amount,unit\nelectricity,grid_electricity,0,kwh\n")

	_, errOut, err := executeCommand(t,
		"emissions", "calculate", "--input", path, "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, errOut, "zero amount")
}

func TestEmissionsCalculateInvalidAmount(t *testing.T) {
	path := writeActivityCSV(t,
		"activity_type,category,amount,unit\nelectricity,grid_electricity,lots,kwh\n")

	_, _, err := executeCommand(t,
		"emissions", "calculate", "--input", path, "--output", "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestEmissionsCalculateRequiresInput(t *testing.T) {
	_, _, err := executeCommand(t, "emissions", "calculate")
	require.Error(t, err)
}

func TestEmissionsCalculateInvalidFormat(t *testing.T) {
	path := writeActivityCSV(t,
		"activity_type,category,amount,unit\nelectricity,grid_electricity,1,kwh\n")

	_, _, err := executeCommand(t,
		"emissions", "calculate", "--input", path, "--output", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
