package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncomply/internal/refdata"
)

func TestRegulationsList(t *testing.T) {
	out, _, err := executeCommand(t, "regulations", "list", "--output", "table")
	require.NoError(t, err)

	assert.Contains(t, out, "RoHS Directive")
	assert.Contains(t, out, "China RoHS")
	assert.Contains(t, out, "TOTAL")
}

func TestRegulationsListRegionFilter(t *testing.T) {
	out, _, err := executeCommand(t,
		"regulations", "list", "--region", "Asia-Pacific", "--output", "json")
	require.NoError(t, err)

	var regulations []refdata.Regulation
	require.NoError(t, json.Unmarshal([]byte(out), &regulations))
	require.NotEmpty(t, regulations)
	for _, reg := range regulations {
		assert.Equal(t, "Asia-Pacific", reg.Region)
	}
}

func TestRegulationsListVerifiedOnly(t *testing.T) {
	out, _, err := executeCommand(t,
		"regulations", "list", "--verified-only", "--output", "json")
	require.NoError(t, err)

	var regulations []refdata.Regulation
	require.NoError(t, json.Unmarshal([]byte(out), &regulations))
	require.NotEmpty(t, regulations)
	for _, reg := range regulations {
		assert.True(t, reg.Verified())
	}
}

func TestRegulationsListStatusFilter(t *testing.T) {
	out, _, err := executeCommand(t,
		"regulations", "list", "--status", "Under Review", "--output", "json")
	require.NoError(t, err)

	var regulations []refdata.Regulation
	require.NoError(t, json.Unmarshal([]byte(out), &regulations))
	require.NotEmpty(t, regulations)
	for _, reg := range regulations {
		assert.Equal(t, "Under Review", reg.Status)
	}
}

func TestRegulationsListStats(t *testing.T) {
	out, _, err := executeCommand(t, "regulations", "list", "--stats")
	require.NoError(t, err)

	assert.Contains(t, out, "REGION")
	assert.Contains(t, out, "European Union")
	assert.Contains(t, out, "Asia-Pacific")
	assert.Contains(t, out, "Other Regions")
}

func TestRegulationsApplicable(t *testing.T) {
	out, _, err := executeCommand(t,
		"regulations", "applicable",
		"--location", "Germany",
		"--market", "United States",
		"--category", "Computing & Telecommunications")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "RoHS Directive", lines[0])
	assert.Contains(t, lines, "CPSIA")
	assert.Contains(t, lines, "FCC Part 15")

	// The same context resolves identically on repeat runs.
	again, _, err := executeCommand(t,
		"regulations", "applicable",
		"--location", "Germany",
		"--market", "United States",
		"--category", "Computing & Telecommunications")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}
