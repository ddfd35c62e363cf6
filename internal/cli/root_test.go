package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with the given args and returns
// stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmdHelp(t *testing.T) {
	out, _, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "carboncomply")
	assert.Contains(t, out, "emissions")
	assert.Contains(t, out, "compliance")
	assert.Contains(t, out, "regulations")
	assert.Contains(t, out, "config")
}

func TestRootCmdVersion(t *testing.T) {
	out, _, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}

func TestRootCmdUnknownCommand(t *testing.T) {
	_, _, err := executeCommand(t, "definitely-not-a-command")
	require.Error(t, err)
}

func TestResolveOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		flagValue   string
		flagChanged bool
		want        string
		wantErr     bool
	}{
		{"explicit table", "table", true, "table", false},
		{"explicit json", "json", true, "json", false},
		{"explicit ndjson", "ndjson", true, "ndjson", false},
		{"invalid format", "yaml", true, "", true},
		// Unset flag in a test binary: stdout is not a terminal, so the
		// table default downgrades to JSON.
		{"default downgrades when piped", "table", false, "json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveOutputFormat(tt.flagValue, tt.flagChanged)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeafCommandsHaveExamples(t *testing.T) {
	root := NewRootCmd("test")

	paths := [][]string{
		{"emissions", "calculate"},
		{"compliance", "analyze"},
		{"regulations", "list"},
		{"regulations", "applicable"},
		{"config", "init"},
		{"config", "validate"},
	}
	for _, path := range paths {
		cmd, _, err := root.Find(path)
		require.NoError(t, err)
		assert.NotEmpty(t, cmd.Example, "command %v should have an example", path)
	}
}
