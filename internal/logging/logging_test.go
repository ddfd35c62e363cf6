package logging

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLevel zerolog.Level
	}{
		{
			name:      "default level is info",
			cfg:       Config{},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "debug level",
			cfg:       Config{Level: "debug", Format: "console"},
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "invalid level falls back to info",
			cfg:       Config{Level: "verbose"},
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New(tt.cfg)
			defer func() { _ = result.Close() }()
			assert.Equal(t, tt.wantLevel, result.Logger.GetLevel())
			assert.False(t, result.UsingFile)
		})
	}
}

func TestNewFileOutput(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "carboncomply.log")
		result := New(Config{Level: "info", Output: "file", File: path})
		defer func() { _ = result.Close() }()

		require.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)
		assert.False(t, result.FallbackUsed)
	})

	t.Run("falls back to stderr when file cannot be opened", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "nested", "carboncomply.log")
		result := New(Config{Level: "info", Output: "file", File: path})
		defer func() { _ = result.Close() }()

		assert.False(t, result.UsingFile)
		assert.True(t, result.FallbackUsed)
		assert.NotEmpty(t, result.FallbackReason)
	})
}

func TestTraceID(t *testing.T) {
	t.Run("round trip through context", func(t *testing.T) {
		id := NewTraceID()
		require.NotEmpty(t, id)

		ctx := ContextWithTraceID(context.Background(), id)
		assert.Equal(t, id, TraceIDFromContext(ctx))
		assert.Equal(t, id, GetOrGenerateTraceID(ctx))
	})

	t.Run("generates when absent", func(t *testing.T) {
		assert.Empty(t, TraceIDFromContext(context.Background()))
		assert.NotEmpty(t, GetOrGenerateTraceID(context.Background()))
	})

	t.Run("ids are unique", func(t *testing.T) {
		assert.NotEqual(t, NewTraceID(), NewTraceID())
	})
}

func TestComponentLogger(t *testing.T) {
	result := New(Config{Level: "debug"})
	defer func() { _ = result.Close() }()

	child := ComponentLogger(result.Logger, "engine")
	assert.Equal(t, result.Logger.GetLevel(), child.GetLevel())
}
