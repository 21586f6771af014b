package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerTo(t *testing.T) {
	tests := []struct {
		name          string
		cfg           LoggerConfig
		expectedLevel zerolog.Level
	}{
		{name: "Debug", cfg: LoggerConfig{Level: "debug", Format: "json"}, expectedLevel: zerolog.DebugLevel},
		{name: "Warn", cfg: LoggerConfig{Level: "warn", Format: "json"}, expectedLevel: zerolog.WarnLevel},
		{name: "Unknown falls back to info", cfg: LoggerConfig{Level: "loud", Format: "json"}, expectedLevel: zerolog.InfoLevel},
		{name: "Empty falls back to info", cfg: LoggerConfig{Format: "json"}, expectedLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerTo(&buf, tt.cfg)

			assert.Equal(t, tt.expectedLevel, logger.GetLevel())
		})
	}
}

func TestNewLoggerTo_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LoggerConfig{Level: "info", Format: "json"})

	logger.Debug().Msg("hidden")
	logger.Info().Str("recipe_id", "abc").Msg("recipe created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "abc", entry["recipe_id"])
	assert.Equal(t, "recipe created", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewLoggerTo_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LoggerConfig{Level: "info", Format: "console"})

	logger.Info().Msg("server starting")

	assert.Contains(t, buf.String(), "server starting")
	assert.False(t, json.Valid(buf.Bytes()))
}
