package bootstrap

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLogger_CloudLoggingKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "workouts-api", "info")

	logger.With("component", "auth").Info("Credentials loaded", "users", 2)
	logger.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "[auth] Credentials loaded", entry["message"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "workouts-api", entry["service"])
	assert.Equal(t, "auth", entry["component"])
	assert.EqualValues(t, 2, entry["users"])
}

func TestComponentHandler_RecordOverride(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "svc", "debug").With("component", "http")

	logger.Debug("hello", "component", "events")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "[events] hello", entry["message"])
}
