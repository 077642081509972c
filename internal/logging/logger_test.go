package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	for _, test := range []struct {
		in    string
		level slog.Level
		isErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"Warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", DefaultLogLevel, true},
	} {
		level, err := ParseLogLevel(test.in)
		assert.Equal(t, test.level, level, test.in)
		assert.Equal(t, test.isErr, err != nil, test.in)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo, true)
	log.Debug("hidden")
	log.Info("Loaded locations file", slog.String("file", "/etc/app/locations.ini"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Loaded locations file", record["message"])
	assert.Equal(t, "/etc/app/locations.ini", record["file"])
	assert.Equal(t, "info", record["level"])
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelDebug, false)
	log.Debug("Using source root layout", slog.String("root", "/src"))
	assert.Contains(t, buf.String(), "Using source root layout")
	assert.Contains(t, buf.String(), "/src")
}
