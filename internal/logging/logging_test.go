package logging

import (
	"bytes"
	"log/slog"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestFromSettings_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := FromSettings("warn", "json", &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "deal", "paris")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "paris", entry["deal"])
}

func TestFromSettings_Errors(t *testing.T) {
	_, err := FromSettings("info", "xml", nil)
	assert.Error(t, err)
	_, err = FromSettings("loud", "text", nil)
	assert.Error(t, err)
}

func TestEngineLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Writer: &buf, Level: slog.LevelDebug})

	var engineLogger calculation.Logger = NewEngineLogger(logger)
	engineLogger.Debugf("months=%d", 232)
	engineLogger.Errorf("failed: %s", "boom")

	out := buf.String()
	assert.Contains(t, out, "months=232")
	assert.Contains(t, out, "failed: boom")
	assert.Contains(t, out, "component=engine")
}
