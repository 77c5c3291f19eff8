package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ConquestRules/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"loud", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := Setup(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	defer func() { _ = closeFn() }()

	logger.Info().Msg("hidden")
	logger.Warn().Str("player", "red").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "shown", rec["message"])
	assert.Equal(t, "red", rec["player"])
	assert.Equal(t, "warn", rec["level"])
	assert.Contains(t, rec, "time")
}

func TestSetup_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := Setup(config.LoggingConfig{Level: "debug", Format: "console"}, &buf)

	logger.Debug().Msg("readable")

	out := buf.String()
	assert.Contains(t, out, "readable")
	assert.NotContains(t, out, `"message"`)
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conquest.log")
	var buf bytes.Buffer
	logger, closeFn := Setup(config.LoggingConfig{
		Level:  "info",
		Format: "console",
		File:   config.LogFileConfig{Path: path, MaxSizeMB: 1},
	}, &buf)

	logger.Info().Str("territory", "Alaska").Msg("conquered")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "conquered", rec["message"])
	assert.Equal(t, "Alaska", rec["territory"])
	assert.Contains(t, buf.String(), "conquered")
}
