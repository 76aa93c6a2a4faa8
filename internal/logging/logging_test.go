package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		" error ": slog.LevelError,
		"loud":    slog.LevelDebug,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "json", "warn"))

	logger.Info("dropped")
	logger.Warn("kept", "file", "pack-veggie.html")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "pack-veggie.html", entry["file"])
}

func TestNewHandler_TextIsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "", ""))

	logger.Debug("hello", "n", 1)

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "source=")
}
