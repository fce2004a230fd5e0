package iologger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/pantry/pkg/config"
	"github.com/gnames/pantry/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"unknown falls back to info", "loud", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, parseLevel(v.input), v.msg)
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, config.LogConfig{Format: "json", Level: "warn"})
	log := slog.New(h)

	log.Info("hidden")
	log.Warn("shown", "table", "recipes")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "recipes", rec["table"])

	buf.Reset()
	h = NewHandler(&buf, config.LogConfig{Format: "text", Level: "info"})
	slog.New(h).Info("plain", "rows", 2)
	assert.Contains(t, buf.String(), "msg=plain rows=2")
}

func TestInitFile(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	logDir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "debug", Destination: "file"}
	closer, err := Init(logDir, cfg)
	require.NoError(t, err)

	slog.Debug("connected", "driver", "sqlite")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"driver":"sqlite"`)
}

func TestInitFileError(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	_, err := Init(filepath.Join(t.TempDir(), "missing"), cfg)
	assert.True(t, errcode.Is(err, errcode.CreateLogFileError))
}
