package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/signalx"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", "json")
	require.NoError(t, err)
	logger.Info("hello", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "v", entry["k"])

	buf.Reset()
	logger, err = New(&buf, "info", "text")
	require.NoError(t, err)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	_, err = New(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestProbe_LogsChanges(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", "json")
	require.NoError(t, err)

	lamp := signalx.NewNode(signalx.WithName("lamp"), signalx.WithProbe(NewProbe(logger, false)))
	sw := signalx.NewNode(signalx.WithName("switch")).AddOutput(lamp)
	sw.SetState(true)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "only the lamp's change is logged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "signal changed", entry["msg"])
	assert.Equal(t, "lamp", entry["node"])
	assert.Equal(t, "switch", entry["source"])
	assert.Equal(t, true, entry["state"])
}

func TestProbe_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", "text")
	require.NoError(t, err)

	n := signalx.NewNode(signalx.WithName("n"), signalx.WithProbe(NewProbe(logger, true)))
	n.SetState(false) // delivery without a change

	assert.Contains(t, buf.String(), "signal notified")
	assert.NotContains(t, buf.String(), "signal changed")
}

func TestProbe_DisabledLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", "text")
	require.NoError(t, err)

	n := signalx.NewNode(signalx.WithProbe(NewProbe(logger, true)))
	n.SetState(true)
	assert.Empty(t, buf.String())
}
