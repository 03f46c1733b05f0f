package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/signalx"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 16*time.Millisecond, cfg.TickRate)
	assert.Equal(t, 1000, cfg.MaxRequests)
	assert.Empty(t, cfg.MetricsAddr)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, signalx.ModeEdge, mode)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SIGNALX_LOG_LEVEL", "debug")
	t.Setenv("SIGNALX_LOG_FORMAT", "json")
	t.Setenv("SIGNALX_PROPAGATION", "once")
	t.Setenv("SIGNALX_TICK_RATE", "5ms")
	t.Setenv("SIGNALX_METRICS_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5*time.Millisecond, cfg.TickRate)
	assert.Equal(t, ":9090", cfg.MetricsAddr)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, signalx.ModeOnce, mode)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"SIGNALX_PROPAGATION":           "sometimes",
		"SIGNALX_TICK_RATE":             "-1s",
		"SIGNALX_MAX_REQUESTS_PER_TICK": "zero",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
