package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
)

func TestZapLogger_LevelFiltering(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerFromCore(zc, core.LogLevelInfo)

	l.Debug("hidden", nil)
	l.Info("coin inserted", map[string]any{"denomination": int64(100)})
	l.Warn("change unavailable", map[string]any{"credit": int64(20)})

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "coin inserted", entry.Message)
	assert.Equal(t, int64(100), entry.ContextMap()["denomination"])

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("visible", nil)
	assert.Equal(t, 3, logs.Len())

	l.SetLevel(core.LogLevelError)
	l.Warn("dropped", nil)
	l.Error("kept", map[string]any{"error": errors.New("boom")})
	require.Equal(t, 4, logs.Len())
	assert.Equal(t, "boom", logs.All()[3].ContextMap()["error"])
}

func TestZapLogger_With(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerFromCore(zc, core.LogLevelInfo)

	child := l.With(map[string]any{"component": "http"})
	child.Info("request", map[string]any{"status": 200})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "http", logs.All()[0].ContextMap()["component"])

	// the child shares the parent level
	l.SetLevel(core.LogLevelWarn)
	child.Info("dropped", nil)
	assert.Equal(t, 1, logs.Len())
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vending.log")

	l, err := NewZapLogger(Options{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	l.Info("machine started", map[string]any{"products": 5})
	require.NoError(t, l.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"machine started"`)
	assert.Contains(t, string(data), `"products":5`)
	assert.Contains(t, string(data), `"timestamp"`)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	assert.Same(t, l, l.With(map[string]any{"a": 1}))
	l.Info("ignored", nil)
	assert.NoError(t, l.Flush())
}
