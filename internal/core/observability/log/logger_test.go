package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Log(LevelTrace, "trace msg", String("k", "v"))
	l.Log(LevelInfo, "info msg", Int("n", 3))
	l.Log(LevelCritical, "critical msg", Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, true, entries[0].ContextMap()["trace"])
	assert.Equal(t, "v", entries[0].ContextMap()["k"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.EqualValues(t, 3, entries[1].ContextMap()["n"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, true, entries[2].ContextMap()["critical"])
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestLoggerWith(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewFromZap(zap.New(core)).With(String("source", "script"))

	l.Debug("dropped")
	l.Warn("kept")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Message)
	assert.Equal(t, "script", entries[0].ContextMap()["source"])
}

func TestSetLevel(t *testing.T) {
	l := New(LevelInfo)
	assert.Equal(t, LevelInfo, l.GetLevel())
	assert.False(t, l.checkLevel(LevelDebug))

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	assert.True(t, l.checkLevel(LevelTrace))

	l.SetLevel(LevelSilent)
	assert.False(t, l.checkLevel(LevelFatal))
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical, LevelFatal} {
		parsed, err := ParseLevel(lvl.String())
		require.NoError(t, err)
		assert.Equal(t, lvl, parsed)
	}
	parsed, err := ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, parsed)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
