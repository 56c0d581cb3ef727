package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T, cfg LogConfig) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	setupLogging(&buf, cfg)
	t.Cleanup(func() { SetupLogging(LogConfig{}) })
	return &buf
}

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	buf := captureLog(t, LogConfig{})
	Info("test")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	buf := captureLog(t, LogConfig{Timestamps: BoolPtr(false)})
	Info("hello")
	out := strings.TrimSpace(buf.String())
	assert.Contains(t, out, "hello")
	assert.NotRegexp(t, `^\d{2}:\d{2}:\d{2}`, out)
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(t, LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	Debug("verbose-msg")
	out := strings.TrimSpace(buf.String())
	assert.Contains(t, out, "verbose-msg")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, out)
}

func TestSetupLogging_Levels(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestWarn(t *testing.T) {
	buf := captureLog(t, LogConfig{Timestamps: BoolPtr(false)})
	Warn("ignoring config", "error", "bad yaml")
	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "ignoring config")
	assert.Contains(t, out, "bad yaml")
}

func TestSetupLogging_DebugHiddenByDefault(t *testing.T) {
	buf := captureLog(t, LogConfig{})
	Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestProjectLogger(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	t.Cleanup(func() { SetupLogging(LogConfig{}) })

	l := ProjectLogger("triangle")
	assert.Contains(t, l.GetPrefix(), "p:triangle")
	assert.Equal(t, log.DebugLevel, l.GetLevel())
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
