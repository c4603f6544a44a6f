package util

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T, level Level) *bytes.Buffer {
	buf := &bytes.Buffer{}
	SetSink(buf)
	SetLevel(level)
	t.Cleanup(func() {
		DisableTrace()
		SetSink(os.Stdout)
		SetLevel(Notice)
	})
	return buf
}

func TestLoggerWritesModuleName(t *testing.T) {
	buf := captureLogs(t, Info)

	NewLogger("surface").Infof("resized to %dx%d", 800, 600)

	assert.Contains(t, buf.String(), "[surface]")
	assert.Contains(t, buf.String(), "resized to 800x600")
}

func TestLevelFiltersLowerMessages(t *testing.T) {
	buf := captureLogs(t, Warning)
	logger := NewLogger("frame")

	logger.Info("hidden")
	logger.Warning("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetSinkKeepsLevel(t *testing.T) {
	captureLogs(t, Error)

	buf := &bytes.Buffer{}
	SetSink(buf)
	NewLogger("frame").Warning("dropped")

	assert.Empty(t, buf.String())
}

func TestTrace(t *testing.T) {
	buf := captureLogs(t, Debug)

	Trace("tick %d", 1)
	assert.False(t, TraceEnabled())
	assert.Empty(t, buf.String())

	EnableTrace()
	Trace("tick %d", 2)
	assert.True(t, TraceEnabled())
	assert.Contains(t, buf.String(), "[trace]")
	assert.Contains(t, buf.String(), "tick 2")
}
