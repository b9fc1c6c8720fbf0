package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestStopwatch(t *testing.T) {
	var buf bytes.Buffer
	sw := startTimer(newLogger(&buf, log.InfoLevel))
	sw.done("Built flow field", "visited", 12)

	out := buf.String()
	assert.Contains(t, out, "flowgrid")
	assert.Contains(t, out, "Built flow field")
	assert.Contains(t, out, "visited=12")
	assert.Contains(t, out, "elapsed=")

	buf.Reset()
	cause := errors.New("bad target")
	err := sw.fail("Flow field rejected", cause)
	assert.Same(t, cause, err)
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "bad target")
}

func TestNewLoggerReportsCallerAtDebug(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.DebugLevel).Debug("where")
	assert.Contains(t, buf.String(), "log_test.go")

	buf.Reset()
	newLogger(&buf, log.InfoLevel).Info("where")
	assert.NotContains(t, buf.String(), "log_test.go")
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	assert.Same(t, custom, loggerFromContext(withLogger(context.Background(), custom)))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}
