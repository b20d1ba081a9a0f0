package testutil

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/MGTheTrain/textseal/internal/pkg/config"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// RecordingLogger keeps every message in memory so tests can inspect what was logged.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []string
}

// NewRecordingLogger returns an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(level string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+" "+fmt.Sprint(args...))
}

// Debug records a debug message.
func (l *RecordingLogger) Debug(args ...interface{}) { l.record("DEBUG", args...) }

// Info records an informational message.
func (l *RecordingLogger) Info(args ...interface{}) { l.record("INFO", args...) }

// Warn records a warning message.
func (l *RecordingLogger) Warn(args ...interface{}) { l.record("WARN", args...) }

// Error records an error message.
func (l *RecordingLogger) Error(args ...interface{}) { l.record("ERROR", args...) }

// Fatal records a fatal message. It does not exit.
func (l *RecordingLogger) Fatal(args ...interface{}) { l.record("FATAL", args...) }

// Panic records a message and panics.
func (l *RecordingLogger) Panic(args ...interface{}) {
	l.record("PANIC", args...)
	panic(fmt.Sprint(args...))
}

// Output returns all recorded entries joined by newlines.
func (l *RecordingLogger) Output() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.entries, "\n")
}
