package logger

import (
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
)

// NoopLogger discards everything. Used by tests and tools that don't need output.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

func (l *NoopLogger) Debug(string, core.Fields) {}

func (l *NoopLogger) Info(string, core.Fields) {}

func (l *NoopLogger) Warn(string, core.Fields) {}

func (l *NoopLogger) Error(string, core.Fields) {}

func (l *NoopLogger) Flush() error { return nil }
