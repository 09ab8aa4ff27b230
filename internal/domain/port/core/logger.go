package core

import "strings"

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for detailed debug information
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for general operational information
	LogLevelInfo
	// LogLevelWarn for warnings
	LogLevelWarn
	// LogLevelError for errors information
	LogLevelError
)

// Fields carries structured context for a log entry
type Fields = map[string]any

// ParseLogLevel maps a config string to a LogLevel, defaulting to info
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger defines logging operations
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// GetLevel gets the current log level
	GetLevel() LogLevel
	// Debug logs debug messages
	Debug(message string, fields Fields)
	// Info logs informational messages
	Info(message string, fields Fields)
	// Warn logs warning messages
	Warn(message string, fields Fields)
	// Error logs errors messages
	Error(message string, fields Fields)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
