package logger

import (
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// Options controls how the zap logger is built
type Options struct {
	Production bool
	Level      string
	CallerInfo bool
}

// NewZapLogger creates a new zap-based logger instance
func NewZapLogger(opts Options) core.Logger {
	var cfg zap.Config

	if opts.Production {
		// JSON encoder for log shipping
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.DisableCaller = !opts.CallerInfo
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(core.ParseLogLevel(opts.Level)))

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{
		logger: zapLogger,
		level:  cfg.Level,
	}
}

// NewDefaultLogger creates a development logger at info level
func NewDefaultLogger() core.Logger {
	return NewZapLogger(Options{Level: "info", CallerInfo: true})
}

// NewZapLoggerFromCore wraps an existing zap core, mainly for observing output in tests
func NewZapLoggerFromCore(zc zapcore.Core, level core.LogLevel) core.Logger {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	return &ZapLogger{
		logger: zap.New(zc),
		level:  atomic,
	}
}

// SetLevel changes the minimum level at runtime
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	switch l.level.Level() {
	case zapcore.DebugLevel:
		return core.LogLevelDebug
	case zapcore.WarnLevel:
		return core.LogLevelWarn
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zapcore.DebugLevel
	case core.LogLevelWarn:
		return zapcore.WarnLevel
	case core.LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields core.Fields) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			zapFields = append(zapFields, zap.NamedError(k, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields core.Fields) {
	if !l.level.Enabled(zapcore.DebugLevel) {
		return
	}
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields core.Fields) {
	if !l.level.Enabled(zapcore.InfoLevel) {
		return
	}
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields core.Fields) {
	if !l.level.Enabled(zapcore.WarnLevel) {
		return
	}
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields core.Fields) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
