package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// requestIDKey is set by the HTTP layer so SQL traces can be correlated with requests
type requestIDKey struct{}

// WithRequestID stores the request id for the gorm logger to pick up
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// DatabaseLogger is a GORM logger that writes through the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a gorm logger at the given level (silent, error, warn, info)
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      parseGormLevel(level),
		slowThreshold: time.Duration(200 * coreport.Millisecond),
		timeProvider:  timeProvider,
	}
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Trace logs SQL operations. Record-not-found is an expected outcome and is not logged as an error.
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	var elapsed time.Duration
	if l.timeProvider != nil {
		elapsed = l.timeProvider.Since(begin).Std()
	} else {
		elapsed = time.Since(begin)
	}

	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	if !(failed && l.logLevel >= logger.Error) && !(slow && l.logLevel >= logger.Warn) && l.logLevel < logger.Info {
		return
	}

	sql, rows := fc()
	fields := l.baseFields(ctx)
	fields["elapsed_ms"] = elapsed.Milliseconds()
	fields["rows"] = rows
	fields["sql"] = sql
	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}

	switch {
	case failed && l.logLevel >= logger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL Error", fields)
	case slow && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if ctx != nil {
		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
			fields["request_id"] = id
		}
	}
	return fields
}

// extractQueryType determines the type of SQL query (SELECT, INSERT, UPDATE, DELETE)
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))
	for _, kind := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sqlUpper, kind) {
			return kind
		}
	}
	return ""
}
