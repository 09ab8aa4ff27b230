package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
)

// isoLayout matches a naive ISO-8601 timestamp without fractional seconds
const isoLayout = "2006-01-02T15:04:05"

// TimestampResolution is the finest precision stored for ledger and report timestamps.
// Cache keys render exactly this precision.
const TimestampResolution = time.Microsecond

// ReportWindow identifies a report: one user and an inclusive [DateStart, DateEnd] range
type ReportWindow struct {
	UserID    uint64
	DateStart time.Time
	DateEnd   time.Time
}

// NewReportWindow validates and normalizes the window to UTC at TimestampResolution
func NewReportWindow(userID uint64, start, end time.Time) (ReportWindow, error) {
	if userID == 0 {
		return ReportWindow{}, errs.ErrInvalidUserID
	}
	if start.IsZero() || end.IsZero() {
		return ReportWindow{}, errs.ErrInvalidTimestamp
	}

	start, end = start.UTC().Truncate(TimestampResolution), end.UTC().Truncate(TimestampResolution)
	if end.Before(start) {
		return ReportWindow{}, errs.ErrInvalidDateRange
	}

	return ReportWindow{UserID: userID, DateStart: start, DateEnd: end}, nil
}

// CacheKey renders "<user>_<start>_<end>". Equal windows always produce equal keys.
func (w ReportWindow) CacheKey() string {
	return fmt.Sprintf("%d_%s_%s", w.UserID, FormatISO(w.DateStart), FormatISO(w.DateEnd))
}

// FormatISO renders t in UTC as 2006-01-02T15:04:05, appending .ffffff only
// when the microsecond component is non-zero
func FormatISO(t time.Time) string {
	t = t.UTC()
	s := t.Format(isoLayout)
	if us := t.Nanosecond() / int(time.Microsecond); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

// TransactionReport is the durable record of a materialized window
type TransactionReport struct {
	ID        uint64
	UserID    uint64
	DateStart time.Time
	DateEnd   time.Time
}

// NewTransactionReport builds the unsaved report row for a window
func NewTransactionReport(window ReportWindow) *TransactionReport {
	return &TransactionReport{
		UserID:    window.UserID,
		DateStart: window.DateStart,
		DateEnd:   window.DateEnd,
	}
}

// ReportTransactionRelation links one report to one transaction of its result set
type ReportTransactionRelation struct {
	ID            uint64
	ReportID      uint64
	TransactionID uint64
}
