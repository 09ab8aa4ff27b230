package dto

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
)

// Accepted layouts, tried in order. Layouts without an offset are parsed as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 request timestamp
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errs.ErrInvalidTimestamp, value)
}
