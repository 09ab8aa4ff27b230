package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts the clock so transaction timestamps are deterministic in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	Sleep(d Duration)
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
