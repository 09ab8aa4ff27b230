package cache

import "context"

// Key namespaces shared by every backend
const (
	TransactionTypePrefix = "tt_id:"
	ReportPrefix          = "report:"
)

// Cache is a string-valued key/value store with no TTL and no eviction.
// Concurrent writers to the same key race; the last Set wins.
type Cache interface {
	// Get returns the value and true on a hit. A miss is ("", false, nil).
	//
	// Possible errors:
	// - ErrCacheUnavailable: If the backend cannot be reached
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value
	//
	// Possible errors:
	// - ErrCacheUnavailable: If the backend cannot be reached
	Set(ctx context.Context, key string, value string) error
}

// TransactionTypeKey is the backend key for a type name's id
func TransactionTypeKey(name string) string {
	return TransactionTypePrefix + name
}

// ReportKey is the backend key for a report window's cached result
func ReportKey(windowKey string) string {
	return ReportPrefix + windowKey
}
