package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
)

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Time
	}{
		{"2024-01-01T00:00:00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T03:00:00+03:00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-05T07:08:09.000001", time.Date(2024, 3, 5, 7, 8, 9, 1000, time.UTC)},
		{"2024-01-01 12:30:00", time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2124-01-01", time.Date(2124, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			parsed, err := ParseTimestamp(tc.input)

			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(parsed), "got %s", parsed)
			assert.Equal(t, time.UTC, parsed.Location())
		})
	}

	t.Run("Garbage is a validation error", func(t *testing.T) {
		_, err := ParseTimestamp("yesterday")

		assert.ErrorIs(t, err, errs.ErrInvalidTimestamp)
		assert.True(t, errs.IsValidationError(err))
	})
}
