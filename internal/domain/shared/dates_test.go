package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("parses an ISO civil date", func(t *testing.T) {
		parsed, err := ParseDate("2024-01-31", "check-in date")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("rejects other layouts with the field name in the message", func(t *testing.T) {
		for _, bad := range []string{"31-01-2024", "2024/01/31", "yesterday", ""} {
			_, err := ParseDate(bad, "check-in date")
			require.Error(t, err, bad)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), "check-in date")
		}
	})
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(start, start.AddDate(0, 0, 3)))
	assert.Equal(t, 0, DaysBetween(start, start))
	assert.Equal(t, -2, DaysBetween(start, start.AddDate(0, 0, -2)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-02-05", FormatDate(time.Date(2024, 2, 5, 13, 45, 0, 0, time.UTC)))
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("guest %d not found", 9)))
	assert.True(t, IsConflict(Conflict("room %s is currently occupied", "101")))
	assert.True(t, IsValidation(Invalid("quantity must be at least 1")))
	assert.True(t, IsSchemaMissing(ErrSchemaMissing))

	assert.False(t, IsNotFound(Conflict("x")))
	assert.False(t, IsSchemaMissing(nil))
}
