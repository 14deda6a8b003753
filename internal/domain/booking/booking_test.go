package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

func date(value string) time.Time {
	t, err := time.Parse(shared.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewBooking(t *testing.T) {
	t.Run("computes nights and room total from the rate", func(t *testing.T) {
		b, err := NewBooking(1, 2, date("2024-01-01"), date("2024-01-04"), decimal.NewFromInt(100))
		require.NoError(t, err)

		assert.Equal(t, 3, b.Nights)
		assert.True(t, b.RoomTotal.Equal(decimal.NewFromInt(300)))
		assert.Equal(t, StatusUpcoming, b.Status)
		assert.Equal(t, "2024-01-01", b.CheckIn)
		assert.Equal(t, "2024-01-04", b.CheckOut)
	})

	t.Run("rejects check-out equal to check-in", func(t *testing.T) {
		_, err := NewBooking(1, 2, date("2024-01-01"), date("2024-01-01"), decimal.NewFromInt(100))
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects check-out before check-in", func(t *testing.T) {
		_, err := NewBooking(1, 2, date("2024-01-04"), date("2024-01-01"), decimal.NewFromInt(100))
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects non-positive rate", func(t *testing.T) {
		_, err := NewBooking(1, 2, date("2024-01-01"), date("2024-01-04"), decimal.Zero)
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("keeps fractional rates exact", func(t *testing.T) {
		rate := decimal.RequireFromString("99.95")
		b, err := NewBooking(1, 2, date("2024-03-10"), date("2024-03-12"), rate)
		require.NoError(t, err)
		assert.Equal(t, "199.90", b.RoomTotal.StringFixed(2))
	})
}

func TestBookingComplete(t *testing.T) {
	b, err := NewBooking(1, 2, date("2024-01-01"), date("2024-01-04"), decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, b.Complete())
	assert.Equal(t, StatusCompleted, b.Status)
	assert.True(t, b.IsCompleted())

	// second completion is a no-op
	assert.False(t, b.Complete())
	assert.Equal(t, StatusCompleted, b.Status)
}

func TestNewOrder(t *testing.T) {
	t.Run("prices the order at unit price times quantity", func(t *testing.T) {
		o, err := NewOrder(1, 2, 3, decimal.RequireFromString("12.50"), "late checkout snack")
		require.NoError(t, err)
		assert.Equal(t, "37.50", o.TotalPrice.StringFixed(2))
		assert.Equal(t, 3, o.Quantity)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewOrder(1, 2, 0, decimal.NewFromInt(10), "")
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects non-positive unit price", func(t *testing.T) {
		_, err := NewOrder(1, 2, 1, decimal.Zero, "")
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})
}
