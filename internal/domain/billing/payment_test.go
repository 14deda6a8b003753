package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

func TestNewPayment(t *testing.T) {
	t.Run("defaults the method to cash and assigns a reference", func(t *testing.T) {
		p, err := NewPayment(3, decimal.NewFromInt(50), date("2024-01-05"), "", "")
		require.NoError(t, err)
		assert.Equal(t, "cash", p.Method)
		assert.Equal(t, "2024-01-05", p.PaymentDate)
		assert.NotEqual(t, uuid.Nil, p.Reference)
	})

	t.Run("keeps an explicit method", func(t *testing.T) {
		p, err := NewPayment(3, decimal.NewFromInt(50), date("2024-01-05"), "card", "front desk")
		require.NoError(t, err)
		assert.Equal(t, "card", p.Method)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := NewPayment(3, decimal.Zero, date("2024-01-05"), "cash", "")
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))

		_, err = NewPayment(3, decimal.NewFromInt(-10), date("2024-01-05"), "cash", "")
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})
}

func TestSumAmounts(t *testing.T) {
	p1, err := NewPayment(3, decimal.RequireFromString("100.50"), date("2024-01-05"), "cash", "")
	require.NoError(t, err)
	p2, err := NewPayment(3, decimal.RequireFromString("39.50"), date("2024-01-06"), "card", "")
	require.NoError(t, err)

	assert.Equal(t, "140.00", SumAmounts([]Payment{*p1, *p2}).StringFixed(2))
	assert.True(t, SumAmounts(nil).IsZero())
}

func TestNewExpense(t *testing.T) {
	t.Run("records category, amount and date", func(t *testing.T) {
		e, err := NewExpense("maintenance", decimal.RequireFromString("75.25"), "boiler repair", date("2024-02-10"))
		require.NoError(t, err)
		assert.Equal(t, "maintenance", e.Category)
		assert.Equal(t, "2024-02-10", e.ExpenseDate)
	})

	t.Run("rejects empty category", func(t *testing.T) {
		_, err := NewExpense("", decimal.NewFromInt(10), "", date("2024-02-10"))
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewExpense("supplies", decimal.Zero, "", date("2024-02-10"))
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})
}
