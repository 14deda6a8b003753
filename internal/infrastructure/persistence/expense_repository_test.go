package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
)

func intPtr(v int) *int { return &v }

func TestExpenseRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormExpenseRepository(db)
	ctx := context.Background()

	seed := []struct {
		category string
		amount   string
		date     string
	}{
		{"maintenance", "75.25", "2024-02-10"},
		{"supplies", "30.00", "2024-02-20"},
		{"maintenance", "120.00", "2024-03-05"},
		{"utilities", "210.40", "2023-02-15"},
	}
	for _, s := range seed {
		expense, err := billing.NewExpense(s.category, decimal.RequireFromString(s.amount), "", testDate(s.date))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, expense))
	}

	t.Run("returns everything most recent first without filters", func(t *testing.T) {
		expenses, err := repo.FindAll(ctx, billing.ExpenseFilter{})
		require.NoError(t, err)
		require.Len(t, expenses, 4)
		assert.Equal(t, "2024-03-05", expenses[0].ExpenseDate)
		assert.Equal(t, "2023-02-15", expenses[3].ExpenseDate)
	})

	t.Run("filters by month across years", func(t *testing.T) {
		expenses, err := repo.FindAll(ctx, billing.ExpenseFilter{Month: intPtr(2)})
		require.NoError(t, err)
		require.Len(t, expenses, 3)
	})

	t.Run("filters by month and year together", func(t *testing.T) {
		expenses, err := repo.FindAll(ctx, billing.ExpenseFilter{Month: intPtr(2), Year: intPtr(2024)})
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.True(t, billing.SumExpenses(expenses).Equal(decimal.RequireFromString("105.25")))
	})

	t.Run("filters by year alone", func(t *testing.T) {
		expenses, err := repo.FindAll(ctx, billing.ExpenseFilter{Year: intPtr(2023)})
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, "utilities", expenses[0].Category)
	})
}
