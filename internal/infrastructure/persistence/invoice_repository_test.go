package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

func testDate(value string) time.Time {
	t, err := time.Parse(shared.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestInvoice(t *testing.T, bookingID uint) *billing.Invoice {
	t.Helper()
	inv, err := billing.NewInvoice(bookingID, testDate("2024-01-04"), nil, "101", 3,
		decimal.NewFromInt(300), []billing.OrderLine{
			{ServiceName: "Breakfast", Quantity: 2, TotalPrice: decimal.NewFromInt(40)},
		})
	require.NoError(t, err)
	return inv
}

func TestInvoiceRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	t.Run("persists the invoice with its items", func(t *testing.T) {
		inv := newTestInvoice(t, 7)
		require.NoError(t, repo.Save(ctx, inv))
		assert.NotZero(t, inv.ID)
		for _, item := range inv.Items {
			assert.NotZero(t, item.ID)
			assert.Equal(t, inv.ID, item.InvoiceID)
		}

		found, err := repo.FindByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 2)
		assert.Equal(t, "Room 101 x 3 nights", found.Items[0].Description)
		assert.Equal(t, "Breakfast x 2", found.Items[1].Description)
		assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(340)))
		assert.True(t, found.ItemsTotal().Equal(found.TotalAmount))
	})

	t.Run("updates the status without duplicating items", func(t *testing.T) {
		inv, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)

		inv.ApplyPaidSum(decimal.NewFromInt(100))
		require.NoError(t, repo.Save(ctx, inv))

		found, err := repo.FindByID(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, billing.InvoiceStatusPartial, found.Status)
		assert.Len(t, found.Items, 2)
	})

	t.Run("rejects a second invoice for the same booking", func(t *testing.T) {
		dup := newTestInvoice(t, 7)
		err := repo.Save(ctx, dup)
		require.Error(t, err)
		assert.True(t, shared.IsConflict(err))
	})
}

func TestInvoiceRepository_ExistsByBookingID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestInvoice(t, 7)))

	exists, err := repo.ExistsByBookingID(ctx, 7)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByBookingID(ctx, 8)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInvoiceRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	older, err := billing.NewInvoice(1, testDate("2024-01-01"), nil, "101", 1, decimal.NewFromInt(90), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, older))

	newer, err := billing.NewInvoice(2, testDate("2024-03-01"), nil, "102", 2, decimal.NewFromInt(200), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, newer))

	invoices, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "2024-03-01", invoices[0].IssueDate)
	assert.Equal(t, "2024-01-01", invoices[1].IssueDate)
	assert.Len(t, invoices[0].Items, 1)
}
