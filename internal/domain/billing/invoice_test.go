package billing

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

func TestNewInvoice(t *testing.T) {
	t.Run("builds room line plus order lines", func(t *testing.T) {
		orders := []OrderLine{
			{ServiceName: "Breakfast", Quantity: 2, TotalPrice: decimal.NewFromInt(40)},
			{ServiceName: "Spa", Quantity: 1, TotalPrice: decimal.NewFromInt(80)},
		}
		inv, err := NewInvoice(7, date("2024-01-04"), nil, "101", 3, decimal.NewFromInt(300), orders)
		require.NoError(t, err)

		require.Len(t, inv.Items, 3)
		assert.Equal(t, "Room 101 x 3 nights", inv.Items[0].Description)
		assert.Equal(t, "Breakfast x 2", inv.Items[1].Description)
		assert.Equal(t, "Spa x 1", inv.Items[2].Description)
		assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(420)))
		assert.True(t, inv.ItemsTotal().Equal(inv.TotalAmount))
		assert.Equal(t, InvoiceStatusUnpaid, inv.Status)
	})

	t.Run("defaults the due date to seven days after issue", func(t *testing.T) {
		inv, err := NewInvoice(7, date("2024-01-04"), nil, "101", 3, decimal.NewFromInt(300), nil)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-04", inv.IssueDate)
		assert.Equal(t, "2024-01-11", inv.DueDate)
	})

	t.Run("honours an explicit due date", func(t *testing.T) {
		due := date("2024-02-01")
		inv, err := NewInvoice(7, date("2024-01-04"), &due, "101", 3, decimal.NewFromInt(300), nil)
		require.NoError(t, err)
		assert.Equal(t, "2024-02-01", inv.DueDate)
	})

	t.Run("rejects non-positive room total", func(t *testing.T) {
		_, err := NewInvoice(7, date("2024-01-04"), nil, "101", 3, decimal.Zero, nil)
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})
}

func TestStatusForPaidSum(t *testing.T) {
	total := decimal.NewFromInt(340)

	assert.Equal(t, InvoiceStatusUnpaid, StatusForPaidSum(total, decimal.Zero))
	assert.Equal(t, InvoiceStatusPartial, StatusForPaidSum(total, decimal.NewFromInt(100)))
	assert.Equal(t, InvoiceStatusPaid, StatusForPaidSum(total, total))
	// overpayment still reads as paid
	assert.Equal(t, InvoiceStatusPaid, StatusForPaidSum(total, decimal.NewFromInt(400)))
}

func TestInvoiceBalance(t *testing.T) {
	inv, err := NewInvoice(7, date("2024-01-04"), nil, "101", 3, decimal.NewFromInt(300), nil)
	require.NoError(t, err)

	assert.Equal(t, "300.00", inv.Balance(decimal.Zero).StringFixed(2))
	assert.Equal(t, "200.00", inv.Balance(decimal.NewFromInt(100)).StringFixed(2))

	inv.ApplyPaidSum(decimal.NewFromInt(100))
	assert.Equal(t, InvoiceStatusPartial, inv.Status)
	inv.ApplyPaidSum(decimal.NewFromInt(300))
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
	inv.ApplyPaidSum(decimal.Zero)
	assert.Equal(t, InvoiceStatusUnpaid, inv.Status)
}
