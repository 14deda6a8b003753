package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPartial, InvoiceStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// InvoiceItem is a line on an invoice: one for the room charge and one per
// service order, written at generation time and never recomputed.
type InvoiceItem struct {
	ID          uint            `json:"id"`
	InvoiceID   uint            `json:"invoice_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderLine is the order data an invoice needs to bill a service charge
type OrderLine struct {
	ServiceName string
	Quantity    int
	TotalPrice  decimal.Decimal
}

// DefaultPaymentTermDays is added to the issue date when no due date is given
const DefaultPaymentTermDays = 7

// Invoice bills a booking for its frozen room total plus all of its service
// orders. At most one invoice exists per booking; the total is computed once
// at generation time.
type Invoice struct {
	shared.BaseEntity
	BookingID   uint            `json:"booking_id"`
	IssueDate   string          `json:"issue_date"`
	DueDate     string          `json:"due_date"`
	Status      InvoiceStatus   `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []InvoiceItem   `json:"items"`
}

// NewInvoice generates an invoice for a booking. The room line is labelled
// "Room {number} x {nights} nights"; each order line "{service} x {qty}".
// The sum of item amounts always equals the invoice total.
func NewInvoice(bookingID uint, issueDate time.Time, dueDate *time.Time, roomNumber string, nights int, roomTotal decimal.Decimal, orders []OrderLine) (*Invoice, error) {
	if roomTotal.LessThanOrEqual(decimal.Zero) {
		return nil, shared.Invalid("room total must be positive")
	}
	due := issueDate.AddDate(0, 0, DefaultPaymentTermDays)
	if dueDate != nil {
		due = *dueDate
	}

	items := make([]InvoiceItem, 0, len(orders)+1)
	items = append(items, InvoiceItem{
		Description: fmt.Sprintf("Room %s x %d nights", roomNumber, nights),
		Amount:      roomTotal,
	})
	total := roomTotal
	for _, line := range orders {
		items = append(items, InvoiceItem{
			Description: fmt.Sprintf("%s x %d", line.ServiceName, line.Quantity),
			Amount:      line.TotalPrice,
		})
		total = total.Add(line.TotalPrice)
	}

	return &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		BookingID:   bookingID,
		IssueDate:   shared.FormatDate(issueDate),
		DueDate:     shared.FormatDate(due),
		Status:      InvoiceStatusUnpaid,
		TotalAmount: total,
		Items:       items,
	}, nil
}

// StatusForPaidSum derives the invoice status from an aggregated payment sum
func StatusForPaidSum(total, paid decimal.Decimal) InvoiceStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return InvoiceStatusPaid
	case paid.IsPositive():
		return InvoiceStatusPartial
	default:
		return InvoiceStatusUnpaid
	}
}

// ApplyPaidSum recomputes the invoice status from the given payment sum
func (i *Invoice) ApplyPaidSum(paid decimal.Decimal) {
	i.Status = StatusForPaidSum(i.TotalAmount, paid)
}

// Balance returns the amount still owed given an aggregated payment sum
func (i *Invoice) Balance(paid decimal.Decimal) decimal.Decimal {
	return i.TotalAmount.Sub(paid)
}

// ItemsTotal sums the invoice's line item amounts
func (i *Invoice) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.Items {
		total = total.Add(item.Amount)
	}
	return total
}
