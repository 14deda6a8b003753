package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// DefaultPaymentMethod is used when the operator does not name one
const DefaultPaymentMethod = "cash"

// Payment is a sum received against an invoice. Payments are append-only and
// aggregated to derive the invoice status. Each payment carries a generated
// receipt reference for bookkeeping.
type Payment struct {
	shared.BaseEntity
	InvoiceID   uint            `json:"invoice_id"`
	PaymentDate string          `json:"payment_date"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Reference   uuid.UUID       `json:"reference"`
	Notes       string          `json:"notes,omitempty"`
}

// NewPayment records a payment against an invoice
func NewPayment(invoiceID uint, amount decimal.Decimal, paymentDate time.Time, method, notes string) (*Payment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.Invalid("payment amount must be positive")
	}
	if method == "" {
		method = DefaultPaymentMethod
	}
	return &Payment{
		BaseEntity:  shared.NewBaseEntity(),
		InvoiceID:   invoiceID,
		PaymentDate: shared.FormatDate(paymentDate),
		Amount:      amount,
		Method:      method,
		Reference:   uuid.New(),
		Notes:       notes,
	}, nil
}

// SumAmounts totals a set of payments
func SumAmounts(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
