package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
)

// GenerateInvoiceRequest is the input for invoicing a booking
type GenerateInvoiceRequest struct {
	BookingID uint   `validate:"required"`
	IssueDate string `validate:"omitempty"` // YYYY-MM-DD, defaults to today
	DueDate   string `validate:"omitempty"` // YYYY-MM-DD, defaults to issue date + 7 days
}

// InvoiceItemResponse is one line on an invoice
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is the output representation of an invoice. Paid and
// Balance are derived from the invoice's payments at read time.
type InvoiceResponse struct {
	ID          uint                  `json:"id"`
	BookingID   uint                  `json:"booking_id"`
	GuestName   string                `json:"guest_name,omitempty"`
	IssueDate   string                `json:"issue_date"`
	DueDate     string                `json:"due_date"`
	Status      string                `json:"status"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	Paid        decimal.Decimal       `json:"paid"`
	Balance     decimal.Decimal       `json:"balance"`
	Items       []InvoiceItemResponse `json:"items,omitempty"`
	Payments    []PaymentResponse     `json:"payments,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

func toInvoiceResponse(inv *billing.Invoice, paid decimal.Decimal) *InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{Description: item.Description, Amount: item.Amount}
	}
	return &InvoiceResponse{
		ID:          inv.ID,
		BookingID:   inv.BookingID,
		IssueDate:   inv.IssueDate,
		DueDate:     inv.DueDate,
		Status:      inv.Status.String(),
		TotalAmount: inv.TotalAmount,
		Paid:        paid,
		Balance:     inv.Balance(paid),
		Items:       items,
		CreatedAt:   inv.CreatedAt,
	}
}

// RecordPaymentRequest is the input for recording a payment
type RecordPaymentRequest struct {
	InvoiceID   uint            `validate:"required"`
	Amount      decimal.Decimal `validate:"-"`
	PaymentDate string          `validate:"omitempty"` // YYYY-MM-DD, defaults to today
	Method      string          `validate:"omitempty,max=50"`
	Notes       string          `validate:"omitempty,max=500"`
}

// PaymentResponse is the output representation of a payment, including the
// invoice status that resulted from recording it
type PaymentResponse struct {
	ID            uint            `json:"id"`
	InvoiceID     uint            `json:"invoice_id"`
	PaymentDate   string          `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes,omitempty"`
	InvoiceStatus string          `json:"invoice_status,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toPaymentResponse(p *billing.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		PaymentDate: p.PaymentDate,
		Amount:      p.Amount,
		Method:      p.Method,
		Reference:   p.Reference.String(),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

// CreateExpenseRequest is the input for logging an operational expense
type CreateExpenseRequest struct {
	Category    string          `validate:"required,max=100"`
	Amount      decimal.Decimal `validate:"-"`
	Description string          `validate:"omitempty,max=500"`
	ExpenseDate string          `validate:"omitempty"` // YYYY-MM-DD, defaults to today
}

// ExpenseResponse is the output representation of an expense
type ExpenseResponse struct {
	ID          uint            `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	ExpenseDate string          `json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseListResponse is an expense listing with its grand total
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    decimal.Decimal   `json:"total"`
}

func toExpenseResponse(e *billing.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
	}
}
