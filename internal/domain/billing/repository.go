package billing

import "context"

// InvoiceRepository persists invoices together with their line items
type InvoiceRepository interface {
	// Save persists the invoice and, on first save, its items
	Save(ctx context.Context, invoice *Invoice) error
	// FindByID loads an invoice with its items
	FindByID(ctx context.Context, id uint) (*Invoice, error)
	ExistsByBookingID(ctx context.Context, bookingID uint) (bool, error)
	// FindAll returns all invoices (items included) ordered by issue date descending
	FindAll(ctx context.Context) ([]Invoice, error)
}

// PaymentFilter narrows payment listings
type PaymentFilter struct {
	InvoiceID *uint
}

// PaymentRepository persists payments
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	// FindByInvoiceID returns an invoice's payments ordered by payment date
	FindByInvoiceID(ctx context.Context, invoiceID uint) ([]Payment, error)
	// FindAll returns payments matching the filter ordered by payment date descending
	FindAll(ctx context.Context, filter PaymentFilter) ([]Payment, error)
}

// ExpenseFilter narrows expense listings to a month and/or year
type ExpenseFilter struct {
	Month *int
	Year  *int
}

// ExpenseRepository persists expenses
type ExpenseRepository interface {
	Save(ctx context.Context, expense *Expense) error
	// FindAll returns expenses matching the filter ordered by expense date descending
	FindAll(ctx context.Context, filter ExpenseFilter) ([]Expense, error)
}
