package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// InvoiceModel is the persistence model for invoices
type InvoiceModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	BookingID   uint            `gorm:"not null;uniqueIndex"`
	IssueDate   string          `gorm:"type:text;not null"`
	DueDate     string          `gorm:"type:text;not null"`
	Status      string          `gorm:"type:text;not null;default:'unpaid'"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice without items
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		BaseEntity:  shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt},
		BookingID:   m.BookingID,
		IssueDate:   m.IssueDate,
		DueDate:     m.DueDate,
		Status:      billing.InvoiceStatus(m.Status),
		TotalAmount: m.TotalAmount,
	}
}

// InvoiceModelFromDomain creates a persistence model from a domain Invoice
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:          i.ID,
		BookingID:   i.BookingID,
		IssueDate:   i.IssueDate,
		DueDate:     i.DueDate,
		Status:      i.Status.String(),
		TotalAmount: i.TotalAmount,
		CreatedAt:   i.CreatedAt,
	}
}

// InvoiceItemModel is the persistence model for invoice line items
type InvoiceItemModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	InvoiceID   uint            `gorm:"not null;index"`
	Description string          `gorm:"type:text;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain InvoiceItem
func (m *InvoiceItemModel) ToDomain() billing.InvoiceItem {
	return billing.InvoiceItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Amount:      m.Amount,
	}
}

// InvoiceItemModelFromDomain creates a persistence model from a domain item
func InvoiceItemModelFromDomain(item *billing.InvoiceItem, invoiceID uint) *InvoiceItemModel {
	return &InvoiceItemModel{
		ID:          item.ID,
		InvoiceID:   invoiceID,
		Description: item.Description,
		Amount:      item.Amount,
	}
}

// PaymentModel is the persistence model for payments
type PaymentModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	InvoiceID   uint            `gorm:"not null;index"`
	PaymentDate string          `gorm:"type:text;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method      string          `gorm:"type:text;not null;default:'cash'"`
	Reference   string          `gorm:"type:text;not null"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *billing.Payment {
	ref, _ := uuid.Parse(m.Reference)
	return &billing.Payment{
		BaseEntity:  shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt},
		InvoiceID:   m.InvoiceID,
		PaymentDate: m.PaymentDate,
		Amount:      m.Amount,
		Method:      m.Method,
		Reference:   ref,
		Notes:       m.Notes,
	}
}

// PaymentModelFromDomain creates a persistence model from a domain Payment
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	return &PaymentModel{
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

// ExpenseModel is the persistence model for operational expenses
type ExpenseModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Category    string          `gorm:"type:text;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string          `gorm:"type:text"`
	ExpenseDate string          `gorm:"type:text;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense
func (m *ExpenseModel) ToDomain() *billing.Expense {
	return &billing.Expense{
		BaseEntity:  shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt},
		Category:    m.Category,
		Amount:      m.Amount,
		Description: m.Description,
		ExpenseDate: m.ExpenseDate,
	}
}

// ExpenseModelFromDomain creates a persistence model from a domain Expense
func ExpenseModelFromDomain(e *billing.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
	}
}
