package persistence

import (
	"context"

	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPaymentRepository implements billing.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM-based payment repository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Save persists a payment and backfills the generated id
func (r *GormPaymentRepository) Save(ctx context.Context, p *billing.Payment) error {
	model := models.PaymentModelFromDomain(p)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translateError(err)
	}
	p.ID = model.ID
	return nil
}

// FindByInvoiceID retrieves an invoice's payments in chronological order
func (r *GormPaymentRepository) FindByInvoiceID(ctx context.Context, invoiceID uint) ([]billing.Payment, error) {
	var rows []models.PaymentModel
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).
		Order("payment_date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainPayments(rows), nil
}

// FindAll retrieves payments matching the filter, most recent first
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter billing.PaymentFilter) ([]billing.Payment, error) {
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{})
	if filter.InvoiceID != nil {
		query = query.Where("invoice_id = ?", *filter.InvoiceID)
	}
	var rows []models.PaymentModel
	if err := query.Order("payment_date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainPayments(rows), nil
}

func toDomainPayments(rows []models.PaymentModel) []billing.Payment {
	payments := make([]billing.Payment, len(rows))
	for i := range rows {
		payments[i] = *rows[i].ToDomain()
	}
	return payments
}
