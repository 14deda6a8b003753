package persistence

import (
	"context"
	"errors"

	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM-based invoice repository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Save persists the invoice header and inserts any items that have not been
// stored yet. Items are immutable once written.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.Conflict("invoice already exists for booking %d", invoice.BookingID)
		}
		return translateError(err)
	}
	invoice.ID = model.ID

	for i := range invoice.Items {
		if invoice.Items[i].ID != 0 {
			continue
		}
		item := models.InvoiceItemModelFromDomain(&invoice.Items[i], model.ID)
		if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
			return translateError(err)
		}
		invoice.Items[i].ID = item.ID
		invoice.Items[i].InvoiceID = model.ID
	}
	return nil
}

// FindByID retrieves an invoice with its line items
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uint) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("invoice %d not found", id)
		}
		return nil, translateError(err)
	}
	invoice := model.ToDomain()
	items, err := r.findItems(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

// ExistsByBookingID reports whether the booking has been invoiced already
func (r *GormInvoiceRepository) ExistsByBookingID(ctx context.Context, bookingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("booking_id = ?", bookingID).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// FindAll retrieves all invoices with items, most recently issued first
func (r *GormInvoiceRepository) FindAll(ctx context.Context) ([]billing.Invoice, error) {
	var rows []models.InvoiceModel
	if err := r.db.WithContext(ctx).Order("issue_date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	invoices := make([]billing.Invoice, len(rows))
	for i := range rows {
		invoice := rows[i].ToDomain()
		items, err := r.findItems(ctx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		invoice.Items = items
		invoices[i] = *invoice
	}
	return invoices, nil
}

func (r *GormInvoiceRepository) findItems(ctx context.Context, invoiceID uint) ([]billing.InvoiceItem, error) {
	var rows []models.InvoiceItemModel
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).
		Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	items := make([]billing.InvoiceItem, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return items, nil
}
