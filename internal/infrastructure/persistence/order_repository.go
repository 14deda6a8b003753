package persistence

import (
	"context"

	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements booking.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM-based order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save persists an order and backfills the generated id
func (r *GormOrderRepository) Save(ctx context.Context, o *booking.Order) error {
	model := models.OrderModelFromDomain(o)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translateError(err)
	}
	o.ID = model.ID
	return nil
}

// FindAll retrieves orders matching the filter, most recent first
func (r *GormOrderRepository) FindAll(ctx context.Context, filter booking.OrderFilter) ([]booking.Order, error) {
	query := r.db.WithContext(ctx).Model(&models.OrderModel{})
	if filter.BookingID != nil {
		query = query.Where("booking_id = ?", *filter.BookingID)
	}
	var rows []models.OrderModel
	if err := query.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainOrders(rows), nil
}

// FindByBookingID retrieves a booking's orders in insertion order
func (r *GormOrderRepository) FindByBookingID(ctx context.Context, bookingID uint) ([]booking.Order, error) {
	var rows []models.OrderModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).
		Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainOrders(rows), nil
}

func toDomainOrders(rows []models.OrderModel) []booking.Order {
	orders := make([]booking.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders
}
