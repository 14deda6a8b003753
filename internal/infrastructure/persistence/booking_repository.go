package persistence

import (
	"context"
	"errors"

	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBookingRepository implements booking.BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GORM-based booking repository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Save persists a booking and backfills the generated id
func (r *GormBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	model := models.BookingModelFromDomain(b)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translateError(err)
	}
	b.ID = model.ID
	return nil
}

// FindByID retrieves a booking by id
func (r *GormBookingRepository) FindByID(ctx context.Context, id uint) (*booking.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("booking %d not found", id)
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves all bookings, most recent check-in first
func (r *GormBookingRepository) FindAll(ctx context.Context) ([]booking.Booking, error) {
	var rows []models.BookingModel
	if err := r.db.WithContext(ctx).Order("check_in DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	bookings := make([]booking.Booking, len(rows))
	for i := range rows {
		bookings[i] = *rows[i].ToDomain()
	}
	return bookings, nil
}
