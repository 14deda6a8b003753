package persistence

import (
	"context"

	appbooking "github.com/tabakhlazeez/hotelctl/internal/application/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"gorm.io/gorm"
)

// GormBookingTransactionScope implements the booking TransactionScope using
// GORM transactions
type GormBookingTransactionScope struct {
	db *gorm.DB
}

// NewGormBookingTransactionScope creates a new booking transaction scope
func NewGormBookingTransactionScope(db *gorm.DB) *GormBookingTransactionScope {
	return &GormBookingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. A returned
// error rolls the transaction back; nil commits it.
func (s *GormBookingTransactionScope) Execute(ctx context.Context, fn func(repos appbooking.TransactionalRepositories) error) error {
	return translateError(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormBookingTxRepos{tx: tx})
	}))
}

type gormBookingTxRepos struct {
	tx *gorm.DB
}

// Bookings returns the booking repository scoped to the current transaction
func (r *gormBookingTxRepos) Bookings() booking.BookingRepository {
	return NewGormBookingRepository(r.tx)
}

// Orders returns the order repository scoped to the current transaction
func (r *gormBookingTxRepos) Orders() booking.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// Guests returns the guest repository scoped to the current transaction
func (r *gormBookingTxRepos) Guests() registry.GuestRepository {
	return NewGormGuestRepository(r.tx)
}

// Rooms returns the room repository scoped to the current transaction
func (r *gormBookingTxRepos) Rooms() registry.RoomRepository {
	return NewGormRoomRepository(r.tx)
}

// Services returns the service repository scoped to the current transaction
func (r *gormBookingTxRepos) Services() registry.ServiceRepository {
	return NewGormServiceRepository(r.tx)
}

var _ appbooking.TransactionScope = (*GormBookingTransactionScope)(nil)
var _ appbooking.TransactionalRepositories = (*gormBookingTxRepos)(nil)
