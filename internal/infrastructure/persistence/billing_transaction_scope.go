package persistence

import (
	"context"

	appbilling "github.com/tabakhlazeez/hotelctl/internal/application/billing"
	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"gorm.io/gorm"
)

// GormBillingTransactionScope implements the billing TransactionScope using
// GORM transactions
type GormBillingTransactionScope struct {
	db *gorm.DB
}

// NewGormBillingTransactionScope creates a new billing transaction scope
func NewGormBillingTransactionScope(db *gorm.DB) *GormBillingTransactionScope {
	return &GormBillingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. A returned
// error rolls the transaction back; nil commits it.
func (s *GormBillingTransactionScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return translateError(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormBillingTxRepos{tx: tx})
	}))
}

type gormBillingTxRepos struct {
	tx *gorm.DB
}

// Invoices returns the invoice repository scoped to the current transaction
func (r *gormBillingTxRepos) Invoices() billing.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// Payments returns the payment repository scoped to the current transaction
func (r *gormBillingTxRepos) Payments() billing.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// Bookings returns the booking repository scoped to the current transaction
func (r *gormBillingTxRepos) Bookings() booking.BookingRepository {
	return NewGormBookingRepository(r.tx)
}

// Orders returns the order repository scoped to the current transaction
func (r *gormBillingTxRepos) Orders() booking.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// Rooms returns the room repository scoped to the current transaction
func (r *gormBillingTxRepos) Rooms() registry.RoomRepository {
	return NewGormRoomRepository(r.tx)
}

// Services returns the service repository scoped to the current transaction
func (r *gormBillingTxRepos) Services() registry.ServiceRepository {
	return NewGormServiceRepository(r.tx)
}

var _ appbilling.TransactionScope = (*GormBillingTransactionScope)(nil)
var _ appbilling.TransactionalRepositories = (*gormBillingTxRepos)(nil)
