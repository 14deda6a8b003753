package billing

import (
	"context"

	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
)

// TransactionScope provides transactional access to the repositories a
// billing operation touches. All repository operations inside Execute share
// one database transaction and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs fn within a database transaction. A returned error rolls
	// the transaction back; nil commits it.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to repositories bound to the
// current transaction. Generating an invoice reads the booking, room and
// orders and writes the invoice with its items; recording a payment inserts
// the payment and recomputes the invoice status over the same snapshot.
type TransactionalRepositories interface {
	// Invoices returns the invoice repository scoped to the transaction
	Invoices() billing.InvoiceRepository
	// Payments returns the payment repository scoped to the transaction
	Payments() billing.PaymentRepository
	// Bookings returns the booking repository scoped to the transaction
	Bookings() booking.BookingRepository
	// Orders returns the order repository scoped to the transaction
	Orders() booking.OrderRepository
	// Rooms returns the room repository scoped to the transaction
	Rooms() registry.RoomRepository
	// Services returns the service repository scoped to the transaction
	Services() registry.ServiceRepository
}
