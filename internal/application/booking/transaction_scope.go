package booking

import (
	"context"

	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
)

// TransactionScope provides transactional access to the repositories a
// booking operation touches. All repository operations inside Execute share
// one database transaction and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs fn within a database transaction. A returned error rolls
	// the transaction back; nil commits it.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to repositories bound to the
// current transaction. Creating a booking must read the guest and room,
// flip the room status and insert the booking as one atomic unit.
type TransactionalRepositories interface {
	// Bookings returns the booking repository scoped to the transaction
	Bookings() booking.BookingRepository
	// Orders returns the order repository scoped to the transaction
	Orders() booking.OrderRepository
	// Guests returns the guest repository scoped to the transaction
	Guests() registry.GuestRepository
	// Rooms returns the room repository scoped to the transaction
	Rooms() registry.RoomRepository
	// Services returns the service repository scoped to the transaction
	Services() registry.ServiceRepository
}
