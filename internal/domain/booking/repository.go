package booking

import "context"

// BookingRepository persists bookings
type BookingRepository interface {
	Save(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id uint) (*Booking, error)
	// FindAll returns all bookings ordered by check-in date descending
	FindAll(ctx context.Context) ([]Booking, error)
}

// OrderFilter narrows order listings
type OrderFilter struct {
	BookingID *uint
}

// OrderRepository persists service orders
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	// FindAll returns orders matching the filter ordered by creation time descending
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)
	// FindByBookingID returns a booking's orders ordered by id
	FindByBookingID(ctx context.Context, bookingID uint) ([]Order, error)
}
