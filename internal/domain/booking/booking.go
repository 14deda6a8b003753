package booking

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// Status represents the lifecycle state of a booking
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
)

// IsValid checks if the status is a valid booking Status
func (s Status) IsValid() bool {
	return s == StatusUpcoming || s == StatusCompleted
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Booking represents a stay. Nights and the room total are computed once at
// creation from the room's rate at that moment and frozen thereafter; later
// rate changes never alter an existing booking.
type Booking struct {
	shared.BaseEntity
	GuestID   uint            `json:"guest_id"`
	RoomID    uint            `json:"room_id"`
	CheckIn   string          `json:"check_in"`
	CheckOut  string          `json:"check_out"`
	Status    Status          `json:"status"`
	Nights    int             `json:"nights"`
	RoomTotal decimal.Decimal `json:"room_total"`
}

// NewBooking creates an upcoming booking for the given guest and room.
// The nightly rate is the room's rate at call time.
func NewBooking(guestID, roomID uint, checkIn, checkOut time.Time, rate decimal.Decimal) (*Booking, error) {
	nights := shared.DaysBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, shared.Invalid("check-out date must be after check-in date")
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.Invalid("nightly rate must be positive")
	}
	return &Booking{
		BaseEntity: shared.NewBaseEntity(),
		GuestID:    guestID,
		RoomID:     roomID,
		CheckIn:    shared.FormatDate(checkIn),
		CheckOut:   shared.FormatDate(checkOut),
		Status:     StatusUpcoming,
		Nights:     nights,
		RoomTotal:  rate.Mul(decimal.NewFromInt(int64(nights))),
	}, nil
}

// IsCompleted returns true if the booking has already been completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// Complete marks the booking as completed. Completing an already completed
// booking is a no-op; the return value reports whether a transition happened.
func (b *Booking) Complete() bool {
	if b.IsCompleted() {
		return false
	}
	b.Status = StatusCompleted
	return true
}
