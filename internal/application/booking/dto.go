package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest is the input for creating a booking
type CreateBookingRequest struct {
	GuestID  uint   `validate:"required"`
	RoomID   uint   `validate:"required"`
	CheckIn  string `validate:"required"`
	CheckOut string `validate:"required"`
}

// BookingResponse is the output representation of a booking. Guest name and
// room number are resolved so listings read like the front desk ledger.
type BookingResponse struct {
	ID         uint            `json:"id"`
	GuestID    uint            `json:"guest_id"`
	GuestName  string          `json:"guest_name"`
	RoomID     uint            `json:"room_id"`
	RoomNumber string          `json:"room_number"`
	CheckIn    string          `json:"check_in"`
	CheckOut   string          `json:"check_out"`
	Nights     int             `json:"nights"`
	RoomTotal  decimal.Decimal `json:"room_total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CompleteBookingResponse reports the outcome of a completion request
type CompleteBookingResponse struct {
	BookingID        uint   `json:"booking_id"`
	Status           string `json:"status"`
	AlreadyCompleted bool   `json:"already_completed"`
}

// CreateOrderRequest is the input for charging a service to a booking
type CreateOrderRequest struct {
	BookingID uint   `validate:"required"`
	ServiceID uint   `validate:"required"`
	Quantity  int    `validate:"required,min=1"`
	Notes     string `validate:"omitempty,max=500"`
}

// OrderResponse is the output representation of a service order
type OrderResponse struct {
	ID          uint            `json:"id"`
	BookingID   uint            `json:"booking_id"`
	ServiceID   uint            `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
