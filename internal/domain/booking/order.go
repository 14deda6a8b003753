package booking

import (
	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// Order is a service charge placed against a booking. The total price is
// computed once from the service's price at order time and frozen; orders are
// append-only.
type Order struct {
	shared.BaseEntity
	BookingID  uint            `json:"booking_id"`
	ServiceID  uint            `json:"service_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Notes      string          `json:"notes,omitempty"`
}

// NewOrder creates an order priced at the service's current unit price
func NewOrder(bookingID, serviceID uint, quantity int, unitPrice decimal.Decimal, notes string) (*Order, error) {
	if quantity < 1 {
		return nil, shared.Invalid("quantity must be at least 1")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.Invalid("service price must be positive")
	}
	return &Order{
		BaseEntity: shared.NewBaseEntity(),
		BookingID:  bookingID,
		ServiceID:  serviceID,
		Quantity:   quantity,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Notes:      notes,
	}, nil
}
