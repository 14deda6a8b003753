package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// BookingModel is the persistence model for bookings. Dates are stored as
// ISO "YYYY-MM-DD" text so lexicographic and chronological order coincide.
type BookingModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	GuestID   uint            `gorm:"not null;index"`
	RoomID    uint            `gorm:"not null;index"`
	CheckIn   string          `gorm:"type:text;not null"`
	CheckOut  string          `gorm:"type:text;not null"`
	Status    string          `gorm:"type:text;not null;default:'upcoming'"`
	Nights    int             `gorm:"not null"`
	RoomTotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts the persistence model to a domain Booking
func (m *BookingModel) ToDomain() *booking.Booking {
	return &booking.Booking{
		BaseEntity: shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt},
		GuestID:    m.GuestID,
		RoomID:     m.RoomID,
		CheckIn:    m.CheckIn,
		CheckOut:   m.CheckOut,
		Status:     booking.Status(m.Status),
		Nights:     m.Nights,
		RoomTotal:  m.RoomTotal,
	}
}

// BookingModelFromDomain creates a persistence model from a domain Booking
func BookingModelFromDomain(b *booking.Booking) *BookingModel {
	return &BookingModel{
		ID:        b.ID,
		GuestID:   b.GuestID,
		RoomID:    b.RoomID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Status:    b.Status.String(),
		Nights:    b.Nights,
		RoomTotal: b.RoomTotal,
		CreatedAt: b.CreatedAt,
	}
}

// OrderModel is the persistence model for service orders
type OrderModel struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	BookingID  uint            `gorm:"not null;index"`
	ServiceID  uint            `gorm:"not null;index"`
	Quantity   int             `gorm:"not null;default:1"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Notes      string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *booking.Order {
	return &booking.Order{
		BaseEntity: shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt},
		BookingID:  m.BookingID,
		ServiceID:  m.ServiceID,
		Quantity:   m.Quantity,
		TotalPrice: m.TotalPrice,
		Notes:      m.Notes,
	}
}

// OrderModelFromDomain creates a persistence model from a domain Order
func OrderModelFromDomain(o *booking.Order) *OrderModel {
	return &OrderModel{
		ID:         o.ID,
		BookingID:  o.BookingID,
		ServiceID:  o.ServiceID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Notes:      o.Notes,
		CreatedAt:  o.CreatedAt,
	}
}
