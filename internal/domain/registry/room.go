package registry

import (
	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// RoomStatus represents the occupancy state of a room
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
)

// IsValid checks if the status is a valid RoomStatus
func (s RoomStatus) IsValid() bool {
	return s == RoomStatusAvailable || s == RoomStatusOccupied
}

// String returns the string representation of RoomStatus
func (s RoomStatus) String() string {
	return string(s)
}

// Room represents a rentable room. Its status is mutated only by the booking
// lifecycle: a room is occupied while exactly one upcoming booking references
// it and available otherwise.
type Room struct {
	shared.BaseEntity
	RoomNumber string          `json:"room_number"`
	RoomType   string          `json:"room_type"`
	Rate       decimal.Decimal `json:"rate"`
	Status     RoomStatus      `json:"status"`
}

// NewRoom creates a new available room
func NewRoom(roomNumber, roomType string, rate decimal.Decimal) (*Room, error) {
	if roomNumber == "" {
		return nil, shared.Invalid("room number cannot be empty")
	}
	if roomType == "" {
		return nil, shared.Invalid("room type cannot be empty")
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.Invalid("nightly rate must be positive")
	}
	return &Room{
		BaseEntity: shared.NewBaseEntity(),
		RoomNumber: roomNumber,
		RoomType:   roomType,
		Rate:       rate,
		Status:     RoomStatusAvailable,
	}, nil
}

// IsOccupied returns true if the room currently hosts an upcoming booking
func (r *Room) IsOccupied() bool {
	return r.Status == RoomStatusOccupied
}

// Occupy marks the room as occupied by a new booking
func (r *Room) Occupy() error {
	if r.IsOccupied() {
		return shared.Conflict("room %s is currently occupied", r.RoomNumber)
	}
	r.Status = RoomStatusOccupied
	return nil
}

// Release frees the room after its booking completes
func (r *Room) Release() {
	r.Status = RoomStatusAvailable
}
