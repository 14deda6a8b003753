package registry

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
)

// CreateGuestRequest is the input for registering a guest
type CreateGuestRequest struct {
	Name  string `validate:"required,max=200"`
	Phone string `validate:"omitempty,max=50"`
	Email string `validate:"omitempty,email"`
}

// GuestResponse is the output representation of a guest
type GuestResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toGuestResponse(g *registry.Guest) *GuestResponse {
	return &GuestResponse{
		ID:        g.ID,
		Name:      g.Name,
		Phone:     g.Phone,
		Email:     g.Email,
		CreatedAt: g.CreatedAt,
	}
}

// CreateRoomRequest is the input for registering a room
type CreateRoomRequest struct {
	RoomNumber string          `validate:"required,max=20"`
	RoomType   string          `validate:"required,max=50"`
	Rate       decimal.Decimal `validate:"-"`
}

// RoomResponse is the output representation of a room
type RoomResponse struct {
	ID         uint            `json:"id"`
	RoomNumber string          `json:"room_number"`
	RoomType   string          `json:"room_type"`
	Rate       decimal.Decimal `json:"rate"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toRoomResponse(r *registry.Room) *RoomResponse {
	return &RoomResponse{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Rate:       r.Rate,
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt,
	}
}

// CreateServiceRequest is the input for adding a catalogue service
type CreateServiceRequest struct {
	Name     string          `validate:"required,max=100"`
	Price    decimal.Decimal `validate:"-"`
	Category string          `validate:"omitempty,max=50"`
}

// ServiceResponse is the output representation of a catalogue service
type ServiceResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func toServiceResponse(s *registry.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price,
		Category:  s.Category,
		CreatedAt: s.CreatedAt,
	}
}
