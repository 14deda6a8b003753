package registry

import (
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// Guest represents a guest profile. Profiles are immutable once created.
type Guest struct {
	shared.BaseEntity
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// NewGuest creates a new guest profile
func NewGuest(name, phone, email string) (*Guest, error) {
	if name == "" {
		return nil, shared.Invalid("guest name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.Invalid("guest name cannot exceed 200 characters")
	}
	return &Guest{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      phone,
		Email:      email,
	}, nil
}
