package registry

import (
	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// Service is a billable catalogue entry (restaurant item, spa treatment, ...).
// Price changes never retroactively alter orders already placed against it.
type Service struct {
	shared.BaseEntity
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
}

// NewService creates a new catalogue service
func NewService(name string, price decimal.Decimal, category string) (*Service, error) {
	if name == "" {
		return nil, shared.Invalid("service name cannot be empty")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.Invalid("service price must be positive")
	}
	return &Service{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		Category:   category,
	}, nil
}
