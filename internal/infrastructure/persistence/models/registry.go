package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// GuestModel is the persistence model for guests
type GuestModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	Phone     string    `gorm:"type:text"`
	Email     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (GuestModel) TableName() string {
	return "guests"
}

// ToDomain converts the persistence model to a domain Guest
func (m *GuestModel) ToDomain() *registry.Guest {
	return &registry.Guest{
		BaseEntity: shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt},
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
	}
}

// GuestModelFromDomain creates a persistence model from a domain Guest
func GuestModelFromDomain(g *registry.Guest) *GuestModel {
	return &GuestModel{
		ID:        g.ID,
		Name:      g.Name,
		Phone:     g.Phone,
		Email:     g.Email,
		CreatedAt: g.CreatedAt,
	}
}

// RoomModel is the persistence model for rooms
type RoomModel struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	RoomNumber string          `gorm:"type:text;not null;uniqueIndex"`
	RoomType   string          `gorm:"type:text;not null"`
	Rate       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status     string          `gorm:"type:text;not null;default:'available'"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (RoomModel) TableName() string {
	return "rooms"
}

// ToDomain converts the persistence model to a domain Room
func (m *RoomModel) ToDomain() *registry.Room {
	return &registry.Room{
		BaseEntity: shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt},
		RoomNumber: m.RoomNumber,
		RoomType:   m.RoomType,
		Rate:       m.Rate,
		Status:     registry.RoomStatus(m.Status),
	}
}

// RoomModelFromDomain creates a persistence model from a domain Room
func RoomModelFromDomain(r *registry.Room) *RoomModel {
	return &RoomModel{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Rate:       r.Rate,
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt,
	}
}

// ServiceModel is the persistence model for catalogue services
type ServiceModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:text;not null;uniqueIndex"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category  string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts the persistence model to a domain Service
func (m *ServiceModel) ToDomain() *registry.Service {
	return &registry.Service{
		BaseEntity: shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt},
		Name:       m.Name,
		Price:      m.Price,
		Category:   m.Category,
	}
}

// ServiceModelFromDomain creates a persistence model from a domain Service
func ServiceModelFromDomain(s *registry.Service) *ServiceModel {
	return &ServiceModel{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price,
		Category:  s.Category,
		CreatedAt: s.CreatedAt,
	}
}
