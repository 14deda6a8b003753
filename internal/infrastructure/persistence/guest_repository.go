package persistence

import (
	"context"
	"errors"

	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormGuestRepository implements registry.GuestRepository using GORM
type GormGuestRepository struct {
	db *gorm.DB
}

// NewGormGuestRepository creates a new GORM-based guest repository
func NewGormGuestRepository(db *gorm.DB) *GormGuestRepository {
	return &GormGuestRepository{db: db}
}

// Save persists a guest and backfills the generated id
func (r *GormGuestRepository) Save(ctx context.Context, guest *registry.Guest) error {
	model := models.GuestModelFromDomain(guest)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translateError(err)
	}
	guest.ID = model.ID
	return nil
}

// FindByID retrieves a guest by id
func (r *GormGuestRepository) FindByID(ctx context.Context, id uint) (*registry.Guest, error) {
	var model models.GuestModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("guest %d not found", id)
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves all guests ordered by id
func (r *GormGuestRepository) FindAll(ctx context.Context) ([]registry.Guest, error) {
	var rows []models.GuestModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	guests := make([]registry.Guest, len(rows))
	for i := range rows {
		guests[i] = *rows[i].ToDomain()
	}
	return guests, nil
}
