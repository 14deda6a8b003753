package persistence

import (
	"context"
	"errors"

	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormServiceRepository implements registry.ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GORM-based service repository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Save persists a catalogue service and backfills the generated id
func (r *GormServiceRepository) Save(ctx context.Context, service *registry.Service) error {
	model := models.ServiceModelFromDomain(service)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.Conflict("service %s already exists", service.Name)
		}
		return translateError(err)
	}
	service.ID = model.ID
	return nil
}

// FindByID retrieves a service by id
func (r *GormServiceRepository) FindByID(ctx context.Context, id uint) (*registry.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("service %d not found", id)
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves all services ordered by name
func (r *GormServiceRepository) FindAll(ctx context.Context) ([]registry.Service, error) {
	var rows []models.ServiceModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	services := make([]registry.Service, len(rows))
	for i := range rows {
		services[i] = *rows[i].ToDomain()
	}
	return services, nil
}

// ExistsByName reports whether a service with the given name exists
func (r *GormServiceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ServiceModel{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
