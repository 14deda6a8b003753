package persistence

import (
	"context"
	"errors"

	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRoomRepository implements registry.RoomRepository using GORM
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GORM-based room repository
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// Save persists a room and backfills the generated id. A duplicate room
// number surfaces as a conflict even when the caller skipped the pre-check.
func (r *GormRoomRepository) Save(ctx context.Context, room *registry.Room) error {
	model := models.RoomModelFromDomain(room)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.Conflict("room with number %s already exists", room.RoomNumber)
		}
		return translateError(err)
	}
	room.ID = model.ID
	return nil
}

// FindByID retrieves a room by id
func (r *GormRoomRepository) FindByID(ctx context.Context, id uint) (*registry.Room, error) {
	var model models.RoomModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("room %d not found", id)
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves all rooms ordered by room number
func (r *GormRoomRepository) FindAll(ctx context.Context) ([]registry.Room, error) {
	var rows []models.RoomModel
	if err := r.db.WithContext(ctx).Order("room_number").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	rooms := make([]registry.Room, len(rows))
	for i := range rows {
		rooms[i] = *rows[i].ToDomain()
	}
	return rooms, nil
}

// ExistsByNumber reports whether a room with the given number exists
func (r *GormRoomRepository) ExistsByNumber(ctx context.Context, roomNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RoomModel{}).
		Where("room_number = ?", roomNumber).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
