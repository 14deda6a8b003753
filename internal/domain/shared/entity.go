package shared

import "time"

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uint
	GetCreatedAt() time.Time
}

// BaseEntity provides common fields for all entities. IDs are integer
// autoincrement values assigned by the store on first save; a zero ID marks
// an entity that has not been persisted yet.
type BaseEntity struct {
	ID        uint
	CreatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uint {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// NewBaseEntity creates a new base entity stamped with the current time
func NewBaseEntity() BaseEntity {
	return BaseEntity{CreatedAt: time.Now()}
}
