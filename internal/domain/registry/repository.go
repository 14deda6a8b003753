package registry

import "context"

// GuestRepository persists guest profiles
type GuestRepository interface {
	Save(ctx context.Context, guest *Guest) error
	FindByID(ctx context.Context, id uint) (*Guest, error)
	// FindAll returns all guests ordered by id
	FindAll(ctx context.Context) ([]Guest, error)
}

// RoomRepository persists rooms
type RoomRepository interface {
	Save(ctx context.Context, room *Room) error
	FindByID(ctx context.Context, id uint) (*Room, error)
	// FindAll returns all rooms ordered by room number
	FindAll(ctx context.Context) ([]Room, error)
	ExistsByNumber(ctx context.Context, roomNumber string) (bool, error)
}

// ServiceRepository persists the service catalogue
type ServiceRepository interface {
	Save(ctx context.Context, service *Service) error
	FindByID(ctx context.Context, id uint) (*Service, error)
	// FindAll returns all services ordered by name
	FindAll(ctx context.Context) ([]Service, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
