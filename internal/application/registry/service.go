package registry

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"go.uber.org/zap"
)

// Service handles guest, room and service-catalogue operations
type Service struct {
	guestRepo   registry.GuestRepository
	roomRepo    registry.RoomRepository
	serviceRepo registry.ServiceRepository
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewService creates a new registry application service
func NewService(
	guestRepo registry.GuestRepository,
	roomRepo registry.RoomRepository,
	serviceRepo registry.ServiceRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		guestRepo:   guestRepo,
		roomRepo:    roomRepo,
		serviceRepo: serviceRepo,
		validate:    validator.New(),
		logger:      logger,
	}
}

// AddGuest registers a guest profile
func (s *Service) AddGuest(ctx context.Context, req CreateGuestRequest) (*GuestResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Invalid("invalid guest input: %v", err)
	}

	guest, err := registry.NewGuest(req.Name, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.guestRepo.Save(ctx, guest); err != nil {
		return nil, err
	}

	s.logger.Info("guest registered", zap.Uint("guest_id", guest.ID), zap.String("name", guest.Name))
	return toGuestResponse(guest), nil
}

// ListGuests returns all guests ordered by id
func (s *Service) ListGuests(ctx context.Context) ([]GuestResponse, error) {
	guests, err := s.guestRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]GuestResponse, len(guests))
	for i := range guests {
		responses[i] = *toGuestResponse(&guests[i])
	}
	return responses, nil
}

// AddRoom registers a room. Room numbers are unique.
func (s *Service) AddRoom(ctx context.Context, req CreateRoomRequest) (*RoomResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Invalid("invalid room input: %v", err)
	}

	exists, err := s.roomRepo.ExistsByNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.Conflict("room with number %s already exists", req.RoomNumber)
	}

	room, err := registry.NewRoom(req.RoomNumber, req.RoomType, req.Rate)
	if err != nil {
		return nil, err
	}
	if err := s.roomRepo.Save(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info("room registered", zap.Uint("room_id", room.ID), zap.String("room_number", room.RoomNumber))
	return toRoomResponse(room), nil
}

// ListRooms returns all rooms ordered by room number
func (s *Service) ListRooms(ctx context.Context) ([]RoomResponse, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *toRoomResponse(&rooms[i])
	}
	return responses, nil
}

// AddService adds a service to the catalogue. Service names are unique.
func (s *Service) AddService(ctx context.Context, req CreateServiceRequest) (*ServiceResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Invalid("invalid service input: %v", err)
	}

	exists, err := s.serviceRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.Conflict("service %s already exists", req.Name)
	}

	svc, err := registry.NewService(req.Name, req.Price, req.Category)
	if err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info("service added", zap.Uint("service_id", svc.ID), zap.String("name", svc.Name))
	return toServiceResponse(svc), nil
}

// ListServices returns the catalogue ordered by name
func (s *Service) ListServices(ctx context.Context) ([]ServiceResponse, error) {
	services, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = *toServiceResponse(&services[i])
	}
	return responses, nil
}
