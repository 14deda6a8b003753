package booking

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"go.uber.org/zap"
)

// Service handles booking lifecycle and service-order operations
type Service struct {
	bookingRepo booking.BookingRepository
	orderRepo   booking.OrderRepository
	guestRepo   registry.GuestRepository
	roomRepo    registry.RoomRepository
	serviceRepo registry.ServiceRepository
	txScope     TransactionScope
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewService creates a new booking application service
func NewService(
	bookingRepo booking.BookingRepository,
	orderRepo booking.OrderRepository,
	guestRepo registry.GuestRepository,
	roomRepo registry.RoomRepository,
	serviceRepo registry.ServiceRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		orderRepo:   orderRepo,
		guestRepo:   guestRepo,
		roomRepo:    roomRepo,
		serviceRepo: serviceRepo,
		txScope:     txScope,
		validate:    validator.New(),
		logger:      logger,
	}
}

// CreateBooking books a room for a guest. The guest and room are verified,
// the room is flipped to occupied and the booking inserted in one
// transaction, so a failure at any step leaves the store unchanged.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Invalid("invalid booking input: %v", err)
	}
	checkIn, err := shared.ParseDate(req.CheckIn, "check-in date")
	if err != nil {
		return nil, err
	}
	checkOut, err := shared.ParseDate(req.CheckOut, "check-out date")
	if err != nil {
		return nil, err
	}

	var response *BookingResponse
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		guest, err := repos.Guests().FindByID(ctx, req.GuestID)
		if err != nil {
			return err
		}
		room, err := repos.Rooms().FindByID(ctx, req.RoomID)
		if err != nil {
			return err
		}
		if err := room.Occupy(); err != nil {
			return err
		}

		b, err := booking.NewBooking(req.GuestID, req.RoomID, checkIn, checkOut, room.Rate)
		if err != nil {
			return err
		}
		if err := repos.Bookings().Save(ctx, b); err != nil {
			return err
		}
		if err := repos.Rooms().Save(ctx, room); err != nil {
			return err
		}

		response = toBookingResponse(b, guest.Name, room.RoomNumber)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Uint("booking_id", response.ID),
		zap.Uint("guest_id", req.GuestID),
		zap.Uint("room_id", req.RoomID),
		zap.Int("nights", response.Nights))
	return response, nil
}

// CompleteBooking checks a booking out and releases its room. Completing an
// already completed booking is a no-op reported in the response.
func (s *Service) CompleteBooking(ctx context.Context, bookingID uint) (*CompleteBookingResponse, error) {
	var response *CompleteBookingResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		b, err := repos.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if !b.Complete() {
			response = &CompleteBookingResponse{
				BookingID:        b.ID,
				Status:           b.Status.String(),
				AlreadyCompleted: true,
			}
			return nil
		}
		if err := repos.Bookings().Save(ctx, b); err != nil {
			return err
		}

		room, err := repos.Rooms().FindByID(ctx, b.RoomID)
		if err != nil {
			return err
		}
		room.Release()
		if err := repos.Rooms().Save(ctx, room); err != nil {
			return err
		}

		response = &CompleteBookingResponse{BookingID: b.ID, Status: b.Status.String()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !response.AlreadyCompleted {
		s.logger.Info("booking completed", zap.Uint("booking_id", bookingID))
	}
	return response, nil
}

// ListBookings returns all bookings with guest names and room numbers
// resolved, most recent check-in first
func (s *Service) ListBookings(ctx context.Context) ([]BookingResponse, error) {
	bookings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	guestNames, err := s.guestNamesByID(ctx)
	if err != nil {
		return nil, err
	}
	roomNumbers, err := s.roomNumbersByID(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		responses[i] = *toBookingResponse(b, guestNames[b.GuestID], roomNumbers[b.RoomID])
	}
	return responses, nil
}

// AddOrder charges a catalogue service to a booking at the service's current
// price. Booking and service existence are checked in the same transaction
// as the insert.
func (s *Service) AddOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Invalid("invalid order input: %v", err)
	}

	var response *OrderResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Bookings().FindByID(ctx, req.BookingID); err != nil {
			return err
		}
		svc, err := repos.Services().FindByID(ctx, req.ServiceID)
		if err != nil {
			return err
		}

		order, err := booking.NewOrder(req.BookingID, req.ServiceID, req.Quantity, svc.Price, req.Notes)
		if err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}

		response = toOrderResponse(order, svc.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order added",
		zap.Uint("order_id", response.ID),
		zap.Uint("booking_id", req.BookingID),
		zap.Uint("service_id", req.ServiceID))
	return response, nil
}

// ListOrders returns orders with service names resolved, most recent first.
// A booking id narrows the listing to that booking.
func (s *Service) ListOrders(ctx context.Context, bookingID *uint) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx, booking.OrderFilter{BookingID: bookingID})
	if err != nil {
		return nil, err
	}

	serviceNames, err := s.serviceNamesByID(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *toOrderResponse(&orders[i], serviceNames[orders[i].ServiceID])
	}
	return responses, nil
}

func (s *Service) guestNamesByID(ctx context.Context) (map[uint]string, error) {
	guests, err := s.guestRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(guests))
	for i := range guests {
		names[guests[i].ID] = guests[i].Name
	}
	return names, nil
}

func (s *Service) roomNumbersByID(ctx context.Context) (map[uint]string, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make(map[uint]string, len(rooms))
	for i := range rooms {
		numbers[rooms[i].ID] = rooms[i].RoomNumber
	}
	return numbers, nil
}

func (s *Service) serviceNamesByID(ctx context.Context) (map[uint]string, error) {
	services, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(services))
	for i := range services {
		names[services[i].ID] = services[i].Name
	}
	return names, nil
}

func toBookingResponse(b *booking.Booking, guestName, roomNumber string) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		GuestID:    b.GuestID,
		GuestName:  guestName,
		RoomID:     b.RoomID,
		RoomNumber: roomNumber,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Nights:     b.Nights,
		RoomTotal:  b.RoomTotal,
		Status:     b.Status.String(),
		CreatedAt:  b.CreatedAt,
	}
}

func toOrderResponse(o *booking.Order, serviceName string) *OrderResponse {
	return &OrderResponse{
		ID:          o.ID,
		BookingID:   o.BookingID,
		ServiceID:   o.ServiceID,
		ServiceName: serviceName,
		Quantity:    o.Quantity,
		TotalPrice:  o.TotalPrice,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
	}
}
