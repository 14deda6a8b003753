package booking_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appbooking "github.com/tabakhlazeez/hotelctl/internal/application/booking"
	appregistry "github.com/tabakhlazeez/hotelctl/internal/application/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	registry *appregistry.Service
	booking  *appbooking.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.GuestModel{}, &models.RoomModel{}, &models.ServiceModel{},
		&models.BookingModel{}, &models.OrderModel{},
	))

	log := zap.NewNop()
	guestRepo := persistence.NewGormGuestRepository(db)
	roomRepo := persistence.NewGormRoomRepository(db)
	serviceRepo := persistence.NewGormServiceRepository(db)
	return &fixture{
		registry: appregistry.NewService(guestRepo, roomRepo, serviceRepo, log),
		booking: appbooking.NewService(
			persistence.NewGormBookingRepository(db),
			persistence.NewGormOrderRepository(db),
			guestRepo, roomRepo, serviceRepo,
			persistence.NewGormBookingTransactionScope(db), log),
	}
}

func (f *fixture) addGuestAndRoom(t *testing.T, ctx context.Context) (guestID, roomID uint) {
	t.Helper()
	guest, err := f.registry.AddGuest(ctx, appregistry.CreateGuestRequest{Name: "Alice Smith"})
	require.NoError(t, err)
	room, err := f.registry.AddRoom(ctx, appregistry.CreateRoomRequest{
		RoomNumber: "101", RoomType: "deluxe", Rate: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return guest.ID, room.ID
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("books the room and freezes nights and total", func(t *testing.T) {
		f := setup(t)
		guestID, roomID := f.addGuestAndRoom(t, ctx)

		b, err := f.booking.CreateBooking(ctx, appbooking.CreateBookingRequest{
			GuestID: guestID, RoomID: roomID,
			CheckIn: "2024-01-01", CheckOut: "2024-01-04",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, b.Nights)
		assert.Equal(t, "300.00", b.RoomTotal.StringFixed(2))
		assert.Equal(t, "Alice Smith", b.GuestName)
		assert.Equal(t, "101", b.RoomNumber)
		assert.Equal(t, "upcoming", b.Status)

		rooms, err := f.registry.ListRooms(ctx)
		require.NoError(t, err)
		assert.Equal(t, "occupied", rooms[0].Status)
	})

	t.Run("rejects an occupied room and leaves the store unchanged", func(t *testing.T) {
		f := setup(t)
		guestID, roomID := f.addGuestAndRoom(t, ctx)

		_, err := f.booking.CreateBooking(ctx, appbooking.CreateBookingRequest{
			GuestID: guestID, RoomID: roomID,
			CheckIn: "2024-01-01", CheckOut: "2024-01-04",
		})
		require.NoError(t, err)

		_, err = f.booking.CreateBooking(ctx, appbooking.CreateBookingRequest{
			GuestID: guestID, RoomID: roomID,
			CheckIn: "2024-02-01", CheckOut: "2024-02-03",
		})
		require.Error(t, err)
		assert.True(t, shared.IsConflict(err))

		bookings, err := f.booking.ListBookings(ctx)
		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("rejects an unknown guest", func(t *testing.T) {
		f := setup(t)
		_, roomID := f.addGuestAndRoom(t, ctx)

		_, err := f.booking.CreateBooking(ctx, appbooking.CreateBookingRequest{
			GuestID: 99, RoomID: roomID,
			CheckIn: "2024-01-01", CheckOut: "2024-01-04",
		})
		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))

		// the room stays available after the rollback
		rooms, err := f.registry.ListRooms(ctx)
		require.NoError(t, err)
		assert.Equal(t, "available", rooms[0].Status)
	})

	t.Run("rejects a zero-night stay", func(t *testing.T) {
		f := setup(t)
		guestID, roomID := f.addGuestAndRoom(t, ctx)

		_, err := f.booking.CreateBooking(ctx, appbooking.CreateBookingRequest{
			GuestID: guestID, RoomID: roomID,
			CheckIn: "2024-01-01", CheckOut: "2024-01-01",
		})
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		f := setup(t)
		guestID, roomID := f.addGuestAndRoom(t, ctx)

		_, err := f.booking.CreateBooking(ctx, appbooking.CreateBookingRequest{
			GuestID: guestID, RoomID: roomID,
			CheckIn: "01/01/2024", CheckOut: "2024-01-04",
		})
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})
}

func TestCompleteBooking(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	guestID, roomID := f.addGuestAndRoom(t, ctx)

	b, err := f.booking.CreateBooking(ctx, appbooking.CreateBookingRequest{
		GuestID: guestID, RoomID: roomID,
		CheckIn: "2024-01-01", CheckOut: "2024-01-04",
	})
	require.NoError(t, err)

	result, err := f.booking.CompleteBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, result.AlreadyCompleted)
	assert.Equal(t, "completed", result.Status)

	rooms, err := f.registry.ListRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, "available", rooms[0].Status)

	// completing again is a reported no-op
	result, err = f.booking.CompleteBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, result.AlreadyCompleted)

	_, err = f.booking.CompleteBooking(ctx, 999)
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}

func TestAddOrder(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	guestID, roomID := f.addGuestAndRoom(t, ctx)

	b, err := f.booking.CreateBooking(ctx, appbooking.CreateBookingRequest{
		GuestID: guestID, RoomID: roomID,
		CheckIn: "2024-01-01", CheckOut: "2024-01-04",
	})
	require.NoError(t, err)

	svc, err := f.registry.AddService(ctx, appregistry.CreateServiceRequest{
		Name: "Breakfast", Price: decimal.NewFromInt(20), Category: "dining",
	})
	require.NoError(t, err)

	t.Run("prices the order at the current service price", func(t *testing.T) {
		order, err := f.booking.AddOrder(ctx, appbooking.CreateOrderRequest{
			BookingID: b.ID, ServiceID: svc.ID, Quantity: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, "40.00", order.TotalPrice.StringFixed(2))
		assert.Equal(t, "Breakfast", order.ServiceName)
	})

	t.Run("rejects an unknown booking", func(t *testing.T) {
		_, err := f.booking.AddOrder(ctx, appbooking.CreateOrderRequest{
			BookingID: 999, ServiceID: svc.ID, Quantity: 1,
		})
		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("rejects an unknown service", func(t *testing.T) {
		_, err := f.booking.AddOrder(ctx, appbooking.CreateOrderRequest{
			BookingID: b.ID, ServiceID: 999, Quantity: 1,
		})
		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("filters listings by booking", func(t *testing.T) {
		orders, err := f.booking.ListOrders(ctx, &b.ID)
		require.NoError(t, err)
		assert.Len(t, orders, 1)

		other := uint(999)
		orders, err = f.booking.ListOrders(ctx, &other)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}
