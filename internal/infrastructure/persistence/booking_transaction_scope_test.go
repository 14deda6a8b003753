package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appbooking "github.com/tabakhlazeez/hotelctl/internal/application/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
)

func TestBookingTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormBookingTransactionScope(db)
	ctx := context.Background()

	roomRepo := NewGormRoomRepository(db)
	room, err := registry.NewRoom("101", "deluxe", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NoError(t, roomRepo.Save(ctx, room))

	boom := errors.New("boom")
	err = scope.Execute(ctx, func(repos appbooking.TransactionalRepositories) error {
		b, err := booking.NewBooking(1, room.ID, testDate("2024-01-01"), testDate("2024-01-04"), room.Rate)
		if err != nil {
			return err
		}
		if err := repos.Bookings().Save(ctx, b); err != nil {
			return err
		}
		require.NoError(t, room.Occupy())
		if err := repos.Rooms().Save(ctx, room); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// both writes rolled back
	bookings, err := NewGormBookingRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	found, err := roomRepo.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.False(t, found.IsOccupied())
}

func TestBookingTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormBookingTransactionScope(db)
	ctx := context.Background()

	roomRepo := NewGormRoomRepository(db)
	room, err := registry.NewRoom("101", "deluxe", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NoError(t, roomRepo.Save(ctx, room))

	err = scope.Execute(ctx, func(repos appbooking.TransactionalRepositories) error {
		b, err := booking.NewBooking(1, room.ID, testDate("2024-01-01"), testDate("2024-01-04"), room.Rate)
		if err != nil {
			return err
		}
		if err := repos.Bookings().Save(ctx, b); err != nil {
			return err
		}
		if err := room.Occupy(); err != nil {
			return err
		}
		return repos.Rooms().Save(ctx, room)
	})
	require.NoError(t, err)

	bookings, err := NewGormBookingRepository(db).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.True(t, bookings[0].RoomTotal.Equal(decimal.NewFromInt(300)))

	found, err := roomRepo.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, found.IsOccupied())
}
