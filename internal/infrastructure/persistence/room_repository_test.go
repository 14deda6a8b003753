package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

func TestRoomRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRoomRepository(db)
	ctx := context.Background()

	t.Run("assigns an id on first save", func(t *testing.T) {
		room, err := registry.NewRoom("101", "deluxe", decimal.NewFromInt(150))
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, room))
		assert.NotZero(t, room.ID)

		found, err := repo.FindByID(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, "101", found.RoomNumber)
		assert.True(t, found.Rate.Equal(decimal.NewFromInt(150)))
	})

	t.Run("rejects a duplicate room number as a conflict", func(t *testing.T) {
		dup, err := registry.NewRoom("101", "suite", decimal.NewFromInt(200))
		require.NoError(t, err)

		err = repo.Save(ctx, dup)
		require.Error(t, err)
		assert.True(t, shared.IsConflict(err))
	})

	t.Run("persists status changes", func(t *testing.T) {
		room, err := registry.NewRoom("102", "standard", decimal.NewFromInt(90))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, room))

		require.NoError(t, room.Occupy())
		require.NoError(t, repo.Save(ctx, room))

		found, err := repo.FindByID(ctx, room.ID)
		require.NoError(t, err)
		assert.True(t, found.IsOccupied())
	})
}

func TestRoomRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRoomRepository(db)
	ctx := context.Background()

	for _, number := range []string{"202", "101", "110"} {
		room, err := registry.NewRoom(number, "standard", decimal.NewFromInt(90))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, room))
	}

	rooms, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, "110", rooms[1].RoomNumber)
	assert.Equal(t, "202", rooms[2].RoomNumber)
}

func TestRoomRepository_ExistsByNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRoomRepository(db)
	ctx := context.Background()

	room, err := registry.NewRoom("101", "deluxe", decimal.NewFromInt(150))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, room))

	exists, err := repo.ExistsByNumber(ctx, "101")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByNumber(ctx, "999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRoomRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRoomRepository(db)

	_, err := repo.FindByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}
