package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.GuestModel{},
		&models.RoomModel{},
		&models.ServiceModel{},
		&models.BookingModel{},
		&models.OrderModel{},
		&models.InvoiceModel{},
		&models.InvoiceItemModel{},
		&models.PaymentModel{},
		&models.ExpenseModel{},
	)
	require.NoError(t, err)

	return db
}
