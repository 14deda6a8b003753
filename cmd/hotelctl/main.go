package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	appbilling "github.com/tabakhlazeez/hotelctl/internal/application/billing"
	appbooking "github.com/tabakhlazeez/hotelctl/internal/application/booking"
	appregistry "github.com/tabakhlazeez/hotelctl/internal/application/registry"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/config"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/logger"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/migration"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence"
	"github.com/tabakhlazeez/hotelctl/internal/interfaces/cli"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hotelctl", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dbPath := fs.String("db", "", "Path to the SQLite database (overrides config)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	guestRepo := persistence.NewGormGuestRepository(db.DB)
	roomRepo := persistence.NewGormRoomRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)

	registrySvc := appregistry.NewService(guestRepo, roomRepo, serviceRepo, log)
	bookingSvc := appbooking.NewService(
		bookingRepo, orderRepo, guestRepo, roomRepo, serviceRepo,
		persistence.NewGormBookingTransactionScope(db.DB), log)
	billingSvc := appbilling.NewService(
		invoiceRepo, paymentRepo, expenseRepo, bookingRepo, guestRepo,
		persistence.NewGormBillingTransactionScope(db.DB), log)

	schema := &schemaInitializer{url: cfg.Database.MigrateURL(), logger: log}
	app := cli.NewApp(registrySvc, bookingSvc, billingSvc, schema, cfg.Database.Path, os.Stdout, os.Stderr, log)
	return app.Run(context.Background(), fs.Args())
}

// schemaInitializer builds the migrator lazily so commands other than
// init-db never touch the migration tooling
type schemaInitializer struct {
	url    string
	logger *zap.Logger
}

func (s *schemaInitializer) Up() error {
	m, err := migration.NewMigrator(s.url, s.logger)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}
