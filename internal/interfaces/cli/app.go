package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	appbilling "github.com/tabakhlazeez/hotelctl/internal/application/billing"
	appbooking "github.com/tabakhlazeez/hotelctl/internal/application/booking"
	appregistry "github.com/tabakhlazeez/hotelctl/internal/application/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"go.uber.org/zap"
)

// SchemaInitializer applies the store schema for init-db
type SchemaInitializer interface {
	Up() error
}

// App is the command-line front end. Every command goes through Run, and
// every error leaves through reportError, the single place that maps domain
// error codes to operator-facing messages and exit codes.
type App struct {
	registry *appregistry.Service
	booking  *appbooking.Service
	billing  *appbilling.Service
	schema   SchemaInitializer
	dbPath   string
	out      io.Writer
	errOut   io.Writer
	logger   *zap.Logger
}

// NewApp wires the command-line front end
func NewApp(
	registrySvc *appregistry.Service,
	bookingSvc *appbooking.Service,
	billingSvc *appbilling.Service,
	schema SchemaInitializer,
	dbPath string,
	out, errOut io.Writer,
	logger *zap.Logger,
) *App {
	return &App{
		registry: registrySvc,
		booking:  bookingSvc,
		billing:  billingSvc,
		schema:   schema,
		dbPath:   dbPath,
		out:      out,
		errOut:   errOut,
		logger:   logger,
	}
}

// Run dispatches a command line and returns the process exit code
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.printUsage()
		return 2
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "init-db":
		err = a.runInitDB()
	case "add-guest":
		err = a.runAddGuest(ctx, rest)
	case "list-guests":
		err = a.runListGuests(ctx)
	case "add-room":
		err = a.runAddRoom(ctx, rest)
	case "list-rooms":
		err = a.runListRooms(ctx)
	case "create-booking":
		err = a.runCreateBooking(ctx, rest)
	case "list-bookings":
		err = a.runListBookings(ctx)
	case "complete-booking":
		err = a.runCompleteBooking(ctx, rest)
	case "service":
		err = a.runGroup(ctx, cmd, rest, map[string]groupHandler{
			"add":  a.runAddService,
			"list": func(ctx context.Context, _ []string) error { return a.runListServices(ctx) },
		})
	case "order":
		err = a.runGroup(ctx, cmd, rest, map[string]groupHandler{
			"add":  a.runAddOrder,
			"list": a.runListOrders,
		})
	case "invoice":
		err = a.runGroup(ctx, cmd, rest, map[string]groupHandler{
			"generate": a.runGenerateInvoice,
			"list":     func(ctx context.Context, _ []string) error { return a.runListInvoices(ctx) },
			"show":     a.runShowInvoice,
		})
	case "payment":
		err = a.runGroup(ctx, cmd, rest, map[string]groupHandler{
			"add":  a.runAddPayment,
			"list": a.runListPayments,
		})
	case "expense":
		err = a.runGroup(ctx, cmd, rest, map[string]groupHandler{
			"add":  a.runAddExpense,
			"list": a.runListExpenses,
		})
	case "help", "-h", "--help":
		a.printUsage()
		return 0
	default:
		fmt.Fprintf(a.errOut, "unknown command: %s\n\n", cmd)
		a.printUsage()
		return 2
	}

	if err != nil {
		return a.reportError(err)
	}
	return 0
}

type groupHandler func(ctx context.Context, args []string) error

func (a *App) runGroup(ctx context.Context, group string, args []string, handlers map[string]groupHandler) error {
	if len(args) == 0 {
		return shared.Invalid("%s requires a subcommand", group)
	}
	handler, ok := handlers[args[0]]
	if !ok {
		return shared.Invalid("unknown %s subcommand: %s", group, args[0])
	}
	return handler(ctx, args[1:])
}

// reportError is the single error boundary: domain error codes become
// operator-facing messages, anything else is logged as an internal failure.
func (a *App) reportError(err error) int {
	switch {
	case shared.IsSchemaMissing(err):
		fmt.Fprintln(a.errOut, "Database schema not found. Run 'hotelctl init-db' first.")
	case shared.IsValidation(err), shared.IsNotFound(err), shared.IsConflict(err):
		fmt.Fprintf(a.errOut, "Error: %s\n", err.Error())
	default:
		a.logger.Error("command failed", zap.Error(err))
		fmt.Fprintf(a.errOut, "Error: %s\n", err.Error())
	}
	return 1
}

func (a *App) runInitDB() error {
	if err := a.schema.Up(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Database initialised at %s\n", a.dbPath)
	return nil
}

func (a *App) printUsage() {
	fmt.Fprint(a.errOut, `Usage: hotelctl [-db PATH] COMMAND

Commands:
  init-db                      Create the database schema
  add-guest                    Add a guest profile
  list-guests                  Display all guests
  add-room                     Add a room to the inventory
  list-rooms                   List all rooms with availability
  create-booking               Create a booking and reserve the room
  list-bookings                Show bookings with room and guest details
  complete-booking             Mark a booking as completed and free the room
  service add|list             Manage the service catalogue
  order add|list               Manage service orders tied to bookings
  invoice generate|list|show   Handle invoicing
  payment add|list             Track invoice payments
  expense add|list             Track hotel expenses

Run 'hotelctl COMMAND -h' for command flags.
`)
}

// parseDecimal parses a money flag value
func parseDecimal(value, field string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, shared.Invalid("%s is required", field)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, shared.Invalid("%s must be a decimal number", field)
	}
	return d, nil
}

// parseID parses a positive integer identifier flag value
func parseID(value int, field string) (uint, error) {
	if value <= 0 {
		return 0, shared.Invalid("%s is required", field)
	}
	return uint(value), nil
}

// money formats a decimal amount with two places for display
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatUint(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
