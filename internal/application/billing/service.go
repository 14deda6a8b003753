package billing

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
	"github.com/tabakhlazeez/hotelctl/internal/domain/booking"
	"github.com/tabakhlazeez/hotelctl/internal/domain/registry"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"go.uber.org/zap"
)

// Service handles invoicing, payments and expense bookkeeping
type Service struct {
	invoiceRepo billing.InvoiceRepository
	paymentRepo billing.PaymentRepository
	expenseRepo billing.ExpenseRepository
	bookingRepo booking.BookingRepository
	guestRepo   registry.GuestRepository
	txScope     TransactionScope
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewService creates a new billing application service
func NewService(
	invoiceRepo billing.InvoiceRepository,
	paymentRepo billing.PaymentRepository,
	expenseRepo billing.ExpenseRepository,
	bookingRepo booking.BookingRepository,
	guestRepo registry.GuestRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		bookingRepo: bookingRepo,
		guestRepo:   guestRepo,
		txScope:     txScope,
		validate:    validator.New(),
		logger:      logger,
	}
}

// GenerateInvoice bills a booking: one line for the frozen room total and one
// per service order, priced as they were ordered. A booking is invoiced at
// most once; the duplicate check and the insert share a transaction.
func (s *Service) GenerateInvoice(ctx context.Context, req GenerateInvoiceRequest) (*InvoiceResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Invalid("invalid invoice input: %v", err)
	}
	issueDate := shared.Today()
	if req.IssueDate != "" {
		parsed, err := shared.ParseDate(req.IssueDate, "issue date")
		if err != nil {
			return nil, err
		}
		issueDate = parsed
	}
	var dueDate *time.Time
	if req.DueDate != "" {
		due, err := shared.ParseDate(req.DueDate, "due date")
		if err != nil {
			return nil, err
		}
		dueDate = &due
	}

	var response *InvoiceResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Invoices().ExistsByBookingID(ctx, req.BookingID)
		if err != nil {
			return err
		}
		if exists {
			return shared.Conflict("invoice already exists for booking %d", req.BookingID)
		}

		b, err := repos.Bookings().FindByID(ctx, req.BookingID)
		if err != nil {
			return err
		}
		room, err := repos.Rooms().FindByID(ctx, b.RoomID)
		if err != nil {
			return err
		}
		orders, err := repos.Orders().FindByBookingID(ctx, b.ID)
		if err != nil {
			return err
		}

		lines := make([]billing.OrderLine, len(orders))
		for i := range orders {
			svc, err := repos.Services().FindByID(ctx, orders[i].ServiceID)
			if err != nil {
				return err
			}
			lines[i] = billing.OrderLine{
				ServiceName: svc.Name,
				Quantity:    orders[i].Quantity,
				TotalPrice:  orders[i].TotalPrice,
			}
		}

		invoice, err := billing.NewInvoice(b.ID, issueDate, dueDate, room.RoomNumber, b.Nights, b.RoomTotal, lines)
		if err != nil {
			return err
		}
		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}

		response = toInvoiceResponse(invoice, decimal.Zero)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("invoice generated",
		zap.Uint("invoice_id", response.ID),
		zap.Uint("booking_id", req.BookingID),
		zap.String("total", response.TotalAmount.StringFixed(2)))
	return response, nil
}

// GetInvoice returns one invoice with its items, the guest it bills and
// derived paid/balance
func (s *Service) GetInvoice(ctx context.Context, id uint) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByInvoiceID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := toInvoiceResponse(invoice, billing.SumAmounts(payments))
	response.Payments = make([]PaymentResponse, len(payments))
	for i := range payments {
		response.Payments[i] = *toPaymentResponse(&payments[i])
	}
	response.GuestName, err = s.guestNameForBooking(ctx, invoice.BookingID)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// ListInvoices returns all invoices with guest names and derived paid sums
// and balances, most recently issued first
func (s *Service) ListInvoices(ctx context.Context) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		payments, err := s.paymentRepo.FindByInvoiceID(ctx, invoices[i].ID)
		if err != nil {
			return nil, err
		}
		responses[i] = *toInvoiceResponse(&invoices[i], billing.SumAmounts(payments))
		responses[i].GuestName, err = s.guestNameForBooking(ctx, invoices[i].BookingID)
		if err != nil {
			return nil, err
		}
	}
	return responses, nil
}

func (s *Service) guestNameForBooking(ctx context.Context, bookingID uint) (string, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	guest, err := s.guestRepo.FindByID(ctx, b.GuestID)
	if err != nil {
		return "", err
	}
	return guest.Name, nil
}

// RecordPayment records a payment against an invoice and recomputes the
// invoice status from the aggregated payment sum. Overpayment is accepted;
// the status simply becomes paid. Insert and status update share a
// transaction.
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Invalid("invalid payment input: %v", err)
	}
	paymentDate := shared.Today()
	if req.PaymentDate != "" {
		parsed, err := shared.ParseDate(req.PaymentDate, "payment date")
		if err != nil {
			return nil, err
		}
		paymentDate = parsed
	}

	var response *PaymentResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.Invoices().FindByID(ctx, req.InvoiceID)
		if err != nil {
			return err
		}

		payment, err := billing.NewPayment(req.InvoiceID, req.Amount, paymentDate, req.Method, req.Notes)
		if err != nil {
			return err
		}
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}

		payments, err := repos.Payments().FindByInvoiceID(ctx, req.InvoiceID)
		if err != nil {
			return err
		}
		paid := billing.SumAmounts(payments)
		invoice.ApplyPaidSum(paid)
		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}

		response = toPaymentResponse(payment)
		response.InvoiceStatus = invoice.Status.String()
		response.Balance = invoice.Balance(paid)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.Uint("payment_id", response.ID),
		zap.Uint("invoice_id", req.InvoiceID),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.String("invoice_status", response.InvoiceStatus))
	return response, nil
}

// ListPayments returns payments, most recent first. An invoice id narrows
// the listing to that invoice.
func (s *Service) ListPayments(ctx context.Context, invoiceID *uint) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindAll(ctx, billing.PaymentFilter{InvoiceID: invoiceID})
	if err != nil {
		return nil, err
	}
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *toPaymentResponse(&payments[i])
	}
	return responses, nil
}

// AddExpense logs an operational expense
func (s *Service) AddExpense(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Invalid("invalid expense input: %v", err)
	}
	expenseDate := shared.Today()
	if req.ExpenseDate != "" {
		parsed, err := shared.ParseDate(req.ExpenseDate, "expense date")
		if err != nil {
			return nil, err
		}
		expenseDate = parsed
	}

	expense, err := billing.NewExpense(req.Category, req.Amount, req.Description, expenseDate)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("expense logged",
		zap.Uint("expense_id", expense.ID),
		zap.String("category", expense.Category),
		zap.String("amount", expense.Amount.StringFixed(2)))
	return toExpenseResponse(expense), nil
}

// ListExpenses returns expenses, most recent first, with a grand total.
// Month and year narrow the listing.
func (s *Service) ListExpenses(ctx context.Context, month, year *int) (*ExpenseListResponse, error) {
	if month != nil && (*month < 1 || *month > 12) {
		return nil, shared.Invalid("month must be between 1 and 12")
	}
	expenses, err := s.expenseRepo.FindAll(ctx, billing.ExpenseFilter{Month: month, Year: year})
	if err != nil {
		return nil, err
	}
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = *toExpenseResponse(&expenses[i])
	}
	return &ExpenseListResponse{
		Expenses: responses,
		Total:    billing.SumExpenses(expenses),
	}, nil
}
