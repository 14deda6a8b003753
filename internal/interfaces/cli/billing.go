package cli

import (
	"context"
	"flag"
	"fmt"

	appbilling "github.com/tabakhlazeez/hotelctl/internal/application/billing"
)

func (a *App) runGenerateInvoice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoice generate", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	bookingID := fs.Int("booking-id", 0, "Booking ID")
	issueDate := fs.String("issue-date", "", "Invoice issue date (YYYY-MM-DD)")
	dueDate := fs.String("due-date", "", "Invoice due date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	bid, err := parseID(*bookingID, "booking-id")
	if err != nil {
		return err
	}

	invoice, err := a.billing.GenerateInvoice(ctx, appbilling.GenerateInvoiceRequest{
		BookingID: bid,
		IssueDate: *issueDate,
		DueDate:   *dueDate,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Invoice %d generated for booking %d.\n", invoice.ID, invoice.BookingID)
	return nil
}

func (a *App) runListInvoices(ctx context.Context) error {
	invoices, err := a.billing.ListInvoices(ctx)
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		fmt.Fprintln(a.out, "No invoices found.")
		return nil
	}

	rows := make([][]string, len(invoices))
	for i, inv := range invoices {
		rows[i] = []string{
			formatUint(inv.ID),
			formatUint(inv.BookingID),
			inv.GuestName,
			inv.IssueDate,
			inv.DueDate,
			inv.Status,
			money(inv.TotalAmount),
			money(inv.Paid),
			money(inv.Balance),
		}
	}
	renderTable(a.out, "Invoices",
		[]string{"ID", "Booking", "Guest", "Issue", "Due", "Status", "Total", "Paid", "Balance"}, rows)
	return nil
}

func (a *App) runShowInvoice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoice show", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	invoiceID := fs.Int("invoice-id", 0, "Invoice ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	iid, err := parseID(*invoiceID, "invoice-id")
	if err != nil {
		return err
	}

	invoice, err := a.billing.GetInvoice(ctx, iid)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Invoice %d for booking %d (Guest: %s)\n",
		invoice.ID, invoice.BookingID, invoice.GuestName)
	fmt.Fprintf(a.out, "Issue date: %s  Due date: %s  Status: %s\n",
		invoice.IssueDate, invoice.DueDate, invoice.Status)

	itemRows := make([][]string, len(invoice.Items))
	for i, item := range invoice.Items {
		itemRows[i] = []string{item.Description, money(item.Amount)}
	}
	renderTable(a.out, "Line items", []string{"Description", "Amount"}, itemRows)

	if len(invoice.Payments) == 0 {
		fmt.Fprintln(a.out, "No payments recorded yet.")
	} else {
		paymentRows := make([][]string, len(invoice.Payments))
		for i, p := range invoice.Payments {
			paymentRows[i] = []string{p.PaymentDate, money(p.Amount), p.Method}
		}
		renderTable(a.out, "Payments", []string{"Date", "Amount", "Method"}, paymentRows)
	}

	fmt.Fprintf(a.out, "Total: %s  Paid: %s  Balance: %s\n",
		money(invoice.TotalAmount), money(invoice.Paid), money(invoice.Balance))
	return nil
}

func (a *App) runAddPayment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payment add", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	invoiceID := fs.Int("invoice-id", 0, "Invoice ID")
	amountValue := fs.String("amount", "", "Amount received")
	paymentDate := fs.String("payment-date", "", "Payment date (YYYY-MM-DD)")
	method := fs.String("method", "cash", "Payment method")
	notes := fs.String("notes", "", "Optional remarks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	iid, err := parseID(*invoiceID, "invoice-id")
	if err != nil {
		return err
	}
	amount, err := parseDecimal(*amountValue, "amount")
	if err != nil {
		return err
	}

	payment, err := a.billing.RecordPayment(ctx, appbilling.RecordPaymentRequest{
		InvoiceID:   iid,
		Amount:      amount,
		PaymentDate: *paymentDate,
		Method:      *method,
		Notes:       *notes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Payment recorded. Reference: %s\n", payment.Reference)
	return nil
}

func (a *App) runListPayments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payment list", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	invoiceID := fs.Int("invoice-id", 0, "Filter by invoice")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var filter *uint
	if *invoiceID > 0 {
		id := uint(*invoiceID)
		filter = &id
	}

	payments, err := a.billing.ListPayments(ctx, filter)
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		fmt.Fprintln(a.out, "No payments found.")
		return nil
	}

	rows := make([][]string, len(payments))
	for i, p := range payments {
		rows[i] = []string{
			formatUint(p.ID),
			formatUint(p.InvoiceID),
			p.PaymentDate,
			money(p.Amount),
			p.Method,
		}
	}
	renderTable(a.out, "Payments",
		[]string{"ID", "Invoice", "Date", "Amount", "Method"}, rows)
	return nil
}

func (a *App) runAddExpense(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("expense add", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	category := fs.String("category", "", "Expense category")
	amountValue := fs.String("amount", "", "Expense amount")
	expenseDate := fs.String("expense-date", "", "Expense date (YYYY-MM-DD)")
	description := fs.String("description", "", "Expense details")
	if err := fs.Parse(args); err != nil {
		return err
	}
	amount, err := parseDecimal(*amountValue, "amount")
	if err != nil {
		return err
	}

	_, err = a.billing.AddExpense(ctx, appbilling.CreateExpenseRequest{
		Category:    *category,
		Amount:      amount,
		Description: *description,
		ExpenseDate: *expenseDate,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Expense recorded.")
	return nil
}

func (a *App) runListExpenses(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("expense list", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	month := fs.Int("month", 0, "Filter by month (1-12)")
	year := fs.Int("year", 0, "Filter by year")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var monthFilter, yearFilter *int
	if *month > 0 {
		monthFilter = month
	}
	if *year > 0 {
		yearFilter = year
	}

	result, err := a.billing.ListExpenses(ctx, monthFilter, yearFilter)
	if err != nil {
		return err
	}
	if len(result.Expenses) == 0 {
		fmt.Fprintln(a.out, "No expenses found for the given filters.")
		return nil
	}

	rows := make([][]string, len(result.Expenses))
	for i, e := range result.Expenses {
		rows[i] = []string{
			formatUint(e.ID),
			e.ExpenseDate,
			e.Category,
			money(e.Amount),
			orDash(e.Description),
		}
	}
	renderTable(a.out, "Expenses",
		[]string{"ID", "Date", "Category", "Amount", "Description"}, rows)
	fmt.Fprintf(a.out, "Total expenses: %s\n", money(result.Total))
	return nil
}
