package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
)

// Expense is an operational cost independent of any booking, kept purely for
// bookkeeping.
type Expense struct {
	shared.BaseEntity
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	ExpenseDate string          `json:"expense_date"`
}

// NewExpense logs an operational expense
func NewExpense(category string, amount decimal.Decimal, description string, expenseDate time.Time) (*Expense, error) {
	if category == "" {
		return nil, shared.Invalid("expense category cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.Invalid("expense amount must be positive")
	}
	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		Category:    category,
		Amount:      amount,
		Description: description,
		ExpenseDate: shared.FormatDate(expenseDate),
	}, nil
}

// SumExpenses totals a set of expenses
func SumExpenses(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
