package persistence

import (
	"context"
	"fmt"

	"github.com/tabakhlazeez/hotelctl/internal/domain/billing"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormExpenseRepository implements billing.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GORM-based expense repository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// Save persists an expense and backfills the generated id
func (r *GormExpenseRepository) Save(ctx context.Context, e *billing.Expense) error {
	model := models.ExpenseModelFromDomain(e)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translateError(err)
	}
	e.ID = model.ID
	return nil
}

// FindAll retrieves expenses matching the filter, most recent first.
// Month and year filters match against the ISO date text.
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter billing.ExpenseFilter) ([]billing.Expense, error) {
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{})
	if filter.Month != nil {
		query = query.Where("strftime('%m', expense_date) = ?", fmt.Sprintf("%02d", *filter.Month))
	}
	if filter.Year != nil {
		query = query.Where("strftime('%Y', expense_date) = ?", fmt.Sprintf("%04d", *filter.Year))
	}
	var rows []models.ExpenseModel
	if err := query.Order("expense_date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	expenses := make([]billing.Expense, len(rows))
	for i := range rows {
		expenses[i] = *rows[i].ToDomain()
	}
	return expenses, nil
}
