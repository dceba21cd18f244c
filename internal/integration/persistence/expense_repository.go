package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/application/usecase/history"
	"github.com/barbershop/backend/internal/domain/entity"
	"github.com/barbershop/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// List retrieves a page of expenses, newest first.
func (r *expenseRepository) List(ctx context.Context, filter adapter.HistoryFilter) (*entity.ExpenseListResult, error) {
	query := applyDateBounds(
		r.db.WithContext(ctx).Model(&model.ExpenseModel{}),
		"expense_date", filter.From, filter.To,
	)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var expenseModels []model.ExpenseModel
	result := query.
		Order("expense_date DESC, created_at DESC").
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}

	return &entity.ExpenseListResult{
		Expenses:   expenses,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: history.TotalPages(total, filter.Limit),
	}, nil
}

// ListAll retrieves every expense ordered by expense date.
func (r *expenseRepository) ListAll(ctx context.Context) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Order("expense_date ASC, created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}
