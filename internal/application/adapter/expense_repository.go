package adapter

import (
	"context"

	"github.com/barbershop/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// List returns expenses, newest first.
	List(ctx context.Context, filter HistoryFilter) (*entity.ExpenseListResult, error)

	// ListAll returns every expense ordered by expense date ascending.
	ListAll(ctx context.Context) ([]*entity.Expense, error)
}
