// Package expense contains use cases for recording and listing expenses.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 500

// RecordExpenseInput represents the input for recording an expense.
type RecordExpenseInput struct {
	Category    entity.ExpenseCategory
	Amount      decimal.Decimal
	Description string
	ExpenseDate *time.Time
	RecordedBy  string
}

// RecordExpenseUseCase handles recording an expense.
type RecordExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	invalidator adapter.ReportCacheInvalidator
	now         func() time.Time
}

// NewRecordExpenseUseCase creates a new RecordExpenseUseCase instance.
func NewRecordExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	invalidator adapter.ReportCacheInvalidator,
	now func() time.Time,
) *RecordExpenseUseCase {
	return &RecordExpenseUseCase{
		expenseRepo: expenseRepo,
		invalidator: invalidator,
		now:         now,
	}
}

// Execute validates and stores the expense.
func (uc *RecordExpenseUseCase) Execute(ctx context.Context, input RecordExpenseInput) (*entity.Expense, error) {
	input.Description = strings.TrimSpace(input.Description)

	if !input.Category.IsValid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			domainerror.ErrInvalidExpenseCategory.Error(),
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			domainerror.ErrInvalidExpenseAmount.Error(),
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if utf8.RuneCountInString(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrExpenseDescriptionTooLong,
		)
	}

	expenseDate := uc.now().UTC()
	if input.ExpenseDate != nil {
		expenseDate = input.ExpenseDate.UTC()
	}

	expense := entity.NewExpense(input.Category, input.Amount, input.Description, expenseDate, input.RecordedBy)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := uc.invalidator.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate report cache", "error", err)
	}

	return expense, nil
}
