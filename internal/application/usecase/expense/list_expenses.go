package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/application/usecase/history"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
)

// NoDescription replaces empty descriptions in listings.
const NoDescription = "No description"

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Period history.Period
	Page   int
	Limit  int
}

// ExpenseOutput is one row of the expense history.
type ExpenseOutput struct {
	ID          uuid.UUID
	Category    entity.ExpenseCategory
	Amount      decimal.Decimal
	Description string
	Date        string
	Time        string
	ExpenseDate time.Time
}

// ListExpensesOutput represents a page of the expense history.
type ListExpensesOutput struct {
	Expenses   []ExpenseOutput
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListExpensesUseCase handles listing expenses, newest first.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	loc         *time.Location
	now         func() time.Time
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, loc *time.Location, now func() time.Time) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo, loc: loc, now: now}
}

// Execute returns one page of the expense history.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if !input.Period.IsValid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseListPeriod,
			domainerror.ErrInvalidListPeriod.Error(),
			domainerror.ErrInvalidListPeriod,
		)
	}

	page, limit := history.NormalizePage(input.Page, input.Limit)
	from, to := input.Period.Bounds(uc.now(), uc.loc)

	result, err := uc.expenseRepo.List(ctx, adapter.HistoryFilter{
		From:  from,
		To:    to,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]ExpenseOutput, 0, len(result.Expenses))
	for _, e := range result.Expenses {
		local := e.ExpenseDate.In(uc.loc)
		description := e.Description
		if description == "" {
			description = NoDescription
		}
		expenses = append(expenses, ExpenseOutput{
			ID:          e.ID,
			Category:    e.Category,
			Amount:      e.Amount,
			Description: description,
			Date:        local.Format("2006-01-02"),
			Time:        local.Format("3:04 PM"),
			ExpenseDate: e.ExpenseDate,
		})
	}

	return &ListExpensesOutput{
		Expenses:   expenses,
		Total:      result.Total,
		Page:       page,
		Limit:      limit,
		TotalPages: history.TotalPages(result.Total, limit),
	}, nil
}
