package expense

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/application/usecase/history"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	expenses []*entity.Expense
	filter   adapter.HistoryFilter
}

func (r *fakeExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	r.expenses = append(r.expenses, e)
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, filter adapter.HistoryFilter) (*entity.ExpenseListResult, error) {
	r.filter = filter
	return &entity.ExpenseListResult{Expenses: r.expenses, Total: int64(len(r.expenses))}, nil
}

func (r *fakeExpenseRepo) ListAll(ctx context.Context) ([]*entity.Expense, error) {
	return r.expenses, nil
}

type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) Invalidate(ctx context.Context) error {
	f.calls++
	return nil
}

var testNow = time.Date(2025, time.March, 14, 8, 30, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func TestRecordExpenseUseCase_Execute(t *testing.T) {
	t.Run("stores the expense", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		invalidator := &fakeInvalidator{}
		uc := NewRecordExpenseUseCase(repo, invalidator, clock)

		got, err := uc.Execute(context.Background(), RecordExpenseInput{
			Category:    entity.ExpenseCategoryFuel,
			Amount:      decimal.NewFromInt(12000),
			Description: "  Generator diesel ",
			RecordedBy:  "admin",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Description != "Generator diesel" {
			t.Errorf("expected trimmed description, got %q", got.Description)
		}
		if !got.ExpenseDate.Equal(testNow) {
			t.Errorf("expected date to default to now, got %s", got.ExpenseDate)
		}
		if len(repo.expenses) != 1 || invalidator.calls != 1 {
			t.Error("expected one stored expense and one invalidation")
		}
	})

	cases := []struct {
		name  string
		input RecordExpenseInput
		code  domainerror.ExpenseErrorCode
	}{
		{"unknown category", RecordExpenseInput{Category: "rent", Amount: decimal.NewFromInt(1)}, domainerror.ErrCodeInvalidExpenseCategory},
		{"negative amount", RecordExpenseInput{Category: entity.ExpenseCategoryOther, Amount: decimal.NewFromInt(-5)}, domainerror.ErrCodeInvalidExpenseAmount},
		{"long description", RecordExpenseInput{Category: entity.ExpenseCategoryOther, Description: strings.Repeat("x", MaxDescriptionLength+1)}, domainerror.ErrCodeExpenseDescriptionTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeExpenseRepo{}
			uc := NewRecordExpenseUseCase(repo, &fakeInvalidator{}, clock)

			_, err := uc.Execute(context.Background(), tc.input)
			var expenseErr *domainerror.ExpenseError
			if !errors.As(err, &expenseErr) {
				t.Fatalf("expected ExpenseError, got %v", err)
			}
			if expenseErr.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, expenseErr.Code)
			}
			if len(repo.expenses) != 0 {
				t.Error("expected nothing to be stored")
			}
		})
	}
}

func TestRecordExpenseUseCase_DescriptionLimitCountsCharacters(t *testing.T) {
	uc := NewRecordExpenseUseCase(&fakeExpenseRepo{}, &fakeInvalidator{}, clock)

	_, err := uc.Execute(context.Background(), RecordExpenseInput{
		Category:    entity.ExpenseCategoryOther,
		Amount:      decimal.NewFromInt(1),
		Description: strings.Repeat("\u1ecd", MaxDescriptionLength),
	})
	if err != nil {
		t.Errorf("expected %d multi-byte characters to be accepted, got %v", MaxDescriptionLength, err)
	}
}

func TestListExpensesUseCase_Execute(t *testing.T) {
	repo := &fakeExpenseRepo{expenses: []*entity.Expense{
		entity.NewExpense(entity.ExpenseCategorySupplies, decimal.NewFromInt(300), "", testNow, "admin"),
	}}
	uc := NewListExpensesUseCase(repo, time.UTC, clock)

	out, err := uc.Execute(context.Background(), ListExpensesInput{Period: history.PeriodMonth, Limit: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Expenses[0].Description != NoDescription {
		t.Errorf("expected placeholder description, got %q", out.Expenses[0].Description)
	}
	if out.Expenses[0].Time != "8:30 AM" {
		t.Errorf("unexpected time %q", out.Expenses[0].Time)
	}
	if out.Limit != history.MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", history.MaxLimit, out.Limit)
	}
	if repo.filter.From == nil || repo.filter.From.Day() != 1 {
		t.Error("expected month bounds to be passed to the repository")
	}
}
