package dto

import (
	"time"

	"github.com/barbershop/backend/internal/application/usecase/expense"
	"github.com/barbershop/backend/internal/domain/entity"
)

// RecordExpenseRequest represents the request body for recording an expense.
type RecordExpenseRequest struct {
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount" binding:"required"`
	Description string   `json:"description,omitempty"`
	ExpenseDate string   `json:"expense_date,omitempty"`
	RecordedBy  string   `json:"recorded_by,omitempty" binding:"omitempty,max=100"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	ExpenseDate string `json:"expense_date"`
	RecordedBy  string `json:"recorded_by,omitempty"`
}

// ListExpensesResponse represents a page of the expense history.
type ListExpensesResponse struct {
	Expenses   []ExpenseResponse  `json:"expenses"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToExpenseResponse converts a domain Expense to its response DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Category:    string(e.Category),
		Amount:      money(e.Amount),
		Description: e.Description,
		ExpenseDate: e.ExpenseDate.UTC().Format(time.RFC3339),
		RecordedBy:  e.RecordedBy,
	}
}

// ToListExpensesResponse converts a ListExpensesOutput to its response DTO.
func ToListExpensesResponse(output *expense.ListExpensesOutput) ListExpensesResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ExpenseResponse{
			ID:          e.ID.String(),
			Category:    string(e.Category),
			Amount:      money(e.Amount),
			Description: e.Description,
			Date:        e.Date,
			Time:        e.Time,
			ExpenseDate: e.ExpenseDate.UTC().Format(time.RFC3339),
		}
	}
	return ListExpensesResponse{
		Expenses: expenses,
		Pagination: PaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	}
}
