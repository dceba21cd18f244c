package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a business expense.
type ExpenseCategory string

const (
	ExpenseCategorySupplies    ExpenseCategory = "supplies"
	ExpenseCategoryUtilities   ExpenseCategory = "utilities"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategoryFuel        ExpenseCategory = "fuel"
	ExpenseCategoryElectricity ExpenseCategory = "electricity"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

// IsValid checks if the category is one of the accepted values.
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategorySupplies, ExpenseCategoryUtilities, ExpenseCategoryMaintenance,
		ExpenseCategoryFuel, ExpenseCategoryElectricity, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense represents money spent running the shop.
type Expense struct {
	ID          uuid.UUID
	Category    ExpenseCategory
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time
	RecordedBy  string
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	category ExpenseCategory,
	amount decimal.Decimal,
	description string,
	expenseDate time.Time,
	recordedBy string,
) *Expense {
	return &Expense{
		ID:          uuid.New(),
		Category:    category,
		Amount:      amount,
		Description: description,
		ExpenseDate: expenseDate,
		RecordedBy:  recordedBy,
		CreatedAt:   time.Now().UTC(),
	}
}

// ToTransaction converts the expense into its reporting view.
func (e *Expense) ToTransaction() ExpenseTransaction {
	return ExpenseTransaction{
		ID:       e.ID,
		Date:     e.ExpenseDate,
		Amount:   e.Amount,
		Category: e.Category,
	}
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*Expense
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
