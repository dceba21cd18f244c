// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a dated monetary event fed into reporting.
// It is implemented only by ServiceTransaction and ExpenseTransaction.
type Transaction interface {
	TransactionDate() time.Time
	isTransaction()
}

// ServiceTransaction is the reporting view of a recorded service.
type ServiceTransaction struct {
	ID            uuid.UUID
	Date          time.Time
	AmountPaid    decimal.Decimal
	CustomerID    uuid.UUID
	ServiceType   string
	PaymentMethod PaymentMethod
}

// TransactionDate returns the service date.
func (t ServiceTransaction) TransactionDate() time.Time { return t.Date }

func (ServiceTransaction) isTransaction() {}

// ExpenseTransaction is the reporting view of a recorded expense.
type ExpenseTransaction struct {
	ID       uuid.UUID
	Date     time.Time
	Amount   decimal.Decimal
	Category ExpenseCategory
}

// TransactionDate returns the expense date.
func (t ExpenseTransaction) TransactionDate() time.Time { return t.Date }

func (ExpenseTransaction) isTransaction() {}
