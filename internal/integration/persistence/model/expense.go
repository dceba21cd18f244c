package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category    string          `gorm:"type:varchar(20);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string          `gorm:"type:varchar(500)"`
	ExpenseDate time.Time       `gorm:"not null;index"`
	RecordedBy  string          `gorm:"type:varchar(100)"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		Category:    entity.ExpenseCategory(m.Category),
		Amount:      m.Amount,
		Description: m.Description,
		ExpenseDate: m.ExpenseDate.UTC(),
		RecordedBy:  m.RecordedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		Category:    string(e.Category),
		Amount:      e.Amount,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate.UTC(),
		RecordedBy:  e.RecordedBy,
		CreatedAt:   e.CreatedAt,
	}
}
