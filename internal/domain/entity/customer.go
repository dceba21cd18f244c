package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a barbershop client identified by phone number.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	CreatedAt time.Time
}

// NewCustomer creates a new Customer entity.
func NewCustomer(name, phone string) *Customer {
	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
}

// CustomerSummary is a customer with visit statistics.
type CustomerSummary struct {
	Customer   *Customer
	Visits     int64
	TotalSpent decimal.Decimal
	LastVisit  *time.Time
}
