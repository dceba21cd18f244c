// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/barbershop/backend/internal/domain/entity"
)

// CustomerRepository defines the interface for customer persistence operations.
type CustomerRepository interface {
	// Create persists a new customer. Returns ErrCustomerPhoneExists on a duplicate phone.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByPhone returns the customer with the given normalized phone, or ErrCustomerNotFound.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// Count returns the number of registered customers.
	Count(ctx context.Context) (int64, error)

	// ListSummaries returns every customer with visit statistics, newest first.
	ListSummaries(ctx context.Context) ([]*entity.CustomerSummary, error)
}
