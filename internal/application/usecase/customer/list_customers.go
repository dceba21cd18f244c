// Package customer contains customer-related use cases.
package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/application/adapter"
)

// NoVisitsYet is shown for customers without recorded services.
const NoVisitsYet = "No visits yet"

// CustomerOutput is one row of the customer list.
type CustomerOutput struct {
	ID         uuid.UUID
	Name       string
	Phone      string
	Visits     int64
	TotalSpent decimal.Decimal
	LastVisit  string
	HasVisits  bool
	CreatedAt  time.Time
}

// ListCustomersUseCase handles listing customers with visit statistics.
type ListCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
	loc          *time.Location
}

// NewListCustomersUseCase creates a new ListCustomersUseCase instance.
func NewListCustomersUseCase(customerRepo adapter.CustomerRepository, loc *time.Location) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo, loc: loc}
}

// Execute returns every customer, newest first.
func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]CustomerOutput, error) {
	summaries, err := uc.customerRepo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]CustomerOutput, 0, len(summaries))
	for _, s := range summaries {
		out := CustomerOutput{
			ID:         s.Customer.ID,
			Name:       s.Customer.Name,
			Phone:      s.Customer.Phone,
			Visits:     s.Visits,
			TotalSpent: s.TotalSpent,
			LastVisit:  NoVisitsYet,
			CreatedAt:  s.Customer.CreatedAt,
		}
		if s.LastVisit != nil {
			out.LastVisit = s.LastVisit.In(uc.loc).Format("Jan 2, 2006")
			out.HasVisits = true
		}
		customers = append(customers, out)
	}
	return customers, nil
}
