package dto

import (
	"time"

	"github.com/barbershop/backend/internal/application/usecase/customer"
)

// CustomerResponse represents a customer with visit statistics.
type CustomerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Visits     int64  `json:"visits"`
	TotalSpent string `json:"total_spent"`
	LastVisit  string `json:"last_visit"`
	HasVisits  bool   `json:"has_visits"`
	CreatedAt  string `json:"created_at"`
}

// ListCustomersResponse represents the customers listing.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int                `json:"total"`
}

// ToListCustomersResponse converts customer outputs to the response DTO.
func ToListCustomersResponse(outputs []customer.CustomerOutput) ListCustomersResponse {
	customers := make([]CustomerResponse, len(outputs))
	for i, c := range outputs {
		customers[i] = CustomerResponse{
			ID:         c.ID.String(),
			Name:       c.Name,
			Phone:      c.Phone,
			Visits:     c.Visits,
			TotalSpent: money(c.TotalSpent),
			LastVisit:  c.LastVisit,
			HasVisits:  c.HasVisits,
			CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return ListCustomersResponse{Customers: customers, Total: len(customers)}
}
