package customer

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/domain/entity"
)

type fakeCustomerRepo struct {
	summaries []*entity.CustomerSummary
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error { return nil }

func (r *fakeCustomerRepo) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.summaries)), nil
}

func (r *fakeCustomerRepo) ListSummaries(ctx context.Context) ([]*entity.CustomerSummary, error) {
	return r.summaries, nil
}

func TestListCustomersUseCase_Execute(t *testing.T) {
	lastVisit := time.Date(2025, time.February, 3, 23, 30, 0, 0, time.UTC)
	repo := &fakeCustomerRepo{summaries: []*entity.CustomerSummary{
		{
			Customer:   entity.NewCustomer("Ade Bello", "08031234567"),
			Visits:     3,
			TotalSpent: decimal.NewFromInt(10500),
			LastVisit:  &lastVisit,
		},
		{
			Customer:   entity.NewCustomer("Chidi Okoro", "08039876543"),
			TotalSpent: decimal.Zero,
		},
	}}
	uc := NewListCustomersUseCase(repo, time.FixedZone("WAT", 3600))

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(got))
	}
	if got[0].LastVisit != "Feb 4, 2025" || !got[0].HasVisits {
		t.Errorf("expected last visit in local time, got %q", got[0].LastVisit)
	}
	if got[1].LastVisit != NoVisitsYet || got[1].HasVisits {
		t.Errorf("expected no visits, got %q", got[1].LastVisit)
	}
}
