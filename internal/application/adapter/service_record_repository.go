package adapter

import (
	"context"
	"time"

	"github.com/barbershop/backend/internal/domain/entity"
)

// HistoryFilter bounds and paginates a history listing.
// Nil bounds are open.
type HistoryFilter struct {
	From  *time.Time
	To    *time.Time
	Page  int
	Limit int
}

// ServiceRecordRepository defines the interface for service record persistence operations.
type ServiceRecordRepository interface {
	// Create persists a new service record.
	Create(ctx context.Context, record *entity.ServiceRecord) error

	// List returns service records with their customers, newest first.
	List(ctx context.Context, filter HistoryFilter) (*entity.ServiceRecordListResult, error)

	// ListAll returns every service record ordered by service date ascending.
	ListAll(ctx context.Context) ([]*entity.ServiceRecord, error)
}
