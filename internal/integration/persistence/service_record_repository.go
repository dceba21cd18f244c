package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/application/usecase/history"
	"github.com/barbershop/backend/internal/domain/entity"
	"github.com/barbershop/backend/internal/integration/persistence/model"
)

// serviceRecordRepository implements the adapter.ServiceRecordRepository interface.
type serviceRecordRepository struct {
	db *gorm.DB
}

// NewServiceRecordRepository creates a new service record repository instance.
func NewServiceRecordRepository(db *gorm.DB) adapter.ServiceRecordRepository {
	return &serviceRecordRepository{
		db: db,
	}
}

// Create creates a new service record in the database.
func (r *serviceRecordRepository) Create(ctx context.Context, record *entity.ServiceRecord) error {
	recordModel := model.ServiceRecordFromEntity(record)
	result := r.db.WithContext(ctx).Omit("Customer").Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// List retrieves a page of service records with their customers, newest first.
func (r *serviceRecordRepository) List(ctx context.Context, filter adapter.HistoryFilter) (*entity.ServiceRecordListResult, error) {
	query := applyDateBounds(
		r.db.WithContext(ctx).Model(&model.ServiceRecordModel{}),
		"service_date", filter.From, filter.To,
	)

	// Get total count
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var recordModels []model.ServiceRecordModel
	result := query.
		Preload("Customer").
		Order("service_date DESC, created_at DESC").
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ServiceRecordWithCustomer, len(recordModels))
	for i := range recordModels {
		m := &recordModels[i]
		item := &entity.ServiceRecordWithCustomer{Record: m.ToEntity()}
		if m.Customer != nil {
			item.Customer = m.Customer.ToEntity()
		}
		records[i] = item
	}

	return &entity.ServiceRecordListResult{
		Records:    records,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: history.TotalPages(total, filter.Limit),
	}, nil
}

// ListAll retrieves every service record ordered by service date.
func (r *serviceRecordRepository) ListAll(ctx context.Context) ([]*entity.ServiceRecord, error) {
	var recordModels []model.ServiceRecordModel
	result := r.db.WithContext(ctx).
		Order("service_date ASC, created_at ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ServiceRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToEntity()
	}
	return records, nil
}
