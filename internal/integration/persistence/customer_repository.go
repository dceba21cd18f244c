// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/integration/persistence/model"
)

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer in the database.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Create(customerModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCustomerPhoneExists
		}
		return result.Error
	}
	return nil
}

// FindByPhone retrieves a customer by phone number.
func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).Where("phone = ?", phone).First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// Count returns the number of customers.
func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CustomerModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ListSummaries retrieves every customer with visit statistics, newest first.
func (r *customerRepository) ListSummaries(ctx context.Context) ([]*entity.CustomerSummary, error) {
	var customerModels []model.CustomerModel
	result := r.db.WithContext(ctx).
		Preload("Services").
		Order("created_at DESC").
		Find(&customerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	summaries := make([]*entity.CustomerSummary, len(customerModels))
	for i := range customerModels {
		m := &customerModels[i]
		summary := &entity.CustomerSummary{
			Customer:   m.ToEntity(),
			Visits:     int64(len(m.Services)),
			TotalSpent: decimal.Zero,
		}
		var last time.Time
		for _, s := range m.Services {
			summary.TotalSpent = summary.TotalSpent.Add(s.AmountPaid)
			if s.ServiceDate.After(last) {
				last = s.ServiceDate
			}
		}
		if !last.IsZero() {
			lastUTC := last.UTC()
			summary.LastVisit = &lastUTC
		}
		summaries[i] = summary
	}

	return summaries, nil
}

// isUniqueViolation reports whether err is a unique constraint violation on
// either supported driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
