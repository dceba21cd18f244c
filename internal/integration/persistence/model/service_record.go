package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/domain/entity"
)

// ServiceRecordModel represents the service_records table in the database.
type ServiceRecordModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceType   string          `gorm:"type:varchar(100);not null"`
	BarberName    string          `gorm:"type:varchar(100);not null"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	ServiceDate   time.Time       `gorm:"not null;index"`
	RecordedBy    string          `gorm:"type:varchar(100)"`
	CreatedAt     time.Time       `gorm:"not null"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName returns the table name for the ServiceRecordModel.
func (ServiceRecordModel) TableName() string {
	return "service_records"
}

// ToEntity converts a ServiceRecordModel to a domain ServiceRecord entity.
func (m *ServiceRecordModel) ToEntity() *entity.ServiceRecord {
	return &entity.ServiceRecord{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		ServiceType:   m.ServiceType,
		BarberName:    m.BarberName,
		AmountPaid:    m.AmountPaid,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		ServiceDate:   m.ServiceDate.UTC(),
		RecordedBy:    m.RecordedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// ServiceRecordFromEntity creates a ServiceRecordModel from a domain ServiceRecord entity.
func ServiceRecordFromEntity(r *entity.ServiceRecord) *ServiceRecordModel {
	return &ServiceRecordModel{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		ServiceType:   r.ServiceType,
		BarberName:    r.BarberName,
		AmountPaid:    r.AmountPaid,
		PaymentMethod: string(r.PaymentMethod),
		ServiceDate:   r.ServiceDate.UTC(),
		RecordedBy:    r.RecordedBy,
		CreatedAt:     r.CreatedAt,
	}
}
