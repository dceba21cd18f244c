package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a customer paid for a service.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// IsValid checks if the payment method is one of the accepted values.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// ServiceRecord represents a service performed for a customer.
type ServiceRecord struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	ServiceType   string
	BarberName    string
	AmountPaid    decimal.Decimal
	PaymentMethod PaymentMethod
	ServiceDate   time.Time
	RecordedBy    string
	CreatedAt     time.Time
}

// NewServiceRecord creates a new ServiceRecord entity.
func NewServiceRecord(
	customerID uuid.UUID,
	serviceType string,
	barberName string,
	amountPaid decimal.Decimal,
	paymentMethod PaymentMethod,
	serviceDate time.Time,
	recordedBy string,
) *ServiceRecord {
	return &ServiceRecord{
		ID:            uuid.New(),
		CustomerID:    customerID,
		ServiceType:   serviceType,
		BarberName:    barberName,
		AmountPaid:    amountPaid,
		PaymentMethod: paymentMethod,
		ServiceDate:   serviceDate,
		RecordedBy:    recordedBy,
		CreatedAt:     time.Now().UTC(),
	}
}

// ToTransaction converts the record into its reporting view.
func (s *ServiceRecord) ToTransaction() ServiceTransaction {
	return ServiceTransaction{
		ID:            s.ID,
		Date:          s.ServiceDate,
		AmountPaid:    s.AmountPaid,
		CustomerID:    s.CustomerID,
		ServiceType:   s.ServiceType,
		PaymentMethod: s.PaymentMethod,
	}
}

// ServiceRecordWithCustomer pairs a service record with its customer.
type ServiceRecordWithCustomer struct {
	Record   *ServiceRecord
	Customer *Customer
}

// ServiceRecordListResult represents the result of listing service records.
type ServiceRecordListResult struct {
	Records    []*ServiceRecordWithCustomer
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
