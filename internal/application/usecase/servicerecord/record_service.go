// Package servicerecord contains use cases for recording and listing services.
package servicerecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
)

const (
	// MaxNameLength is the maximum length of customer, barber and service names.
	MaxNameLength = 100
	// MaxPhoneLength is the maximum length of a normalized phone number.
	MaxPhoneLength = 20
)

var phoneReplacer = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// NormalizePhone strips formatting characters so the same number always matches.
func NormalizePhone(phone string) string {
	return phoneReplacer.Replace(strings.TrimSpace(phone))
}

// RecordServiceInput represents the input for recording a service.
type RecordServiceInput struct {
	CustomerName  string
	CustomerPhone string
	ServiceType   string
	BarberName    string
	AmountPaid    decimal.Decimal
	PaymentMethod entity.PaymentMethod
	ServiceDate   *time.Time
	RecordedBy    string
}

// RecordServiceOutput represents the output of recording a service.
type RecordServiceOutput struct {
	Record          *entity.ServiceRecord
	Customer        *entity.Customer
	CustomerCreated bool
}

// RecordServiceUseCase handles recording a performed service.
type RecordServiceUseCase struct {
	customerRepo adapter.CustomerRepository
	serviceRepo  adapter.ServiceRecordRepository
	invalidator  adapter.ReportCacheInvalidator
	now          func() time.Time
}

// NewRecordServiceUseCase creates a new RecordServiceUseCase instance.
func NewRecordServiceUseCase(
	customerRepo adapter.CustomerRepository,
	serviceRepo adapter.ServiceRecordRepository,
	invalidator adapter.ReportCacheInvalidator,
	now func() time.Time,
) *RecordServiceUseCase {
	return &RecordServiceUseCase{
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		invalidator:  invalidator,
		now:          now,
	}
}

// Execute validates the input, finds or creates the customer by phone and
// stores the service record.
func (uc *RecordServiceUseCase) Execute(ctx context.Context, input RecordServiceInput) (*RecordServiceOutput, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerPhone = NormalizePhone(input.CustomerPhone)
	input.ServiceType = strings.TrimSpace(input.ServiceType)
	input.BarberName = strings.TrimSpace(input.BarberName)

	if err := validate(input); err != nil {
		return nil, err
	}

	customer, created, err := uc.findOrCreateCustomer(ctx, input.CustomerName, input.CustomerPhone)
	if err != nil {
		return nil, domainerror.NewServiceError(
			domainerror.ErrCodeServiceInternalError,
			"failed to resolve customer",
			err,
		)
	}

	serviceDate := uc.now().UTC()
	if input.ServiceDate != nil {
		serviceDate = input.ServiceDate.UTC()
	}

	record := entity.NewServiceRecord(
		customer.ID,
		input.ServiceType,
		input.BarberName,
		input.AmountPaid,
		input.PaymentMethod,
		serviceDate,
		input.RecordedBy,
	)

	if err := uc.serviceRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create service record: %w", err)
	}

	if err := uc.invalidator.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate report cache", "error", err)
	}

	slog.Info("Service recorded",
		"service_id", record.ID,
		"customer_id", customer.ID,
		"customer_created", created,
	)

	return &RecordServiceOutput{
		Record:          record,
		Customer:        customer,
		CustomerCreated: created,
	}, nil
}

func (uc *RecordServiceUseCase) findOrCreateCustomer(ctx context.Context, name, phone string) (*entity.Customer, bool, error) {
	customer, err := uc.customerRepo.FindByPhone(ctx, phone)
	if err == nil {
		return customer, false, nil
	}
	if !errors.Is(err, domainerror.ErrCustomerNotFound) {
		return nil, false, err
	}

	customer = entity.NewCustomer(name, phone)
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		// Another request registered the same phone first.
		if errors.Is(err, domainerror.ErrCustomerPhoneExists) {
			existing, findErr := uc.customerRepo.FindByPhone(ctx, phone)
			return existing, false, findErr
		}
		return nil, false, err
	}
	return customer, true, nil
}

func validate(input RecordServiceInput) error {
	if input.CustomerName == "" || input.CustomerPhone == "" || input.ServiceType == "" || input.BarberName == "" {
		return domainerror.NewServiceError(
			domainerror.ErrCodeMissingServiceFields,
			domainerror.ErrMissingServiceFields.Error(),
			domainerror.ErrMissingServiceFields,
		)
	}

	if tooLong(input.CustomerName, MaxNameLength) || tooLong(input.ServiceType, MaxNameLength) || tooLong(input.BarberName, MaxNameLength) {
		return domainerror.NewServiceError(
			domainerror.ErrCodeServiceFieldTooLong,
			fmt.Sprintf("names must not exceed %d characters", MaxNameLength),
			domainerror.ErrServiceFieldTooLong,
		)
	}
	if tooLong(input.CustomerPhone, MaxPhoneLength) {
		return domainerror.NewServiceError(
			domainerror.ErrCodeServiceFieldTooLong,
			fmt.Sprintf("phone must not exceed %d characters", MaxPhoneLength),
			domainerror.ErrServiceFieldTooLong,
		)
	}

	if input.AmountPaid.IsNegative() {
		return domainerror.NewServiceError(
			domainerror.ErrCodeInvalidServiceAmount,
			domainerror.ErrInvalidServiceAmount.Error(),
			domainerror.ErrInvalidServiceAmount,
		)
	}

	if !input.PaymentMethod.IsValid() {
		return domainerror.NewServiceError(
			domainerror.ErrCodeInvalidPaymentMethod,
			domainerror.ErrInvalidPaymentMethod.Error(),
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	return nil
}

// tooLong compares character counts, not bytes.
func tooLong(value string, limit int) bool {
	return utf8.RuneCountInString(value) > limit
}
