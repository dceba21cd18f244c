package servicerecord

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/application/usecase/history"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
)

// ListSalesInput represents the input for listing sales.
type ListSalesInput struct {
	Period history.Period
	Page   int
	Limit  int
}

// SaleOutput is one row of the sales history.
type SaleOutput struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	ServiceType   string
	BarberName    string
	AmountPaid    decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Date          string
	Time          string
	ServiceDate   time.Time
}

// ListSalesOutput represents a page of the sales history.
type ListSalesOutput struct {
	Sales      []SaleOutput
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListSalesUseCase handles listing recorded services, newest first.
type ListSalesUseCase struct {
	serviceRepo adapter.ServiceRecordRepository
	loc         *time.Location
	now         func() time.Time
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(serviceRepo adapter.ServiceRecordRepository, loc *time.Location, now func() time.Time) *ListSalesUseCase {
	return &ListSalesUseCase{serviceRepo: serviceRepo, loc: loc, now: now}
}

// Execute returns one page of the sales history.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	if !input.Period.IsValid() {
		return nil, domainerror.NewServiceError(
			domainerror.ErrCodeInvalidListPeriod,
			domainerror.ErrInvalidListPeriod.Error(),
			domainerror.ErrInvalidListPeriod,
		)
	}

	page, limit := history.NormalizePage(input.Page, input.Limit)
	from, to := input.Period.Bounds(uc.now(), uc.loc)

	result, err := uc.serviceRepo.List(ctx, adapter.HistoryFilter{
		From:  from,
		To:    to,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	sales := make([]SaleOutput, 0, len(result.Records))
	for _, r := range result.Records {
		local := r.Record.ServiceDate.In(uc.loc)
		sale := SaleOutput{
			ID:            r.Record.ID,
			ServiceType:   r.Record.ServiceType,
			BarberName:    r.Record.BarberName,
			AmountPaid:    r.Record.AmountPaid,
			PaymentMethod: r.Record.PaymentMethod,
			Date:          local.Format("2006-01-02"),
			Time:          local.Format("3:04 PM"),
			ServiceDate:   r.Record.ServiceDate,
		}
		if r.Customer != nil {
			sale.CustomerName = r.Customer.Name
			sale.CustomerPhone = r.Customer.Phone
		}
		sales = append(sales, sale)
	}

	return &ListSalesOutput{
		Sales:      sales,
		Total:      result.Total,
		Page:       page,
		Limit:      limit,
		TotalPages: history.TotalPages(result.Total, limit),
	}, nil
}
