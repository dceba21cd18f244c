package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/application/usecase/history"
	"github.com/barbershop/backend/internal/application/usecase/servicerecord"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/integration/entrypoint/dto"
)

// ServiceController handles service record and sales history endpoints.
type ServiceController struct {
	recordUseCase *servicerecord.RecordServiceUseCase
	listUseCase   *servicerecord.ListSalesUseCase
	loc           *time.Location
}

// NewServiceController creates a new service controller instance.
func NewServiceController(
	recordUseCase *servicerecord.RecordServiceUseCase,
	listUseCase *servicerecord.ListSalesUseCase,
	loc *time.Location,
) *ServiceController {
	return &ServiceController{
		recordUseCase: recordUseCase,
		listUseCase:   listUseCase,
		loc:           loc,
	}
}

// Record handles POST /services requests.
func (c *ServiceController) Record(ctx *gin.Context) {
	var req dto.RecordServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	serviceDate, ok := parseRecordDate(req.ServiceDate, c.loc)
	if !ok {
		respondError(ctx, domainerror.NewServiceError(
			domainerror.ErrCodeInvalidServiceDate,
			domainerror.ErrInvalidServiceDate.Error(),
			domainerror.ErrInvalidServiceDate,
		))
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), servicerecord.RecordServiceInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceType:   req.ServiceType,
		BarberName:    req.BarberName,
		AmountPaid:    decimal.NewFromFloat(*req.AmountPaid),
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		ServiceDate:   serviceDate,
		RecordedBy:    req.RecordedBy,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToServiceRecordResponse(output))
}

// ListSales handles GET /sales requests.
func (c *ServiceController) ListSales(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(history.DefaultLimit)))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), servicerecord.ListSalesInput{
		Period: history.Period(ctx.Query("period")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListSalesResponse(output))
}
