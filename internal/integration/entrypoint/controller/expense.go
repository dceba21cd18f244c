package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/application/usecase/expense"
	"github.com/barbershop/backend/internal/application/usecase/history"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	recordUseCase *expense.RecordExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	loc           *time.Location
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	recordUseCase *expense.RecordExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	loc *time.Location,
) *ExpenseController {
	return &ExpenseController{
		recordUseCase: recordUseCase,
		listUseCase:   listUseCase,
		loc:           loc,
	}
}

// Record handles POST /expenses requests.
func (c *ExpenseController) Record(ctx *gin.Context) {
	var req dto.RecordExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	expenseDate, ok := parseRecordDate(req.ExpenseDate, c.loc)
	if !ok {
		respondError(ctx, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			domainerror.ErrInvalidExpenseDate.Error(),
			domainerror.ErrInvalidExpenseDate,
		))
		return
	}

	created, err := c.recordUseCase.Execute(ctx.Request.Context(), expense.RecordExpenseInput{
		Category:    entity.ExpenseCategory(req.Category),
		Amount:      decimal.NewFromFloat(*req.Amount),
		Description: req.Description,
		ExpenseDate: expenseDate,
		RecordedBy:  req.RecordedBy,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(created))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(history.DefaultLimit)))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		Period: history.Period(ctx.Query("period")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListExpensesResponse(output))
}
