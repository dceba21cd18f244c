package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbershop/backend/internal/application/usecase/report"
	"github.com/barbershop/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the dashboard overview endpoint.
type DashboardController struct {
	overviewUseCase *report.GetDashboardOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(overviewUseCase *report.GetDashboardOverviewUseCase) *DashboardController {
	return &DashboardController{overviewUseCase: overviewUseCase}
}

// GetOverview handles GET /dashboard requests.
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), report.GetDashboardOverviewInput{
		Month: ctx.Query("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
