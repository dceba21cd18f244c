package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbershop/backend/internal/application/usecase/report"
	"github.com/barbershop/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	getReportUseCase   *report.GetReportUseCase
	periodsUseCase     *report.GetAvailablePeriodsUseCase
	exportUseCase      *report.ExportReportUseCase
	chartUseCase       *report.RenderChartUseCase
	queueDigestUseCase *report.QueueDigestUseCase
	loc                *time.Location
	now                func() time.Time
}

// NewReportController creates a new report controller instance.
func NewReportController(
	getReportUseCase *report.GetReportUseCase,
	periodsUseCase *report.GetAvailablePeriodsUseCase,
	exportUseCase *report.ExportReportUseCase,
	chartUseCase *report.RenderChartUseCase,
	queueDigestUseCase *report.QueueDigestUseCase,
	loc *time.Location,
	now func() time.Time,
) *ReportController {
	return &ReportController{
		getReportUseCase:   getReportUseCase,
		periodsUseCase:     periodsUseCase,
		exportUseCase:      exportUseCase,
		chartUseCase:       chartUseCase,
		queueDigestUseCase: queueDigestUseCase,
		loc:                loc,
		now:                now,
	}
}

// GetReport handles GET /reports requests.
func (c *ReportController) GetReport(ctx *gin.Context) {
	input, err := c.parseReportInput(queryParams(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.getReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// GetPeriods handles GET /reports/periods requests.
func (c *ReportController) GetPeriods(ctx *gin.Context) {
	output, err := c.periodsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAvailablePeriodsResponse(output))
}

// Export handles GET /reports/export requests.
func (c *ReportController) Export(ctx *gin.Context) {
	input, err := c.parseReportInput(queryParams(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// Chart handles GET /reports/chart requests.
func (c *ReportController) Chart(ctx *gin.Context) {
	input, err := c.parseReportInput(queryParams(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	width, _ := strconv.Atoi(ctx.Query("width"))
	height, _ := strconv.Atoi(ctx.Query("height"))

	png, err := c.chartUseCase.Execute(ctx.Request.Context(), report.RenderChartInput{
		Report: input,
		Width:  width,
		Height: height,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// QueueDigest handles POST /reports/digest requests.
func (c *ReportController) QueueDigest(ctx *gin.Context) {
	var req dto.QueueDigestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	input, err := c.parseReportInput(reportParams{
		selector: report.SelectorInput{
			Range:     req.Range,
			Month:     req.Month,
			Year:      req.Year,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
		granularity: req.Granularity,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.queueDigestUseCase.Execute(ctx.Request.Context(), report.QueueDigestInput{
		RecipientEmail: req.RecipientEmail,
		RecipientName:  req.RecipientName,
		Report:         input,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.QueueDigestResponse{
		JobID:   output.JobID,
		Period:  output.PeriodLabel,
		Message: "Report digest queued for delivery",
	})
}

type reportParams struct {
	selector    report.SelectorInput
	granularity string
}

func queryParams(ctx *gin.Context) reportParams {
	return reportParams{
		selector: report.SelectorInput{
			Range:     ctx.Query("range"),
			Month:     ctx.Query("month"),
			Year:      ctx.Query("year"),
			StartDate: ctx.Query("start_date"),
			EndDate:   ctx.Query("end_date"),
		},
		granularity: ctx.Query("granularity"),
	}
}

func (c *ReportController) parseReportInput(params reportParams) (report.GetReportInput, error) {
	selector, err := report.ParseSelector(params.selector, c.now(), c.loc)
	if err != nil {
		return report.GetReportInput{}, err
	}
	granularity, err := report.ParseGranularity(params.granularity)
	if err != nil {
		return report.GetReportInput{}, err
	}
	return report.GetReportInput{Selector: selector, Granularity: granularity}, nil
}
