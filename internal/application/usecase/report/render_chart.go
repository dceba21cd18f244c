package report

import (
	"context"
	"fmt"

	domainerror "github.com/barbershop/backend/internal/domain/error"
)

const (
	defaultChartWidth  = 1024
	defaultChartHeight = 512
	maxChartDimension  = 4096
)

// RenderChartInput represents the input for rendering a report chart.
type RenderChartInput struct {
	Report GetReportInput
	Width  int
	Height int
}

// RenderChartUseCase handles rendering a report's period series as a PNG.
type RenderChartUseCase struct {
	getReport      *GetReportUseCase
	renderer       ChartRenderer
	currencySymbol string
}

// NewRenderChartUseCase creates a new RenderChartUseCase instance.
func NewRenderChartUseCase(getReport *GetReportUseCase, renderer ChartRenderer, currencySymbol string) *RenderChartUseCase {
	return &RenderChartUseCase{
		getReport:      getReport,
		renderer:       renderer,
		currencySymbol: currencySymbol,
	}
}

// Execute builds the report and returns PNG bytes.
func (uc *RenderChartUseCase) Execute(ctx context.Context, input RenderChartInput) ([]byte, error) {
	report, err := uc.getReport.Execute(ctx, input.Report)
	if err != nil {
		return nil, err
	}

	opts := ChartOptions{
		Title:          fmt.Sprintf("Revenue and expenses, %s", report.PeriodLabel),
		Width:          clampDimension(input.Width, defaultChartWidth),
		Height:         clampDimension(input.Height, defaultChartHeight),
		CurrencySymbol: uc.currencySymbol,
	}

	png, err := uc.renderer.RenderPNG(report, opts)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to render chart",
			err,
		)
	}
	return png, nil
}

func clampDimension(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	if value > maxChartDimension {
		return maxChartDimension
	}
	return value
}
