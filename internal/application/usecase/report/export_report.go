package report

import (
	"context"
	"fmt"
	"time"

	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/domain/valueobject"
)

// XLSXContentType is the MIME type of exported workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportOutput is a rendered report file.
type ExportOutput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportReportUseCase handles exporting reports as spreadsheets.
type ExportReportUseCase struct {
	getReport *GetReportUseCase
	exporter  ReportExporter
	meta      ExportMeta
	loc       *time.Location
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(getReport *GetReportUseCase, exporter ReportExporter, meta ExportMeta, loc *time.Location) *ExportReportUseCase {
	return &ExportReportUseCase{
		getReport: getReport,
		exporter:  exporter,
		meta:      meta,
		loc:       loc,
	}
}

// Execute builds the report and renders it as an XLSX workbook.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input GetReportInput) (*ExportOutput, error) {
	report, err := uc.getReport.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	content, err := uc.exporter.Export(report, uc.meta)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to export report",
			err,
		)
	}

	return &ExportOutput{
		Filename:    fmt.Sprintf("report-%s-%s.xlsx", fileSuffix(input.Selector, uc.loc), input.Granularity),
		ContentType: XLSXContentType,
		Content:     content,
	}, nil
}

func fileSuffix(selector valueobject.DateRangeSelector, loc *time.Location) string {
	switch selector.Kind {
	case valueobject.RangeMonth:
		return fmt.Sprintf("%04d-%02d", selector.Year, int(selector.Month))
	case valueobject.RangeYear:
		return fmt.Sprintf("%04d", selector.Year)
	case valueobject.RangeCustom:
		return selector.Start.In(loc).Format(dateLayout) + "_" + selector.End.In(loc).Format(dateLayout)
	default:
		return "all-time"
	}
}
