package report

import (
	"context"
	"net/mail"
	"time"

	"github.com/barbershop/backend/internal/application/adapter"
	domainerror "github.com/barbershop/backend/internal/domain/error"
)

// QueueDigestInput represents the input for emailing a report digest.
type QueueDigestInput struct {
	RecipientEmail string
	RecipientName  string
	Report         GetReportInput
}

// QueueDigestOutput identifies the queued email job.
type QueueDigestOutput struct {
	JobID       string
	PeriodLabel string
}

// QueueDigestUseCase handles queueing report digests for email delivery.
type QueueDigestUseCase struct {
	getReport    *GetReportUseCase
	emailService adapter.EmailService
	meta         ExportMeta
	loc          *time.Location
}

// NewQueueDigestUseCase creates a new QueueDigestUseCase instance.
func NewQueueDigestUseCase(getReport *GetReportUseCase, emailService adapter.EmailService, meta ExportMeta, loc *time.Location) *QueueDigestUseCase {
	return &QueueDigestUseCase{
		getReport:    getReport,
		emailService: emailService,
		meta:         meta,
		loc:          loc,
	}
}

// Execute builds the report and queues it as a templated email.
func (uc *QueueDigestUseCase) Execute(ctx context.Context, input QueueDigestInput) (*QueueDigestOutput, error) {
	if _, err := mail.ParseAddress(input.RecipientEmail); err != nil {
		return nil, newReportValidationError(domainerror.ErrCodeInvalidRecipient, domainerror.ErrInvalidRecipient)
	}

	report, err := uc.getReport.Execute(ctx, input.Report)
	if err != nil {
		return nil, err
	}

	jobID, err := uc.emailService.QueueReportDigestEmail(ctx, adapter.QueueReportDigestInput{
		RecipientEmail: input.RecipientEmail,
		RecipientName:  input.RecipientName,
		BusinessName:   uc.meta.BusinessName,
		PeriodLabel:    report.PeriodLabel,
		Data:           uc.digestData(report),
	})
	if err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			domainerror.ErrEmailQueueFailed.Error(),
			err,
		)
	}

	return &QueueDigestOutput{JobID: jobID, PeriodLabel: report.PeriodLabel}, nil
}

// digestData flattens a report into template-friendly strings.
func (uc *QueueDigestUseCase) digestData(report *Report) map[string]interface{} {
	symbol := uc.meta.CurrencySymbol

	periods := make([]map[string]interface{}, 0, len(report.Summaries))
	for _, s := range report.Summaries {
		periods = append(periods, map[string]interface{}{
			"Label":     s.Label,
			"Revenue":   FormatMoney(symbol, s.Revenue),
			"Expenses":  FormatMoney(symbol, s.Expenses),
			"Profit":    FormatMoney(symbol, s.Profit),
			"Customers": s.UniqueCustomers,
		})
	}

	services := make([]map[string]interface{}, 0, len(report.RevenueByService))
	for _, c := range report.RevenueByService {
		services = append(services, map[string]interface{}{
			"Label":  c.Label,
			"Amount": FormatMoney(symbol, c.Amount),
			"Count":  c.Count,
		})
	}

	return map[string]interface{}{
		"TotalRevenue":     FormatMoney(symbol, report.Metrics.TotalRevenue),
		"TotalExpenses":    FormatMoney(symbol, report.Metrics.TotalExpenses),
		"NetProfit":        FormatMoney(symbol, report.Metrics.NetProfit),
		"ProfitMargin":     report.Metrics.ProfitMargin,
		"AvgCustomerValue": FormatMoneyCents(symbol, report.Metrics.AvgCustomerValue),
		"UniqueCustomers":  report.Metrics.UniqueCustomers,
		"TotalServices":    report.Metrics.TotalServices,
		"Periods":          periods,
		"Services":         services,
		"WarningCount":     len(report.Warnings),
		"GeneratedAt":      report.GeneratedAt.In(uc.loc).Format("Jan 2, 2006 3:04 PM"),
	}
}
