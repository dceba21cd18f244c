package dto

import (
	"time"

	"github.com/barbershop/backend/internal/application/usecase/report"
)

// ReportIntervalResponse is the resolved instant range of a report.
type ReportIntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MetricsResponse represents the scalar report metrics.
type MetricsResponse struct {
	TotalRevenue     string  `json:"total_revenue"`
	TotalExpenses    string  `json:"total_expenses"`
	NetProfit        string  `json:"net_profit"`
	ProfitMargin     float64 `json:"profit_margin"`
	AvgCustomerValue string  `json:"avg_customer_value"`
	UniqueCustomers  int     `json:"unique_customers"`
	TotalServices    int     `json:"total_services"`
	TotalExpenseRows int     `json:"total_expense_rows"`
}

// PeriodSummaryResponse represents one period bucket.
type PeriodSummaryResponse struct {
	Period          string `json:"period"`
	Label           string `json:"label"`
	PeriodStart     string `json:"period_start"`
	Revenue         string `json:"revenue"`
	Expenses        string `json:"expenses"`
	Profit          string `json:"profit"`
	UniqueCustomers int    `json:"unique_customers"`
	ServiceCount    int    `json:"service_count"`
	ExpenseCount    int    `json:"expense_count"`
}

// CategoryAmountResponse represents the total of one service type or expense category.
type CategoryAmountResponse struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
	Count  int    `json:"count"`
}

// PaymentMethodResponse represents the revenue share of one payment method.
type PaymentMethodResponse struct {
	Method     string `json:"method"`
	Amount     string `json:"amount"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// WarningResponse represents a data quality warning.
type WarningResponse struct {
	TransactionID string `json:"transaction_id"`
	Kind          string `json:"kind"`
	Message       string `json:"message"`
}

// ReportResponse represents a full report.
type ReportResponse struct {
	Range              string                   `json:"range"`
	Period             string                   `json:"period"`
	Interval           *ReportIntervalResponse  `json:"interval,omitempty"`
	Granularity        string                   `json:"granularity"`
	Metrics            MetricsResponse          `json:"metrics"`
	Summaries          []PeriodSummaryResponse  `json:"summaries"`
	RevenueByService   []CategoryAmountResponse `json:"revenue_by_service"`
	ExpensesByCategory []CategoryAmountResponse `json:"expenses_by_category"`
	PaymentMethods     []PaymentMethodResponse  `json:"payment_methods"`
	TotalCustomers     int64                    `json:"total_customers"`
	Warnings           []WarningResponse        `json:"warnings"`
	GeneratedAt        string                   `json:"generated_at"`
}

// PeriodOptionResponse represents a selectable month or year.
type PeriodOptionResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// AvailablePeriodsResponse lists the periods that contain data.
type AvailablePeriodsResponse struct {
	Months []PeriodOptionResponse `json:"months"`
	Years  []PeriodOptionResponse `json:"years"`
}

// QueueDigestRequest represents the request body for emailing a report digest.
type QueueDigestRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
	RecipientName  string `json:"recipient_name,omitempty" binding:"omitempty,max=255"`
	Range          string `json:"range,omitempty"`
	Month          string `json:"month,omitempty"`
	Year           string `json:"year,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	Granularity    string `json:"granularity,omitempty"`
}

// QueueDigestResponse identifies the queued email job.
type QueueDigestResponse struct {
	JobID   string `json:"job_id"`
	Period  string `json:"period"`
	Message string `json:"message"`
}

// ToReportResponse converts a report to its response DTO.
func ToReportResponse(r *report.Report) ReportResponse {
	m := r.Metrics
	response := ReportResponse{
		Range:       string(r.Range),
		Period:      r.PeriodLabel,
		Granularity: string(r.Granularity),
		Metrics: MetricsResponse{
			TotalRevenue:     money(m.TotalRevenue),
			TotalExpenses:    money(m.TotalExpenses),
			NetProfit:        money(m.NetProfit),
			ProfitMargin:     m.ProfitMargin,
			AvgCustomerValue: money(m.AvgCustomerValue),
			UniqueCustomers:  m.UniqueCustomers,
			TotalServices:    m.TotalServices,
			TotalExpenseRows: m.TotalExpenseRows,
		},
		Summaries:          ToPeriodSummaryResponses(r.Summaries),
		RevenueByService:   toCategoryAmountResponses(r.RevenueByService),
		ExpensesByCategory: toCategoryAmountResponses(r.ExpensesByCategory),
		PaymentMethods:     make([]PaymentMethodResponse, len(r.PaymentMethods)),
		TotalCustomers:     r.TotalCustomers,
		Warnings:           make([]WarningResponse, len(r.Warnings)),
		GeneratedAt:        r.GeneratedAt.UTC().Format(time.RFC3339),
	}
	if r.Interval != nil {
		response.Interval = &ReportIntervalResponse{
			Start: r.Interval.Start.Format(time.RFC3339Nano),
			End:   r.Interval.End.Format(time.RFC3339Nano),
		}
	}
	for i, p := range r.PaymentMethods {
		response.PaymentMethods[i] = PaymentMethodResponse{
			Method:     string(p.Method),
			Amount:     money(p.Amount),
			Count:      p.Count,
			Percentage: p.Percentage,
		}
	}
	for i, w := range r.Warnings {
		response.Warnings[i] = WarningResponse{
			TransactionID: w.TransactionID.String(),
			Kind:          w.Kind,
			Message:       w.Message,
		}
	}
	return response
}

// ToPeriodSummaryResponses converts period summaries to response DTOs.
func ToPeriodSummaryResponses(summaries []report.PeriodSummary) []PeriodSummaryResponse {
	out := make([]PeriodSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = PeriodSummaryResponse{
			Period:          s.Period,
			Label:           s.Label,
			PeriodStart:     s.PeriodStart.Format(time.RFC3339),
			Revenue:         money(s.Revenue),
			Expenses:        money(s.Expenses),
			Profit:          money(s.Profit),
			UniqueCustomers: s.UniqueCustomers,
			ServiceCount:    s.ServiceCount,
			ExpenseCount:    s.ExpenseCount,
		}
	}
	return out
}

func toCategoryAmountResponses(rows []report.CategoryAmount) []CategoryAmountResponse {
	out := make([]CategoryAmountResponse, len(rows))
	for i, c := range rows {
		out[i] = CategoryAmountResponse{Label: c.Label, Amount: money(c.Amount), Count: c.Count}
	}
	return out
}

// ToPeriodOptionResponses converts period options to response DTOs.
func ToPeriodOptionResponses(options []report.PeriodOption) []PeriodOptionResponse {
	out := make([]PeriodOptionResponse, len(options))
	for i, o := range options {
		out[i] = PeriodOptionResponse{Key: o.Key, Label: o.Label}
	}
	return out
}

// ToAvailablePeriodsResponse converts available periods to the response DTO.
func ToAvailablePeriodsResponse(p *report.AvailablePeriods) AvailablePeriodsResponse {
	return AvailablePeriodsResponse{
		Months: ToPeriodOptionResponses(p.Months),
		Years:  ToPeriodOptionResponses(p.Years),
	}
}
