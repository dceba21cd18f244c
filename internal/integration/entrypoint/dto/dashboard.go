package dto

import (
	"github.com/barbershop/backend/internal/application/usecase/report"
)

// DashboardStatsResponse represents the headline figures of a month.
type DashboardStatsResponse struct {
	TotalRevenue   string  `json:"total_revenue"`
	TotalExpenses  string  `json:"total_expenses"`
	NetProfit      string  `json:"net_profit"`
	TotalServices  int     `json:"total_services"`
	TotalCustomers int64   `json:"total_customers"`
	MonthlyGrowth  float64 `json:"monthly_growth"`
}

// DashboardResponse represents the dashboard overview of one month.
type DashboardResponse struct {
	Month           string                  `json:"month"`
	MonthLabel      string                  `json:"month_label"`
	CurrentMonth    string                  `json:"current_month"`
	Stats           DashboardStatsResponse  `json:"stats"`
	Daily           []PeriodSummaryResponse `json:"daily"`
	AvailableMonths []PeriodOptionResponse  `json:"available_months"`
}

// ToDashboardResponse converts a dashboard overview to its response DTO.
func ToDashboardResponse(o *report.DashboardOverview) DashboardResponse {
	return DashboardResponse{
		Month:        o.Month,
		MonthLabel:   o.MonthLabel,
		CurrentMonth: o.CurrentMonth,
		Stats: DashboardStatsResponse{
			TotalRevenue:   money(o.Stats.TotalRevenue),
			TotalExpenses:  money(o.Stats.TotalExpenses),
			NetProfit:      money(o.Stats.NetProfit),
			TotalServices:  o.Stats.TotalServices,
			TotalCustomers: o.Stats.TotalCustomers,
			MonthlyGrowth:  o.Stats.MonthlyGrowth,
		},
		Daily:           ToPeriodSummaryResponses(o.Daily),
		AvailableMonths: ToPeriodOptionResponses(o.AvailableMonths),
	}
}
