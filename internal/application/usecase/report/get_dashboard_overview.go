package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/domain/valueobject"
)

// GetDashboardOverviewInput represents the input for the dashboard overview.
// An empty Month means the current month.
type GetDashboardOverviewInput struct {
	Month string
}

// DashboardStats are the headline figures of one month.
type DashboardStats struct {
	TotalRevenue   decimal.Decimal
	TotalExpenses  decimal.Decimal
	NetProfit      decimal.Decimal
	TotalServices  int
	TotalCustomers int64
	MonthlyGrowth  float64
}

// DashboardOverview is the month view of the admin dashboard.
type DashboardOverview struct {
	Month           string
	MonthLabel      string
	CurrentMonth    string
	Stats           DashboardStats
	Daily           []PeriodSummary
	AvailableMonths []PeriodOption
}

// GetDashboardOverviewUseCase handles building the dashboard month view.
type GetDashboardOverviewUseCase struct {
	source TransactionSource
	loc    *time.Location
	now    func() time.Time
}

// NewGetDashboardOverviewUseCase creates a new GetDashboardOverviewUseCase instance.
func NewGetDashboardOverviewUseCase(source TransactionSource, loc *time.Location, now func() time.Time) *GetDashboardOverviewUseCase {
	return &GetDashboardOverviewUseCase{source: source, loc: loc, now: now}
}

// Execute returns month totals, growth against the previous month and a
// daily series covering every day of the month.
func (uc *GetDashboardOverviewUseCase) Execute(ctx context.Context, input GetDashboardOverviewInput) (*DashboardOverview, error) {
	localNow := uc.now().In(uc.loc)
	year, month := localNow.Year(), localNow.Month()
	if input.Month != "" {
		var err error
		year, month, err = ParseMonth(input.Month)
		if err != nil {
			return nil, err
		}
	}

	txns, totalCustomers, err := loadSnapshot(ctx, uc.source)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to load transactions",
			err,
		)
	}

	selected := valueobject.ForMonth(year, month)
	interval, _ := selected.Resolve(uc.loc)
	previous := valueobject.ForMonth(year, month-1)
	if month == time.January {
		previous = valueobject.ForMonth(year-1, time.December)
	}

	current := Filter(txns, selected, uc.loc)
	metrics := ComputeMetrics(current)
	previousMetrics := ComputeMetrics(Filter(txns, previous, uc.loc))

	return &DashboardOverview{
		Month:        PeriodKey(interval.Start, GranularityMonth),
		MonthLabel:   interval.Start.Format("January 2006"),
		CurrentMonth: PeriodKey(PeriodStart(localNow, GranularityMonth, uc.loc), GranularityMonth),
		Stats: DashboardStats{
			TotalRevenue:   metrics.TotalRevenue,
			TotalExpenses:  metrics.TotalExpenses,
			NetProfit:      metrics.NetProfit,
			TotalServices:  metrics.TotalServices,
			TotalCustomers: totalCustomers,
			MonthlyGrowth:  growthRate(metrics.TotalRevenue, previousMetrics.TotalRevenue),
		},
		Daily:           FillSeries(Aggregate(current, GranularityDay, uc.loc), interval.Start, interval.End, GranularityDay, uc.loc),
		AvailableMonths: distinctPeriods(txns, GranularityMonth, uc.loc),
	}, nil
}

// growthRate is the percentage change from previous to current, 0 without a baseline.
func growthRate(current, previous decimal.Decimal) float64 {
	if !previous.IsPositive() {
		return 0
	}
	rate, _ := current.Sub(previous).Mul(hundred).Div(previous).Round(2).Float64()
	return rate
}
