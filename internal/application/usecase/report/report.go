package report

import (
	"time"

	"github.com/barbershop/backend/internal/domain/entity"
	"github.com/barbershop/backend/internal/domain/valueobject"
)

// Report is the full output of one range and granularity.
type Report struct {
	Range              valueobject.RangeKind
	PeriodLabel        string
	Interval           *valueobject.Interval
	Granularity        Granularity
	Metrics            Metrics
	Summaries          []PeriodSummary
	RevenueByService   []CategoryAmount
	ExpensesByCategory []CategoryAmount
	PaymentMethods     []PaymentMethodShare
	TotalCustomers     int64
	Warnings           []DataQualityWarning
	GeneratedAt        time.Time
}

// BuildReport filters and aggregates a snapshot of transactions.
// Data quality warnings cover the whole snapshot, not just the selected range.
func BuildReport(
	txns []entity.Transaction,
	selector valueobject.DateRangeSelector,
	granularity Granularity,
	loc *time.Location,
) *Report {
	filtered := Filter(txns, selector, loc)

	report := &Report{
		Range:              selector.Kind,
		PeriodLabel:        selector.Label(loc),
		Granularity:        granularity,
		Metrics:            ComputeMetrics(filtered),
		Summaries:          Aggregate(filtered, granularity, loc),
		RevenueByService:   RevenueByService(filtered),
		ExpensesByCategory: ExpensesByCategory(filtered),
		PaymentMethods:     PaymentMethodDistribution(filtered),
		Warnings:           CheckDataQuality(txns),
	}
	if interval, ok := selector.Resolve(loc); ok {
		report.Interval = &interval
	}
	return report
}

// mergeTransactions combines both record kinds into one transaction slice.
func mergeTransactions(services []entity.ServiceTransaction, expenses []entity.ExpenseTransaction) []entity.Transaction {
	txns := make([]entity.Transaction, 0, len(services)+len(expenses))
	for _, s := range services {
		txns = append(txns, s)
	}
	for _, e := range expenses {
		txns = append(txns, e)
	}
	return txns
}
