package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// PeriodSummary holds the aggregates of one period bucket.
// Monetary values are rounded to whole currency units, half away from zero.
type PeriodSummary struct {
	Period          string
	Label           string
	PeriodStart     time.Time
	Revenue         decimal.Decimal
	Expenses        decimal.Decimal
	Profit          decimal.Decimal
	UniqueCustomers int
	ServiceCount    int
	ExpenseCount    int
}

// Metrics are scalar figures over a whole filtered transaction set.
// Totals are exact; ProfitMargin and AvgCustomerValue are rounded to 2 places.
type Metrics struct {
	TotalRevenue     decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetProfit        decimal.Decimal
	ProfitMargin     float64
	AvgCustomerValue decimal.Decimal
	UniqueCustomers  int
	TotalServices    int
	TotalExpenseRows int
}

// CategoryAmount is the summed amount of one service type or expense category.
type CategoryAmount struct {
	Label  string
	Amount decimal.Decimal
	Count  int
}

// PaymentMethodShare is the revenue collected through one payment method.
type PaymentMethodShare struct {
	Method     entity.PaymentMethod
	Amount     decimal.Decimal
	Count      int
	Percentage int
}

// DataQualityWarning flags a transaction left out of the aggregates.
type DataQualityWarning struct {
	TransactionID uuid.UUID
	Kind          string
	Message       string
}

type bucket struct {
	start     time.Time
	revenue   decimal.Decimal
	expenses  decimal.Decimal
	customers map[uuid.UUID]struct{}
	services  int
	expenseN  int
}

// Aggregate groups transactions into period buckets ordered by period start.
// Transactions without a date are skipped.
func Aggregate(txns []entity.Transaction, granularity Granularity, loc *time.Location) []PeriodSummary {
	buckets := make(map[string]*bucket)

	for _, txn := range txns {
		if !hasDate(txn) {
			continue
		}

		start := PeriodStart(txn.TransactionDate(), granularity, loc)
		key := PeriodKey(start, granularity)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{start: start, customers: make(map[uuid.UUID]struct{})}
			buckets[key] = b
		}

		switch t := txn.(type) {
		case entity.ServiceTransaction:
			b.revenue = b.revenue.Add(t.AmountPaid)
			b.customers[t.CustomerID] = struct{}{}
			b.services++
		case entity.ExpenseTransaction:
			b.expenses = b.expenses.Add(t.Amount)
			b.expenseN++
		default:
			panic(fmt.Sprintf("report: unhandled transaction type %T", txn))
		}
	}

	summaries := make([]PeriodSummary, 0, len(buckets))
	for key, b := range buckets {
		revenue := b.revenue.Round(0)
		expenses := b.expenses.Round(0)
		summaries = append(summaries, PeriodSummary{
			Period:          key,
			Label:           PeriodLabel(b.start, granularity),
			PeriodStart:     b.start,
			Revenue:         revenue,
			Expenses:        expenses,
			Profit:          revenue.Sub(expenses),
			UniqueCustomers: len(b.customers),
			ServiceCount:    b.services,
			ExpenseCount:    b.expenseN,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].PeriodStart.Before(summaries[j].PeriodStart)
	})
	return summaries
}

// ComputeMetrics derives scalar figures over every dated transaction.
func ComputeMetrics(txns []entity.Transaction) Metrics {
	var m Metrics
	customers := make(map[uuid.UUID]struct{})

	for _, txn := range txns {
		if !hasDate(txn) {
			continue
		}
		switch t := txn.(type) {
		case entity.ServiceTransaction:
			m.TotalRevenue = m.TotalRevenue.Add(t.AmountPaid)
			m.TotalServices++
			customers[t.CustomerID] = struct{}{}
		case entity.ExpenseTransaction:
			m.TotalExpenses = m.TotalExpenses.Add(t.Amount)
			m.TotalExpenseRows++
		default:
			panic(fmt.Sprintf("report: unhandled transaction type %T", txn))
		}
	}

	m.NetProfit = m.TotalRevenue.Sub(m.TotalExpenses)
	m.UniqueCustomers = len(customers)

	if m.TotalRevenue.IsPositive() {
		m.ProfitMargin, _ = m.NetProfit.Mul(hundred).Div(m.TotalRevenue).Round(2).Float64()
	}
	if m.UniqueCustomers > 0 {
		m.AvgCustomerValue = m.TotalRevenue.Div(decimal.NewFromInt(int64(m.UniqueCustomers))).Round(2)
	}
	return m
}

// RevenueByService sums service revenue per service type, largest first.
// Equal amounts keep first-seen order.
func RevenueByService(txns []entity.Transaction) []CategoryAmount {
	g := newGrouper()
	for _, txn := range txns {
		if t, ok := txn.(entity.ServiceTransaction); ok && hasDate(txn) {
			g.add(t.ServiceType, t.AmountPaid)
		}
	}
	return roundAmounts(g.sorted())
}

// ExpensesByCategory sums expenses per category, largest first.
// Equal amounts keep first-seen order.
func ExpensesByCategory(txns []entity.Transaction) []CategoryAmount {
	g := newGrouper()
	for _, txn := range txns {
		if t, ok := txn.(entity.ExpenseTransaction); ok && hasDate(txn) {
			g.add(string(t.Category), t.Amount)
		}
	}
	return roundAmounts(g.sorted())
}

// PaymentMethodDistribution sums service revenue per payment method with an
// integer percentage of the total, largest first.
func PaymentMethodDistribution(txns []entity.Transaction) []PaymentMethodShare {
	g := newGrouper()
	total := decimal.Zero
	for _, txn := range txns {
		if t, ok := txn.(entity.ServiceTransaction); ok && hasDate(txn) {
			g.add(string(t.PaymentMethod), t.AmountPaid)
			total = total.Add(t.AmountPaid)
		}
	}

	groups := g.sorted()
	shares := make([]PaymentMethodShare, 0, len(groups))
	for _, group := range groups {
		share := PaymentMethodShare{
			Method: entity.PaymentMethod(group.Label),
			Amount: group.Amount.Round(0),
			Count:  group.Count,
		}
		if total.IsPositive() {
			share.Percentage = int(group.Amount.Mul(hundred).Div(total).Round(0).IntPart())
		}
		shares = append(shares, share)
	}
	return shares
}

// CheckDataQuality returns one warning per transaction that cannot be bucketed.
func CheckDataQuality(txns []entity.Transaction) []DataQualityWarning {
	var warnings []DataQualityWarning
	for _, txn := range txns {
		if hasDate(txn) {
			continue
		}
		var id uuid.UUID
		switch t := txn.(type) {
		case entity.ServiceTransaction:
			id = t.ID
		case entity.ExpenseTransaction:
			id = t.ID
		}
		warnings = append(warnings, DataQualityWarning{
			TransactionID: id,
			Kind:          "missing_date",
			Message:       "transaction has no date and was excluded from the report",
		})
	}
	return warnings
}

func hasDate(txn entity.Transaction) bool {
	return !txn.TransactionDate().IsZero()
}

// grouper sums amounts per label, remembering first-seen order.
type grouper struct {
	index  map[string]int
	groups []CategoryAmount
}

func newGrouper() *grouper {
	return &grouper{index: make(map[string]int)}
}

func (g *grouper) add(label string, amount decimal.Decimal) {
	i, ok := g.index[label]
	if !ok {
		i = len(g.groups)
		g.index[label] = i
		g.groups = append(g.groups, CategoryAmount{Label: label})
	}
	g.groups[i].Amount = g.groups[i].Amount.Add(amount)
	g.groups[i].Count++
}

// sorted orders groups by exact amount, descending.
func (g *grouper) sorted() []CategoryAmount {
	out := make([]CategoryAmount, len(g.groups))
	copy(out, g.groups)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

func roundAmounts(groups []CategoryAmount) []CategoryAmount {
	for i := range groups {
		groups[i].Amount = groups[i].Amount.Round(0)
	}
	return groups
}

func emptySummary(p PeriodInfo) PeriodSummary {
	return PeriodSummary{
		Period:      p.Key,
		Label:       p.Label,
		PeriodStart: p.PeriodStart,
		Revenue:     decimal.Zero,
		Expenses:    decimal.Zero,
		Profit:      decimal.Zero,
	}
}
