package report

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/domain/entity"
)

func TestAggregate_MonthlyExample(t *testing.T) {
	customer := uuid.New()
	txns := []entity.Transaction{
		service(date(2025, time.January, 5), 40, customer),
		service(date(2025, time.January, 20), 60, uuid.New()),
		expense(date(2025, time.January, 10), 25),
	}

	got := Aggregate(txns, GranularityMonth, time.UTC)

	if len(got) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got))
	}
	b := got[0]
	if b.Period != "2025-01" {
		t.Errorf("expected period 2025-01, got %s", b.Period)
	}
	if b.Label != "Jan 2025" {
		t.Errorf("expected label Jan 2025, got %s", b.Label)
	}
	if !b.Revenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected revenue 100, got %s", b.Revenue)
	}
	if !b.Expenses.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected expenses 25, got %s", b.Expenses)
	}
	if !b.Profit.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected profit 75, got %s", b.Profit)
	}
	if b.UniqueCustomers != 2 {
		t.Errorf("expected 2 customers, got %d", b.UniqueCustomers)
	}
	if b.ServiceCount != 2 || b.ExpenseCount != 1 {
		t.Errorf("expected 2 services and 1 expense, got %d and %d", b.ServiceCount, b.ExpenseCount)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	got := Aggregate(nil, GranularityDay, time.UTC)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty sequence, got %v", got)
	}
}

func TestAggregate_RevenueIsConserved(t *testing.T) {
	customers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	var txns []entity.Transaction
	want := decimal.Zero
	start := date(2023, time.November, 28)
	for i := 0; i < 120; i++ {
		amount := int64(15 + i%7*5)
		txns = append(txns, service(start.AddDate(0, 0, i*3), amount, customers[i%3]))
		want = want.Add(decimal.NewFromInt(amount))
		if i%4 == 0 {
			txns = append(txns, expense(start.AddDate(0, 0, i*3+1), 12))
		}
	}

	for _, g := range []Granularity{GranularityDay, GranularityMonth, GranularityYear} {
		t.Run(string(g), func(t *testing.T) {
			total := decimal.Zero
			for _, b := range Aggregate(txns, g, time.UTC) {
				total = total.Add(b.Revenue)
			}
			if !total.Equal(want) {
				t.Errorf("expected bucket revenue %s, got %s", want, total)
			}
		})
	}
}

func TestAggregate_ChronologicalOrder(t *testing.T) {
	customer := uuid.New()
	txns := []entity.Transaction{
		service(date(2025, time.February, 3), 10, customer),
		service(date(2025, time.January, 15), 10, customer),
		service(date(2024, time.December, 31), 10, customer),
		expense(date(2025, time.January, 2), 10),
	}

	t.Run("day labels are not sorted lexicographically", func(t *testing.T) {
		got := Aggregate(txns, GranularityDay, time.UTC)
		keys := make([]string, len(got))
		for i, b := range got {
			keys[i] = b.Period
		}
		want := []string{"2024-12-31", "2025-01-02", "2025-01-15", "2025-02-03"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("expected %v, got %v", want, keys)
		}
	})

	t.Run("month output is non-decreasing", func(t *testing.T) {
		got := Aggregate(txns, GranularityMonth, time.UTC)
		for i := 1; i < len(got); i++ {
			if got[i].PeriodStart.Before(got[i-1].PeriodStart) {
				t.Errorf("bucket %s precedes %s", got[i].Period, got[i-1].Period)
			}
		}
		if got[0].Label != "Dec 2024" {
			t.Errorf("expected first label Dec 2024, got %s", got[0].Label)
		}
	})

	t.Run("year keys", func(t *testing.T) {
		got := Aggregate(txns, GranularityYear, time.UTC)
		if len(got) != 2 || got[0].Period != "2024" || got[1].Period != "2025" {
			t.Errorf("unexpected year buckets %+v", got)
		}
	})
}

func TestAggregate_Deterministic(t *testing.T) {
	txns := []entity.Transaction{
		service(date(2025, time.March, 1), 10, uuid.New()),
		service(date(2025, time.April, 1), 20, uuid.New()),
		expense(date(2025, time.March, 9), 3),
	}

	first := Aggregate(txns, GranularityMonth, time.UTC)
	second := Aggregate(txns, GranularityMonth, time.UTC)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output for identical input")
	}
}

func TestAggregate_DistinctCustomers(t *testing.T) {
	regular := uuid.New()
	txns := []entity.Transaction{
		service(date(2025, time.May, 1), 10, regular),
		service(date(2025, time.May, 2), 10, regular),
		service(date(2025, time.May, 3), 10, uuid.New()),
	}

	got := Aggregate(txns, GranularityMonth, time.UTC)
	if got[0].UniqueCustomers != 2 {
		t.Errorf("expected 2 distinct customers, got %d", got[0].UniqueCustomers)
	}
}

func TestAggregate_RoundsToWholeUnits(t *testing.T) {
	txns := []entity.Transaction{
		entity.ServiceTransaction{ID: uuid.New(), Date: date(2025, time.June, 1), AmountPaid: decimal.RequireFromString("10.25"), CustomerID: uuid.New()},
		entity.ServiceTransaction{ID: uuid.New(), Date: date(2025, time.June, 2), AmountPaid: decimal.RequireFromString("0.25"), CustomerID: uuid.New()},
		entity.ExpenseTransaction{ID: uuid.New(), Date: date(2025, time.June, 3), Amount: decimal.RequireFromString("2.4")},
	}

	got := Aggregate(txns, GranularityMonth, time.UTC)

	if !got[0].Revenue.Equal(decimal.NewFromInt(11)) {
		t.Errorf("expected 10.5 to round to 11, got %s", got[0].Revenue)
	}
	if !got[0].Expenses.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected 2.4 to round to 2, got %s", got[0].Expenses)
	}
	if !got[0].Profit.Equal(decimal.NewFromInt(9)) {
		t.Errorf("expected profit 9, got %s", got[0].Profit)
	}
}

func TestAggregate_SkipsUndatedTransactions(t *testing.T) {
	txns := []entity.Transaction{
		service(date(2025, time.June, 1), 10, uuid.New()),
		service(time.Time{}, 500, uuid.New()),
		expense(time.Time{}, 20),
	}

	got := Aggregate(txns, GranularityMonth, time.UTC)
	if len(got) != 1 || !got[0].Revenue.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected only the dated service to be bucketed, got %+v", got)
	}

	warnings := CheckDataQuality(txns)
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].Kind != "missing_date" {
		t.Errorf("unexpected warning kind %s", warnings[0].Kind)
	}

	m := ComputeMetrics(txns)
	if !m.TotalRevenue.Equal(decimal.NewFromInt(10)) || !m.TotalExpenses.IsZero() {
		t.Errorf("expected undated transactions to be excluded from metrics, got %+v", m)
	}
}

func TestComputeMetrics(t *testing.T) {
	t.Run("empty input gives zero metrics", func(t *testing.T) {
		m := ComputeMetrics(nil)
		if !m.TotalRevenue.IsZero() || !m.NetProfit.IsZero() || m.ProfitMargin != 0 || !m.AvgCustomerValue.IsZero() {
			t.Errorf("expected zero metrics, got %+v", m)
		}
	})

	t.Run("zero revenue gives zero margin", func(t *testing.T) {
		m := ComputeMetrics([]entity.Transaction{expense(date(2025, time.January, 1), 30)})
		if m.ProfitMargin != 0 {
			t.Errorf("expected margin 0, got %v", m.ProfitMargin)
		}
		if !m.NetProfit.Equal(decimal.NewFromInt(-30)) {
			t.Errorf("expected net profit -30, got %s", m.NetProfit)
		}
	})

	t.Run("margin and average", func(t *testing.T) {
		customer := uuid.New()
		m := ComputeMetrics([]entity.Transaction{
			service(date(2025, time.January, 5), 40, customer),
			service(date(2025, time.January, 6), 20, customer),
			service(date(2025, time.January, 20), 40, uuid.New()),
			expense(date(2025, time.January, 10), 25),
		})
		if !m.TotalRevenue.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected revenue 100, got %s", m.TotalRevenue)
		}
		if m.ProfitMargin != 75 {
			t.Errorf("expected margin 75, got %v", m.ProfitMargin)
		}
		if !m.AvgCustomerValue.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected average 50, got %s", m.AvgCustomerValue)
		}
		if m.UniqueCustomers != 2 || m.TotalServices != 3 || m.TotalExpenseRows != 1 {
			t.Errorf("unexpected counts %+v", m)
		}
	})

	t.Run("margin is rounded to two places", func(t *testing.T) {
		m := ComputeMetrics([]entity.Transaction{
			service(date(2025, time.January, 5), 3, uuid.New()),
			expense(date(2025, time.January, 6), 2),
		})
		if m.ProfitMargin != 33.33 {
			t.Errorf("expected margin 33.33, got %v", m.ProfitMargin)
		}
	})
}

func TestRevenueByService(t *testing.T) {
	mk := func(serviceType string, amount int64) entity.Transaction {
		s := service(date(2025, time.January, 1), amount, uuid.New())
		s.ServiceType = serviceType
		return s
	}
	txns := []entity.Transaction{
		mk("Haircut", 30),
		mk("Shave", 50),
		mk("Haircut", 20),
		mk("Dye", 80),
		expense(date(2025, time.January, 1), 1000),
	}

	got := RevenueByService(txns)

	want := []string{"Dye", "Haircut", "Shave"}
	if len(got) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(got))
	}
	for i, label := range want {
		if got[i].Label != label {
			t.Errorf("position %d: expected %s, got %s", i, label, got[i].Label)
		}
	}
	if got[1].Count != 2 || !got[1].Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected Haircut 50 over 2 services, got %+v", got[1])
	}
}

func TestExpensesByCategory(t *testing.T) {
	mk := func(category entity.ExpenseCategory, amount int64) entity.Transaction {
		e := expense(date(2025, time.January, 1), amount)
		e.Category = category
		return e
	}

	got := ExpensesByCategory([]entity.Transaction{
		mk(entity.ExpenseCategoryFuel, 40),
		mk(entity.ExpenseCategoryElectricity, 90),
		mk(entity.ExpenseCategoryOther, 40),
	})

	if got[0].Label != "electricity" || got[1].Label != "fuel" || got[2].Label != "other" {
		t.Errorf("unexpected order %+v", got)
	}
}

func TestPaymentMethodDistribution(t *testing.T) {
	mk := func(method entity.PaymentMethod, amount int64) entity.Transaction {
		s := service(date(2025, time.January, 1), amount, uuid.New())
		s.PaymentMethod = method
		return s
	}

	t.Run("percentages of total", func(t *testing.T) {
		got := PaymentMethodDistribution([]entity.Transaction{
			mk(entity.PaymentMethodCard, 40),
			mk(entity.PaymentMethodCash, 60),
		})
		if got[0].Method != entity.PaymentMethodCash || got[0].Percentage != 60 {
			t.Errorf("expected cash 60%%, got %+v", got[0])
		}
		if got[1].Method != entity.PaymentMethodCard || got[1].Percentage != 40 {
			t.Errorf("expected card 40%%, got %+v", got[1])
		}
	})

	t.Run("percentages round to integers", func(t *testing.T) {
		got := PaymentMethodDistribution([]entity.Transaction{
			mk(entity.PaymentMethodCash, 1),
			mk(entity.PaymentMethodCard, 1),
			mk(entity.PaymentMethodTransfer, 1),
		})
		for _, share := range got {
			if share.Percentage != 33 {
				t.Errorf("expected 33%%, got %d for %s", share.Percentage, share.Method)
			}
		}
		if got[0].Method != entity.PaymentMethodCash {
			t.Errorf("expected ties to keep first-seen order, got %s first", got[0].Method)
		}
	})

	t.Run("zero total gives zero percentages", func(t *testing.T) {
		got := PaymentMethodDistribution([]entity.Transaction{mk(entity.PaymentMethodCash, 0)})
		if len(got) != 1 || got[0].Percentage != 0 {
			t.Errorf("expected one share at 0%%, got %+v", got)
		}
	})
}

func TestFillSeries(t *testing.T) {
	from := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC)
	summaries := Aggregate([]entity.Transaction{service(date(2025, time.February, 10), 10, uuid.New())}, GranularityDay, time.UTC)

	got := FillSeries(summaries, from, to, GranularityDay, time.UTC)

	if len(got) != 28 {
		t.Fatalf("expected 28 days, got %d", len(got))
	}
	if got[9].Period != "2025-02-10" || !got[9].Revenue.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected revenue on Feb 10, got %+v", got[9])
	}
	if !got[0].Revenue.IsZero() {
		t.Errorf("expected zero-filled first day, got %s", got[0].Revenue)
	}
}
