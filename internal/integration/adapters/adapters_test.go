package adapters

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/barbershop/backend/internal/application/usecase/report"
	"github.com/barbershop/backend/internal/domain/entity"
	"github.com/barbershop/backend/internal/domain/valueobject"
)

var (
	_ report.ReportExporter = (*ExcelExporter)(nil)
	_ report.ChartRenderer  = (*ChartRenderer)(nil)
)

func sampleReport() *report.Report {
	return &report.Report{
		Range:       valueobject.RangeMonth,
		PeriodLabel: "January 2025",
		Granularity: report.GranularityDay,
		Metrics: report.Metrics{
			TotalRevenue:  decimal.NewFromInt(12500),
			TotalExpenses: decimal.NewFromInt(4000),
			NetProfit:     decimal.NewFromInt(8500),
			ProfitMargin:  68,
		},
		Summaries: []report.PeriodSummary{
			{Period: "2025-01-02", Label: "Jan 2", Revenue: decimal.NewFromInt(5000), Expenses: decimal.NewFromInt(4000), Profit: decimal.NewFromInt(1000)},
			{Period: "2025-01-03", Label: "Jan 3", Revenue: decimal.NewFromInt(7500), Profit: decimal.NewFromInt(7500)},
		},
		RevenueByService:   []report.CategoryAmount{{Label: "Haircut", Amount: decimal.NewFromInt(12500), Count: 3}},
		ExpensesByCategory: []report.CategoryAmount{{Label: "fuel", Amount: decimal.NewFromInt(4000), Count: 1}},
		PaymentMethods:     []report.PaymentMethodShare{{Method: entity.PaymentMethodCash, Amount: decimal.NewFromInt(12500), Count: 3, Percentage: 100}},
		TotalCustomers:     3,
		GeneratedAt:        time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC),
	}
}

func TestExcelExporter_Export(t *testing.T) {
	data, err := NewExcelExporter().Export(sampleReport(), report.ExportMeta{BusinessName: "Fade Lab", CurrencySymbol: "₦"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	want := []string{"Summary", "Periods", "Services", "Expenses", "Payments"}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d: expected %s, got %s", i, want[i], sheets[i])
		}
	}

	tests := []struct {
		sheet, cell, want string
	}{
		{"Summary", "A1", "Fade Lab"},
		{"Summary", "B2", "January 2025"},
		{"Summary", "A8", "Total revenue"},
		{"Summary", "B8", "12500"},
		{"Periods", "B2", "Jan 2"},
		{"Periods", "C3", "7500"},
		{"Services", "A2", "Haircut"},
		{"Expenses", "A2", "fuel"},
		{"Payments", "A2", "cash"},
		{"Payments", "D2", "100"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(tt.sheet, tt.cell, excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("failed to read %s!%s: %v", tt.sheet, tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("%s!%s: expected %q, got %q", tt.sheet, tt.cell, tt.want, got)
		}
	}
}

func TestExcelExporter_EmptyReport(t *testing.T) {
	empty := &report.Report{Range: valueobject.RangeAll, PeriodLabel: "All time", Granularity: report.GranularityMonth}

	data, err := NewExcelExporter().Export(empty, report.ExportMeta{BusinessName: "Fade Lab"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected a workbook")
	}
}

func TestChartRenderer_RenderPNG(t *testing.T) {
	pngSignature := []byte("\x89PNG")
	opts := report.ChartOptions{Title: "Revenue and expenses, January 2025", Width: 800, Height: 400, CurrencySymbol: "₦"}

	t.Run("with data", func(t *testing.T) {
		data, err := NewChartRenderer().RenderPNG(sampleReport(), opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(data, pngSignature) {
			t.Error("expected PNG output")
		}
	})

	t.Run("single period", func(t *testing.T) {
		r := sampleReport()
		r.Summaries = r.Summaries[:1]
		data, err := NewChartRenderer().RenderPNG(r, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(data, pngSignature) {
			t.Error("expected PNG output")
		}
	})

	t.Run("month at month granularity", func(t *testing.T) {
		txns := []entity.Transaction{
			entity.ServiceTransaction{
				ID:            uuid.New(),
				Date:          time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
				AmountPaid:    decimal.NewFromInt(3000),
				CustomerID:    uuid.New(),
				ServiceType:   "Haircut",
				PaymentMethod: entity.PaymentMethodCash,
			},
		}
		r := report.BuildReport(txns, valueobject.ForMonth(2025, time.January), report.GranularityMonth, time.UTC)
		if len(r.Summaries) != 1 {
			t.Fatalf("expected 1 summary, got %d", len(r.Summaries))
		}
		data, err := NewChartRenderer().RenderPNG(r, report.ChartOptions{Width: 640, Height: 320})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(data, pngSignature) {
			t.Error("expected PNG output")
		}
	})

	t.Run("no periods", func(t *testing.T) {
		data, err := NewChartRenderer().RenderPNG(&report.Report{}, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(data, pngSignature) {
			t.Error("expected PNG output")
		}
	})
}

func TestTicks(t *testing.T) {
	labels := make([]string, 31)
	for i := range labels {
		labels[i] = "d"
	}
	got := ticks(labels)
	if len(got) > maxTickLabels {
		t.Errorf("expected at most %d ticks, got %d", maxTickLabels, len(got))
	}
	if got[0].Value != 0 {
		t.Errorf("expected first tick at 0, got %v", got[0].Value)
	}

	t.Run("spans the last point", func(t *testing.T) {
		got := ticks(make([]string, 14))
		if last := got[len(got)-1]; last.Value != 13 || last.Label != "" {
			t.Errorf("expected unlabelled last tick at 13, got %+v", last)
		}
	})

	t.Run("two labels", func(t *testing.T) {
		got := ticks([]string{"Jan 2025", ""})
		if len(got) != 2 || got[0].Value == got[1].Value {
			t.Errorf("expected two distinct ticks, got %+v", got)
		}
	})
}

func TestValueRange(t *testing.T) {
	lo, hi := valueRange([]float64{0}, []float64{0})
	if lo != 0 || hi <= lo {
		t.Errorf("expected a non-empty range, got %v..%v", lo, hi)
	}
	lo, hi = valueRange([]float64{100, 250}, []float64{50})
	if lo != 0 || hi < 250 {
		t.Errorf("expected range to cover 250, got %v..%v", lo, hi)
	}
}
