// Package adapters provides implementations for external service integrations.
package adapters

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/barbershop/backend/internal/application/usecase/report"
)

const (
	sheetSummary  = "Summary"
	sheetPeriods  = "Periods"
	sheetServices = "Services"
	sheetExpenses = "Expenses"
	sheetPayments = "Payments"
)

// ExcelExporter implements report.ReportExporter using excelize.
type ExcelExporter struct{}

// NewExcelExporter creates a new Excel exporter instance.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export renders the report as an XLSX workbook with one sheet per section.
func (e *ExcelExporter) Export(r *report.Report, meta report.ExportMeta) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{sheetPeriods, sheetServices, sheetExpenses, sheetPayments} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	w := &sheetWriter{f: f}
	var err error
	if w.headerStyle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if w.amountStyle, err = f.NewStyle(&excelize.Style{NumFmt: 3}); err != nil {
		return nil, fmt.Errorf("failed to create amount style: %w", err)
	}

	writeSummary(w, r, meta)
	writePeriods(w, r)
	writeAmounts(w, sheetServices, "Service", r.RevenueByService)
	writeAmounts(w, sheetExpenses, "Category", r.ExpensesByCategory)
	writePayments(w, r)

	if w.err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialise workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so sections can be written without
// checking every cell.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	amountStyle int
	err         error
}

func (w *sheetWriter) row(sheet string, row int, values ...interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) header(sheet string, row int, titles ...interface{}) {
	w.row(sheet, row, titles...)
	w.style(sheet, 1, row, len(titles), row, w.headerStyle)
}

func (w *sheetWriter) style(sheet string, fromCol, fromRow, toCol, toRow, style int) {
	if w.err != nil || toRow < fromRow {
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		w.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheet, from, to, style)
}

func (w *sheetWriter) widths(sheet, from, to string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(sheet, from, to, width)
}

func writeSummary(w *sheetWriter, r *report.Report, meta report.ExportMeta) {
	m := r.Metrics
	w.header(sheetSummary, 1, meta.BusinessName, "")
	w.row(sheetSummary, 2, "Period", r.PeriodLabel)
	w.row(sheetSummary, 3, "Granularity", string(r.Granularity))
	w.row(sheetSummary, 4, "Generated", r.GeneratedAt.Format("2006-01-02 15:04 MST"))
	w.row(sheetSummary, 5, "Currency", meta.CurrencySymbol)

	w.header(sheetSummary, 7, "Metric", "Value")
	w.row(sheetSummary, 8, "Total revenue", m.TotalRevenue.InexactFloat64())
	w.row(sheetSummary, 9, "Total expenses", m.TotalExpenses.InexactFloat64())
	w.row(sheetSummary, 10, "Net profit", m.NetProfit.InexactFloat64())
	w.row(sheetSummary, 11, "Profit margin (%)", m.ProfitMargin)
	w.row(sheetSummary, 12, "Average customer value", m.AvgCustomerValue.InexactFloat64())
	w.row(sheetSummary, 13, "Unique customers", m.UniqueCustomers)
	w.row(sheetSummary, 14, "Services", m.TotalServices)
	w.row(sheetSummary, 15, "Expense entries", m.TotalExpenseRows)
	w.row(sheetSummary, 16, "Registered customers", r.TotalCustomers)
	w.row(sheetSummary, 17, "Data warnings", len(r.Warnings))
	w.style(sheetSummary, 2, 8, 2, 10, w.amountStyle)
	w.widths(sheetSummary, "A", "B", 26)
}

func writePeriods(w *sheetWriter, r *report.Report) {
	w.header(sheetPeriods, 1, "Period", "Label", "Revenue", "Expenses", "Profit", "Customers", "Services", "Expense entries")
	for i, s := range r.Summaries {
		w.row(sheetPeriods, i+2,
			s.Period,
			s.Label,
			s.Revenue.InexactFloat64(),
			s.Expenses.InexactFloat64(),
			s.Profit.InexactFloat64(),
			s.UniqueCustomers,
			s.ServiceCount,
			s.ExpenseCount,
		)
	}
	w.style(sheetPeriods, 3, 2, 5, len(r.Summaries)+1, w.amountStyle)
	w.widths(sheetPeriods, "A", "H", 16)
}

func writeAmounts(w *sheetWriter, sheet, title string, rows []report.CategoryAmount) {
	w.header(sheet, 1, title, "Amount", "Count")
	for i, c := range rows {
		w.row(sheet, i+2, c.Label, c.Amount.InexactFloat64(), c.Count)
	}
	w.style(sheet, 2, 2, 2, len(rows)+1, w.amountStyle)
	w.widths(sheet, "A", "C", 20)
}

func writePayments(w *sheetWriter, r *report.Report) {
	w.header(sheetPayments, 1, "Method", "Amount", "Count", "Share (%)")
	for i, p := range r.PaymentMethods {
		w.row(sheetPayments, i+2, string(p.Method), p.Amount.InexactFloat64(), p.Count, p.Percentage)
	}
	w.style(sheetPayments, 2, 2, 2, len(r.PaymentMethods)+1, w.amountStyle)
	w.widths(sheetPayments, "A", "D", 16)
}
