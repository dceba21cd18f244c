package report

import (
	"context"

	"github.com/barbershop/backend/internal/domain/entity"
)

// TransactionSource loads the raw records reports are computed from.
type TransactionSource interface {
	LoadServiceTransactions(ctx context.Context) ([]entity.ServiceTransaction, error)
	LoadExpenseTransactions(ctx context.Context) ([]entity.ExpenseTransaction, error)
	CountCustomers(ctx context.Context) (int64, error)
}

// ReportCache memoises reports per data version.
// Version changes whenever new transactions are recorded.
type ReportCache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, version int64, key string) (*Report, bool, error)
	Set(ctx context.Context, version int64, key string, report *Report) error
}

// ReportExporter renders a report as a spreadsheet.
type ReportExporter interface {
	Export(report *Report, meta ExportMeta) ([]byte, error)
}

// ChartRenderer renders a report's period series as an image.
type ChartRenderer interface {
	RenderPNG(report *Report, opts ChartOptions) ([]byte, error)
}

// ExportMeta carries presentation details for exported reports.
type ExportMeta struct {
	BusinessName   string
	CurrencySymbol string
}

// ChartOptions configures chart rendering.
type ChartOptions struct {
	Title          string
	Width          int
	Height         int
	CurrencySymbol string
}
