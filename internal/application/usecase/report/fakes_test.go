package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/domain/entity"
)

type fakeSource struct {
	mu        sync.Mutex
	services  []entity.ServiceTransaction
	expenses  []entity.ExpenseTransaction
	customers int64
	err       error
	loads     int
}

func (f *fakeSource) LoadServiceTransactions(ctx context.Context) ([]entity.ServiceTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

func (f *fakeSource) LoadExpenseTransactions(ctx context.Context) ([]entity.ExpenseTransaction, error) {
	return f.expenses, nil
}

func (f *fakeSource) CountCustomers(ctx context.Context) (int64, error) {
	return f.customers, nil
}

type fakeCache struct {
	version    int64
	versionErr error
	entries    map[string]*Report
	sets       int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*Report)}
}

func (c *fakeCache) Version(ctx context.Context) (int64, error) {
	return c.version, c.versionErr
}

func (c *fakeCache) Get(ctx context.Context, version int64, key string) (*Report, bool, error) {
	r, ok := c.entries[fmt.Sprintf("%d:%s", version, key)]
	return r, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, version int64, key string, report *Report) error {
	c.sets++
	c.entries[fmt.Sprintf("%d:%s", version, key)] = report
	return nil
}

type fakeEmailService struct {
	inputs []adapter.QueueReportDigestInput
	err    error
}

func (f *fakeEmailService) QueueReportDigestEmail(ctx context.Context, input adapter.QueueReportDigestInput) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.inputs = append(f.inputs, input)
	return "job-1", nil
}

type fakeExporter struct {
	got *Report
	err error
}

func (f *fakeExporter) Export(report *Report, meta ExportMeta) ([]byte, error) {
	f.got = report
	if f.err != nil {
		return nil, f.err
	}
	return []byte("xlsx"), nil
}

type fakeRenderer struct {
	opts ChartOptions
}

func (f *fakeRenderer) RenderPNG(report *Report, opts ChartOptions) ([]byte, error) {
	f.opts = opts
	return []byte("png"), nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func service(at time.Time, amount int64, customer uuid.UUID) entity.ServiceTransaction {
	return entity.ServiceTransaction{
		ID:            uuid.New(),
		Date:          at,
		AmountPaid:    decimal.NewFromInt(amount),
		CustomerID:    customer,
		ServiceType:   "Haircut",
		PaymentMethod: entity.PaymentMethodCash,
	}
}

func expense(at time.Time, amount int64) entity.ExpenseTransaction {
	return entity.ExpenseTransaction{
		ID:       uuid.New(),
		Date:     at,
		Amount:   decimal.NewFromInt(amount),
		Category: entity.ExpenseCategorySupplies,
	}
}
