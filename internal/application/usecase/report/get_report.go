package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/domain/valueobject"
)

// GetReportInput represents the input for building a report.
type GetReportInput struct {
	Selector    valueobject.DateRangeSelector
	Granularity Granularity
}

// GetReportUseCase loads transactions and builds a report, memoised per data version.
type GetReportUseCase struct {
	source TransactionSource
	cache  ReportCache
	loc    *time.Location
	now    func() time.Time
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(source TransactionSource, cache ReportCache, loc *time.Location, now func() time.Time) *GetReportUseCase {
	return &GetReportUseCase{
		source: source,
		cache:  cache,
		loc:    loc,
		now:    now,
	}
}

// Execute returns the report for the given range and granularity.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*Report, error) {
	if !input.Granularity.IsValid() {
		return nil, newReportValidationError(domainerror.ErrCodeInvalidGranularity, domainerror.ErrInvalidGranularity)
	}
	if !input.Selector.Kind.IsValid() {
		return nil, newReportValidationError(domainerror.ErrCodeInvalidRange, domainerror.ErrInvalidRange)
	}

	key := cacheKey(input)

	// The version is read before loading so a concurrent write can only
	// leave the result under an outdated version.
	version, err := uc.cache.Version(ctx)
	cacheUsable := err == nil
	if err != nil {
		slog.Warn("Report cache unavailable", "error", err)
	}

	if cacheUsable {
		cached, ok, err := uc.cache.Get(ctx, version, key)
		if err != nil {
			slog.Warn("Failed to read cached report", "key", key, "error", err)
		} else if ok {
			return cached, nil
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

	report := BuildReport(txns, input.Selector, input.Granularity, uc.loc)
	report.TotalCustomers = totalCustomers
	report.GeneratedAt = uc.now().UTC()

	if cacheUsable {
		if err := uc.cache.Set(ctx, version, key, report); err != nil {
			slog.Warn("Failed to cache report", "key", key, "error", err)
		}
	}

	return report, nil
}

func cacheKey(input GetReportInput) string {
	return fmt.Sprintf("%s:%s", input.Selector.Key(), input.Granularity)
}

// loadSnapshot fetches services, expenses and the customer count concurrently.
func loadSnapshot(ctx context.Context, source TransactionSource) ([]entity.Transaction, int64, error) {
	var (
		services       []entity.ServiceTransaction
		expenses       []entity.ExpenseTransaction
		totalCustomers int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		services, err = source.LoadServiceTransactions(gctx)
		if err != nil {
			return fmt.Errorf("failed to load services: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = source.LoadExpenseTransactions(gctx)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totalCustomers, err = source.CountCustomers(gctx)
		if err != nil {
			return fmt.Errorf("failed to count customers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return mergeTransactions(services, expenses), totalCustomers, nil
}
