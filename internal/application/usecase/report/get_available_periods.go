package report

import (
	"context"
	"sort"
	"time"

	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
)

// PeriodOption is a selectable month or year.
type PeriodOption struct {
	Key   string
	Label string
}

// AvailablePeriods lists months and years that have data, newest first.
type AvailablePeriods struct {
	Months []PeriodOption
	Years  []PeriodOption
}

// GetAvailablePeriodsUseCase handles listing periods with recorded transactions.
type GetAvailablePeriodsUseCase struct {
	source TransactionSource
	loc    *time.Location
}

// NewGetAvailablePeriodsUseCase creates a new GetAvailablePeriodsUseCase instance.
func NewGetAvailablePeriodsUseCase(source TransactionSource, loc *time.Location) *GetAvailablePeriodsUseCase {
	return &GetAvailablePeriodsUseCase{source: source, loc: loc}
}

// Execute returns the distinct months and years present in services or expenses.
func (uc *GetAvailablePeriodsUseCase) Execute(ctx context.Context) (*AvailablePeriods, error) {
	txns, _, err := loadSnapshot(ctx, uc.source)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to load transactions",
			err,
		)
	}
	return availablePeriods(txns, uc.loc), nil
}

func availablePeriods(txns []entity.Transaction, loc *time.Location) *AvailablePeriods {
	return &AvailablePeriods{
		Months: distinctPeriods(txns, GranularityMonth, loc),
		Years:  distinctPeriods(txns, GranularityYear, loc),
	}
}

func distinctPeriods(txns []entity.Transaction, granularity Granularity, loc *time.Location) []PeriodOption {
	starts := make(map[string]time.Time)
	for _, txn := range txns {
		if !hasDate(txn) {
			continue
		}
		start := PeriodStart(txn.TransactionDate(), granularity, loc)
		starts[PeriodKey(start, granularity)] = start
	}

	ordered := make([]time.Time, 0, len(starts))
	for _, start := range starts {
		ordered = append(ordered, start)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].After(ordered[j]) })

	options := make([]PeriodOption, 0, len(ordered))
	for _, start := range ordered {
		label := PeriodLabel(start, granularity)
		if granularity == GranularityMonth {
			label = start.Format("January 2006")
		}
		options = append(options, PeriodOption{Key: PeriodKey(start, granularity), Label: label})
	}
	return options
}
