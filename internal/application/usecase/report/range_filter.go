package report

import (
	"time"

	"github.com/barbershop/backend/internal/domain/entity"
	"github.com/barbershop/backend/internal/domain/valueobject"
)

// Filter narrows transactions to those dated inside the selector's interval.
// RangeAll returns the input slice itself. A custom range whose start is
// after its end yields an empty slice.
func Filter(txns []entity.Transaction, selector valueobject.DateRangeSelector, loc *time.Location) []entity.Transaction {
	interval, bounded := selector.Resolve(loc)
	if !bounded {
		return txns
	}

	filtered := make([]entity.Transaction, 0, len(txns))
	if interval.IsEmpty() {
		return filtered
	}
	for _, txn := range txns {
		if interval.Contains(txn.TransactionDate()) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}
