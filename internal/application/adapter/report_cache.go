package adapter

import "context"

// ReportCacheInvalidator drops every memoised report.
// Write paths call it after a successful insert.
type ReportCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}
