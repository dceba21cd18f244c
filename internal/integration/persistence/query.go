package persistence

import (
	"time"

	"gorm.io/gorm"
)

// applyDateBounds restricts column to the inclusive [from, to] range.
// Nil bounds are open. Bounds are compared in UTC.
func applyDateBounds(query *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where(column+" >= ?", from.UTC())
	}
	if to != nil {
		query = query.Where(column+" <= ?", to.UTC())
	}
	return query
}

func pageOffset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	return (page - 1) * limit
}
