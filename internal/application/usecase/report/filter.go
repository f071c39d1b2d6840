package report

import (
	"time"

	"github.com/lawledger/backend/internal/domain/entity"
)

// FilterByDateRange selects entries whose date falls within the inclusive
// [start, end] window. Comparison is by calendar date only; any time-of-day
// component on the inputs is ignored. An inverted range (start after end)
// yields an empty result, not an error. Input order is preserved.
func FilterByDateRange(entries []entity.LedgerEntry, start, end time.Time) []entity.LedgerEntry {
	startDay := dateOnly(start)
	endDay := dateOnly(end)

	filtered := make([]entity.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		day := dateOnly(entry.Date)
		if !day.Before(startDay) && !day.After(endDay) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
