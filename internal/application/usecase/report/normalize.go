// Package report contains the ledger aggregation use cases: date-window
// filtering, currency partitioning and the financial summary report.
package report

import (
	"github.com/lawledger/backend/internal/domain/entity"
)

// Normalize applies the system-wide defaults to a ledger entry: an empty
// currency becomes UAH and an empty account becomes Cash. Every grouping
// and summing path goes through this single step, so a record without a
// currency is never grouped separately from an explicit "UAH" one.
//
// Currency codes are otherwise taken as given and compared
// case-sensitively; normalization substitutes defaults, it never re-cases.
func Normalize(entry entity.LedgerEntry) entity.LedgerEntry {
	if entry.Currency == "" {
		entry.Currency = entity.DefaultCurrency
	}
	if entry.Account == "" {
		entry.Account = entity.DefaultAccount
	}
	return entry
}

// NormalizeAll returns a new slice with Normalize applied to every entry,
// preserving input order.
func NormalizeAll(entries []entity.LedgerEntry) []entity.LedgerEntry {
	normalized := make([]entity.LedgerEntry, len(entries))
	for i, entry := range entries {
		normalized[i] = Normalize(entry)
	}
	return normalized
}
