package report

import (
	"github.com/lawledger/backend/internal/domain/entity"
)

// GroupByCurrency partitions entries by their effective currency code.
// Entries are normalized first, so records without a currency land in the
// UAH bucket. Order within each bucket follows input order.
func GroupByCurrency(entries []entity.LedgerEntry) map[string][]entity.LedgerEntry {
	groups := make(map[string][]entity.LedgerEntry)
	for _, entry := range entries {
		normalized := Normalize(entry)
		groups[normalized.Currency] = append(groups[normalized.Currency], normalized)
	}
	return groups
}
