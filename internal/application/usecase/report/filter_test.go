package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lawledger/backend/internal/domain/entity"
)

func entryOn(date time.Time, amount string) entity.LedgerEntry {
	return entity.LedgerEntry{
		Amount:   decimal.RequireFromString(amount),
		Currency: "UAH",
		Date:     date,
		Account:  "Cash",
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterByDateRange(t *testing.T) {
	entries := []entity.LedgerEntry{
		entryOn(day(2025, time.January, 1), "10"),
		entryOn(day(2025, time.January, 15), "20"),
		entryOn(day(2025, time.February, 1), "30"),
	}

	t.Run("bounds are inclusive on both ends", func(t *testing.T) {
		filtered := FilterByDateRange(entries, day(2025, time.January, 1), day(2025, time.January, 15))

		if len(filtered) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(filtered))
		}
		if !filtered[0].Date.Equal(day(2025, time.January, 1)) {
			t.Errorf("expected first entry dated 2025-01-01, got %v", filtered[0].Date)
		}
		if !filtered[1].Date.Equal(day(2025, time.January, 15)) {
			t.Errorf("expected second entry dated 2025-01-15, got %v", filtered[1].Date)
		}
	})

	t.Run("inverted range yields empty result", func(t *testing.T) {
		filtered := FilterByDateRange(entries, day(2025, time.February, 1), day(2025, time.January, 1))

		if len(filtered) != 0 {
			t.Errorf("expected empty result for inverted range, got %d entries", len(filtered))
		}
	})

	t.Run("time of day does not participate", func(t *testing.T) {
		lateOnBoundary := []entity.LedgerEntry{
			entryOn(time.Date(2025, time.January, 15, 23, 59, 59, 0, time.UTC), "10"),
		}

		filtered := FilterByDateRange(lateOnBoundary, day(2025, time.January, 1), day(2025, time.January, 15))
		if len(filtered) != 1 {
			t.Errorf("expected entry on boundary day to be included regardless of time, got %d", len(filtered))
		}
	})

	t.Run("input order is preserved", func(t *testing.T) {
		unordered := []entity.LedgerEntry{
			entryOn(day(2025, time.January, 20), "1"),
			entryOn(day(2025, time.January, 5), "2"),
			entryOn(day(2025, time.January, 10), "3"),
		}

		filtered := FilterByDateRange(unordered, day(2025, time.January, 1), day(2025, time.January, 31))
		if len(filtered) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(filtered))
		}
		for i, want := range []string{"1", "2", "3"} {
			if filtered[i].Amount.String() != want {
				t.Errorf("entry %d: expected amount %s, got %s", i, want, filtered[i].Amount.String())
			}
		}
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		filtered := FilterByDateRange(nil, day(2025, time.January, 1), day(2025, time.December, 31))
		if len(filtered) != 0 {
			t.Errorf("expected empty result, got %d entries", len(filtered))
		}
	})
}
