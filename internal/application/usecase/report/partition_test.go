package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lawledger/backend/internal/domain/entity"
)

func TestGroupByCurrency(t *testing.T) {
	date := day(2025, time.March, 1)

	t.Run("groups by effective currency", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			{Amount: decimal.NewFromInt(10), Currency: "UAH", Date: date, Account: "Cash"},
			{Amount: decimal.NewFromInt(20), Currency: "USD", Date: date, Account: "Cash"},
			{Amount: decimal.NewFromInt(30), Currency: "UAH", Date: date, Account: "FOP"},
		}

		groups := GroupByCurrency(entries)

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if len(groups["UAH"]) != 2 {
			t.Errorf("expected 2 UAH entries, got %d", len(groups["UAH"]))
		}
		if len(groups["USD"]) != 1 {
			t.Errorf("expected 1 USD entry, got %d", len(groups["USD"]))
		}
	})

	t.Run("missing currency lands in the UAH bucket", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			{Amount: decimal.NewFromInt(10), Currency: "", Date: date},
			{Amount: decimal.NewFromInt(20), Currency: "UAH", Date: date},
		}

		groups := GroupByCurrency(entries)

		if len(groups) != 1 {
			t.Fatalf("expected a single UAH group, got %d groups", len(groups))
		}
		if len(groups["UAH"]) != 2 {
			t.Errorf("expected both entries in UAH group, got %d", len(groups["UAH"]))
		}
	})

	t.Run("currency codes are compared case-sensitively", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			{Amount: decimal.NewFromInt(10), Currency: "usd", Date: date},
			{Amount: decimal.NewFromInt(20), Currency: "USD", Date: date},
		}

		groups := GroupByCurrency(entries)

		if len(groups) != 2 {
			t.Errorf("expected usd and USD to stay distinct, got %d groups", len(groups))
		}
	})

	t.Run("order within a group follows input order", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			{Amount: decimal.NewFromInt(1), Currency: "UAH", Date: date},
			{Amount: decimal.NewFromInt(2), Currency: "UAH", Date: date},
			{Amount: decimal.NewFromInt(3), Currency: "UAH", Date: date},
		}

		groups := GroupByCurrency(entries)
		for i, want := range []int64{1, 2, 3} {
			if !groups["UAH"][i].Amount.Equal(decimal.NewFromInt(want)) {
				t.Errorf("entry %d: expected amount %d, got %s", i, want, groups["UAH"][i].Amount.String())
			}
		}
	})
}

func TestNormalize(t *testing.T) {
	t.Run("applies both defaults", func(t *testing.T) {
		normalized := Normalize(entity.LedgerEntry{Amount: decimal.NewFromInt(5)})

		if normalized.Currency != "UAH" {
			t.Errorf("expected default currency UAH, got %q", normalized.Currency)
		}
		if normalized.Account != "Cash" {
			t.Errorf("expected default account Cash, got %q", normalized.Account)
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		normalized := Normalize(entity.LedgerEntry{
			Amount:   decimal.NewFromInt(5),
			Currency: "EUR",
			Account:  "Wallet",
		})

		if normalized.Currency != "EUR" {
			t.Errorf("expected currency EUR, got %q", normalized.Currency)
		}
		if normalized.Account != "Wallet" {
			t.Errorf("expected account Wallet, got %q", normalized.Account)
		}
	})
}
