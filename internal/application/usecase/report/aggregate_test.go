package report

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

func TestTotalByCurrency(t *testing.T) {
	date := day(2025, time.April, 10)

	t.Run("sums only the requested currency", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			{Amount: decimal.RequireFromString("100.50"), Currency: "UAH", Date: date},
			{Amount: decimal.RequireFromString("0.25"), Currency: "UAH", Date: date},
			{Amount: decimal.RequireFromString("40"), Currency: "USD", Date: date},
		}

		total, err := TotalByCurrency(entries, "UAH")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total.StringFixed(2) != "100.75" {
			t.Errorf("expected 100.75, got %s", total.StringFixed(2))
		}
	})

	t.Run("per-currency totals partition the grand total", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			{Amount: decimal.RequireFromString("10.10"), Currency: "UAH", Date: date},
			{Amount: decimal.RequireFromString("20.20"), Currency: "USD", Date: date},
			{Amount: decimal.RequireFromString("30.30"), Currency: "EUR", Date: date},
			{Amount: decimal.RequireFromString("40.40"), Currency: "", Date: date},
		}

		sum := decimal.Zero
		for currency := range GroupByCurrency(entries) {
			total, err := TotalByCurrency(entries, currency)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sum = sum.Add(total)
		}

		if sum.StringFixed(2) != "101.00" {
			t.Errorf("expected per-currency totals to sum to 101.00, got %s", sum.StringFixed(2))
		}
	})

	t.Run("entries without currency count toward UAH", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			{Amount: decimal.NewFromInt(7), Currency: "", Date: date},
			{Amount: decimal.NewFromInt(3), Currency: "UAH", Date: date},
		}

		total, err := TotalByCurrency(entries, "UAH")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total.StringFixed(2) != "10.00" {
			t.Errorf("expected 10.00, got %s", total.StringFixed(2))
		}
	})

	t.Run("negative amount fails with InvalidAmount", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			{Amount: decimal.RequireFromString("-5"), Currency: "UAH", Date: date},
		}

		_, err := TotalByCurrency(entries, "UAH")
		if err == nil {
			t.Fatal("expected error for negative amount")
		}
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatal("expected a *ReportError")
		}
		if reportErr.Code != domainerror.ErrCodeInvalidAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidAmount, reportErr.Code)
		}
	})
}

func TestNetProfit(t *testing.T) {
	t.Run("income minus expense", func(t *testing.T) {
		net := NetProfit(decimal.RequireFromString("100"), decimal.RequireFromString("30"))
		if net.StringFixed(2) != "70.00" {
			t.Errorf("expected 70.00, got %s", net.StringFixed(2))
		}
	})

	t.Run("may be negative", func(t *testing.T) {
		net := NetProfit(decimal.RequireFromString("30"), decimal.RequireFromString("100"))
		if net.StringFixed(2) != "-70.00" {
			t.Errorf("expected -70.00, got %s", net.StringFixed(2))
		}
	})
}

func TestAccountBalance(t *testing.T) {
	date := day(2025, time.May, 1)

	incomes := []entity.LedgerEntry{
		{Amount: decimal.NewFromInt(100), Currency: "UAH", Account: "Cash", Date: date},
		{Amount: decimal.NewFromInt(50), Currency: "USD", Account: "FOP", Date: date},
	}
	expenses := []entity.LedgerEntry{
		{Amount: decimal.NewFromInt(30), Currency: "UAH", Account: "Cash", Date: date},
	}

	t.Run("balance per account and currency", func(t *testing.T) {
		cases := []struct {
			account  string
			currency string
			want     string
		}{
			{"Cash", "UAH", "70.00"},
			{"FOP", "USD", "50.00"},
			{"Cash", "USD", "0.00"},
			{"Wallet", "UAH", "0.00"},
		}

		for _, tc := range cases {
			balance, err := AccountBalance(incomes, expenses, tc.account, tc.currency)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if balance.StringFixed(2) != tc.want {
				t.Errorf("balance(%s, %s): expected %s, got %s", tc.account, tc.currency, tc.want, balance.StringFixed(2))
			}
		}
	})

	t.Run("is linear in its inputs", func(t *testing.T) {
		before, err := AccountBalance(incomes, expenses, "Cash", "UAH")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		extraIncome := append(incomes, entity.LedgerEntry{
			Amount: decimal.RequireFromString("12.34"), Currency: "UAH", Account: "Cash", Date: date,
		})
		after, err := AccountBalance(extraIncome, expenses, "Cash", "UAH")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !after.Sub(before).Equal(decimal.RequireFromString("12.34")) {
			t.Errorf("adding an income of 12.34 changed the balance by %s", after.Sub(before).String())
		}

		extraExpense := append(expenses, entity.LedgerEntry{
			Amount: decimal.RequireFromString("12.34"), Currency: "UAH", Account: "Cash", Date: date,
		})
		after, err = AccountBalance(incomes, extraExpense, "Cash", "UAH")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !before.Sub(after).Equal(decimal.RequireFromString("12.34")) {
			t.Errorf("adding an expense of 12.34 changed the balance by %s", before.Sub(after).String())
		}
	})

	t.Run("record without account or currency counts as Cash UAH", func(t *testing.T) {
		bare := []entity.LedgerEntry{
			{Amount: decimal.NewFromInt(25), Date: date},
		}

		balance, err := AccountBalance(bare, nil, "Cash", "UAH")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if balance.StringFixed(2) != "25.00" {
			t.Errorf("expected 25.00, got %s", balance.StringFixed(2))
		}
	})

	t.Run("negative amount fails with InvalidAmount", func(t *testing.T) {
		bad := []entity.LedgerEntry{
			{Amount: decimal.NewFromInt(-1), Currency: "UAH", Account: "Cash", Date: date},
		}

		_, err := AccountBalance(bad, nil, "Cash", "UAH")
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})
}
