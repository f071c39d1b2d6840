package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// TotalByCurrency sums the amounts of all entries whose effective currency
// equals the given code. Amounts are exact decimals; the result does not
// depend on input order. A negative amount is a data-quality defect and
// fails the whole aggregation with ErrCodeInvalidAmount instead of being
// coerced to zero.
func TotalByCurrency(entries []entity.LedgerEntry, currency string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, entry := range entries {
		normalized := Normalize(entry)
		if err := validateAmount(normalized); err != nil {
			return decimal.Zero, err
		}
		if normalized.Currency == currency {
			total = total.Add(normalized.Amount)
		}
	}
	return total, nil
}

// NetProfit returns incomeTotal - expenseTotal. The result may be negative.
func NetProfit(incomeTotal, expenseTotal decimal.Decimal) decimal.Decimal {
	return incomeTotal.Sub(expenseTotal)
}

// AccountBalance computes the balance of one (account, currency) bucket:
// the sum of matching incomes minus the sum of matching expenses. Entries
// without an account are attributed to Cash via normalization.
func AccountBalance(incomes, expenses []entity.LedgerEntry, account, currency string) (decimal.Decimal, error) {
	credited, err := sumMatching(incomes, account, currency)
	if err != nil {
		return decimal.Zero, err
	}
	debited, err := sumMatching(expenses, account, currency)
	if err != nil {
		return decimal.Zero, err
	}
	return credited.Sub(debited), nil
}

func sumMatching(entries []entity.LedgerEntry, account, currency string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, entry := range entries {
		normalized := Normalize(entry)
		if err := validateAmount(normalized); err != nil {
			return decimal.Zero, err
		}
		if normalized.Account == account && normalized.Currency == currency {
			total = total.Add(normalized.Amount)
		}
	}
	return total, nil
}

// validateAmount rejects amounts that are not non-negative magnitudes.
// Sign is carried by the transaction kind, never by the stored amount.
func validateAmount(entry entity.LedgerEntry) error {
	if entry.Amount.IsNegative() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidAmount,
			fmt.Sprintf("transaction amount %s is negative", entry.Amount.String()),
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}
