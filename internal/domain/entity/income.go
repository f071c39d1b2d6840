package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents money received by the firm, optionally attributed to a case.
// Same shape as Expense except it carries a free-form Source instead of a
// category and has no approval status.
type Income struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal // Positive magnitude, 2 fractional digits
	Currency    string
	Date        time.Time // Calendar date, no time component
	Source      string    // e.g. Client Payment, Consultation Fee
	Account     string
	CaseID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(
	description string,
	amount decimal.Decimal,
	currency string,
	date time.Time,
	source string,
	account string,
	caseID *uuid.UUID,
) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Currency:    currency,
		Date:        date,
		Source:      source,
		Account:     account,
		CaseID:      caseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Ledger returns the income's ledger view for aggregation.
func (i *Income) Ledger() LedgerEntry {
	return LedgerEntry{
		Amount:   i.Amount,
		Currency: i.Currency,
		Date:     i.Date,
		Account:  i.Account,
	}
}
