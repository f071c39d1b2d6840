package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseStatus represents the approval status of an expense.
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "Pending"
	ExpenseStatusApproved ExpenseStatus = "Approved"
	ExpenseStatusPaid     ExpenseStatus = "Paid"
)

// Expense represents money spent by the firm, optionally attributed to a case.
type Expense struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal // Positive magnitude, 2 fractional digits
	Currency    string
	Date        time.Time // Calendar date, no time component
	Category    string    // e.g. Travel, Court Fees, Office Supplies
	Status      ExpenseStatus
	Account     string
	CaseID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity. Empty status defaults to Pending;
// currency and account defaults are applied by the ledger normalization step,
// not here, so stored records preserve what the caller actually provided.
func NewExpense(
	description string,
	amount decimal.Decimal,
	currency string,
	date time.Time,
	category string,
	status ExpenseStatus,
	account string,
	caseID *uuid.UUID,
) *Expense {
	now := time.Now().UTC()

	if status == "" {
		status = ExpenseStatusPending
	}

	return &Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Currency:    currency,
		Date:        date,
		Category:    category,
		Status:      status,
		Account:     account,
		CaseID:      caseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Ledger returns the expense's ledger view for aggregation.
func (e *Expense) Ledger() LedgerEntry {
	return LedgerEntry{
		Amount:   e.Amount,
		Currency: e.Currency,
		Date:     e.Date,
		Account:  e.Account,
	}
}
