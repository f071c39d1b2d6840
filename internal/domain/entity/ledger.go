package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default values applied to transactions that carry no explicit
// currency or account. Centralized here so every aggregation path
// normalizes the same way.
const (
	DefaultCurrency = "UAH"
	DefaultAccount  = "Cash"
)

// Well-known cash-handling accounts. The set is open: any string is a
// valid account, these are the ones the firm actually uses.
const (
	AccountCash   = "Cash"
	AccountFOP    = "FOP"
	AccountWallet = "Wallet"
)

// LedgerEntry is the polymorphic transaction view shared by expenses
// and incomes. Amount is always a positive magnitude; whether it credits
// or debits a balance is decided by the transaction kind, never stored.
type LedgerEntry struct {
	Amount   decimal.Decimal
	Currency string
	Date     time.Time
	Account  string
}
