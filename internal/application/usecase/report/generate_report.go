package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// Options configures which currency and account buckets a summary report
// covers. The fixed sets always appear in the output, even with zero
// activity; DiscoverCurrencies appends currencies observed in the filtered
// data that are missing from the fixed set.
type Options struct {
	Currencies         []string
	Accounts           []string
	DiscoverCurrencies bool
	CacheTTL           time.Duration
}

// CurrencySummary holds the per-currency report figures. Amounts are
// rendered with exactly two fractional digits.
type CurrencySummary struct {
	Currency     string `json:"currency"`
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	NetProfit    string `json:"net_profit"`
}

// AccountBalanceEntry holds the balance of one (account, currency) bucket.
type AccountBalanceEntry struct {
	Account  string `json:"account"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

// Report is the financial summary for a date window.
type Report struct {
	StartDate  string                `json:"start_date"`
	EndDate    string                `json:"end_date"`
	Currencies []CurrencySummary     `json:"currencies"`
	Balances   []AccountBalanceEntry `json:"balances"`
}

// GenerateReportInput represents the input for report generation.
type GenerateReportInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GenerateReportOutput represents the output of report generation.
type GenerateReportOutput struct {
	Report *Report
}

// GenerateReportUseCase turns the expense and income streams plus a date
// window into a financial summary report. It never mutates data; each call
// computes from a fresh snapshot of both streams.
type GenerateReportUseCase struct {
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
	cache       adapter.ReportCache // Optional, may be nil
	opts        Options
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	cache adapter.ReportCache,
	opts Options,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		cache:       cache,
		opts:        opts,
	}
}

// Execute generates the summary report for the given date window.
// An inverted window is not an error: it filters everything out and the
// report carries all-zero figures.
func (uc *GenerateReportUseCase) Execute(
	ctx context.Context,
	input GenerateReportInput,
) (*GenerateReportOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("summary:%s:%s",
		input.StartDate.Format("2006-01-02"),
		input.EndDate.Format("2006-01-02"),
	)

	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return &GenerateReportOutput{Report: cached}, nil
	}

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	incomes, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	expenseEntries := FilterByDateRange(expenseLedger(expenses), input.StartDate, input.EndDate)
	incomeEntries := FilterByDateRange(incomeLedger(incomes), input.StartDate, input.EndDate)

	currencies := uc.reportCurrencies(expenseEntries, incomeEntries)

	summaries := make([]CurrencySummary, 0, len(currencies))
	for _, currency := range currencies {
		incomeTotal, err := TotalByCurrency(incomeEntries, currency)
		if err != nil {
			return nil, err
		}
		expenseTotal, err := TotalByCurrency(expenseEntries, currency)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, CurrencySummary{
			Currency:     currency,
			TotalIncome:  incomeTotal.StringFixed(2),
			TotalExpense: expenseTotal.StringFixed(2),
			NetProfit:    NetProfit(incomeTotal, expenseTotal).StringFixed(2),
		})
	}

	balances := make([]AccountBalanceEntry, 0, len(uc.opts.Accounts)*len(currencies))
	for _, account := range uc.opts.Accounts {
		for _, currency := range currencies {
			balance, err := AccountBalance(incomeEntries, expenseEntries, account, currency)
			if err != nil {
				return nil, err
			}
			balances = append(balances, AccountBalanceEntry{
				Account:  account,
				Currency: currency,
				Balance:  balance.StringFixed(2),
			})
		}
	}

	result := &Report{
		StartDate:  input.StartDate.Format("2006-01-02"),
		EndDate:    input.EndDate.Format("2006-01-02"),
		Currencies: summaries,
		Balances:   balances,
	}

	uc.toCache(ctx, cacheKey, result)

	return &GenerateReportOutput{Report: result}, nil
}

// validateInput validates the input parameters.
func (uc *GenerateReportUseCase) validateInput(input GenerateReportInput) error {
	if input.StartDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if input.EndDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	return nil
}

// reportCurrencies returns the currency buckets to report on: the fixed
// configured set, plus any observed currencies when discovery is enabled.
// Discovered currencies are sorted so identical inputs yield identical
// reports.
func (uc *GenerateReportUseCase) reportCurrencies(expenseEntries, incomeEntries []entity.LedgerEntry) []string {
	currencies := make([]string, 0, len(uc.opts.Currencies))
	seen := make(map[string]bool, len(uc.opts.Currencies))
	for _, currency := range uc.opts.Currencies {
		if !seen[currency] {
			seen[currency] = true
			currencies = append(currencies, currency)
		}
	}

	if !uc.opts.DiscoverCurrencies {
		return currencies
	}

	discovered := make([]string, 0)
	for currency := range GroupByCurrency(expenseEntries) {
		if !seen[currency] {
			seen[currency] = true
			discovered = append(discovered, currency)
		}
	}
	for currency := range GroupByCurrency(incomeEntries) {
		if !seen[currency] {
			seen[currency] = true
			discovered = append(discovered, currency)
		}
	}
	sort.Strings(discovered)

	return append(currencies, discovered...)
}

// fromCache returns the cached report for the key, or nil on miss or error.
// Cache failures are logged and ignored: the report is recomputed.
func (uc *GenerateReportUseCase) fromCache(ctx context.Context, key string) *Report {
	if uc.cache == nil {
		return nil
	}

	payload, found, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("report cache read failed", "key", key, "error", err)
		return nil
	}
	if !found {
		return nil
	}

	var cached Report
	if err := json.Unmarshal(payload, &cached); err != nil {
		slog.Warn("report cache payload corrupt", "key", key, "error", err)
		return nil
	}
	return &cached
}

func (uc *GenerateReportUseCase) toCache(ctx context.Context, key string, result *Report) {
	if uc.cache == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		slog.Warn("report cache marshal failed", "key", key, "error", err)
		return
	}
	if err := uc.cache.Set(ctx, key, payload, uc.opts.CacheTTL); err != nil {
		slog.Warn("report cache write failed", "key", key, "error", err)
	}
}

// expenseLedger projects expenses onto their ledger view.
func expenseLedger(expenses []*entity.Expense) []entity.LedgerEntry {
	entries := make([]entity.LedgerEntry, len(expenses))
	for i, expense := range expenses {
		entries[i] = expense.Ledger()
	}
	return entries
}

// incomeLedger projects incomes onto their ledger view.
func incomeLedger(incomes []*entity.Income) []entity.LedgerEntry {
	entries := make([]entity.LedgerEntry, len(incomes))
	for i, income := range incomes {
		entries[i] = income.Ledger()
	}
	return entries
}
