// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Currency    string // Optional, normalized to UAH at aggregation time
	Date        time.Time
	Category    string
	Status      entity.ExpenseStatus // Optional, defaults to Pending
	Account     string               // Optional, normalized to Cash at aggregation time
	CaseID      *uuid.UUID           // Optional
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	caseRepo    adapter.CaseRepository
	reportCache adapter.ReportCache // Optional, may be nil
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	caseRepo adapter.CaseRepository,
	reportCache adapter.ReportCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		caseRepo:    caseRepo,
		reportCache: reportCache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Description == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			"expense description is required",
			domainerror.ErrExpenseDescriptionRequired,
		)
	}
	if input.Category == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryRequired,
			"expense category is required",
			domainerror.ErrExpenseCategoryRequired,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be non-negative",
			domainerror.ErrInvalidAmount,
		)
	}
	if input.Status != "" && !isValidExpenseStatus(input.Status) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseStatus,
			"expense status must be Pending, Approved or Paid",
			domainerror.ErrInvalidExpenseStatus,
		)
	}

	if input.CaseID != nil {
		exists, err := uc.caseRepo.ExistsByID(ctx, *input.CaseID)
		if err != nil {
			return nil, fmt.Errorf("failed to check case existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseCaseNotFound,
				"case not found",
				domainerror.ErrExpenseCaseNotFound,
			)
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := entity.NewExpense(
		input.Description,
		input.Amount,
		input.Currency,
		date,
		input.Category,
		input.Status,
		input.Account,
		input.CaseID,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache)

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}

// isValidExpenseStatus validates the expense status.
func isValidExpenseStatus(status entity.ExpenseStatus) bool {
	return status == entity.ExpenseStatusPending ||
		status == entity.ExpenseStatusApproved ||
		status == entity.ExpenseStatusPaid
}

// invalidateReportCache drops cached reports after a ledger write so cached
// figures never outlive the data they summarize. Failures are logged, not
// propagated: the write itself already succeeded.
func invalidateReportCache(ctx context.Context, cache adapter.ReportCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("report cache invalidation failed", "error", err)
	}
}
