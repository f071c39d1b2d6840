package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
// Nil fields are left unchanged; DetachCase clears the case reference.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Currency    *string
	Date        *time.Time
	Category    *string
	Status      *entity.ExpenseStatus
	Account     *string
	CaseID      *uuid.UUID
	DetachCase  bool
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	caseRepo    adapter.CaseRepository
	reportCache adapter.ReportCache // Optional, may be nil
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	caseRepo adapter.CaseRepository,
	reportCache adapter.ReportCache,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		caseRepo:    caseRepo,
		reportCache: reportCache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if input.Description != nil {
		if *input.Description == "" {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseDescriptionRequired,
				"expense description is required",
				domainerror.ErrExpenseDescriptionRequired,
			)
		}
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"expense amount must be non-negative",
				domainerror.ErrInvalidAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Currency != nil {
		expense.Currency = *input.Currency
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Category != nil {
		if *input.Category == "" {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseCategoryRequired,
				"expense category is required",
				domainerror.ErrExpenseCategoryRequired,
			)
		}
		expense.Category = *input.Category
	}
	if input.Status != nil {
		if !isValidExpenseStatus(*input.Status) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseStatus,
				"expense status must be Pending, Approved or Paid",
				domainerror.ErrInvalidExpenseStatus,
			)
		}
		expense.Status = *input.Status
	}
	if input.Account != nil {
		expense.Account = *input.Account
	}
	if input.DetachCase {
		expense.CaseID = nil
	} else if input.CaseID != nil {
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
		expense.CaseID = input.CaseID
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache)

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}
