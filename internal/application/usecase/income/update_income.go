package income

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

// UpdateIncomeInput represents the input for income update.
// Nil fields are left unchanged; DetachCase clears the case reference.
type UpdateIncomeInput struct {
	IncomeID    uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Currency    *string
	Date        *time.Time
	Source      *string
	Account     *string
	CaseID      *uuid.UUID
	DetachCase  bool
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	caseRepo    adapter.CaseRepository
	reportCache adapter.ReportCache // Optional, may be nil
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	caseRepo adapter.CaseRepository,
	reportCache adapter.ReportCache,
) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo:  incomeRepo,
		caseRepo:    caseRepo,
		reportCache: reportCache,
	}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	if input.Description != nil {
		if *input.Description == "" {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeDescriptionRequired,
				"income description is required",
				domainerror.ErrIncomeDescriptionRequired,
			)
		}
		income.Description = *input.Description
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeInvalidIncomeAmount,
				"income amount must be non-negative",
				domainerror.ErrInvalidAmount,
			)
		}
		income.Amount = *input.Amount
	}
	if input.Currency != nil {
		income.Currency = *input.Currency
	}
	if input.Date != nil {
		income.Date = *input.Date
	}
	if input.Source != nil {
		if *input.Source == "" {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeSourceRequired,
				"income source is required",
				domainerror.ErrIncomeSourceRequired,
			)
		}
		income.Source = *input.Source
	}
	if input.Account != nil {
		income.Account = *input.Account
	}
	if input.DetachCase {
		income.CaseID = nil
	} else if input.CaseID != nil {
		exists, err := uc.caseRepo.ExistsByID(ctx, *input.CaseID)
		if err != nil {
			return nil, fmt.Errorf("failed to check case existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeCaseNotFound,
				"case not found",
				domainerror.ErrIncomeCaseNotFound,
			)
		}
		income.CaseID = input.CaseID
	}
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache)

	return &UpdateIncomeOutput{
		Income: income,
	}, nil
}
