// Package income contains income-related use cases.
package income

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

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	Description string
	Amount      decimal.Decimal
	Currency    string // Optional, normalized to UAH at aggregation time
	Date        time.Time
	Source      string
	Account     string     // Optional, normalized to Cash at aggregation time
	CaseID      *uuid.UUID // Optional
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	caseRepo    adapter.CaseRepository
	reportCache adapter.ReportCache // Optional, may be nil
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	caseRepo adapter.CaseRepository,
	reportCache adapter.ReportCache,
) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo:  incomeRepo,
		caseRepo:    caseRepo,
		reportCache: reportCache,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if input.Description == "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeDescriptionRequired,
			"income description is required",
			domainerror.ErrIncomeDescriptionRequired,
		)
	}
	if input.Source == "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeSourceRequired,
			"income source is required",
			domainerror.ErrIncomeSourceRequired,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"income amount must be non-negative",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.CaseID != nil {
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
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	income := entity.NewIncome(
		input.Description,
		input.Amount,
		input.Currency,
		date,
		input.Source,
		input.Account,
		input.CaseID,
	)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache)

	return &CreateIncomeOutput{
		Income: income,
	}, nil
}

// invalidateReportCache drops cached reports after a ledger write. Failures
// are logged, not propagated: the write itself already succeeded.
func invalidateReportCache(ctx context.Context, cache adapter.ReportCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("report cache invalidation failed", "error", err)
	}
}
