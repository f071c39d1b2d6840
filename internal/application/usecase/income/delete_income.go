package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	IncomeID uuid.UUID
}

// DeleteIncomeOutput represents the output of income deletion.
type DeleteIncomeOutput struct {
	Success bool
}

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	reportCache adapter.ReportCache // Optional, may be nil
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository, reportCache adapter.ReportCache) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo:  incomeRepo,
		reportCache: reportCache,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	if _, err := uc.incomeRepo.FindByID(ctx, input.IncomeID); err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return nil, fmt.Errorf("failed to delete income: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache)

	return &DeleteIncomeOutput{
		Success: true,
	}, nil
}
