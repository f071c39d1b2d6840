package legalcase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// DeleteCaseInput represents the input for case deletion.
type DeleteCaseInput struct {
	CaseID uuid.UUID
}

// DeleteCaseOutput represents the output of case deletion.
type DeleteCaseOutput struct {
	Success bool
}

// DeleteCaseUseCase handles case deletion. The store's foreign-key cascade
// removes the case's expenses and incomes; callers warn the user first via
// the case impact use case.
type DeleteCaseUseCase struct {
	caseRepo    adapter.CaseRepository
	reportCache adapter.ReportCache // Optional, may be nil
}

// NewDeleteCaseUseCase creates a new DeleteCaseUseCase instance.
func NewDeleteCaseUseCase(caseRepo adapter.CaseRepository, reportCache adapter.ReportCache) *DeleteCaseUseCase {
	return &DeleteCaseUseCase{
		caseRepo:    caseRepo,
		reportCache: reportCache,
	}
}

// Execute performs the case deletion.
func (uc *DeleteCaseUseCase) Execute(ctx context.Context, input DeleteCaseInput) (*DeleteCaseOutput, error) {
	exists, err := uc.caseRepo.ExistsByID(ctx, input.CaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check case existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewCaseError(
			domainerror.ErrCodeCaseNotFound,
			"case not found",
			domainerror.ErrCaseNotFound,
		)
	}

	if err := uc.caseRepo.Delete(ctx, input.CaseID); err != nil {
		return nil, fmt.Errorf("failed to delete case: %w", err)
	}

	// The cascade may have removed expenses and incomes, so cached report
	// figures are stale. Failures here are logged, not propagated.
	if uc.reportCache != nil {
		if err := uc.reportCache.Invalidate(ctx); err != nil {
			slog.Warn("report cache invalidation failed", "error", err)
		}
	}

	return &DeleteCaseOutput{
		Success: true,
	}, nil
}
