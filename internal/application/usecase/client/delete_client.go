package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ClientID uuid.UUID
}

// DeleteClientOutput represents the output of client deletion.
type DeleteClientOutput struct {
	Success bool
}

// DeleteClientUseCase handles client deletion. The store's foreign-key
// cascade removes the client's cases and their expenses/incomes; callers
// warn the user first via the client impact use case.
type DeleteClientUseCase struct {
	clientRepo  adapter.ClientRepository
	reportCache adapter.ReportCache // Optional, may be nil
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository, reportCache adapter.ReportCache) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo:  clientRepo,
		reportCache: reportCache,
	}
}

// Execute performs the client deletion.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) (*DeleteClientOutput, error) {
	exists, err := uc.clientRepo.ExistsByID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}

	if err := uc.clientRepo.Delete(ctx, input.ClientID); err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}

	// The cascade may have removed expenses and incomes, so cached report
	// figures are stale. Failures here are logged, not propagated.
	if uc.reportCache != nil {
		if err := uc.reportCache.Invalidate(ctx); err != nil {
			slog.Warn("report cache invalidation failed", "error", err)
		}
	}

	return &DeleteClientOutput{
		Success: true,
	}, nil
}
