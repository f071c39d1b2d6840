// Package legalcase contains case-related use cases.
package legalcase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// CreateCaseInput represents the input for case creation.
type CreateCaseInput struct {
	Title       string
	Description string
	Status      entity.CaseStatus // Optional, defaults to Open
	ClientID    *uuid.UUID        // Optional, a case may be unattached
}

// CreateCaseOutput represents the output of case creation.
type CreateCaseOutput struct {
	Case *entity.Case
}

// CreateCaseUseCase handles case creation logic.
type CreateCaseUseCase struct {
	caseRepo   adapter.CaseRepository
	clientRepo adapter.ClientRepository
}

// NewCreateCaseUseCase creates a new CreateCaseUseCase instance.
func NewCreateCaseUseCase(caseRepo adapter.CaseRepository, clientRepo adapter.ClientRepository) *CreateCaseUseCase {
	return &CreateCaseUseCase{
		caseRepo:   caseRepo,
		clientRepo: clientRepo,
	}
}

// Execute performs the case creation.
func (uc *CreateCaseUseCase) Execute(ctx context.Context, input CreateCaseInput) (*CreateCaseOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewCaseError(
			domainerror.ErrCodeCaseTitleRequired,
			"case title is required",
			domainerror.ErrCaseTitleRequired,
		)
	}

	if input.Status != "" && !isValidCaseStatus(input.Status) {
		return nil, domainerror.NewCaseError(
			domainerror.ErrCodeInvalidCaseStatus,
			"case status must be Open, Closed or Pending",
			domainerror.ErrInvalidCaseStatus,
		)
	}

	if input.ClientID != nil {
		exists, err := uc.clientRepo.ExistsByID(ctx, *input.ClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to check client existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewCaseError(
				domainerror.ErrCodeCaseClientNotFound,
				"client not found",
				domainerror.ErrCaseClientNotFound,
			)
		}
	}

	c := entity.NewCase(input.Title, input.Description, input.Status, input.ClientID)

	if err := uc.caseRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	return &CreateCaseOutput{
		Case: c,
	}, nil
}

// isValidCaseStatus validates the case status.
func isValidCaseStatus(status entity.CaseStatus) bool {
	return status == entity.CaseStatusOpen ||
		status == entity.CaseStatusClosed ||
		status == entity.CaseStatusPending
}
