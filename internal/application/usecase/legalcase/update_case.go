package legalcase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// UpdateCaseInput represents the input for case update.
// Nil fields are left unchanged; DetachClient clears the client reference.
type UpdateCaseInput struct {
	CaseID       uuid.UUID
	Title        *string
	Description  *string
	Status       *entity.CaseStatus
	ClientID     *uuid.UUID
	DetachClient bool
}

// UpdateCaseOutput represents the output of case update.
type UpdateCaseOutput struct {
	Case *entity.Case
}

// UpdateCaseUseCase handles case update logic.
type UpdateCaseUseCase struct {
	caseRepo   adapter.CaseRepository
	clientRepo adapter.ClientRepository
}

// NewUpdateCaseUseCase creates a new UpdateCaseUseCase instance.
func NewUpdateCaseUseCase(caseRepo adapter.CaseRepository, clientRepo adapter.ClientRepository) *UpdateCaseUseCase {
	return &UpdateCaseUseCase{
		caseRepo:   caseRepo,
		clientRepo: clientRepo,
	}
}

// Execute performs the case update.
func (uc *UpdateCaseUseCase) Execute(ctx context.Context, input UpdateCaseInput) (*UpdateCaseOutput, error) {
	c, err := uc.caseRepo.FindByID(ctx, input.CaseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCaseNotFound) {
			return nil, domainerror.NewCaseError(
				domainerror.ErrCodeCaseNotFound,
				"case not found",
				domainerror.ErrCaseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find case: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewCaseError(
				domainerror.ErrCodeCaseTitleRequired,
				"case title is required",
				domainerror.ErrCaseTitleRequired,
			)
		}
		c.Title = *input.Title
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.Status != nil {
		if !isValidCaseStatus(*input.Status) {
			return nil, domainerror.NewCaseError(
				domainerror.ErrCodeInvalidCaseStatus,
				"case status must be Open, Closed or Pending",
				domainerror.ErrInvalidCaseStatus,
			)
		}
		c.Status = *input.Status
	}
	if input.DetachClient {
		c.ClientID = nil
	} else if input.ClientID != nil {
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
		c.ClientID = input.ClientID
	}
	c.UpdatedAt = time.Now().UTC()

	if err := uc.caseRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}

	return &UpdateCaseOutput{
		Case: c,
	}, nil
}
