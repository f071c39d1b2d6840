package legalcase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
)

// ListCasesInput represents the input for listing cases.
type ListCasesInput struct {
	ClientID *uuid.UUID // Optional, filters cases by owning client
}

// ListCasesOutput represents the output of listing cases.
type ListCasesOutput struct {
	Cases []*entity.Case
}

// ListCasesUseCase handles listing cases.
type ListCasesUseCase struct {
	caseRepo adapter.CaseRepository
}

// NewListCasesUseCase creates a new ListCasesUseCase instance.
func NewListCasesUseCase(caseRepo adapter.CaseRepository) *ListCasesUseCase {
	return &ListCasesUseCase{
		caseRepo: caseRepo,
	}
}

// Execute retrieves cases, optionally filtered by client.
func (uc *ListCasesUseCase) Execute(ctx context.Context, input ListCasesInput) (*ListCasesOutput, error) {
	var (
		cases []*entity.Case
		err   error
	)

	if input.ClientID != nil {
		cases, err = uc.caseRepo.FindByClientID(ctx, *input.ClientID)
	} else {
		cases, err = uc.caseRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	return &ListCasesOutput{
		Cases: cases,
	}, nil
}
