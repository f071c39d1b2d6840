package impact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
)

// GetClientImpactInput represents the input for a client impact query.
type GetClientImpactInput struct {
	ClientID uuid.UUID
}

// GetClientImpactOutput represents the output of a client impact query.
type GetClientImpactOutput struct {
	Impact ClientImpact
}

// GetClientImpactUseCase computes how many case, expense and income rows a
// client delete would cascade-remove. Read-only: it never deletes anything.
type GetClientImpactUseCase struct {
	caseRepo    adapter.CaseRepository
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
}

// NewGetClientImpactUseCase creates a new GetClientImpactUseCase instance.
func NewGetClientImpactUseCase(
	caseRepo adapter.CaseRepository,
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
) *GetClientImpactUseCase {
	return &GetClientImpactUseCase{
		caseRepo:    caseRepo,
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
	}
}

// Execute computes the cascade impact for the given client id: the client's
// direct cases and, through those cases, their expenses and incomes. An id
// absent from the store yields a zero impact, not an error.
func (uc *GetClientImpactUseCase) Execute(
	ctx context.Context,
	input GetClientImpactInput,
) (*GetClientImpactOutput, error) {
	cases, err := uc.caseRepo.FindByClientID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cases for client: %w", err)
	}

	caseIDs := make([]uuid.UUID, len(cases))
	for i, c := range cases {
		caseIDs[i] = c.ID
	}

	expenses, err := uc.expenseRepo.FindByCaseIDs(ctx, caseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for client cases: %w", err)
	}
	incomes, err := uc.incomeRepo.FindByCaseIDs(ctx, caseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes for client cases: %w", err)
	}

	return &GetClientImpactOutput{
		Impact: ForClient(cases, expenses, incomes, input.ClientID),
	}, nil
}
