package impact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
)

// GetCaseImpactInput represents the input for a case impact query.
type GetCaseImpactInput struct {
	CaseID uuid.UUID
}

// GetCaseImpactOutput represents the output of a case impact query.
type GetCaseImpactOutput struct {
	Impact CaseImpact
}

// GetCaseImpactUseCase computes how many expense and income rows a case
// delete would cascade-remove. Read-only: it never deletes anything.
type GetCaseImpactUseCase struct {
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
}

// NewGetCaseImpactUseCase creates a new GetCaseImpactUseCase instance.
func NewGetCaseImpactUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
) *GetCaseImpactUseCase {
	return &GetCaseImpactUseCase{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
	}
}

// Execute computes the cascade impact for the given case id. An id absent
// from the store yields a zero impact, not an error; callers are expected
// to have verified existence before offering a delete confirmation.
func (uc *GetCaseImpactUseCase) Execute(
	ctx context.Context,
	input GetCaseImpactInput,
) (*GetCaseImpactOutput, error) {
	caseIDs := []uuid.UUID{input.CaseID}

	expenses, err := uc.expenseRepo.FindByCaseIDs(ctx, caseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for case: %w", err)
	}
	incomes, err := uc.incomeRepo.FindByCaseIDs(ctx, caseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes for case: %w", err)
	}

	return &GetCaseImpactOutput{
		Impact: ForCase(expenses, incomes, input.CaseID),
	}, nil
}
