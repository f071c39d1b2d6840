package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for listing incomes.
type ListIncomesInput struct {
	CaseID *uuid.UUID // Optional, filters incomes by owning case
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.Income
}

// ListIncomesUseCase handles listing incomes.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute retrieves incomes, optionally filtered by case.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	var (
		incomes []*entity.Income
		err     error
	)

	if input.CaseID != nil {
		incomes, err = uc.incomeRepo.FindByCaseIDs(ctx, []uuid.UUID{*input.CaseID})
	} else {
		incomes, err = uc.incomeRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &ListIncomesOutput{
		Incomes: incomes,
	}, nil
}
