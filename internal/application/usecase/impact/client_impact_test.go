package impact

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// snapshotCaseRepo serves cases from a fixed slice, filtering by client.
type snapshotCaseRepo struct {
	cases []*entity.Case
}

func (s *snapshotCaseRepo) Create(ctx context.Context, c *entity.Case) error { return nil }
func (s *snapshotCaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Case, error) {
	return nil, domainerror.ErrCaseNotFound
}
func (s *snapshotCaseRepo) FindAll(ctx context.Context) ([]*entity.Case, error) {
	return s.cases, nil
}
func (s *snapshotCaseRepo) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.Case, error) {
	var matched []*entity.Case
	for _, c := range s.cases {
		if c.ClientID != nil && *c.ClientID == clientID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
func (s *snapshotCaseRepo) Update(ctx context.Context, c *entity.Case) error { return nil }
func (s *snapshotCaseRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }
func (s *snapshotCaseRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return false, nil
}

// snapshotExpenseRepo serves expenses from a fixed slice, filtering by case ids.
type snapshotExpenseRepo struct {
	expenses []*entity.Expense
}

func (s *snapshotExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error { return nil }
func (s *snapshotExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}
func (s *snapshotExpenseRepo) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	return s.expenses, nil
}
func (s *snapshotExpenseRepo) FindByCaseIDs(ctx context.Context, caseIDs []uuid.UUID) ([]*entity.Expense, error) {
	wanted := make(map[uuid.UUID]bool, len(caseIDs))
	for _, id := range caseIDs {
		wanted[id] = true
	}
	var matched []*entity.Expense
	for _, e := range s.expenses {
		if e.CaseID != nil && wanted[*e.CaseID] {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
func (s *snapshotExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error { return nil }
func (s *snapshotExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

// snapshotIncomeRepo serves incomes from a fixed slice, filtering by case ids.
type snapshotIncomeRepo struct {
	incomes []*entity.Income
}

func (s *snapshotIncomeRepo) Create(ctx context.Context, income *entity.Income) error { return nil }
func (s *snapshotIncomeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	return nil, domainerror.ErrIncomeNotFound
}
func (s *snapshotIncomeRepo) FindAll(ctx context.Context) ([]*entity.Income, error) {
	return s.incomes, nil
}
func (s *snapshotIncomeRepo) FindByCaseIDs(ctx context.Context, caseIDs []uuid.UUID) ([]*entity.Income, error) {
	wanted := make(map[uuid.UUID]bool, len(caseIDs))
	for _, id := range caseIDs {
		wanted[id] = true
	}
	var matched []*entity.Income
	for _, i := range s.incomes {
		if i.CaseID != nil && wanted[*i.CaseID] {
			matched = append(matched, i)
		}
	}
	return matched, nil
}
func (s *snapshotIncomeRepo) Update(ctx context.Context, income *entity.Income) error { return nil }
func (s *snapshotIncomeRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func TestGetClientImpactUseCase(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	caseA := caseOwnedBy(&clientID)
	caseB := caseOwnedBy(&clientID)

	caseRepo := &snapshotCaseRepo{cases: []*entity.Case{caseA, caseB}}
	expenseRepo := &snapshotExpenseRepo{expenses: []*entity.Expense{
		expenseFor(&caseA.ID),
		expenseFor(&caseA.ID),
		expenseFor(&caseA.ID),
	}}
	incomeRepo := &snapshotIncomeRepo{incomes: []*entity.Income{
		incomeFor(&caseA.ID),
		incomeFor(&caseB.ID),
		incomeFor(&caseB.ID),
	}}

	uc := NewGetClientImpactUseCase(caseRepo, expenseRepo, incomeRepo)

	t.Run("walks the two-level hierarchy", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetClientImpactInput{ClientID: clientID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := ClientImpact{Cases: 2, Expenses: 3, Incomes: 3}
		if output.Impact != want {
			t.Errorf("expected %+v, got %+v", want, output.Impact)
		}
	})

	t.Run("unknown client yields zero impact, not an error", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetClientImpactInput{ClientID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Impact != (ClientImpact{}) {
			t.Errorf("expected zero impact, got %+v", output.Impact)
		}
	})
}

func TestGetCaseImpactUseCase(t *testing.T) {
	ctx := context.Background()
	caseID := uuid.New()

	expenseRepo := &snapshotExpenseRepo{expenses: []*entity.Expense{
		expenseFor(&caseID),
		expenseFor(&caseID),
	}}
	incomeRepo := &snapshotIncomeRepo{incomes: []*entity.Income{
		incomeFor(&caseID),
	}}

	uc := NewGetCaseImpactUseCase(expenseRepo, incomeRepo)

	t.Run("counts direct dependents", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetCaseImpactInput{CaseID: caseID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := CaseImpact{Expenses: 2, Incomes: 1}
		if output.Impact != want {
			t.Errorf("expected %+v, got %+v", want, output.Impact)
		}
	})

	t.Run("unknown case yields zero impact, not an error", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetCaseImpactInput{CaseID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Impact != (CaseImpact{}) {
			t.Errorf("expected zero impact, got %+v", output.Impact)
		}
	})
}
