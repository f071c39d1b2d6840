package impact

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lawledger/backend/internal/domain/entity"
)

func caseOwnedBy(clientID *uuid.UUID) *entity.Case {
	return entity.NewCase("case", "", entity.CaseStatusOpen, clientID)
}

func expenseFor(caseID *uuid.UUID) *entity.Expense {
	return entity.NewExpense("expense", decimal.NewFromInt(10), "UAH",
		time.Now().UTC(), "Travel", entity.ExpenseStatusPending, "Cash", caseID)
}

func incomeFor(caseID *uuid.UUID) *entity.Income {
	return entity.NewIncome("income", decimal.NewFromInt(10), "UAH",
		time.Now().UTC(), "Client Payment", "Cash", caseID)
}

func TestForCase(t *testing.T) {
	caseID := uuid.New()
	otherID := uuid.New()

	expenses := []*entity.Expense{
		expenseFor(&caseID),
		expenseFor(&caseID),
		expenseFor(&otherID),
		expenseFor(nil),
	}
	incomes := []*entity.Income{
		incomeFor(&caseID),
		incomeFor(nil),
	}

	t.Run("counts only direct references", func(t *testing.T) {
		result := ForCase(expenses, incomes, caseID)

		if result.Expenses != 2 {
			t.Errorf("expected 2 expenses, got %d", result.Expenses)
		}
		if result.Incomes != 1 {
			t.Errorf("expected 1 income, got %d", result.Incomes)
		}
	})

	t.Run("unknown case yields zero impact", func(t *testing.T) {
		result := ForCase(expenses, incomes, uuid.New())

		if result.Expenses != 0 || result.Incomes != 0 {
			t.Errorf("expected zero impact, got %+v", result)
		}
	})
}

func TestForClient(t *testing.T) {
	clientID := uuid.New()
	otherClientID := uuid.New()

	caseA := caseOwnedBy(&clientID)
	caseB := caseOwnedBy(&clientID)
	foreignCase := caseOwnedBy(&otherClientID)
	orphanCase := caseOwnedBy(nil)

	cases := []*entity.Case{caseA, caseB, foreignCase, orphanCase}

	// Case A: 3 expenses, 1 income; Case B: 0 expenses, 2 incomes.
	expenses := []*entity.Expense{
		expenseFor(&caseA.ID),
		expenseFor(&caseA.ID),
		expenseFor(&caseA.ID),
		expenseFor(&foreignCase.ID),
		expenseFor(&orphanCase.ID),
		expenseFor(nil),
	}
	incomes := []*entity.Income{
		incomeFor(&caseA.ID),
		incomeFor(&caseB.ID),
		incomeFor(&caseB.ID),
		incomeFor(&foreignCase.ID),
	}

	t.Run("cascade counts are exact", func(t *testing.T) {
		result := ForClient(cases, expenses, incomes, clientID)

		if result.Cases != 2 {
			t.Errorf("expected 2 cases, got %d", result.Cases)
		}
		if result.Expenses != 3 {
			t.Errorf("expected 3 expenses, got %d", result.Expenses)
		}
		if result.Incomes != 3 {
			t.Errorf("expected 3 incomes, got %d", result.Incomes)
		}
	})

	t.Run("uniform hierarchy multiplies out exactly", func(t *testing.T) {
		ownerID := uuid.New()
		const n, e, i = 4, 3, 2

		var ownedCases []*entity.Case
		var ownedExpenses []*entity.Expense
		var ownedIncomes []*entity.Income
		for c := 0; c < n; c++ {
			kase := caseOwnedBy(&ownerID)
			ownedCases = append(ownedCases, kase)
			for x := 0; x < e; x++ {
				ownedExpenses = append(ownedExpenses, expenseFor(&kase.ID))
			}
			for x := 0; x < i; x++ {
				ownedIncomes = append(ownedIncomes, incomeFor(&kase.ID))
			}
		}

		result := ForClient(ownedCases, ownedExpenses, ownedIncomes, ownerID)
		if result.Cases != n || result.Expenses != n*e || result.Incomes != n*i {
			t.Errorf("expected {%d %d %d}, got %+v", n, n*e, n*i, result)
		}
	})

	t.Run("unknown client yields zero impact", func(t *testing.T) {
		result := ForClient(cases, expenses, incomes, uuid.New())

		if result.Cases != 0 || result.Expenses != 0 || result.Incomes != 0 {
			t.Errorf("expected zero impact, got %+v", result)
		}
	})

	t.Run("unattached cases are never counted", func(t *testing.T) {
		result := ForClient([]*entity.Case{orphanCase}, expenses, incomes, clientID)

		if result.Cases != 0 {
			t.Errorf("expected 0 cases, got %d", result.Cases)
		}
	})
}
