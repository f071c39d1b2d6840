package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

func TestExpenseRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	expense := entity.NewExpense("Court fee", decimal.RequireFromString("150.50"), "UAH", date, "Court Fees", "", "Cash", nil)
	require.NoError(t, repo.Create(ctx, expense))

	found, err := repo.FindByID(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "Court fee", found.Description)
	assert.True(t, found.Amount.Equal(decimal.RequireFromString("150.50")))
	assert.Equal(t, entity.ExpenseStatusPending, found.Status)
}

func TestExpenseRepository_FindByCaseIDs(t *testing.T) {
	db := openTestDB(t)
	caseRepo := NewCaseRepository(db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	caseA := entity.NewCase("A", "", "", nil)
	caseB := entity.NewCase("B", "", "", nil)
	caseC := entity.NewCase("C", "", "", nil)
	for _, c := range []*entity.Case{caseA, caseB, caseC} {
		require.NoError(t, caseRepo.Create(ctx, c))
	}

	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, entity.NewExpense("a1", decimal.NewFromInt(1), "UAH", date, "Travel", "", "Cash", &caseA.ID)))
	require.NoError(t, repo.Create(ctx, entity.NewExpense("b1", decimal.NewFromInt(2), "UAH", date, "Travel", "", "Cash", &caseB.ID)))
	require.NoError(t, repo.Create(ctx, entity.NewExpense("c1", decimal.NewFromInt(3), "UAH", date, "Travel", "", "Cash", &caseC.ID)))
	require.NoError(t, repo.Create(ctx, entity.NewExpense("loose", decimal.NewFromInt(4), "UAH", date, "Travel", "", "Cash", nil)))

	expenses, err := repo.FindByCaseIDs(ctx, []uuid.UUID{caseA.ID, caseB.ID})
	require.NoError(t, err)
	assert.Len(t, expenses, 2)

	expenses, err = repo.FindByCaseIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestExpenseRepository_Update_DetachesCase(t *testing.T) {
	db := openTestDB(t)
	caseRepo := NewCaseRepository(db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	c := entity.NewCase("Case", "", "", nil)
	require.NoError(t, caseRepo.Create(ctx, c))

	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	expense := entity.NewExpense("Attached", decimal.NewFromInt(10), "UAH", date, "Travel", "", "Cash", &c.ID)
	require.NoError(t, repo.Create(ctx, expense))

	expense.CaseID = nil
	expense.Status = entity.ExpenseStatusPaid
	expense.Amount = decimal.RequireFromString("12.34")
	expense.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, expense))

	found, err := repo.FindByID(ctx, expense.ID)
	require.NoError(t, err)
	assert.Nil(t, found.CaseID)
	assert.Equal(t, entity.ExpenseStatusPaid, found.Status)
	assert.True(t, found.Amount.Equal(decimal.RequireFromString("12.34")))
}

func TestExpenseRepository_Delete(t *testing.T) {
	db := openTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	expense := entity.NewExpense("Gone", decimal.NewFromInt(10), "UAH", date, "Travel", "", "Cash", nil)
	require.NoError(t, repo.Create(ctx, expense))

	require.NoError(t, repo.Delete(ctx, expense.ID))

	_, err := repo.FindByID(ctx, expense.ID)
	assert.True(t, errors.Is(err, domainerror.ErrExpenseNotFound))

	err = repo.Delete(ctx, expense.ID)
	assert.True(t, errors.Is(err, domainerror.ErrExpenseNotFound))
}
