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

func TestCaseRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewCaseRepository(db)
	ctx := context.Background()

	c := entity.NewCase("Contract dispute", "supply contract", entity.CaseStatusPending, nil)
	require.NoError(t, repo.Create(ctx, c))

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Contract dispute", found.Title)
	assert.Equal(t, entity.CaseStatusPending, found.Status)
	assert.Nil(t, found.ClientID)
}

func TestCaseRepository_FindByClientID(t *testing.T) {
	db := openTestDB(t)
	clientRepo := NewClientRepository(db)
	caseRepo := NewCaseRepository(db)
	ctx := context.Background()

	client := entity.NewClient("Owner", "", "")
	require.NoError(t, clientRepo.Create(ctx, client))
	other := entity.NewClient("Other", "", "")
	require.NoError(t, clientRepo.Create(ctx, other))

	require.NoError(t, caseRepo.Create(ctx, entity.NewCase("Mine 1", "", "", &client.ID)))
	require.NoError(t, caseRepo.Create(ctx, entity.NewCase("Mine 2", "", "", &client.ID)))
	require.NoError(t, caseRepo.Create(ctx, entity.NewCase("Theirs", "", "", &other.ID)))
	require.NoError(t, caseRepo.Create(ctx, entity.NewCase("Unattached", "", "", nil)))

	cases, err := caseRepo.FindByClientID(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, cases, 2)
	for _, c := range cases {
		require.NotNil(t, c.ClientID)
		assert.Equal(t, client.ID, *c.ClientID)
	}
}

func TestCaseRepository_Update_DetachesClient(t *testing.T) {
	db := openTestDB(t)
	clientRepo := NewClientRepository(db)
	caseRepo := NewCaseRepository(db)
	ctx := context.Background()

	client := entity.NewClient("Owner", "", "")
	require.NoError(t, clientRepo.Create(ctx, client))

	c := entity.NewCase("Attached", "", "", &client.ID)
	require.NoError(t, caseRepo.Create(ctx, c))

	c.ClientID = nil
	c.Status = entity.CaseStatusClosed
	c.UpdatedAt = time.Now().UTC()
	require.NoError(t, caseRepo.Update(ctx, c))

	found, err := caseRepo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, found.ClientID)
	assert.Equal(t, entity.CaseStatusClosed, found.Status)
}

func TestCaseRepository_Delete_CascadesToLedger(t *testing.T) {
	db := openTestDB(t)
	caseRepo := NewCaseRepository(db)
	expenseRepo := NewExpenseRepository(db)
	incomeRepo := NewIncomeRepository(db)
	ctx := context.Background()

	c := entity.NewCase("Doomed", "", "", nil)
	require.NoError(t, caseRepo.Create(ctx, c))

	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	expense := entity.NewExpense("Travel", decimal.NewFromInt(200), "UAH", date, "Travel", "", "FOP", &c.ID)
	require.NoError(t, expenseRepo.Create(ctx, expense))
	income := entity.NewIncome("Fee", decimal.NewFromInt(900), "USD", date, "Consultation Fee", "Wallet", &c.ID)
	require.NoError(t, incomeRepo.Create(ctx, income))

	unattachedExpense := entity.NewExpense("General", decimal.NewFromInt(10), "UAH", date, "Office Supplies", "", "Cash", nil)
	require.NoError(t, expenseRepo.Create(ctx, unattachedExpense))

	require.NoError(t, caseRepo.Delete(ctx, c.ID))

	_, err := expenseRepo.FindByID(ctx, expense.ID)
	assert.True(t, errors.Is(err, domainerror.ErrExpenseNotFound))
	_, err = incomeRepo.FindByID(ctx, income.ID)
	assert.True(t, errors.Is(err, domainerror.ErrIncomeNotFound))

	// Unattached records survive.
	_, err = expenseRepo.FindByID(ctx, unattachedExpense.ID)
	assert.NoError(t, err)
}

func TestCaseRepository_Delete_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCaseRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerror.ErrCaseNotFound))
}
