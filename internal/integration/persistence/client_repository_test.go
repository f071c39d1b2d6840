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

func TestClientRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	client := entity.NewClient("Ivanenko & Partners", "office@ivanenko.ua", "+380441234567")
	require.NoError(t, repo.Create(ctx, client))

	found, err := repo.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ID)
	assert.Equal(t, "Ivanenko & Partners", found.Name)
	assert.Equal(t, "office@ivanenko.ua", found.Email)
	assert.Equal(t, "+380441234567", found.Phone)
}

func TestClientRepository_FindByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerror.ErrClientNotFound))
}

func TestClientRepository_FindAll_OrderedByName(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, entity.NewClient("Zorin", "", "")))
	require.NoError(t, repo.Create(ctx, entity.NewClient("Avramenko", "", "")))
	require.NoError(t, repo.Create(ctx, entity.NewClient("Marchenko", "", "")))

	clients, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Avramenko", clients[0].Name)
	assert.Equal(t, "Marchenko", clients[1].Name)
	assert.Equal(t, "Zorin", clients[2].Name)
}

func TestClientRepository_Update(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	client := entity.NewClient("Old Name", "old@firm.ua", "")
	require.NoError(t, repo.Create(ctx, client))

	client.Name = "New Name"
	client.Email = "new@firm.ua"
	client.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, client))

	found, err := repo.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", found.Name)
	assert.Equal(t, "new@firm.ua", found.Email)
}

func TestClientRepository_ExistsByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	client := entity.NewClient("Exists", "", "")
	require.NoError(t, repo.Create(ctx, client))

	exists, err := repo.ExistsByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClientRepository_Delete_CascadesThroughCases(t *testing.T) {
	db := openTestDB(t)
	clientRepo := NewClientRepository(db)
	caseRepo := NewCaseRepository(db)
	expenseRepo := NewExpenseRepository(db)
	incomeRepo := NewIncomeRepository(db)
	ctx := context.Background()

	client := entity.NewClient("Doomed", "", "")
	require.NoError(t, clientRepo.Create(ctx, client))

	owned := entity.NewCase("Owned case", "", "", &client.ID)
	require.NoError(t, caseRepo.Create(ctx, owned))

	other := entity.NewCase("Unrelated case", "", "", nil)
	require.NoError(t, caseRepo.Create(ctx, other))

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	ownedExpense := entity.NewExpense("Court fee", decimal.NewFromInt(100), "UAH", date, "Court Fees", "", "Cash", &owned.ID)
	require.NoError(t, expenseRepo.Create(ctx, ownedExpense))
	ownedIncome := entity.NewIncome("Retainer", decimal.NewFromInt(500), "UAH", date, "Client Payment", "Cash", &owned.ID)
	require.NoError(t, incomeRepo.Create(ctx, ownedIncome))

	otherExpense := entity.NewExpense("Office supplies", decimal.NewFromInt(30), "UAH", date, "Office Supplies", "", "Cash", &other.ID)
	require.NoError(t, expenseRepo.Create(ctx, otherExpense))

	require.NoError(t, clientRepo.Delete(ctx, client.ID))

	_, err := caseRepo.FindByID(ctx, owned.ID)
	assert.True(t, errors.Is(err, domainerror.ErrCaseNotFound))
	_, err = expenseRepo.FindByID(ctx, ownedExpense.ID)
	assert.True(t, errors.Is(err, domainerror.ErrExpenseNotFound))
	_, err = incomeRepo.FindByID(ctx, ownedIncome.ID)
	assert.True(t, errors.Is(err, domainerror.ErrIncomeNotFound))

	// Records outside the deleted subtree survive.
	_, err = caseRepo.FindByID(ctx, other.ID)
	assert.NoError(t, err)
	_, err = expenseRepo.FindByID(ctx, otherExpense.ID)
	assert.NoError(t, err)
}

func TestClientRepository_Delete_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerror.ErrClientNotFound))
}
