package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindAll retrieves all expenses ordered by date descending.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// FindByCaseIDs retrieves all expenses attributed to any of the given cases.
	FindByCaseIDs(ctx context.Context, caseIDs []uuid.UUID) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
