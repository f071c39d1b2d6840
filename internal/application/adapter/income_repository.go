package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income in the database.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindAll retrieves all incomes ordered by date descending.
	FindAll(ctx context.Context) ([]*entity.Income, error)

	// FindByCaseIDs retrieves all incomes attributed to any of the given cases.
	FindByCaseIDs(ctx context.Context, caseIDs []uuid.UUID) ([]*entity.Income, error)

	// Update updates an existing income in the database.
	Update(ctx context.Context, income *entity.Income) error

	// Delete removes an income from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
