package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/domain/entity"
)

// CaseRepository defines the interface for case persistence operations.
type CaseRepository interface {
	// Create creates a new case in the database.
	Create(ctx context.Context, c *entity.Case) error

	// FindByID retrieves a case by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Case, error)

	// FindAll retrieves all cases ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Case, error)

	// FindByClientID retrieves all cases directly owned by the given client.
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.Case, error)

	// Update updates an existing case in the database.
	Update(ctx context.Context, c *entity.Case) error

	// Delete removes a case from the database. The store's foreign-key
	// cascade removes the case's expenses and incomes.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks if a case with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
