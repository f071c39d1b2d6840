// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/domain/entity"
)

// ClientRepository defines the interface for client persistence operations.
type ClientRepository interface {
	// Create creates a new client in the database.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindAll retrieves all clients ordered by name.
	FindAll(ctx context.Context) ([]*entity.Client, error)

	// Update updates an existing client in the database.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client from the database. The store's foreign-key
	// cascade removes the client's cases and their expenses/incomes.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks if a client with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
