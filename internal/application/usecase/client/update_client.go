package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// UpdateClientInput represents the input for client update.
// Nil fields are left unchanged.
type UpdateClientInput struct {
	ClientID uuid.UUID
	Name     *string
	Email    *string
	Phone    *string
}

// UpdateClientOutput represents the output of client update.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase handles client update logic.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client update.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNameRequired,
				"client name is required",
				domainerror.ErrClientNameRequired,
			)
		}
		client.Name = *input.Name
	}
	if input.Email != nil {
		if *input.Email != "" && !emailRegex.MatchString(*input.Email) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeInvalidClientEmail,
				"client email is not a valid address",
				domainerror.ErrInvalidClientEmail,
			)
		}
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{
		Client: client,
	}, nil
}
