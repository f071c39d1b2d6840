// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"
	"regexp"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
)

// emailRegex is compiled once at package level.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	Name  string
	Email string // Optional
	Phone string // Optional
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNameRequired,
			"client name is required",
			domainerror.ErrClientNameRequired,
		)
	}

	if input.Email != "" && !emailRegex.MatchString(input.Email) {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeInvalidClientEmail,
			"client email is not a valid address",
			domainerror.ErrInvalidClientEmail,
		)
	}

	client := entity.NewClient(input.Name, input.Email, input.Phone)

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{
		Client: client,
	}, nil
}
