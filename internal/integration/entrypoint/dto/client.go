package dto

import (
	"time"

	"github.com/lawledger/backend/internal/domain/entity"
)

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Email string `json:"email,omitempty" binding:"omitempty,max=255"`
	Phone string `json:"phone,omitempty" binding:"omitempty,max=50"`
}

// UpdateClientRequest represents the request body for client update.
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Email *string `json:"email,omitempty" binding:"omitempty,max=255"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=50"`
}

// ClientResponse represents a single client in API responses.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID.String(),
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

// ToClientListResponse converts domain Client entities to a list response.
func ToClientListResponse(clients []*entity.Client) ClientListResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(c)
	}
	return ClientListResponse{Clients: responses}
}
