package dto

import (
	"time"

	"github.com/lawledger/backend/internal/domain/entity"
)

// CreateCaseRequest represents the request body for case creation.
type CreateCaseRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	Status      string  `json:"status,omitempty" binding:"omitempty,oneof=Open Closed Pending"`
	ClientID    *string `json:"client_id,omitempty"`
}

// UpdateCaseRequest represents the request body for case update.
type UpdateCaseRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description  *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=Open Closed Pending"`
	ClientID     *string `json:"client_id,omitempty"`
	DetachClient bool    `json:"detach_client,omitempty"`
}

// CaseResponse represents a single case in API responses.
type CaseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	ClientID    *string   `json:"client_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CaseListResponse represents the response for listing cases.
type CaseListResponse struct {
	Cases []CaseResponse `json:"cases"`
}

// ToCaseResponse converts a domain Case entity to a CaseResponse DTO.
func ToCaseResponse(c *entity.Case) CaseResponse {
	response := CaseResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.ClientID != nil {
		clientID := c.ClientID.String()
		response.ClientID = &clientID
	}
	return response
}

// ToCaseListResponse converts domain Case entities to a list response.
func ToCaseListResponse(cases []*entity.Case) CaseListResponse {
	responses := make([]CaseResponse, len(cases))
	for i, c := range cases {
		responses[i] = ToCaseResponse(c)
	}
	return CaseListResponse{Cases: responses}
}
