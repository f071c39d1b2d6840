package dto

import (
	"time"

	"github.com/lawledger/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
// Amounts travel as strings so fractional values survive the wire exactly.
type CreateIncomeRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Currency    string  `json:"currency,omitempty" binding:"omitempty,max=10"`
	Date        string  `json:"date" binding:"required"`
	Source      string  `json:"source" binding:"required,min=1,max=100"`
	Account     string  `json:"account,omitempty" binding:"omitempty,max=50"`
	CaseID      *string `json:"case_id,omitempty"`
}

// UpdateIncomeRequest represents the request body for income update.
type UpdateIncomeRequest struct {
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *string `json:"amount,omitempty"`
	Currency    *string `json:"currency,omitempty" binding:"omitempty,max=10"`
	Date        *string `json:"date,omitempty"`
	Source      *string `json:"source,omitempty" binding:"omitempty,min=1,max=100"`
	Account     *string `json:"account,omitempty" binding:"omitempty,max=50"`
	CaseID      *string `json:"case_id,omitempty"`
	DetachCase  bool    `json:"detach_case,omitempty"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency,omitempty"`
	Date        string    `json:"date"`
	Source      string    `json:"source"`
	Account     string    `json:"account,omitempty"`
	CaseID      *string   `json:"case_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	response := IncomeResponse{
		ID:          income.ID.String(),
		Description: income.Description,
		Amount:      income.Amount.StringFixed(2),
		Currency:    income.Currency,
		Date:        income.Date.Format("2006-01-02"),
		Source:      income.Source,
		Account:     income.Account,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
	if income.CaseID != nil {
		caseID := income.CaseID.String()
		response.CaseID = &caseID
	}
	return response
}

// ToIncomeListResponse converts domain Income entities to a list response.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, in := range incomes {
		responses[i] = ToIncomeResponse(in)
	}
	return IncomeListResponse{Incomes: responses}
}
