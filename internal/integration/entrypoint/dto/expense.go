package dto

import (
	"time"

	"github.com/lawledger/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
// Amounts travel as strings so fractional values survive the wire exactly.
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Currency    string  `json:"currency,omitempty" binding:"omitempty,max=10"`
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Status      string  `json:"status,omitempty" binding:"omitempty,oneof=Pending Approved Paid"`
	Account     string  `json:"account,omitempty" binding:"omitempty,max=50"`
	CaseID      *string `json:"case_id,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *string `json:"amount,omitempty"`
	Currency    *string `json:"currency,omitempty" binding:"omitempty,max=10"`
	Date        *string `json:"date,omitempty"`
	Category    *string `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=Pending Approved Paid"`
	Account     *string `json:"account,omitempty" binding:"omitempty,max=50"`
	CaseID      *string `json:"case_id,omitempty"`
	DetachCase  bool    `json:"detach_case,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency,omitempty"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Account     string    `json:"account,omitempty"`
	CaseID      *string   `json:"case_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	response := ExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      expense.Amount.StringFixed(2),
		Currency:    expense.Currency,
		Date:        expense.Date.Format("2006-01-02"),
		Category:    expense.Category,
		Status:      string(expense.Status),
		Account:     expense.Account,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
	if expense.CaseID != nil {
		caseID := expense.CaseID.String()
		response.CaseID = &caseID
	}
	return response
}

// ToExpenseListResponse converts domain Expense entities to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: responses}
}
