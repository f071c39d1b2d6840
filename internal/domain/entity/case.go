package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaseStatus represents the lifecycle status of a legal case.
type CaseStatus string

const (
	CaseStatusOpen    CaseStatus = "Open"
	CaseStatusClosed  CaseStatus = "Closed"
	CaseStatusPending CaseStatus = "Pending"
)

// Case represents a legal case handled by the firm.
// A case may be unattached: ClientID is nil when no client owns it.
type Case struct {
	ID          uuid.UUID
	Title       string
	Description string // Optional
	Status      CaseStatus
	ClientID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCase creates a new Case entity. An empty status defaults to Open.
func NewCase(title, description string, status CaseStatus, clientID *uuid.UUID) *Case {
	now := time.Now().UTC()

	if status == "" {
		status = CaseStatusOpen
	}

	return &Case{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      status,
		ClientID:    clientID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
