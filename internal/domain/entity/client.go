// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a client of the law firm.
type Client struct {
	ID        uuid.UUID
	Name      string
	Email     string // Optional
	Phone     string // Optional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new Client entity.
func NewClient(name, email, phone string) *Client {
	now := time.Now().UTC()

	return &Client{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
