package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/domain/entity"
)

// CaseModel represents the cases table in the database.
type CaseModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null"`
	ClientID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`

	// Deleting a case cascades to its expenses and incomes.
	Expenses []ExpenseModel `gorm:"foreignKey:CaseID;references:ID;constraint:OnDelete:CASCADE"`
	Incomes  []IncomeModel  `gorm:"foreignKey:CaseID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the CaseModel.
func (CaseModel) TableName() string {
	return "cases"
}

// ToEntity converts a CaseModel to a domain Case entity.
func (m *CaseModel) ToEntity() *entity.Case {
	return &entity.Case{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.CaseStatus(m.Status),
		ClientID:    m.ClientID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CaseFromEntity converts a domain Case entity to a CaseModel.
func CaseFromEntity(c *entity.Case) *CaseModel {
	return &CaseModel{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Status:      string(c.Status),
		ClientID:    c.ClientID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
