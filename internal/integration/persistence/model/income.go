package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lawledger/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency    string          `gorm:"type:varchar(10)"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Source      string          `gorm:"type:varchar(100);not null"`
	Account     string          `gorm:"type:varchar(50)"`
	CaseID      *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Date:        m.Date,
		Source:      m.Source,
		Account:     m.Account,
		CaseID:      m.CaseID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// IncomeFromEntity converts a domain Income entity to an IncomeModel.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:          income.ID,
		Description: income.Description,
		Amount:      income.Amount,
		Currency:    income.Currency,
		Date:        income.Date,
		Source:      income.Source,
		Account:     income.Account,
		CaseID:      income.CaseID,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}
