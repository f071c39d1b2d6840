// Package impact computes cascade-delete impact: how many dependent rows a
// destructive delete of a client or case would remove. It only counts;
// the actual cascade is the store's foreign-key rule.
package impact

import (
	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/domain/entity"
)

// CaseImpact counts the rows directly owned by a case.
type CaseImpact struct {
	Expenses int `json:"expenses"`
	Incomes  int `json:"incomes"`
}

// ClientImpact counts the rows removed when a client is deleted: its direct
// cases plus, transitively, the expenses and incomes of those cases.
type ClientImpact struct {
	Cases    int `json:"cases"`
	Expenses int `json:"expenses"`
	Incomes  int `json:"incomes"`
}

// ForCase counts the expenses and incomes directly referencing caseID.
// An unknown id yields a zero impact: nothing depends on a nonexistent case.
func ForCase(expenses []*entity.Expense, incomes []*entity.Income, caseID uuid.UUID) CaseImpact {
	var result CaseImpact
	for _, expense := range expenses {
		if expense.CaseID != nil && *expense.CaseID == caseID {
			result.Expenses++
		}
	}
	for _, income := range incomes {
		if income.CaseID != nil && *income.CaseID == caseID {
			result.Incomes++
		}
	}
	return result
}

// ForClient walks the two-level ownership hierarchy Client -> Case ->
// {Expense, Income}. The hierarchy is a tree (a case has at most one client,
// a transaction at most one case), so a flat two-level count is exact:
// no record is reachable twice, no cycle detection is needed.
func ForClient(cases []*entity.Case, expenses []*entity.Expense, incomes []*entity.Income, clientID uuid.UUID) ClientImpact {
	owned := make(map[uuid.UUID]bool)
	var result ClientImpact
	for _, c := range cases {
		if c.ClientID != nil && *c.ClientID == clientID {
			owned[c.ID] = true
			result.Cases++
		}
	}
	for _, expense := range expenses {
		if expense.CaseID != nil && owned[*expense.CaseID] {
			result.Expenses++
		}
	}
	for _, income := range incomes {
		if income.CaseID != nil && owned[*income.CaseID] {
			result.Incomes++
		}
	}
	return result
}
