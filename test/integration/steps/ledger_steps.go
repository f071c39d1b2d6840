package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/lawledger/backend/internal/integration/adapters"
	"github.com/lawledger/backend/internal/integration/persistence/model"
)

// iAmAuthenticated seeds a user and signs an access token for it, so
// authenticated scenarios skip the register/login round trip.
func (t *testContext) iAmAuthenticated() error {
	userID := uuid.New()
	t.currentUserID = userID

	hash, err := bcrypt.GenerateFromPassword([]byte("SecurePass123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Username:     fmt.Sprintf("partner-%s", userID.String()[:8]),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return err
	}

	tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute)
	token, err := tokenService.GenerateAccessToken(context.Background(), userID, user.Username)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = token

	return nil
}

func (t *testContext) aClientExistsNamed(name string) error {
	clientID := uuid.New()
	t.currentClientID = clientID

	now := time.Now().UTC()
	clientModel := &model.ClientModel{
		ID:        clientID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(clientModel).Error
}

func (t *testContext) aCaseExistsTitledForThatClient(title string) error {
	if t.currentClientID == uuid.Nil {
		return fmt.Errorf("no client seeded for case %q", title)
	}
	clientID := t.currentClientID
	return t.createCase(title, &clientID)
}

func (t *testContext) aCaseExistsTitledWithNoClient(title string) error {
	return t.createCase(title, nil)
}

func (t *testContext) createCase(title string, clientID *uuid.UUID) error {
	caseID := uuid.New()
	t.currentCaseID = caseID

	now := time.Now().UTC()
	caseModel := &model.CaseModel{
		ID:        caseID,
		Title:     title,
		Status:    "Open",
		ClientID:  clientID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(caseModel).Error
}

func (t *testContext) theCaseHasAnExpenseOf(amount, currency, account, date string) error {
	if t.currentCaseID == uuid.Nil {
		return fmt.Errorf("no case seeded for expense")
	}
	caseID := t.currentCaseID
	return t.createExpense(amount, currency, account, date, &caseID)
}

func (t *testContext) anUnattachedExpenseExists(amount, currency, account, date string) error {
	return t.createExpense(amount, currency, account, date, nil)
}

func (t *testContext) createExpense(amount, currency, account, date string, caseID *uuid.UUID) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid expense amount %q: %w", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid expense date %q: %w", date, err)
	}

	expenseID := uuid.New()
	t.currentExpenseID = expenseID

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:          expenseID,
		Description: "Seeded expense",
		Amount:      value,
		Currency:    currency,
		Date:        day,
		Category:    "Court Fees",
		Status:      "Pending",
		Account:     account,
		CaseID:      caseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(expenseModel).Error
}

func (t *testContext) theCaseHasAnIncomeOf(amount, currency, account, date string) error {
	if t.currentCaseID == uuid.Nil {
		return fmt.Errorf("no case seeded for income")
	}
	caseID := t.currentCaseID
	return t.createIncome(amount, currency, account, date, &caseID)
}

func (t *testContext) anUnattachedIncomeExists(amount, currency, account, date string) error {
	return t.createIncome(amount, currency, account, date, nil)
}

func (t *testContext) createIncome(amount, currency, account, date string, caseID *uuid.UUID) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid income amount %q: %w", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid income date %q: %w", date, err)
	}

	incomeID := uuid.New()
	t.currentIncomeID = incomeID

	now := time.Now().UTC()
	incomeModel := &model.IncomeModel{
		ID:          incomeID,
		Description: "Seeded income",
		Amount:      value,
		Currency:    currency,
		Date:        day,
		Source:      "Retainer",
		Account:     account,
		CaseID:      caseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(incomeModel).Error
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

// getFieldValue resolves a dot separated path, with numeric segments
// indexing into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
