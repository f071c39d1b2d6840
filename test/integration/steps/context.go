// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/usecase/auth"
	"github.com/lawledger/backend/internal/application/usecase/client"
	"github.com/lawledger/backend/internal/application/usecase/expense"
	"github.com/lawledger/backend/internal/application/usecase/impact"
	"github.com/lawledger/backend/internal/application/usecase/income"
	"github.com/lawledger/backend/internal/application/usecase/legalcase"
	"github.com/lawledger/backend/internal/application/usecase/report"
	"github.com/lawledger/backend/internal/infra/server/router"
	"github.com/lawledger/backend/internal/integration/adapters"
	"github.com/lawledger/backend/internal/integration/entrypoint/controller"
	"github.com/lawledger/backend/internal/integration/entrypoint/middleware"
	"github.com/lawledger/backend/internal/integration/persistence"
	"github.com/lawledger/backend/internal/integration/persistence/model"
	"github.com/lawledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-integration-tests"

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken string

	currentUserID    uuid.UUID
	currentClientID  uuid.UUID
	currentCaseID    uuid.UUID
	currentExpenseID uuid.UUID
	currentIncomeID  uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testRedis = mock.NewRedis()
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":    &model.UserModel{},
			"clients":  &model.ClientModel{},
			"cases":    &model.CaseModel{},
			"expenses": &model.ExpenseModel{},
			"incomes":  &model.IncomeModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)

	// Ledger setup steps
	ctx.Given(`^a client exists named "([^"]*)"$`, test.aClientExistsNamed)
	ctx.Given(`^a case exists titled "([^"]*)" for that client$`, test.aCaseExistsTitledForThatClient)
	ctx.Given(`^a case exists titled "([^"]*)" with no client$`, test.aCaseExistsTitledWithNoClient)
	ctx.Given(`^the case has an expense of "([^"]*)" "([^"]*)" in "([^"]*)" on "([^"]*)"$`, test.theCaseHasAnExpenseOf)
	ctx.Given(`^the case has an income of "([^"]*)" "([^"]*)" in "([^"]*)" on "([^"]*)"$`, test.theCaseHasAnIncomeOf)
	ctx.Given(`^an unattached expense of "([^"]*)" "([^"]*)" in "([^"]*)" on "([^"]*)" exists$`, test.anUnattachedExpenseExists)
	ctx.Given(`^an unattached income of "([^"]*)" "([^"]*)" in "([^"]*)" on "([^"]*)" exists$`, test.anUnattachedIncomeExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentClientID = uuid.Nil
	t.currentCaseID = uuid.Nil
	t.currentExpenseID = uuid.Nil
	t.currentIncomeID = uuid.Nil

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(testRedis)
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			reportCache := adapters.NewReportCache(testRedis)

			userRepo := persistence.NewUserRepository(testDB.DbConn)
			clientRepo := persistence.NewClientRepository(testDB.DbConn)
			caseRepo := persistence.NewCaseRepository(testDB.DbConn)
			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			incomeRepo := persistence.NewIncomeRepository(testDB.DbConn)

			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute)

			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

			createClientUseCase := client.NewCreateClientUseCase(clientRepo)
			listClientsUseCase := client.NewListClientsUseCase(clientRepo)
			updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
			deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo, reportCache)

			createCaseUseCase := legalcase.NewCreateCaseUseCase(caseRepo, clientRepo)
			listCasesUseCase := legalcase.NewListCasesUseCase(caseRepo)
			updateCaseUseCase := legalcase.NewUpdateCaseUseCase(caseRepo, clientRepo)
			deleteCaseUseCase := legalcase.NewDeleteCaseUseCase(caseRepo, reportCache)

			createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, caseRepo, reportCache)
			listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
			updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, caseRepo, reportCache)
			deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, reportCache)

			createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, caseRepo, reportCache)
			listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
			updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, caseRepo, reportCache)
			deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo, reportCache)

			caseImpactUseCase := impact.NewGetCaseImpactUseCase(expenseRepo, incomeRepo)
			clientImpactUseCase := impact.NewGetClientImpactUseCase(caseRepo, expenseRepo, incomeRepo)
			generateReportUseCase := report.NewGenerateReportUseCase(expenseRepo, incomeRepo, reportCache, report.Options{
				Currencies:         []string{"UAH", "USD"},
				Accounts:           []string{"Cash", "FOP", "Wallet"},
				DiscoverCurrencies: false,
				CacheTTL:           time.Minute,
			})

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(registerUseCase, loginUseCase)
			clientController := controller.NewClientController(
				createClientUseCase,
				listClientsUseCase,
				updateClientUseCase,
				deleteClientUseCase,
				clientImpactUseCase,
			)
			caseController := controller.NewCaseController(
				createCaseUseCase,
				listCasesUseCase,
				updateCaseUseCase,
				deleteCaseUseCase,
				caseImpactUseCase,
			)
			expenseController := controller.NewExpenseController(
				createExpenseUseCase,
				listExpensesUseCase,
				updateExpenseUseCase,
				deleteExpenseUseCase,
			)
			incomeController := controller.NewIncomeController(
				createIncomeUseCase,
				listIncomesUseCase,
				updateIncomeUseCase,
				deleteIncomeUseCase,
			)
			reportController := controller.NewReportController(generateReportUseCase)

			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				clientController,
				caseController,
				expenseController,
				incomeController,
				reportController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for the server to accept requests.
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	replacements := map[string]string{
		"{{access_token}}": t.accessToken,
		"{{client_id}}":    t.currentClientID.String(),
		"{{case_id}}":      t.currentCaseID.String(),
		"{{expense_id}}":   t.currentExpenseID.String(),
		"{{income_id}}":    t.currentIncomeID.String(),
	}
	for placeholder, value := range replacements {
		content = strings.ReplaceAll(content, placeholder, value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)

	return nil
}

// captureIDs remembers the IDs of created records so later steps can
// reference them through placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasField(body, "category"):
		t.currentExpenseID = id
	case hasField(body, "source"):
		t.currentIncomeID = id
	case hasField(body, "title"):
		t.currentCaseID = id
	case hasField(body, "name"):
		t.currentClientID = id
	}
}

func hasField(body map[string]any, field string) bool {
	_, ok := body[field]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}
