// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/lawledger/backend/config"
	"github.com/lawledger/backend/internal/application/adapter"
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
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The report cache may be nil, in which case reports are always recomputed.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthCheck func() bool, reportCache adapter.ReportCache) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	caseRepo := persistence.NewCaseRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create client use cases
	createClientUseCase := client.NewCreateClientUseCase(clientRepo)
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo, reportCache)

	// Create case use cases
	createCaseUseCase := legalcase.NewCreateCaseUseCase(caseRepo, clientRepo)
	listCasesUseCase := legalcase.NewListCasesUseCase(caseRepo)
	updateCaseUseCase := legalcase.NewUpdateCaseUseCase(caseRepo, clientRepo)
	deleteCaseUseCase := legalcase.NewDeleteCaseUseCase(caseRepo, reportCache)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, caseRepo, reportCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, caseRepo, reportCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, reportCache)

	// Create income use cases
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, caseRepo, reportCache)
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, caseRepo, reportCache)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo, reportCache)

	// Create impact and report use cases
	caseImpactUseCase := impact.NewGetCaseImpactUseCase(expenseRepo, incomeRepo)
	clientImpactUseCase := impact.NewGetClientImpactUseCase(caseRepo, expenseRepo, incomeRepo)
	generateReportUseCase := report.NewGenerateReportUseCase(expenseRepo, incomeRepo, reportCache, report.Options{
		Currencies:         cfg.Report.Currencies,
		Accounts:           cfg.Report.Accounts,
		DiscoverCurrencies: cfg.Report.DiscoverCurrencies,
		CacheTTL:           cfg.Report.CacheTTL,
	})

	// Create controllers
	healthController := controller.NewHealthController(dbHealthCheck)
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

	// Create middleware
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

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
