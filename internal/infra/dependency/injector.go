// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/barbershop/backend/config"
	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/application/usecase/customer"
	"github.com/barbershop/backend/internal/application/usecase/expense"
	"github.com/barbershop/backend/internal/application/usecase/report"
	"github.com/barbershop/backend/internal/application/usecase/servicerecord"
	"github.com/barbershop/backend/internal/infra/server/router"
	"github.com/barbershop/backend/internal/integration/adapters"
	"github.com/barbershop/backend/internal/integration/cache"
	"github.com/barbershop/backend/internal/integration/email"
	"github.com/barbershop/backend/internal/integration/email/templates"
	"github.com/barbershop/backend/internal/integration/entrypoint/controller"
	"github.com/barbershop/backend/internal/integration/entrypoint/middleware"
	"github.com/barbershop/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	DB               *gorm.DB
	Router           *router.Router
	EmailWorker      *email.Worker
	WriteRateLimiter *middleware.RateLimiter
}

// reportCache is satisfied by both the Redis and the no-op cache.
type reportCache interface {
	report.ReportCache
	adapter.ReportCacheInvalidator
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient disables report caching. now drives report periods and
// record timestamps.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	sender adapter.EmailSender,
	now func() time.Time,
) (*Injector, error) {
	loc := cfg.Report.Location()
	meta := report.ExportMeta{
		BusinessName:   cfg.Report.BusinessName,
		CurrencySymbol: cfg.Report.CurrencySymbol,
	}

	// Create repositories
	customerRepo := persistence.NewCustomerRepository(db)
	serviceRepo := persistence.NewServiceRecordRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	// Email jobs are scheduled on the wall clock.
	emailQueueRepo := persistence.NewEmailQueueRepository(db, time.Now)
	source := persistence.NewReportSource(serviceRepo, expenseRepo, customerRepo)

	// Create report cache
	var reports reportCache = cache.NoopReportCache{}
	var cacheHealthChecker func() bool
	if redisClient != nil {
		reports = cache.NewRedisReportCache(redisClient, cfg.Redis.CacheTTL)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}

	// Create email services
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailService := email.NewService(emailQueueRepo)
	worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create write use cases
	recordServiceUseCase := servicerecord.NewRecordServiceUseCase(customerRepo, serviceRepo, reports, now)
	listSalesUseCase := servicerecord.NewListSalesUseCase(serviceRepo, loc, now)
	recordExpenseUseCase := expense.NewRecordExpenseUseCase(expenseRepo, reports, now)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, loc, now)
	listCustomersUseCase := customer.NewListCustomersUseCase(customerRepo, loc)

	// Create report use cases
	getReportUseCase := report.NewGetReportUseCase(source, reports, loc, now)
	periodsUseCase := report.NewGetAvailablePeriodsUseCase(source, loc)
	exportUseCase := report.NewExportReportUseCase(getReportUseCase, adapters.NewExcelExporter(), meta, loc)
	chartUseCase := report.NewRenderChartUseCase(getReportUseCase, adapters.NewChartRenderer(), meta.CurrencySymbol)
	queueDigestUseCase := report.NewQueueDigestUseCase(getReportUseCase, emailService, meta, loc)
	overviewUseCase := report.NewGetDashboardOverviewUseCase(source, loc, now)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker, now)

	serviceController := controller.NewServiceController(recordServiceUseCase, listSalesUseCase, loc)
	expenseController := controller.NewExpenseController(recordExpenseUseCase, listExpensesUseCase, loc)
	customerController := controller.NewCustomerController(listCustomersUseCase)
	dashboardController := controller.NewDashboardController(overviewUseCase)
	reportController := controller.NewReportController(
		getReportUseCase,
		periodsUseCase,
		exportUseCase,
		chartUseCase,
		queueDigestUseCase,
		loc,
		now,
	)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, now)

	// Create router
	r := router.NewRouter(
		healthController,
		serviceController,
		expenseController,
		customerController,
		dashboardController,
		reportController,
		writeRateLimiter,
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Router:           r,
		EmailWorker:      worker,
		WriteRateLimiter: writeRateLimiter,
	}, nil
}
