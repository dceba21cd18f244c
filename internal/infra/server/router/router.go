// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/barbershop/backend/internal/integration/entrypoint/controller"
	"github.com/barbershop/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	serviceController   *controller.ServiceController
	expenseController   *controller.ExpenseController
	customerController  *controller.CustomerController
	dashboardController *controller.DashboardController
	reportController    *controller.ReportController
	writeRateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	serviceController *controller.ServiceController,
	expenseController *controller.ExpenseController,
	customerController *controller.CustomerController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		serviceController:   serviceController,
		expenseController:   expenseController,
		customerController:  customerController,
		dashboardController: dashboardController,
		reportController:    reportController,
		writeRateLimiter:    writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	limit := r.writeRateLimiter.Middleware()

	v1 := r.engine.Group("/api/v1")
	{
		v1.POST("/services", limit, r.serviceController.Record)
		v1.GET("/sales", r.serviceController.ListSales)

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", limit, r.expenseController.Record)
		}

		v1.GET("/customers", r.customerController.List)
		v1.GET("/dashboard", r.dashboardController.GetOverview)

		reports := v1.Group("/reports")
		{
			reports.GET("", r.reportController.GetReport)
			reports.GET("/periods", r.reportController.GetPeriods)
			reports.GET("/export", r.reportController.Export)
			reports.GET("/chart", r.reportController.Chart)
			reports.POST("/digest", limit, r.reportController.QueueDigest)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
