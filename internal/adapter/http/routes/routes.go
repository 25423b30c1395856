package routes

import (
	"context"
	"log"

	_ "carrozzeria/docs"
	"carrozzeria/internal/adapter/http/handlers"
	"carrozzeria/internal/adapter/http/middleware"
	"carrozzeria/internal/infrastructure/config"
	"carrozzeria/internal/infrastructure/payments"
	"carrozzeria/internal/usecase"
	"carrozzeria/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Timer        *handlers.TimerHandler
	LaborReport  *handlers.LaborReportHandler
	Employee     *handlers.EmployeeHandler
	WorkOrder    *handlers.WorkOrderHandler
	Quote        *handlers.QuoteHandler
	QuotePayment *handlers.QuotePaymentHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	repos, closeRepos, err := openRepositories(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to open storage driver=%s: %v", cfg.StorageDriver, err)
	}
	defer closeRepos()

	router := NewRouter(cfg, buildHandlers(cfg, repos))

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts the public, authenticated and admin-only routes.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	tokens := middleware.ParseTokens(cfg.APITokens)
	if cfg.AuthMode == config.AuthModeDisabled {
		log.Printf("[auth] AUTH_MODE=disabled, every request runs as admin")
	} else {
		log.Printf("[auth] token auth enabled tokens=%d", len(tokens))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("", middleware.Auth(cfg.AuthMode, tokens))
	addTimerRoutes(api, h.Timer)
	addReportRoutes(api, h.LaborReport)
	addEmployeeRoutes(api, h.Employee)
	addWorkOrderRoutes(api, h.WorkOrder, h.LaborReport, h.Quote)
	addQuoteRoutes(api, h.Quote, h.QuotePayment)
	return router
}

func buildHandlers(cfg config.Config, repos repositories) Handlers {
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	timerUseCase := usecase.NewTimerUseCase(repos.sessions, repos.employees, repos.orders)
	reportUseCase := usecase.NewLaborReportUseCase(repos.sessions, repos.employees, repos.orders)
	employeeUseCase := usecase.NewEmployeeUseCase(repos.employees)
	workOrderUseCase := usecase.NewWorkOrderUseCase(repos.orders, repos.sequence)
	quoteUseCase := usecase.NewQuoteUseCase(repos.quotes, repos.orders, repos.sessions, repos.employees, repos.sequence, usecase.QuoteSettings{
		Prefix:       cfg.QuotePrefix,
		ValidityDays: cfg.QuoteValidityDays,
		TaxRate:      cfg.QuoteTaxRate,
	})
	paymentUseCase := usecase.NewQuotePaymentUseCase(repos.payments, repos.quotes, paymentGateway, usecase.PaymentSettings{
		MockMode:       cfg.PaymentGatewayMock,
		TestPayerEmail: cfg.MercadoPagoTestPayerEmail,
	})

	return Handlers{
		Timer:        handlers.NewTimerHandler(timerUseCase),
		LaborReport:  handlers.NewLaborReportHandler(reportUseCase),
		Employee:     handlers.NewEmployeeHandler(employeeUseCase),
		WorkOrder:    handlers.NewWorkOrderHandler(workOrderUseCase),
		Quote:        handlers.NewQuoteHandler(quoteUseCase),
		QuotePayment: handlers.NewQuotePaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
