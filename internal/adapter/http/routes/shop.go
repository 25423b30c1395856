package routes

import (
	"carrozzeria/internal/adapter/http/handlers"
	"carrozzeria/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathEmployees  = "/employees"
	PathWorkOrders = "/work-orders"
	PathQuotes     = "/quotes"
)

func addEmployeeRoutes(rg *gin.RouterGroup, employeeHandler *handlers.EmployeeHandler) {
	employees := rg.Group(PathEmployees)
	{
		employees.GET("", employeeHandler.ListEmployees)
		employees.GET("/:id", employeeHandler.GetEmployee)
		employees.POST("", middleware.RequireAdmin(), employeeHandler.CreateEmployee)
		employees.PATCH("/:id", middleware.RequireAdmin(), employeeHandler.UpdateEmployee)
	}
}

func addWorkOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.WorkOrderHandler, reportHandler *handlers.LaborReportHandler, quoteHandler *handlers.QuoteHandler) {
	orders := rg.Group(PathWorkOrders)
	{
		orders.GET("", orderHandler.ListWorkOrders)
		orders.GET("/:id", orderHandler.GetWorkOrder)
		orders.GET("/:id/labor", reportHandler.GetOrderLabor)
		orders.GET("/:id/quotes", quoteHandler.ListOrderQuotes)
		orders.POST("", middleware.RequireAdmin(), orderHandler.CreateWorkOrder)
		orders.PATCH("/:id/status", middleware.RequireAdmin(), orderHandler.UpdateWorkOrderStatus)
		orders.POST("/:id/quote", middleware.RequireAdmin(), quoteHandler.GenerateQuote)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/send", middleware.RequireAdmin(), quoteHandler.SendQuote)
		quotes.PATCH("/:id/accept", middleware.RequireAdmin(), quoteHandler.AcceptQuote)
		quotes.PATCH("/:id/reject", middleware.RequireAdmin(), quoteHandler.RejectQuote)
		quotes.POST("/:id/payments", middleware.RequireAdmin(), paymentHandler.PayQuote)
		quotes.GET("/:id/payments", middleware.RequireAdmin(), paymentHandler.ListQuotePayments)
	}
}
