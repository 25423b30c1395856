package routes

import (
	"carrozzeria/internal/adapter/http/handlers"
	"carrozzeria/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathTimers    = "/timers"
	PathDashboard = "/dashboard"
	PathStats     = "/stats"
)

func addTimerRoutes(rg *gin.RouterGroup, timerHandler *handlers.TimerHandler) {
	timers := rg.Group(PathTimers)
	{
		// Employees drive their own timers; the handler checks ownership.
		timers.POST("/start", timerHandler.StartTimer)
		timers.POST("/stop", timerHandler.StopTimer)
		timers.GET("/active", timerHandler.ListActive)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.LaborReportHandler) {
	rg.GET(PathDashboard, reportHandler.GetDashboard)

	stats := rg.Group(PathStats)
	{
		stats.GET("", reportHandler.GetStats)
		stats.GET("/export", middleware.RequireAdmin(), reportHandler.ExportStats)
	}
}
