package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	request "carrozzeria/internal/adapter/http/dto/request"
	response "carrozzeria/internal/adapter/http/dto/response"
	"carrozzeria/internal/adapter/http/middleware"
	"carrozzeria/internal/infrastructure/reports"
	"carrozzeria/internal/usecase"
	"carrozzeria/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LaborReportHandler serves the dashboard snapshot, period stats and
// per-order labor breakdowns.
type LaborReportHandler struct {
	usecase usecase.ILaborReportUseCase
	now     func() time.Time
}

func NewLaborReportHandler(uc usecase.ILaborReportUseCase) *LaborReportHandler {
	return &LaborReportHandler{usecase: uc, now: time.Now}
}

func (h *LaborReportHandler) GetDashboard(c *gin.Context) {
	snap, err := h.usecase.Snapshot(c.Request.Context())
	if err != nil {
		log.Printf("[report][handler] dashboard failed err=%v", err)
		writeError(c, mapLaborReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardSnapshot(snap))
}

func (h *LaborReportHandler) GetStats(c *gin.Context) {
	stats, ok := h.loadStats(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromPeriodStats(stats))
}

// ExportStats renders the same stats as GetStats into an XLSX workbook.
func (h *LaborReportHandler) ExportStats(c *gin.Context) {
	stats, ok := h.loadStats(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteStatsWorkbook(&buf, stats); err != nil {
		log.Printf("[report][handler] export failed err=%v", err)
		writeError(c, internalError(err))
		return
	}

	filename := fmt.Sprintf("labor-stats-%s-%s.xlsx", stats.From.Format("20060102"), stats.To.Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *LaborReportHandler) GetOrderLabor(c *gin.Context) {
	orderID := c.Param("id")
	breakdown, err := h.usecase.OrderLabor(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[report][handler] order labor failed order_id=%s err=%v", orderID, err)
		writeError(c, mapLaborReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderLabor(breakdown))
}

func (h *LaborReportHandler) loadStats(c *gin.Context) (usecase.PeriodStats, bool) {
	var query request.StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidRequest)
		return usecase.PeriodStats{}, false
	}
	from, to, err := query.ResolvePeriod(h.now())
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_PERIOD", "start and end must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest))
		return usecase.PeriodStats{}, false
	}

	principal := middleware.PrincipalFrom(c)
	employeeID := query.EmployeeID
	if !principal.IsAdmin() {
		if employeeID == "" {
			employeeID = principal.EmployeeID
		}
		if !principal.CanActAs(employeeID) {
			writeError(c, errForbidden)
			return usecase.PeriodStats{}, false
		}
	}

	stats, err := h.usecase.StatsForPeriod(c.Request.Context(), employeeID, from, to)
	if err != nil {
		log.Printf("[report][handler] stats failed employee_id=%s err=%v", employeeID, err)
		writeError(c, mapLaborReportError(err))
		return usecase.PeriodStats{}, false
	}
	return stats, true
}

func mapLaborReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "start must not be after end", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
