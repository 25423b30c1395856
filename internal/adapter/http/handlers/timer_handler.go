package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "carrozzeria/internal/adapter/http/dto/request"
	response "carrozzeria/internal/adapter/http/dto/response"
	"carrozzeria/internal/adapter/http/middleware"
	"carrozzeria/internal/usecase"
	"carrozzeria/pkg"

	"github.com/gin-gonic/gin"
)

// TimerHandler starts and stops labor timers.
//
// Employees may only drive their own timers; admins may act for anyone.
type TimerHandler struct {
	usecase usecase.ITimerUseCase
}

func NewTimerHandler(uc usecase.ITimerUseCase) *TimerHandler {
	return &TimerHandler{usecase: uc}
}

func (h *TimerHandler) StartTimer(c *gin.Context) {
	employeeID, orderID, ok := h.bindTimer(c)
	if !ok {
		return
	}

	session, err := h.usecase.Start(c.Request.Context(), employeeID, orderID)
	if err != nil {
		log.Printf("[timer][handler] start failed employee_id=%s order_id=%s err=%v", employeeID, orderID, err)
		writeError(c, mapTimerError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkSession(session))
}

func (h *TimerHandler) StopTimer(c *gin.Context) {
	employeeID, orderID, ok := h.bindTimer(c)
	if !ok {
		return
	}

	res, err := h.usecase.Stop(c.Request.Context(), employeeID, orderID)
	if err != nil {
		log.Printf("[timer][handler] stop failed employee_id=%s order_id=%s err=%v", employeeID, orderID, err)
		writeError(c, mapTimerError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPricedSession(res.Session, res.Summary))
}

// ListActive returns open sessions priced against now. Employees only ever
// see their own sessions.
func (h *TimerHandler) ListActive(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	employeeID := strings.TrimSpace(c.Query("employee_id"))
	orderID := strings.TrimSpace(c.Query("order_id"))

	if !principal.IsAdmin() {
		if employeeID == "" {
			employeeID = principal.EmployeeID
		}
		if !principal.CanActAs(employeeID) {
			writeError(c, errForbidden)
			return
		}
	}

	active, err := h.usecase.Active(c.Request.Context(), employeeID, orderID)
	if err != nil {
		log.Printf("[timer][handler] active failed employee_id=%s err=%v", employeeID, err)
		writeError(c, mapTimerError(err))
		return
	}

	out := make([]response.PricedSessionResponse, 0, len(active))
	for _, a := range active {
		out = append(out, response.FromPricedSession(a.Session, a.Summary))
	}
	c.JSON(http.StatusOK, out)
}

func (h *TimerHandler) bindTimer(c *gin.Context) (string, string, bool) {
	var payload request.TimerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return "", "", false
	}

	principal := middleware.PrincipalFrom(c)
	employeeID := payload.ResolveEmployeeID(principal.EmployeeID)
	orderID := strings.TrimSpace(payload.OrderID)
	if employeeID == "" || orderID == "" {
		writeError(c, errInvalidRequest)
		return "", "", false
	}
	if !principal.CanActAs(employeeID) {
		log.Printf("[timer][handler] forbidden caller=%s employee_id=%s", principal.EmployeeID, employeeID)
		writeError(c, errForbidden)
		return "", "", false
	}
	return employeeID, orderID, true
}

func mapTimerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID), errors.Is(err, usecase.ErrInvalidOrderID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOpenSessionNotFound):
		return pkg.NewDomainErrorSimple("OPEN_SESSION_NOT_FOUND", "No open session for this employee and order", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOpenSessionExists):
		return pkg.NewDomainErrorSimple("SESSION_ALREADY_OPEN", "A timer is already running for this employee and order", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionAlreadyClosed):
		return pkg.NewDomainErrorSimple("SESSION_ALREADY_CLOSED", "Session already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmployeeInactive):
		return pkg.NewDomainErrorSimple("EMPLOYEE_INACTIVE", "Employee is not active", http.StatusConflict)
	default:
		return internalError(err)
	}
}
