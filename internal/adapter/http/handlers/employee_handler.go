package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "carrozzeria/internal/adapter/http/dto/request"
	response "carrozzeria/internal/adapter/http/dto/response"
	"carrozzeria/internal/usecase"
	"carrozzeria/pkg"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var payload request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[employee][handler] create failed err=%v", err)
		writeError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEmployee(created))
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(e))
}

// ListEmployees accepts ?active=true to hide deactivated employees.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	activeOnly := false
	if v := c.Query("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(c, errInvalidRequest)
			return
		}
		activeOnly = parsed
	}

	list, err := h.usecase.List(c.Request.Context(), activeOnly)
	if err != nil {
		log.Printf("[employee][handler] list failed err=%v", err)
		writeError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployees(list))
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var payload request.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	id := c.Param("id")
	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		log.Printf("[employee][handler] update failed employee_id=%s err=%v", id, err)
		writeError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(updated))
}

func mapEmployeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID), errors.Is(err, usecase.ErrInvalidEmployee):
		return pkg.NewDomainErrorSimple("INVALID_EMPLOYEE_INPUT", "Invalid employee payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
