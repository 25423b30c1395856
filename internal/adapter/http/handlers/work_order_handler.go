package handlers

import (
	"errors"
	"log"
	"net/http"

	request "carrozzeria/internal/adapter/http/dto/request"
	response "carrozzeria/internal/adapter/http/dto/response"
	"carrozzeria/internal/usecase"
	"carrozzeria/pkg"

	"github.com/gin-gonic/gin"
)

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[work-order][handler] create failed err=%v", err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(created))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(o))
}

func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[work-order][handler] list failed err=%v", err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(list))
}

func (h *WorkOrderHandler) UpdateWorkOrderStatus(c *gin.Context) {
	var payload request.UpdateWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	id := c.Param("id")
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ResolveStatus())
	if err != nil {
		log.Printf("[work-order][handler] status update failed order_id=%s err=%v", id, err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidWorkOrder):
		return pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWorkOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_STATUS", "Status must be one of waiting, in_progress, completed, delivered", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
