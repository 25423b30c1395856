package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	response "carrozzeria/internal/adapter/http/dto/response"
	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase"
	"carrozzeria/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler generates quotes from an order's labor and moves them
// through draft -> sent -> accepted | rejected.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	orderID := c.Param("id")
	quote, err := h.usecase.GenerateFromOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[quote][handler] generate failed order_id=%s err=%v", orderID, err)
		writeError(c, mapQuoteError(err))
		return
	}
	log.Printf("[quote][handler] generated order_id=%s quote_id=%s number=%s", orderID, quote.ID, quote.Number)
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) ListOrderQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.transition(c, "send", h.usecase.Send)
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.transition(c, "accept", h.usecase.Accept)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.transition(c, "reject", h.usecase.Reject)
}

func (h *QuoteHandler) transition(
	c *gin.Context,
	action string,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	id := c.Param("id")
	quote, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quote][handler] %s failed quote_id=%s err=%v", action, id, err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidOrderID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidQuoteTransition):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_TRANSITION", "Quote status transition not allowed", http.StatusConflict)
	default:
		return internalError(err)
	}
}
