package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "carrozzeria/internal/adapter/http/dto/response"
	"carrozzeria/internal/usecase"
	"carrozzeria/pkg"

	"github.com/gin-gonic/gin"
)

// QuotePaymentHandler charges accepted quotes and lists their payments.
// In mock mode an unreadable body is charged as an empty payload.
type QuotePaymentHandler struct {
	usecase  usecase.IQuotePaymentUseCase
	mockMode bool
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, mockMode bool) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc, mockMode: mockMode}
}

func (h *QuotePaymentHandler) PayQuote(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[payment][handler] pay start quote_id=%s", quoteID)
	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Printf("[payment][handler] invalid payload quote_id=%s err=%v", quoteID, err)
			writeError(c, errInvalidRequest)
			return
		}
		log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload quote_id=%s err=%v", quoteID, err)
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.Pay(c.Request.Context(), quoteID, payload)
	if err != nil {
		log.Printf("[payment][handler] pay failed quote_id=%s err=%v", quoteID, err)
		writeError(c, mapQuotePaymentError(err))
		return
	}
	log.Printf("[payment][handler] pay success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromQuotePayment(created))
}

// ListQuotePayments returns every payment of a quote, newest first.
func (h *QuotePaymentHandler) ListQuotePayments(c *gin.Context) {
	quoteID := c.Param("id")
	payments, err := h.usecase.ListByQuote(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[payment][handler] list failed quote_id=%s err=%v", quoteID, err)
		writeError(c, mapQuotePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayments(payments))
}

// readProviderPayload accepts either {"provider_payload": {...}} or the
// provider request itself. An empty body becomes {}.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote not accepted", http.StatusConflict)
	default:
		return internalError(err)
	}
}
