package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"
)

var (
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrQuoteNotAccepted               = errors.New("quote not accepted")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IQuotePaymentUseCase charges an accepted quote through the payment provider.
//
// The amount always comes from the stored quote total, never from the caller.
type IQuotePaymentUseCase interface {
	Pay(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error)
	ListByQuote(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

// PaymentSettings mirrors the payment part of the service config.
type PaymentSettings struct {
	// MockMode skips the payment_method_id and payer checks.
	MockMode bool
	// TestPayerEmail is sent as payer email when the caller names no payer.
	TestPayerEmail string
}

type QuotePaymentUseCase struct {
	repo     interfaces.IQuotePaymentRepository
	quotes   interfaces.IQuoteRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
	now      Clock
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, quotes interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings) *QuotePaymentUseCase {
	settings.TestPayerEmail = strings.TrimSpace(settings.TestPayerEmail)
	return &QuotePaymentUseCase{repo: repo, quotes: quotes, gateway: gateway, settings: settings, now: systemClock}
}

func (u *QuotePaymentUseCase) Pay(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidQuoteID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		log.Printf("[payment][usecase] invalid payload (not-json) quote_id=%s", quoteID)
		return entities.QuotePayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured quote_id=%s", quoteID)
		return entities.QuotePayment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if q.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		log.Printf("[payment][usecase] quote not accepted quote_id=%s status=%s", quoteID, q.Status)
		return entities.QuotePayment{}, ErrQuoteNotAccepted
	}

	var req map[string]any
	if err := json.Unmarshal(providerPayload, &req); err != nil || req == nil {
		return entities.QuotePayment{}, ErrInvalidProviderPayload
	}
	if !u.settings.MockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id quote_id=%s", quoteID)
			return entities.QuotePayment{}, ErrInvalidProviderPayload
		}
		ensurePayerDefaults(req, u.settings.TestPayerEmail)
		if !hasPayer(req) {
			log.Printf("[payment][usecase] missing payer quote_id=%s", quoteID)
			return entities.QuotePayment{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = q.Number
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Quote %s", q.Number)
	}
	req["transaction_amount"] = q.Total

	enriched, err := json.Marshal(req)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed quote_id=%s err=%v", quoteID, err)
		return entities.QuotePayment{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	p := entities.QuotePayment{
		ID:                 providerID,
		QuoteID:            quoteID,
		Amount:             q.Total,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed quote_id=%s payment_id=%s err=%v", quoteID, p.ID, err)
		return entities.QuotePayment{}, err
	}
	log.Printf("[payment][usecase] paid quote_id=%s payment_id=%s status=%s amount=%.2f", quoteID, created.ID, created.Status, created.Amount)
	return created, nil
}

func (u *QuotePaymentUseCase) ListByQuote(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	payments, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
	return payments, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	if hasNonEmptyString(payer, "email") {
		return true
	}
	id := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	return payer["id"] != nil && id != ""
}

// ensurePayerDefaults fills a sandbox payer email when the caller sent none.
func ensurePayerDefaults(m map[string]any, testEmail string) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		if m["payer"] != nil {
			return
		}
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayer(m) {
		return
	}
	if testEmail != "" {
		payer["email"] = testEmail
	}
}
