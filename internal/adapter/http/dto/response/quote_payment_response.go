package response

import (
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/domain/labor"
)

type QuotePaymentResponse struct {
	ID      string    `json:"id"`
	QuoteID string    `json:"quote_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Amount:             labor.Round2(p.Amount),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromQuotePayments(list []entities.QuotePayment) []QuotePaymentResponse {
	out := make([]QuotePaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromQuotePayment(p))
	}
	return out
}
