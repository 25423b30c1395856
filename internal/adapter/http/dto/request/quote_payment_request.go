package request

import "encoding/json"

// QuotePaymentRequest is the payload for paying an accepted quote.
//
// `provider_payload` is forwarded as-is (raw JSON) to the payment provider; a
// body without the envelope is forwarded whole.
type QuotePaymentRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
