package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (preventivo).
//
//	draft -> sent -> accepted | rejected
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is a pricing document, optionally derived from an order's closed
// labor sessions.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Items are embedded in the quote; they are never stored on their own.
type Quote struct {
	ID         string      `json:"id"`
	Number     string      `json:"number"`
	OrderID    string      `json:"order_id"`
	Status     QuoteStatus `json:"status"`
	IssueDate  time.Time   `json:"issue_date"`
	ExpiryDate time.Time   `json:"expiry_date"`
	Items      []QuoteItem `json:"items"`
	Notes      string      `json:"notes"`
	Subtotal   float64     `json:"subtotal"`
	TaxRate    float64     `json:"tax_rate"`
	TaxAmount  float64     `json:"tax_amount"`
	Total      float64     `json:"total"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type QuoteItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}
