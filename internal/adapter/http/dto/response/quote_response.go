package response

import (
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/domain/labor"
)

type QuoteItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type QuoteResponse struct {
	ID         string              `json:"id"`
	Number     string              `json:"number"`
	OrderID    string              `json:"order_id"`
	Status     string              `json:"status"`
	IssueDate  time.Time           `json:"issue_date"`
	ExpiryDate time.Time           `json:"expiry_date"`
	Items      []QuoteItemResponse `json:"items"`
	Notes      string              `json:"notes"`
	Subtotal   float64             `json:"subtotal"`
	TaxRate    float64             `json:"tax_rate"`
	TaxAmount  float64             `json:"tax_amount"`
	Total      float64             `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			Description: it.Description,
			Quantity:    labor.Round2(it.Quantity),
			UnitPrice:   labor.Round2(it.UnitPrice),
			Total:       labor.Round2(it.Total),
		})
	}
	return QuoteResponse{
		ID:         q.ID,
		Number:     q.Number,
		OrderID:    q.OrderID,
		Status:     string(q.Status),
		IssueDate:  q.IssueDate,
		ExpiryDate: q.ExpiryDate,
		Items:      items,
		Notes:      q.Notes,
		Subtotal:   labor.Round2(q.Subtotal),
		TaxRate:    q.TaxRate,
		TaxAmount:  labor.Round2(q.TaxAmount),
		Total:      labor.Round2(q.Total),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func FromQuotes(list []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, FromQuote(q))
	}
	return out
}
