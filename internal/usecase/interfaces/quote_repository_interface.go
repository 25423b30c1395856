package interfaces

import (
	"context"

	"carrozzeria/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository.go -package=mock_interfaces

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Quote, error)
	// UpdateStatus moves a quote from one of the allowed statuses to status.
	// It returns a zero-value quote when the quote is missing or its current
	// status is not in from.
	UpdateStatus(ctx context.Context, id string, from []entities.QuoteStatus, status entities.QuoteStatus) (entities.Quote, error)
}
