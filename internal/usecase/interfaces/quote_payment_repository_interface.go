package interfaces

import (
	"context"

	"carrozzeria/internal/domain/entities"
)

//go:generate mockgen -source=quote_payment_repository_interface.go -destination=mocks/mock_quote_payment_repository.go -package=mock_interfaces

type IQuotePaymentRepository interface {
	Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}
