package repository

import (
	"context"
	"encoding/json"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type QuotePaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentGormRepository)(nil)

func NewQuotePaymentGormRepository(db *gorm.DB) *QuotePaymentGormRepository {
	return &QuotePaymentGormRepository{db: db}
}

func (r *QuotePaymentGormRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	row := quotePaymentRow{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Amount:             p.Amount,
		Date:               p.Date.UTC(),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.QuotePayment{}, err
	}
	return p, nil
}

func (r *QuotePaymentGormRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	var rows []quotePaymentRow
	if err := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.QuotePayment, 0, len(rows))
	for _, row := range rows {
		p := entities.QuotePayment{
			ID:      row.ID,
			QuoteID: row.QuoteID,
			Amount:  row.Amount,
			Date:    row.Date.UTC(),
			Status:  entities.PaymentStatus(row.Status),
		}
		if row.ProviderPayloadRaw != "" {
			p.ProviderPayloadRaw = json.RawMessage(row.ProviderPayloadRaw)
			var parsed map[string]interface{}
			if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
				p.ProviderPayload = parsed
			}
		}
		out = append(out, p)
	}
	return out, nil
}
